package components

import (
	"fmt"
	"strings"
)

// Pagination renders previous/next controls with the page position.
// It renders nothing when there are no pages.
type Pagination struct {
	BaseComponent
	page       int
	totalPages int
	totalItems int
	pageSize   int
}

// NewPagination creates pagination controls for a 1-based page.
func NewPagination(page, totalPages int) *Pagination {
	return &Pagination{BaseComponent: NewBaseComponent(), page: page, totalPages: totalPages}
}

// WithTotals adds an item range summary such as "11-20 of 25".
func (p *Pagination) WithTotals(totalItems, pageSize int) *Pagination {
	p.totalItems = totalItems
	p.pageSize = pageSize
	return p
}

// HasPrev reports whether a previous page exists.
func (p *Pagination) HasPrev() bool {
	return p.page > 1
}

// HasNext reports whether a next page exists.
func (p *Pagination) HasNext() bool {
	return p.page < p.totalPages
}

// View renders the pagination controls.
func (p *Pagination) View() string {
	return p.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the pagination controls with the given theme context.
func (p *Pagination) ViewWithContext(ctx RenderContext) string {
	if p.totalPages < 1 {
		return ""
	}

	prevLabel, nextLabel := "< Prev", "Next >"
	if ctx.UseUnicode {
		prevLabel, nextLabel = "‹ Prev", "Next ›"
	}

	parts := []string{
		NewButton(prevLabel).WithVariant(ButtonVariantSecondary).WithDisabled(!p.HasPrev()).ViewWithContext(ctx),
		TypographyStyle(ctx.Theme, TypographyVariantBody).Render(fmt.Sprintf("Page %d of %d", p.page, p.totalPages)),
		NewButton(nextLabel).WithVariant(ButtonVariantSecondary).WithDisabled(!p.HasNext()).ViewWithContext(ctx),
	}
	if summary := p.summary(); summary != "" {
		parts = append(parts, TypographyStyle(ctx.Theme, TypographyVariantMuted).Render(summary))
	}
	return p.ComputeStyle(ctx.Theme).Render(strings.Join(parts, " "))
}

func (p *Pagination) summary() string {
	if p.totalItems < 1 || p.pageSize < 1 {
		return ""
	}
	first := (p.page-1)*p.pageSize + 1
	last := min(p.page*p.pageSize, p.totalItems)
	if first > p.totalItems {
		return fmt.Sprintf("0 of %d", p.totalItems)
	}
	return fmt.Sprintf("%d-%d of %d", first, last, p.totalItems)
}

var _ ContextualRenderable = (*Pagination)(nil)
