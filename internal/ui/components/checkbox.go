package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/gridkit/internal/datatable"
)

// Checkbox renders a tri-state checkbox. The partial state is used by header
// checkboxes when only some of the page is selected.
type Checkbox struct {
	BaseComponent
	state datatable.CheckState
	label string
}

// NewCheckbox creates a checkbox in the given state.
func NewCheckbox(state datatable.CheckState) *Checkbox {
	return &Checkbox{BaseComponent: NewBaseComponent(), state: state}
}

// CheckboxFor returns a two-state checkbox for a row.
func CheckboxFor(checked bool) *Checkbox {
	if checked {
		return NewCheckbox(datatable.CheckAll)
	}
	return NewCheckbox(datatable.CheckNone)
}

// WithLabel sets a trailing label.
func (c *Checkbox) WithLabel(label string) *Checkbox {
	c.label = label
	return c
}

// State returns the checkbox state.
func (c *Checkbox) State() datatable.CheckState {
	return c.state
}

// View renders the checkbox.
func (c *Checkbox) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the checkbox with the given theme context.
func (c *Checkbox) ViewWithContext(ctx RenderContext) string {
	style := c.ComputeStyle(ctx.Theme)
	if c.state != datatable.CheckNone {
		style = style.Inherit(lipgloss.NewStyle().Foreground(ctx.Theme.Palette.Primary.Base))
	}
	box := style.Render(checkGlyph(c.state))
	if c.label == "" {
		return box
	}
	return box + " " + c.label
}

func checkGlyph(state datatable.CheckState) string {
	switch state {
	case datatable.CheckAll:
		return "[x]"
	case datatable.CheckPartial:
		return "[-]"
	default:
		return "[ ]"
	}
}

var _ ContextualRenderable = (*Checkbox)(nil)
