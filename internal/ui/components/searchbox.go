package components

// DefaultSearchPlaceholder is shown when the search text is empty.
const DefaultSearchPlaceholder = "Search..."

// SearchBox renders the current filter text. Interactive editing happens in
// the owning model; this is the unfocused presentation.
type SearchBox struct {
	BaseComponent
	text        string
	placeholder string
	prompt      string
}

// NewSearchBox creates a search box showing text.
func NewSearchBox(text string) *SearchBox {
	return &SearchBox{
		BaseComponent: NewBaseComponent(),
		text:          text,
		placeholder:   DefaultSearchPlaceholder,
		prompt:        "/ ",
	}
}

// WithPlaceholder sets the text shown when empty.
func (s *SearchBox) WithPlaceholder(placeholder string) *SearchBox {
	s.placeholder = placeholder
	return s
}

// WithPrompt sets the leading prompt.
func (s *SearchBox) WithPrompt(prompt string) *SearchBox {
	s.prompt = prompt
	return s
}

// View renders the search box.
func (s *SearchBox) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the search box with the given theme context.
func (s *SearchBox) ViewWithContext(ctx RenderContext) string {
	prompt := TypographyStyle(ctx.Theme, TypographyVariantSubtitle).Render(s.prompt)
	if s.text == "" {
		return prompt + TypographyStyle(ctx.Theme, TypographyVariantMuted).Render(s.placeholder)
	}
	return prompt + s.ComputeStyle(ctx.Theme).Render(s.text)
}

var _ ContextualRenderable = (*SearchBox)(nil)
