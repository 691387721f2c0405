package state

import "strings"

// Option is one entry of a Select.
type Option struct {
	Value    string
	Label    string
	Disabled bool
}

// Select is a listbox with keyboard-style navigation. Disabled options can be
// seen but are never highlighted or chosen.
type Select struct {
	options     []Option
	highlighted int
	chosen      int
	open        bool
}

// NewSelect creates a closed select with nothing highlighted or chosen.
func NewSelect(options ...Option) *Select {
	opts := make([]Option, len(options))
	copy(opts, options)
	return &Select{options: opts, highlighted: -1, chosen: -1}
}

// Options returns a copy of the options.
func (s *Select) Options() []Option {
	out := make([]Option, len(s.options))
	copy(out, s.options)
	return out
}

// Open shows the list, highlighting the chosen option or else the first enabled one.
func (s *Select) Open() {
	s.open = true
	if s.enabled(s.highlighted) {
		return
	}
	if s.enabled(s.chosen) {
		s.highlighted = s.chosen
		return
	}
	s.Home()
}

// Close hides the list without choosing.
func (s *Select) Close() {
	s.open = false
}

// IsOpen reports whether the list is shown.
func (s *Select) IsOpen() bool {
	return s.open
}

// Next highlights the next enabled option, wrapping past the end.
func (s *Select) Next() {
	s.step(1)
}

// Prev highlights the previous enabled option, wrapping past the start.
func (s *Select) Prev() {
	s.step(-1)
}

// Home highlights the first enabled option.
func (s *Select) Home() {
	for i := range s.options {
		if s.enabled(i) {
			s.highlighted = i
			return
		}
	}
}

// End highlights the last enabled option.
func (s *Select) End() {
	for i := len(s.options) - 1; i >= 0; i-- {
		if s.enabled(i) {
			s.highlighted = i
			return
		}
	}
}

// Highlight moves the highlight to the option with value. Disabled or unknown
// values are ignored.
func (s *Select) Highlight(value string) bool {
	i := s.indexOf(value)
	if !s.enabled(i) {
		return false
	}
	s.highlighted = i
	return true
}

// TypeAhead highlights the first enabled option whose label starts with
// prefix, ignoring case.
func (s *Select) TypeAhead(prefix string) bool {
	prefix = strings.ToLower(prefix)
	if prefix == "" {
		return false
	}
	for i, opt := range s.options {
		if s.enabled(i) && strings.HasPrefix(strings.ToLower(opt.Label), prefix) {
			s.highlighted = i
			return true
		}
	}
	return false
}

// Choose commits the highlighted option and closes the list.
func (s *Select) Choose() (Option, bool) {
	if !s.enabled(s.highlighted) {
		return Option{}, false
	}
	s.chosen = s.highlighted
	s.open = false
	return s.options[s.chosen], true
}

// Highlighted returns the highlighted option.
func (s *Select) Highlighted() (Option, bool) {
	if s.highlighted < 0 || s.highlighted >= len(s.options) {
		return Option{}, false
	}
	return s.options[s.highlighted], true
}

// HighlightedIndex returns the highlighted position or -1.
func (s *Select) HighlightedIndex() int {
	return s.highlighted
}

// Chosen returns the committed option.
func (s *Select) Chosen() (Option, bool) {
	if s.chosen < 0 || s.chosen >= len(s.options) {
		return Option{}, false
	}
	return s.options[s.chosen], true
}

func (s *Select) step(delta int) {
	n := len(s.options)
	if n == 0 {
		return
	}
	start := s.highlighted
	if start < 0 {
		// nothing highlighted yet: Next lands on the first, Prev on the last
		if delta > 0 {
			start = n - 1
		} else {
			start = 0
		}
	}
	for i := 1; i <= n; i++ {
		next := ((start+delta*i)%n + n) % n
		if s.enabled(next) {
			s.highlighted = next
			return
		}
	}
}

func (s *Select) enabled(i int) bool {
	return i >= 0 && i < len(s.options) && !s.options[i].Disabled
}

func (s *Select) indexOf(value string) int {
	for i, opt := range s.options {
		if opt.Value == value {
			return i
		}
	}
	return -1
}
