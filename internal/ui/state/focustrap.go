package state

// FocusTrap keeps focus cycling within an ordered set of ids while active,
// as a modal does, and remembers where focus was before it was activated.
type FocusTrap struct {
	ids     []string
	current int
	restore string
	active  bool
}

// NewFocusTrap creates an inactive trap over focusable ids.
func NewFocusTrap(ids ...string) *FocusTrap {
	items := make([]string, len(ids))
	copy(items, ids)
	return &FocusTrap{ids: items}
}

// Activate traps focus, focusing the first id. previous is returned by Release.
func (f *FocusTrap) Activate(previous string) string {
	f.active = true
	f.restore = previous
	f.current = 0
	return f.Current()
}

// Active reports whether focus is trapped.
func (f *FocusTrap) Active() bool {
	return f.active
}

// Current returns the focused id, or "" when inactive or empty.
func (f *FocusTrap) Current() string {
	if !f.active || len(f.ids) == 0 {
		return ""
	}
	return f.ids[f.current]
}

// Next moves focus forward (Tab), wrapping to the first id.
func (f *FocusTrap) Next() string {
	return f.move(1)
}

// Prev moves focus backward (Shift-Tab), wrapping to the last id.
func (f *FocusTrap) Prev() string {
	return f.move(-1)
}

// Focus moves focus to id if it belongs to the trap.
func (f *FocusTrap) Focus(id string) bool {
	if !f.active {
		return false
	}
	for i, candidate := range f.ids {
		if candidate == id {
			f.current = i
			return true
		}
	}
	return false
}

// Release deactivates the trap and returns the id focused before Activate.
func (f *FocusTrap) Release() string {
	f.active = false
	restore := f.restore
	f.restore = ""
	return restore
}

func (f *FocusTrap) move(delta int) string {
	n := len(f.ids)
	if !f.active || n == 0 {
		return ""
	}
	f.current = ((f.current+delta)%n + n) % n
	return f.ids[f.current]
}
