package state

// AccordionMode controls how many items may be open at once.
type AccordionMode int

const (
	// AccordionSingle keeps at most one item open.
	AccordionSingle AccordionMode = iota
	// AccordionMulti lets items open independently.
	AccordionMulti
)

// Accordion tracks expanded items by id.
type Accordion struct {
	mode  AccordionMode
	items []string
	open  map[string]bool
}

// NewAccordion creates an accordion over the given item ids, all collapsed.
func NewAccordion(mode AccordionMode, ids ...string) *Accordion {
	items := make([]string, len(ids))
	copy(items, ids)
	return &Accordion{mode: mode, items: items, open: make(map[string]bool, len(ids))}
}

// Mode returns the expand mode.
func (a *Accordion) Mode() AccordionMode {
	return a.mode
}

// Toggle flips id and returns whether it is now open. Unknown ids are ignored.
func (a *Accordion) Toggle(id string) bool {
	if a.open[id] {
		a.Collapse(id)
		return false
	}
	return a.Expand(id)
}

// Expand opens id. In single mode every other item closes.
func (a *Accordion) Expand(id string) bool {
	if !a.has(id) {
		return false
	}
	if a.mode == AccordionSingle {
		clear(a.open)
	}
	a.open[id] = true
	return true
}

// Collapse closes id.
func (a *Accordion) Collapse(id string) {
	delete(a.open, id)
}

// CollapseAll closes every item.
func (a *Accordion) CollapseAll() {
	clear(a.open)
}

// IsOpen reports whether id is expanded.
func (a *Accordion) IsOpen(id string) bool {
	return a.open[id]
}

// OpenItems returns open ids in item order.
func (a *Accordion) OpenItems() []string {
	out := make([]string, 0, len(a.open))
	for _, id := range a.items {
		if a.open[id] {
			out = append(out, id)
		}
	}
	return out
}

func (a *Accordion) has(id string) bool {
	for _, item := range a.items {
		if item == id {
			return true
		}
	}
	return false
}
