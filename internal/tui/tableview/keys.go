package tableview

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	PrevPage   key.Binding
	NextPage   key.Binding
	NextColumn key.Binding
	PrevColumn key.Binding
	Sort       key.Binding
	ClearSort  key.Binding
	Search     key.Binding
	Toggle     key.Binding
	TogglePage key.Binding
	Activate   key.Binding
	Clear      key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PrevPage:   key.NewBinding(key.WithKeys("left", "h", "pgup"), key.WithHelp("←/h", "prev page")),
		NextPage:   key.NewBinding(key.WithKeys("right", "l", "pgdown"), key.WithHelp("→/l", "next page")),
		NextColumn: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next column")),
		PrevColumn: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev column")),
		Sort:       key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort column")),
		ClearSort:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear sort")),
		Search:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Toggle:     key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "select row")),
		TogglePage: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "select page")),
		Activate:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open row")),
		Clear:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear search")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextPage, k.Sort, k.Search, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PrevPage, k.NextPage},
		{k.NextColumn, k.PrevColumn, k.Sort, k.ClearSort},
		{k.Search, k.Clear, k.Toggle, k.TogglePage},
		{k.Activate, k.Help, k.Quit},
	}
}

// searchKeys apply while the search box has focus.
type searchKeys struct {
	Accept key.Binding
	Cancel key.Binding
}

func defaultSearchKeys() searchKeys {
	return searchKeys{
		Accept: key.NewBinding(key.WithKeys("enter", "tab")),
		Cancel: key.NewBinding(key.WithKeys("esc")),
	}
}
