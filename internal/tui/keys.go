package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit       key.Binding
	NextTab    key.Binding
	PrevTab    key.Binding
	Up         key.Binding
	Down       key.Binding
	PageNext   key.Binding
	PagePrev   key.Binding
	Search     key.Binding
	Escape     key.Binding
	Delete     key.Binding
	Confirm    key.Binding
	Favorite   key.Binding
	Open       key.Binding
	CycleType  key.Binding
	CycleState key.Binding
	CycleGroup key.Binding
	CycleSort  key.Binding
}

var keys = keyMap{
	Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	NextTab:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next view")),
	PrevTab:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev view")),
	Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	PageNext:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next page")),
	PagePrev:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev page")),
	Search:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	Escape:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Delete:     key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	Confirm:    key.NewBinding(key.WithKeys("y", "enter"), key.WithHelp("y", "confirm")),
	Favorite:   key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "favorite")),
	Open:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
	CycleType:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "filter type")),
	CycleState: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "filter status")),
	CycleGroup: key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "group by")),
	CycleSort:  key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "sort")),
}
