package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the table screen.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Retry      key.Binding

	// Search
	Search      key.Binding
	Confirm     key.Binding
	ClearSearch key.Binding

	// Columns
	Left       key.Binding
	Right      key.Binding
	Sort       key.Binding
	SortColumn key.Binding

	// Pages
	FirstPage key.Binding
	PrevPage  key.Binding
	NextPage  key.Binding
	LastPage  key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "cycle theme"),
		),
		Retry: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "retry"),
		),

		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "keep query"),
		),
		ClearSearch: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear query"),
		),

		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev column"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next column"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s", "enter"),
			key.WithHelp("s", "sort column"),
		),
		SortColumn: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "sort column N"),
		),

		FirstPage: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "first page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("[", "pgup", "p"),
			key.WithHelp("[/p", "prev page"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("]", "pgdown", "n"),
			key.WithHelp("]/n", "next page"),
		),
		LastPage: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "last page"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Sort, k.PrevPage, k.NextPage, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Search, k.Confirm, k.ClearSearch},
		{k.Left, k.Right, k.Sort, k.SortColumn},
		{k.FirstPage, k.PrevPage, k.NextPage, k.LastPage},
		{k.CycleTheme, k.Help, k.Quit},
	}
}
