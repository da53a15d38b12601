package gallery

import "github.com/charmbracelet/bubbles/key"

// keyMap lists the bindings of the gallery preview.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Open     key.Binding
	Previous key.Binding
	Next     key.Binding
	GoTo     key.Binding
	Close    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "project up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "project down")),
		Open:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open gallery")),
		Previous: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous image")),
		Next:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next image")),
		GoTo:     key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "jump to image")),
		Close:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close gallery")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp returns keybindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Previous, k.Next, k.Close, k.Help, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Open},
		{k.Previous, k.Next, k.GoTo, k.Close},
		{k.Help, k.Quit},
	}
}
