package gallery

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/trueluxconstruction/landing/internal/gallery"
)

var (
	colorPrimary = lipgloss.Color("#c8102e")
	colorText    = lipgloss.Color("#e6e6e6")
	colorDim     = lipgloss.Color("#6b7280")

	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	counterStyle  = lipgloss.NewStyle().Foreground(colorDim)
	imageStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorPrimary).Padding(1, 2).Foreground(colorText)
	cursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	itemStyle     = lipgloss.NewStyle().Foreground(colorText)
	thumbStyle    = lipgloss.NewStyle().Foreground(colorDim)
	activeStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	disabledStyle = lipgloss.NewStyle().Foreground(colorDim).Faint(true)
)

// screen is the terminal render target: it keeps the last drawn view.
type screen struct {
	view   gallery.View
	open   bool
	closes int
}

func (s *screen) Render(view gallery.View) {
	s.view = view
	s.open = true
}

func (s *screen) Closed() {
	s.view = gallery.View{}
	s.open = false
	s.closes++
}

// Model previews the gallery controller in a terminal.
type Model struct {
	projects []gallery.Project
	cursor   int
	ctrl     *gallery.Controller
	screen   *screen
	keys     keyMap
	help     help.Model
	width    int
}

// NewModel returns a closed preview over catalog.
func NewModel(catalog gallery.Catalog) Model {
	s := &screen{}
	return Model{
		projects: catalog.Projects(),
		ctrl:     gallery.NewController(catalog, gallery.ModalTarget(), s),
		screen:   s,
		keys:     newKeyMap(),
		help:     help.New(),
	}
}

// OpenProject opens key before the program starts. Unknown keys are ignored.
func (m Model) OpenProject(key string) Model {
	if m.ctrl.Open(key) {
		for i, project := range m.projects {
			if project.Key == m.ctrl.State().ProjectKey {
				m.cursor = i
			}
		}
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.ctrl.IsOpen() {
		switch {
		case key.Matches(msg, m.keys.Close):
			m.ctrl.HandleKey(gallery.KeyEscape)
		case key.Matches(msg, m.keys.Previous):
			m.ctrl.HandleKey(gallery.KeyArrowLeft)
		case key.Matches(msg, m.keys.Next):
			m.ctrl.HandleKey(gallery.KeyArrowRight)
		case key.Matches(msg, m.keys.GoTo):
			if n, err := strconv.Atoi(msg.String()); err == nil {
				m.ctrl.GoTo(n - 1)
			}
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.projects)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Open):
		if m.cursor < len(m.projects) {
			m.ctrl.Open(m.projects[m.cursor].Key)
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	if m.screen.open {
		b.WriteString(renderView(m.screen.view, m.width))
	} else {
		b.WriteString(m.renderList())
	}
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) renderList() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Projects"))
	b.WriteString("\n\n")
	if len(m.projects) == 0 {
		b.WriteString(counterStyle.Render("catalog is empty"))
		return b.String()
	}
	for i, project := range m.projects {
		line := fmt.Sprintf("%s (%d photos)", project.Title, len(project.Images))
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("> " + line))
		} else {
			b.WriteString(itemStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// Arrow columns and the image border around the image box.
const (
	imageChrome   = 2*3 + 2
	minImageWidth = 16
)

// imageBox sizes the image frame to the terminal width. A width too narrow
// to hold the frame leaves it unsized.
func imageBox(width int) lipgloss.Style {
	if inner := width - imageChrome; inner >= minImageWidth {
		return imageStyle.Width(inner)
	}
	return imageStyle
}

func renderView(view gallery.View, width int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(view.Title))
	if view.Counter != "" {
		b.WriteString("  ")
		b.WriteString(counterStyle.Render(view.Counter))
	}
	b.WriteString("\n")

	row := []string{
		arrow("‹", view.Previous),
		imageBox(width).Render(view.Image),
		arrow("›", view.Next),
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, row...))

	if len(view.Thumbnails) > 1 {
		b.WriteString("\n")
		thumbs := make([]string, 0, len(view.Thumbnails))
		for _, thumb := range view.Thumbnails {
			label := "[" + strconv.Itoa(thumb.Index+1) + "]"
			if thumb.Active {
				thumbs = append(thumbs, activeStyle.Render(label))
			} else {
				thumbs = append(thumbs, thumbStyle.Render(label))
			}
		}
		b.WriteString(strings.Join(thumbs, " "))
	}
	return b.String()
}

func arrow(glyph string, affordance gallery.Affordance) string {
	switch {
	case affordance.Hidden:
		return "   "
	case affordance.Disabled:
		return disabledStyle.Render(" " + glyph + " ")
	default:
		return activeStyle.Render(" " + glyph + " ")
	}
}
