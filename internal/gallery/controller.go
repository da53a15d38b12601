package gallery

import "strings"

// Renderer receives the side effects of controller transitions.
type Renderer interface {
	// Render draws an open gallery. It is called after every transition that
	// changes the open state or the index.
	Render(View)
	// Closed tears down the presentation and restores background scroll.
	Closed()
}

// State is a snapshot of the controller. Index is meaningless when closed.
type State struct {
	Open       bool
	ProjectKey string
	Index      int
}

// Controller is the gallery state machine: Closed, or Open(key, index).
//
// A Controller is owned by one view and is not safe for concurrent use.
type Controller struct {
	catalog  Catalog
	target   Target
	renderer Renderer

	activeKey string
	index     int
}

// NewController builds a closed controller. A nil renderer discards renders.
func NewController(catalog Catalog, target Target, renderer Renderer) *Controller {
	if renderer == nil {
		renderer = discardRenderer{}
	}
	return &Controller{catalog: catalog, target: target, renderer: renderer}
}

// Target returns the presentation descriptor the controller renders for.
func (c *Controller) Target() Target {
	return c.target
}

// State returns the current state.
func (c *Controller) State() State {
	if !c.IsOpen() {
		return State{}
	}
	return State{Open: true, ProjectKey: c.activeKey, Index: c.index}
}

// IsOpen reports whether a project is active.
func (c *Controller) IsOpen() bool {
	return c.activeKey != ""
}

// View returns the view for the current state, or false when closed.
func (c *Controller) View() (View, bool) {
	project, ok := c.active()
	if !ok {
		return View{}, false
	}
	return BuildView(c.target, project, c.index), true
}

// Open shows the first image of the project stored under key. Unknown keys
// leave the controller untouched.
func (c *Controller) Open(key string) bool {
	key = strings.TrimSpace(key)
	if _, ok := c.catalog.Lookup(key); !ok {
		return false
	}
	c.activeKey = key
	c.index = 0
	c.render()
	return true
}

// Close returns to the closed state. Closing a closed gallery is a no-op.
func (c *Controller) Close() {
	if !c.IsOpen() {
		return
	}
	c.activeKey = ""
	c.index = 0
	c.renderer.Closed()
}

// Cancel handles escape and outside-click signals; it is Close.
func (c *Controller) Cancel() {
	c.Close()
}

// Next advances one image unless the last image is showing.
func (c *Controller) Next() bool {
	return c.GoTo(c.index + 1)
}

// Previous steps back one image unless the first image is showing.
func (c *Controller) Previous() bool {
	return c.GoTo(c.index - 1)
}

// GoTo shows the image at index when the gallery is open and index is in
// bounds.
func (c *Controller) GoTo(index int) bool {
	project, ok := c.active()
	if !ok {
		return false
	}
	if index < 0 || index >= len(project.Images) {
		return false
	}
	c.index = index
	c.render()
	return true
}

func (c *Controller) active() (Project, bool) {
	if c.activeKey == "" {
		return Project{}, false
	}
	return c.catalog.Lookup(c.activeKey)
}

func (c *Controller) render() {
	if view, ok := c.View(); ok {
		c.renderer.Render(view)
	}
}

type discardRenderer struct{}

func (discardRenderer) Render(View) {}

func (discardRenderer) Closed() {}
