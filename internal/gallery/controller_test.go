package gallery

import (
	"testing"
)

type recordingRenderer struct {
	views  []View
	closed int
}

func (r *recordingRenderer) Render(v View) { r.views = append(r.views, v) }

func (r *recordingRenderer) Closed() { r.closed++ }

func (r *recordingRenderer) last(t *testing.T) View {
	t.Helper()
	if len(r.views) == 0 {
		t.Fatal("renderer received no views")
	}
	return r.views[len(r.views)-1]
}

func testCatalog(t *testing.T) Catalog {
	t.Helper()
	catalog, err := NewCatalog([]Project{
		{Key: "p1", Title: "A", Images: []string{"a.jpg", "b.jpg", "c.jpg"}},
		{Key: "solo", Title: "Solo", Images: []string{"only.jpg"}},
	})
	if err != nil {
		t.Fatalf("NewCatalog() error = %v", err)
	}
	return catalog
}

func TestControllerStartsClosed(t *testing.T) {
	t.Parallel()

	c := NewController(testCatalog(t), ModalTarget(), nil)
	if c.IsOpen() {
		t.Fatal("new controller is open")
	}
	if got := c.State(); got != (State{}) {
		t.Fatalf("State() = %+v, want zero", got)
	}
	if _, ok := c.View(); ok {
		t.Fatal("View() ok on closed controller")
	}
}

func TestControllerScenario(t *testing.T) {
	t.Parallel()

	r := &recordingRenderer{}
	c := NewController(testCatalog(t), ModalTarget(), r)

	if !c.Open("p1") {
		t.Fatal("Open(p1) = false")
	}
	assertState(t, c, State{Open: true, ProjectKey: "p1", Index: 0})
	if got := r.last(t).Image; got != "a.jpg" {
		t.Fatalf("image = %q, want a.jpg", got)
	}

	c.Next()
	assertState(t, c, State{Open: true, ProjectKey: "p1", Index: 1})
	if got := r.last(t).Image; got != "b.jpg" {
		t.Fatalf("image = %q, want b.jpg", got)
	}

	c.Next()
	assertState(t, c, State{Open: true, ProjectKey: "p1", Index: 2})
	view := r.last(t)
	if view.Image != "c.jpg" {
		t.Fatalf("image = %q, want c.jpg", view.Image)
	}
	if !view.Next.Disabled {
		t.Fatal("next affordance enabled on last image")
	}

	renders := len(r.views)
	if c.Next() {
		t.Fatal("Next() at last image = true")
	}
	assertState(t, c, State{Open: true, ProjectKey: "p1", Index: 2})
	if len(r.views) != renders {
		t.Fatalf("Next() at last image rendered %d extra views", len(r.views)-renders)
	}

	c.Previous()
	assertState(t, c, State{Open: true, ProjectKey: "p1", Index: 1})
	if got := r.last(t).Image; got != "b.jpg" {
		t.Fatalf("image = %q, want b.jpg", got)
	}

	c.Close()
	if c.IsOpen() {
		t.Fatal("controller open after Close()")
	}
	if r.closed != 1 {
		t.Fatalf("closed calls = %d, want 1", r.closed)
	}
}

func TestOpenUnknownKeyIsNoop(t *testing.T) {
	t.Parallel()

	r := &recordingRenderer{}
	c := NewController(testCatalog(t), ModalTarget(), r)
	if c.Open("missing-key") {
		t.Fatal("Open(missing-key) = true")
	}
	if c.IsOpen() {
		t.Fatal("controller open after unknown key")
	}
	if len(r.views) != 0 {
		t.Fatalf("views = %d, want 0", len(r.views))
	}
}

func TestOpenUnknownKeyKeepsCurrentProject(t *testing.T) {
	t.Parallel()

	c := NewController(testCatalog(t), ModalTarget(), nil)
	c.Open("p1")
	c.Next()
	c.Open("missing-key")
	assertState(t, c, State{Open: true, ProjectKey: "p1", Index: 1})
}

func TestOpenResetsIndex(t *testing.T) {
	t.Parallel()

	c := NewController(testCatalog(t), ModalTarget(), nil)
	c.Open("p1")
	c.GoTo(2)
	c.Open("p1")
	assertState(t, c, State{Open: true, ProjectKey: "p1", Index: 0})
}

func TestNextWalksEveryIndex(t *testing.T) {
	t.Parallel()

	c := NewController(testCatalog(t), ModalTarget(), nil)
	c.Open("p1")
	for want := 1; want < 3; want++ {
		if !c.Next() {
			t.Fatalf("Next() to %d = false", want)
		}
		assertState(t, c, State{Open: true, ProjectKey: "p1", Index: want})
	}
	if c.Next() {
		t.Fatal("Next() past the end = true")
	}
}

func TestPreviousAtFirstImageIsNoop(t *testing.T) {
	t.Parallel()

	r := &recordingRenderer{}
	c := NewController(testCatalog(t), ModalTarget(), r)
	c.Open("p1")
	if c.Previous() {
		t.Fatal("Previous() at index 0 = true")
	}
	assertState(t, c, State{Open: true, ProjectKey: "p1", Index: 0})
	if len(r.views) != 1 {
		t.Fatalf("views = %d, want 1", len(r.views))
	}
}

func TestGoToBounds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		index  int
		moved  bool
		wantAt int
	}{
		{name: "first", index: 0, moved: true, wantAt: 0},
		{name: "last", index: 2, moved: true, wantAt: 2},
		{name: "negative", index: -1, moved: false, wantAt: 1},
		{name: "past end", index: 3, moved: false, wantAt: 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			c := NewController(testCatalog(t), ModalTarget(), nil)
			c.Open("p1")
			c.GoTo(1)
			if got := c.GoTo(tc.index); got != tc.moved {
				t.Fatalf("GoTo(%d) = %t, want %t", tc.index, got, tc.moved)
			}
			assertState(t, c, State{Open: true, ProjectKey: "p1", Index: tc.wantAt})
		})
	}
}

func TestNavigationAfterCloseIsNoop(t *testing.T) {
	t.Parallel()

	r := &recordingRenderer{}
	c := NewController(testCatalog(t), ModalTarget(), r)
	c.Open("p1")
	c.Close()
	renders := len(r.views)

	if c.Next() || c.Previous() || c.GoTo(1) {
		t.Fatal("navigation on closed controller reported a move")
	}
	if c.IsOpen() {
		t.Fatal("navigation reopened the controller")
	}
	if len(r.views) != renders {
		t.Fatal("navigation on closed controller rendered")
	}
}

func TestCloseTwiceNotifiesOnce(t *testing.T) {
	t.Parallel()

	r := &recordingRenderer{}
	c := NewController(testCatalog(t), ModalTarget(), r)
	c.Open("p1")
	c.Close()
	c.Close()
	if r.closed != 1 {
		t.Fatalf("closed calls = %d, want 1", r.closed)
	}
}

func TestSingleImageHidesNavigation(t *testing.T) {
	t.Parallel()

	for _, target := range []Target{ModalTarget(), InlineTarget()} {
		r := &recordingRenderer{}
		c := NewController(testCatalog(t), target, r)
		c.Open("solo")
		view := r.last(t)
		if !view.Previous.Hidden || !view.Next.Hidden {
			t.Fatalf("%s: navigation visible for single image: %+v / %+v", target.Layout, view.Previous, view.Next)
		}
		if !view.Static() {
			t.Fatalf("%s: Static() = false", target.Layout)
		}
		if c.Next() {
			t.Fatalf("%s: Next() moved on single image", target.Layout)
		}
	}
}

func TestHandleKey(t *testing.T) {
	t.Parallel()

	c := NewController(testCatalog(t), ModalTarget(), nil)
	if c.HandleKey(KeyArrowRight) {
		t.Fatal("key consumed while closed")
	}

	c.Open("p1")
	if !c.HandleKey(KeyArrowRight) {
		t.Fatal("ArrowRight not consumed")
	}
	assertState(t, c, State{Open: true, ProjectKey: "p1", Index: 1})
	c.HandleKey(KeyArrowLeft)
	assertState(t, c, State{Open: true, ProjectKey: "p1", Index: 0})
	if c.HandleKey(Key("Enter")) {
		t.Fatal("Enter consumed")
	}
	c.HandleKey(KeyEscape)
	if c.IsOpen() {
		t.Fatal("Escape did not close the gallery")
	}
}

func TestApplyDispatchesActions(t *testing.T) {
	t.Parallel()

	c := NewController(testCatalog(t), InlineTarget(), nil)
	c.Open("p1")
	c.Apply(ParseAction("next"), 0)
	c.Apply(ParseAction("next"), 0)
	c.Apply(ParseAction("prev"), 0)
	assertState(t, c, State{Open: true, ProjectKey: "p1", Index: 1})
	c.Apply(ParseAction("goto"), 2)
	assertState(t, c, State{Open: true, ProjectKey: "p1", Index: 2})
	if c.Apply(ParseAction("bogus"), 0) {
		t.Fatal("unknown action reported a move")
	}
	if !c.Apply(ParseAction("close"), 0) {
		t.Fatal("close on open gallery = false")
	}
	if c.Apply(ParseAction("close"), 0) {
		t.Fatal("close on closed gallery = true")
	}
}

func TestIndependentControllersDoNotShareState(t *testing.T) {
	t.Parallel()

	catalog := testCatalog(t)
	first := NewController(catalog, InlineTarget(), nil)
	second := NewController(catalog, InlineTarget(), nil)
	first.Open("p1")
	second.Open("p1")
	first.Next()
	first.Next()
	assertState(t, second, State{Open: true, ProjectKey: "p1", Index: 0})
}

func assertState(t *testing.T, c *Controller, want State) {
	t.Helper()
	if got := c.State(); got != want {
		t.Fatalf("State() = %+v, want %+v", got, want)
	}
}
