package gallery

import "strconv"

// Layout identifies how a gallery is presented.
type Layout int

const (
	// LayoutModal is the overlay opened from a work item, with its own title,
	// counter and thumbnail rail.
	LayoutModal Layout = iota
	// LayoutInline is the per-card viewer with prev/next buttons on the card
	// image and dot indicators.
	LayoutInline
)

// String returns the layout name used in markup and logs.
func (l Layout) String() string {
	switch l {
	case LayoutModal:
		return "modal"
	case LayoutInline:
		return "inline"
	default:
		return "unknown"
	}
}

// Target declares which affordances a presentation has. It is resolved once
// when a controller is built; views never contain fields for affordances the
// target lacks.
type Target struct {
	Layout     Layout
	Title      bool
	Counter    bool
	Thumbnails bool
	Dots       bool
}

// ModalTarget describes the overlay presentation.
func ModalTarget() Target {
	return Target{Layout: LayoutModal, Title: true, Counter: true, Thumbnails: true}
}

// InlineTarget describes the per-card presentation.
func InlineTarget() Target {
	return Target{Layout: LayoutInline, Dots: true}
}

// Affordance is the visibility of a navigation control.
type Affordance struct {
	Hidden   bool
	Disabled bool
}

// Thumbnail is one entry of the modal thumbnail rail.
type Thumbnail struct {
	Index  int
	Image  string
	Active bool
}

// Dot is one inline position indicator.
type Dot struct {
	Index  int
	Active bool
}

// View is everything a renderer needs to draw an open gallery.
type View struct {
	Layout     Layout
	ProjectKey string
	Title      string
	Image      string
	Index      int
	Total      int
	Counter    string
	Thumbnails []Thumbnail
	Dots       []Dot
	Previous   Affordance
	Next       Affordance
}

// Static reports whether the gallery degrades to a single static image.
func (v View) Static() bool {
	return v.Total <= 1
}

// BuildView derives the view for project at index. index must be valid.
func BuildView(target Target, project Project, index int) View {
	total := len(project.Images)
	view := View{
		Layout:     target.Layout,
		ProjectKey: project.Key,
		Image:      project.Images[index],
		Index:      index,
		Total:      total,
	}
	if target.Title {
		view.Title = project.Title
	}
	if target.Counter {
		view.Counter = strconv.Itoa(index+1) + " / " + strconv.Itoa(total)
	}
	if target.Thumbnails {
		view.Thumbnails = make([]Thumbnail, total)
		for i, image := range project.Images {
			view.Thumbnails[i] = Thumbnail{Index: i, Image: image, Active: i == index}
		}
	}
	if target.Dots && total > 1 {
		view.Dots = make([]Dot, total)
		for i := range project.Images {
			view.Dots[i] = Dot{Index: i, Active: i == index}
		}
	}
	if total <= 1 {
		view.Previous = Affordance{Hidden: true, Disabled: true}
		view.Next = Affordance{Hidden: true, Disabled: true}
		return view
	}
	view.Previous = Affordance{Disabled: index == 0}
	view.Next = Affordance{Disabled: index == total-1}
	return view
}
