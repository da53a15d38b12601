package templates

import (
	"strconv"
	"strings"

	"github.com/trueluxconstruction/landing/internal/gallery"
)

// WorkItem is one project card in the work section.
type WorkItem struct {
	Key        string
	Title      string
	PhotoCount int
	Card       gallery.View
}

// LandingParams is the data behind the landing page.
type LandingParams struct {
	ContactEmail string
	Phone        string
	Works        []WorkItem
}

type stat struct {
	target int
	suffix string
	key    string
}

var landingStats = []stat{
	{150, "+", "landing.stats.projects"},
	{15, "+", "landing.stats.years"},
	{98, "%", "landing.stats.satisfaction"},
}

var serviceKeys = []string{"residential", "renovation", "exterior", "custom"}

var projectTypeOptions = []string{"residential", "renovation", "exterior", "custom", "other"}

var timelineOptions = []string{"asap", "months", "later", "planning"}

const processSteps = 4

func processKey(step int, part string) string {
	return "landing.process.step" + strconv.Itoa(step) + "." + part
}

// sectionID is the element id behind a #anchor link.
func sectionID(anchor string) string {
	return strings.TrimPrefix(anchor, "#")
}
