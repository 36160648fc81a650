// ABOUTME: Result regions are the explicit UI handles each pipeline writes into
// ABOUTME: Tracks loading, results and error display and renders them as HTML

package popup

import (
	"sync"

	"discussions-app-api/core/discussions"
	"discussions-app-api/core/domain"
	"discussions-app-api/core/render"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RegionState is what a region currently displays
type RegionState int

const (
	// RegionIdle shows nothing
	RegionIdle RegionState = iota

	// RegionLoading shows the loading indicator
	RegionLoading

	// RegionResults shows a result list
	RegionResults

	// RegionError shows a message
	RegionError
)

// String returns the state name
func (s RegionState) String() string {
	switch s {
	case RegionIdle:
		return "idle"
	case RegionLoading:
		return "loading"
	case RegionResults:
		return "results"
	case RegionError:
		return "error"
	default:
		return "unknown"
	}
}

// Region is one pipeline's display area. Only its owning pipeline writes to it.
type Region struct {
	mu      sync.Mutex
	name    string
	state   RegionState
	results []domain.DiscussionResult
	message string
	faded   bool
}

// RegionSnapshot is an immutable copy of a region's display state
type RegionSnapshot struct {
	Name    string
	State   RegionState
	Results []domain.DiscussionResult
	Message string
	Faded   bool
}

// NewRegion creates an idle region
func NewRegion(name string) *Region {
	return &Region{name: name}
}

// ShowLoading shows the loading indicator and drops any previous content
func (r *Region) ShowLoading() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.state = RegionLoading
	r.results = nil
	r.message = ""
}

// ShowOutcome displays a pipeline outcome: results when found, otherwise its message
func (r *Region) ShowOutcome(outcome discussions.Outcome) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if outcome.IsFound() {
		r.state = RegionResults
		r.results = append([]domain.DiscussionResult(nil), outcome.Items...)
		r.message = ""
		return
	}

	r.state = RegionError
	r.results = nil
	r.message = outcome.Message()
}

// ShowMessage displays an error message
func (r *Region) ShowMessage(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.state = RegionError
	r.results = nil
	r.message = message
}

// Clear empties and hides the region
func (r *Region) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.state = RegionIdle
	r.results = nil
	r.message = ""
}

// SetFaded toggles the fade-out used while results are replaced
func (r *Region) SetFaded(faded bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.faded = faded
}

// ResultsVisible reports whether a result list is on display
func (r *Region) ResultsVisible() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state == RegionResults
}

// Snapshot copies the display state
func (r *Region) Snapshot() RegionSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	return RegionSnapshot{
		Name:    r.name,
		State:   r.state,
		Results: append([]domain.DiscussionResult(nil), r.results...),
		Message: r.message,
		Faded:   r.faded,
	}
}

// HTML renders the region: one node per result, or the message
func (r *Region) HTML() (string, error) {
	snap := r.Snapshot()

	switch snap.State {
	case RegionResults:
		nodes := make([]*html.Node, len(snap.Results))
		for i, result := range snap.Results {
			nodes[i] = render.BuildResultNodeFor(result)
		}
		return render.RenderHTML(nodes...)
	case RegionError:
		return render.RenderHTML(messageNode("error", snap.Message))
	case RegionLoading:
		return render.RenderHTML(messageNode("loading", "Loading..."))
	default:
		return "", nil
	}
}

func messageNode(class, text string) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Div,
		Data:     "div",
		Attr:     []html.Attribute{{Key: "class", Val: class}},
	}
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return n
}
