// ABOUTME: Popup controller owning the view state, search mode checkboxes and result regions
// ABOUTME: Drives both discussion pipelines and every timed UI transition through a Clock

package popup

import (
	"context"
	"errors"
	"sync"
	"time"

	"discussions-app-api/core/discussions"
	"discussions-app-api/core/domain"
	"discussions-app-api/core/interfaces"
	"discussions-app-api/pkg/utils/format"
)

// View identifies which source's panel is shown
type View int

const (
	// NewsView shows Hacker News results
	NewsView View = iota

	// AggregatorView shows Reddit results
	AggregatorView
)

// String returns the view's identifier
func (v View) String() string {
	if v == AggregatorView {
		return "reddit"
	}
	return "hackernews"
}

// Label returns the tab button text
func (v View) Label() string {
	if v == AggregatorView {
		return "Reddit"
	}
	return "Hacker News"
}

// Timings
const (
	PanelTransition = 150 * time.Millisecond
	ModeDebounce    = 300 * time.Millisecond
	ResultsFade     = 200 * time.Millisecond
)

// User-visible messages
const (
	MsgNoPageURL    = "Cannot get current page URL"
	MsgModeRequired = "At least one search method must be selected"
)

// Searcher runs the two discussion pipelines
type Searcher interface {
	SearchHackerNews(ctx context.Context, pageURL string) discussions.Outcome
	SearchReddit(ctx context.Context, page domain.PageContext, modes domain.SearchModeSet) discussions.Outcome
}

// Config wires a Controller. Searcher and Tabs are required.
type Config struct {
	Searcher   Searcher
	Tabs       interfaces.TabQuerier
	News       *Region
	Aggregator *Region
	Clock      Clock
	Logger     interfaces.Logger
}

// State is an immutable view of the controller for hosts to draw
type State struct {
	// ActiveTab is the highlighted tab button
	ActiveTab View

	// ActivePanel is the panel on display; it trails ActiveTab during a transition
	ActivePanel View

	// Transitioning is set while the outgoing panel carries the transitioning-out marker
	Transitioning bool
	Outgoing      View

	HasPage    bool
	URLLabel   string
	URLTooltip string

	Modes         domain.SearchModeSet
	News          RegionSnapshot
	Aggregator    RegionSnapshot
	Notifications []Notification
}

// Controller is the popup's state machine
type Controller struct {
	searcher   Searcher
	tabs       interfaces.TabQuerier
	news       *Region
	aggregator *Region
	clock      Clock
	logger     interfaces.Logger
	debouncer  *Debouncer

	mu            sync.Mutex
	ctx           context.Context
	cancel        context.CancelFunc
	activeTab     View
	activePanel   View
	transitioning bool
	outgoing      View
	panelTimer    Timer
	hasPage       bool
	urlLabel      string
	urlTooltip    string
	modes         domain.SearchModeSet
	lastToggled   domain.SearchMode
	generation    uint64
	notifications []Notification
	nextNoteID    int
	subscribers   map[int]func()
	nextSubID     int

	wg sync.WaitGroup
}

// NewController creates a controller showing the news view with URL search enabled
func NewController(cfg Config) (*Controller, error) {
	if cfg.Searcher == nil {
		return nil, errors.New("popup: searcher is required")
	}
	if cfg.Tabs == nil {
		return nil, errors.New("popup: tab querier is required")
	}
	if cfg.Clock == nil {
		cfg.Clock = WallClock()
	}
	if cfg.Logger == nil {
		cfg.Logger = interfaces.NopLogger{}
	}
	if cfg.News == nil {
		cfg.News = NewRegion(NewsView.String())
	}
	if cfg.Aggregator == nil {
		cfg.Aggregator = NewRegion(AggregatorView.String())
	}

	return &Controller{
		searcher:    cfg.Searcher,
		tabs:        cfg.Tabs,
		news:        cfg.News,
		aggregator:  cfg.Aggregator,
		clock:       cfg.Clock,
		logger:      cfg.Logger,
		debouncer:   NewDebouncer(cfg.Clock, ModeDebounce),
		ctx:         context.Background(),
		activeTab:   NewsView,
		activePanel: NewsView,
		modes:       domain.DefaultSearchModes(),
		subscribers: make(map[int]func()),
	}, nil
}

// Start reads the active page and launches both pipelines.
// Without a page only the URL label changes.
func (c *Controller) Start(ctx context.Context) {
	c.mu.Lock()
	c.ctx, c.cancel = context.WithCancel(ctx)
	ctx = c.ctx
	c.mu.Unlock()

	page, ok, err := c.tabs.ActivePage(ctx)
	if err != nil || !ok {
		fields := map[string]interface{}{}
		if err != nil {
			fields["error"] = err.Error()
		}
		c.logger.Warn("No active page", fields)

		c.mu.Lock()
		c.hasPage = false
		c.urlLabel = MsgNoPageURL
		c.urlTooltip = ""
		c.mu.Unlock()
		c.changed()
		return
	}

	c.mu.Lock()
	c.hasPage = true
	c.urlLabel = format.TruncateDefault(page.URL)
	c.urlTooltip = page.URL
	c.generation++
	gen := c.generation
	c.mu.Unlock()

	c.logger.Info("Popup started", map[string]interface{}{
		"url": page.URL,
	})

	c.news.ShowLoading()
	c.changed()

	c.wg.Add(2)
	go func() {
		defer c.wg.Done()
		outcome := c.searcher.SearchHackerNews(ctx, page.URL)
		c.news.ShowOutcome(outcome)
		c.changed()
	}()
	go func() {
		defer c.wg.Done()
		c.searchAggregator(ctx, page, gen)
	}()
}

// SelectView switches tabs. The button flips at once; the panel follows after PanelTransition.
func (c *Controller) SelectView(v View) {
	c.mu.Lock()
	if c.activeTab == v {
		c.mu.Unlock()
		return
	}

	c.activeTab = v
	c.transitioning = true
	c.outgoing = c.activePanel
	if c.panelTimer != nil {
		c.panelTimer.Stop()
	}
	c.panelTimer = c.clock.AfterFunc(PanelTransition, func() {
		c.mu.Lock()
		c.transitioning = false
		c.activePanel = c.activeTab
		c.panelTimer = nil
		c.mu.Unlock()
		c.changed()
	})
	c.mu.Unlock()

	c.changed()
}

// ToggleMode applies a checkbox change immediately and schedules the settle step
// once changes have been quiet for ModeDebounce.
func (c *Controller) ToggleMode(mode domain.SearchMode, checked bool) {
	c.mu.Lock()
	c.modes = c.modes.With(mode, checked)
	c.lastToggled = mode
	c.mu.Unlock()

	c.changed()
	c.debouncer.Trigger(c.settle)
}

// settle enforces a non-empty mode set, or refreshes the Reddit results
func (c *Controller) settle() {
	c.mu.Lock()
	if !c.modes.Any() {
		mode := c.lastToggled
		c.modes = c.modes.With(mode, true)
		c.mu.Unlock()

		c.showNotification(MsgModeRequired, mode)
		return
	}
	c.mu.Unlock()

	c.refreshAggregator()
}

func (c *Controller) refreshAggregator() {
	c.mu.Lock()
	c.generation++
	gen := c.generation
	c.mu.Unlock()

	if !c.aggregator.ResultsVisible() {
		c.aggregator.Clear()
		c.changed()
		c.requery(gen)
		return
	}

	c.aggregator.SetFaded(true)
	c.changed()
	c.clock.AfterFunc(ResultsFade, func() {
		if !c.current(gen) {
			return
		}
		c.aggregator.Clear()
		c.aggregator.SetFaded(false)
		c.changed()
		c.requery(gen)
	})
}

// requery re-reads the active tab and reruns the Reddit pipeline
func (c *Controller) requery(gen uint64) {
	ctx := c.context()

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()

		page, ok, err := c.tabs.ActivePage(ctx)
		if err != nil || !ok {
			c.logger.Warn("Active page unavailable for refresh", map[string]interface{}{
				"generation": gen,
			})
			return
		}
		c.searchAggregator(ctx, page, gen)
	}()
}

// searchAggregator runs the Reddit chain with the modes checked at call time.
// Completions from a superseded generation are dropped.
func (c *Controller) searchAggregator(ctx context.Context, page domain.PageContext, gen uint64) {
	c.mu.Lock()
	if gen != c.generation {
		c.mu.Unlock()
		return
	}
	modes := c.modes
	c.aggregator.ShowLoading()
	c.mu.Unlock()
	c.changed()

	outcome := c.searcher.SearchReddit(ctx, page, modes)

	c.mu.Lock()
	if gen != c.generation {
		c.mu.Unlock()
		c.logger.Debug("Dropping stale Reddit results", map[string]interface{}{
			"generation": gen,
		})
		return
	}
	c.aggregator.ShowOutcome(outcome)
	c.mu.Unlock()

	c.changed()
}

func (c *Controller) showNotification(message string, anchor domain.SearchMode) {
	c.mu.Lock()
	c.nextNoteID++
	id := c.nextNoteID
	c.notifications = append(c.notifications, Notification{
		ID:      id,
		Message: message,
		Anchor:  anchor,
		Phase:   NotificationEntering,
	})
	c.mu.Unlock()
	c.changed()

	c.clock.AfterFunc(NotificationAppearDelay, func() {
		c.setNotificationPhase(id, NotificationVisible)
		c.clock.AfterFunc(NotificationHold, func() {
			c.setNotificationPhase(id, NotificationLeaving)
			c.clock.AfterFunc(NotificationFade, func() {
				c.removeNotification(id)
			})
		})
	})
}

func (c *Controller) setNotificationPhase(id int, phase NotificationPhase) {
	c.mu.Lock()
	for i := range c.notifications {
		if c.notifications[i].ID == id {
			c.notifications[i].Phase = phase
		}
	}
	c.mu.Unlock()
	c.changed()
}

func (c *Controller) removeNotification(id int) {
	c.mu.Lock()
	kept := c.notifications[:0]
	for _, n := range c.notifications {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	c.notifications = kept
	c.mu.Unlock()
	c.changed()
}

// Subscribe registers fn to run after every state change. The returned func unsubscribes.
func (c *Controller) Subscribe(fn func()) func() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextSubID++
	id := c.nextSubID
	c.subscribers[id] = fn

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.subscribers, id)
	}
}

// Snapshot returns the current state
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return State{
		ActiveTab:     c.activeTab,
		ActivePanel:   c.activePanel,
		Transitioning: c.transitioning,
		Outgoing:      c.outgoing,
		HasPage:       c.hasPage,
		URLLabel:      c.urlLabel,
		URLTooltip:    c.urlTooltip,
		Modes:         c.modes,
		News:          c.news.Snapshot(),
		Aggregator:    c.aggregator.Snapshot(),
		Notifications: append([]Notification(nil), c.notifications...),
	}
}

// Wait blocks until every in-flight pipeline run has finished
func (c *Controller) Wait() {
	c.wg.Wait()
}

// Close cancels pending timers and in-flight requests
func (c *Controller) Close() {
	c.debouncer.Cancel()

	c.mu.Lock()
	if c.panelTimer != nil {
		c.panelTimer.Stop()
		c.panelTimer = nil
	}
	if c.cancel != nil {
		c.cancel()
	}
	c.mu.Unlock()
}

func (c *Controller) current(gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return gen == c.generation
}

func (c *Controller) context() context.Context {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ctx
}

func (c *Controller) changed() {
	c.mu.Lock()
	subs := make([]func(), 0, len(c.subscribers))
	for _, fn := range c.subscribers {
		subs = append(subs, fn)
	}
	c.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}
