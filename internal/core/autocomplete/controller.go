package autocomplete

import (
	"context"
	"strings"
	"sync"
	"time"

	"sheetforecast.app/internal/ports"
	"sheetforecast.app/pkg/errors"
)

const (
	DefaultDebounce      = 300 * time.Millisecond
	DefaultLookupTimeout = 15 * time.Second
)

// ErrBridgeUnavailable is returned when the controller is built without a host bridge
var ErrBridgeUnavailable = errors.NewBridgeUnavailableError("host bridge unavailable: searchCities cannot be called")

// Key is a navigation key the input box forwards to the controller
type Key int

const (
	KeyArrowDown Key = iota
	KeyArrowUp
	KeyEnter
	KeyEscape
)

type Dependencies struct {
	Lookup    ports.CityLookup
	Scheduler ports.Scheduler
	Logger    ports.Logger
	Metrics   ports.MetricsRecorder

	Debounce      time.Duration
	LookupTimeout time.Duration
}

// Controller turns keystrokes into a suggestion list. Lookups run concurrently;
// only the result of the most recently issued lookup is ever applied.
type Controller struct {
	lookup    ports.CityLookup
	scheduler ports.Scheduler
	logger    ports.Logger
	metrics   ports.MetricsRecorder

	debounce      time.Duration
	lookupTimeout time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	mu          sync.Mutex
	state       State
	debounceGen uint64
	debounceT   ports.Timer
	blurT       ports.Timer
	observers   map[int]func(State)
	nextObs     int

	inflight sync.WaitGroup
}

func NewController(deps Dependencies) (*Controller, error) {
	if deps.Lookup == nil {
		return nil, ErrBridgeUnavailable
	}
	if deps.Scheduler == nil {
		return nil, errors.NewValidationError("scheduler is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}

	debounce := deps.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	timeout := deps.LookupTimeout
	if timeout <= 0 {
		timeout = DefaultLookupTimeout
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Controller{
		lookup:        deps.Lookup,
		scheduler:     deps.Scheduler,
		logger:        deps.Logger,
		metrics:       deps.Metrics,
		debounce:      debounce,
		lookupTimeout: timeout,
		ctx:           ctx,
		cancel:        cancel,
		state:         initialState(),
		observers:     make(map[int]func(State)),
	}, nil
}

// State returns a snapshot of the current state
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

// Subscribe registers fn to receive a snapshot after every state change.
// Observers run with the controller locked and must not call back into it.
func (c *Controller) Subscribe(fn func(State)) (unsubscribe func()) {
	c.mu.Lock()
	id := c.nextObs
	c.nextObs++
	c.observers[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.observers, id)
		c.mu.Unlock()
	}
}

// Input records a keystroke and restarts the debounce window
func (c *Controller) Input(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.Query = text
	// a real keystroke after a selection must not be swallowed
	c.state.SuppressNextSearch = false

	if isShort(text) {
		c.state.LastRequestID++
		c.state.Loading = false
		c.state.IsOpen = false
		c.state.ActiveIndex = -1
		c.state.Options = nil
	} else {
		c.state.Loading = true
	}

	c.restartDebounceLocked()
	c.notifyLocked()
}

// Select commits opt: the query becomes its label and the lookup cycle ends
func (c *Controller) Select(opt ports.CityOption) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selectLocked(opt)
}

func (c *Controller) selectLocked(opt ports.CityOption) {
	c.state.SuppressNextSearch = true
	c.state.LastRequestID++
	selected := opt
	c.state.Selected = &selected
	c.state.Query = opt.Label
	c.state.Error = ""
	c.state.Loading = false
	c.state.IsOpen = false
	c.state.ActiveIndex = -1
	c.state.Options = nil

	c.logger.Debug("City selected", ports.F("label", opt.Label), ports.F("coord", opt.Value))

	c.restartDebounceLocked()
	c.notifyLocked()
}

// HandleKey applies keyboard navigation and reports whether the key changed anything
func (c *Controller) HandleKey(k Key) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := len(c.state.Options)
	if !c.state.IsOpen {
		if (k == KeyArrowDown || k == KeyArrowUp) && n > 0 {
			c.state.IsOpen = true
			c.state.ActiveIndex = 0
			c.notifyLocked()
			return true
		}
		return false
	}

	switch k {
	case KeyArrowDown:
		if n == 0 {
			return false
		}
		c.state.ActiveIndex = (c.state.ActiveIndex + 1) % n
	case KeyArrowUp:
		if n == 0 {
			return false
		}
		c.state.ActiveIndex = (c.state.ActiveIndex - 1 + n) % n
	case KeyEnter:
		opt, ok := c.state.ActiveOption()
		if !ok {
			return false
		}
		c.selectLocked(opt)
		return true
	case KeyEscape:
		c.state.IsOpen = false
	default:
		return false
	}

	c.notifyLocked()
	return true
}

// Blur closes the list after the focus change settles, unless focusInList
// reports that focus moved into the suggestion list.
func (c *Controller) Blur(focusInList func() bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.blurT != nil {
		c.blurT.Stop()
	}
	c.blurT = c.scheduler.AfterFunc(0, func() {
		if focusInList != nil && focusInList() {
			return
		}
		c.mu.Lock()
		defer c.mu.Unlock()
		if !c.state.IsOpen {
			return
		}
		c.state.IsOpen = false
		c.notifyLocked()
	})
}

// Wait blocks until every issued lookup has completed
func (c *Controller) Wait() {
	c.inflight.Wait()
}

// Close stops pending timers and cancels in-flight lookups
func (c *Controller) Close() {
	c.mu.Lock()
	if c.debounceT != nil {
		c.debounceT.Stop()
	}
	if c.blurT != nil {
		c.blurT.Stop()
	}
	c.debounceGen++
	c.mu.Unlock()

	c.cancel()
	c.inflight.Wait()
}

func (c *Controller) restartDebounceLocked() {
	if c.debounceT != nil {
		c.debounceT.Stop()
	}
	c.debounceGen++
	gen := c.debounceGen
	c.debounceT = c.scheduler.AfterFunc(c.debounce, func() { c.fire(gen) })
}

func (c *Controller) fire(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// a timer that raced with Stop
	if gen != c.debounceGen {
		return
	}

	c.state.DebouncedQuery = c.state.Query

	if c.state.SuppressNextSearch {
		c.state.SuppressNextSearch = false
		return
	}

	query := strings.TrimSpace(c.state.DebouncedQuery)
	if isShort(query) {
		c.state.Options = nil
		c.state.Error = ""
		c.state.Loading = false
		c.state.IsOpen = false
		c.state.ActiveIndex = -1
		c.notifyLocked()
		return
	}

	c.state.Error = ""
	c.state.Loading = true
	c.state.IsOpen = true
	c.state.LastRequestID++
	id := c.state.LastRequestID

	c.inflight.Add(1)
	go c.runLookup(id, query)

	c.notifyLocked()
}

func (c *Controller) runLookup(id uint64, query string) {
	defer c.inflight.Done()

	ctx, cancel := context.WithTimeout(c.ctx, c.lookupTimeout)
	defer cancel()

	c.logger.Debug("Searching cities", ports.F("query", query), ports.F("request_id", id))
	options, err := c.lookup.SearchCities(ctx, query)

	c.mu.Lock()
	defer c.mu.Unlock()

	if id != c.state.LastRequestID {
		c.metrics.RecordStaleResponse()
		c.logger.Debug("Discarding stale city lookup",
			ports.F("query", query),
			ports.F("request_id", id),
			ports.F("latest_request_id", c.state.LastRequestID))
		return
	}

	c.state.Loading = false
	c.state.IsOpen = true

	if err != nil {
		c.logger.Warn("City lookup failed", ports.F("query", query), ports.F("error", err))
		c.state.Error = errors.Message(err)
		c.state.Options = nil
		c.state.ActiveIndex = -1
		c.notifyLocked()
		return
	}

	c.state.Options = append([]ports.CityOption{}, options...)
	if len(options) > 0 {
		c.state.ActiveIndex = 0
	} else {
		c.state.ActiveIndex = -1
	}
	c.notifyLocked()
}

func (c *Controller) notifyLocked() {
	if len(c.observers) == 0 {
		return
	}
	snapshot := c.state.clone()
	for _, fn := range c.observers {
		fn(snapshot)
	}
}
