package autocomplete

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sheetforecast.app/internal/mocks"
	"sheetforecast.app/internal/ports"
	"sheetforecast.app/pkg/errors"
)

type fakeTimer struct {
	s       *fakeScheduler
	at      time.Duration
	seq     int
	f       func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// fakeScheduler fires timers only when the test advances virtual time
type fakeScheduler struct {
	mu     sync.Mutex
	now    time.Duration
	seq    int
	timers []*fakeTimer
}

func (s *fakeScheduler) AfterFunc(d time.Duration, f func()) ports.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	t := &fakeTimer{s: s, at: s.now + d, seq: s.seq, f: f}
	s.timers = append(s.timers, t)
	return t
}

func (s *fakeScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	s.now += d
	var due []*fakeTimer
	for _, t := range s.timers {
		if !t.stopped && !t.fired && t.at <= s.now {
			t.fired = true
			due = append(due, t)
		}
	}
	s.mu.Unlock()

	sort.Slice(due, func(i, j int) bool {
		if due[i].at == due[j].at {
			return due[i].seq < due[j].seq
		}
		return due[i].at < due[j].at
	})
	for _, t := range due {
		t.f()
	}
}

type lookupResult struct {
	options []ports.CityOption
	err     error
}

// gatedLookup blocks each query until the test releases its result
type gatedLookup struct {
	mu    sync.Mutex
	calls []string
	gates map[string]chan lookupResult
}

func newGatedLookup() *gatedLookup {
	return &gatedLookup{gates: make(map[string]chan lookupResult)}
}

func (g *gatedLookup) gate(query string) chan lookupResult {
	ch, ok := g.gates[query]
	if !ok {
		ch = make(chan lookupResult, 1)
		g.gates[query] = ch
	}
	return ch
}

func (g *gatedLookup) SearchCities(ctx context.Context, query string) ([]ports.CityOption, error) {
	g.mu.Lock()
	g.calls = append(g.calls, query)
	ch := g.gate(query)
	g.mu.Unlock()

	select {
	case r := <-ch:
		return r.options, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (g *gatedLookup) release(query string, options []ports.CityOption, err error) {
	g.mu.Lock()
	ch := g.gate(query)
	g.mu.Unlock()
	ch <- lookupResult{options: options, err: err}
}

func (g *gatedLookup) Calls() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string(nil), g.calls...)
}

type lookupFunc func(ctx context.Context, query string) ([]ports.CityOption, error)

func (f lookupFunc) SearchCities(ctx context.Context, query string) ([]ports.CityOption, error) {
	return f(ctx, query)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...ports.Field) {}
func (nopLogger) Info(string, ...ports.Field) {}
func (nopLogger) Warn(string, ...ports.Field) {}
func (nopLogger) Error(string, ...ports.Field) {}

var (
	paris  = ports.CityOption{Label: "Paris, Ile-de-France", Value: "48.87,2.33"}
	parma  = ports.CityOption{Label: "Parma, Emilia-Romagna", Value: "44.8,10.33"}
	london = ports.CityOption{Label: "London, City of London, Greater London", Value: "51.52,-0.11"}
)

func newTestController(t *testing.T, lookup ports.CityLookup) (*Controller, *fakeScheduler, *mocks.MetricsRecorder) {
	t.Helper()

	scheduler := &fakeScheduler{}
	metrics := mocks.NewMetricsRecorder(t)

	c, err := NewController(Dependencies{
		Lookup:    lookup,
		Scheduler: scheduler,
		Logger:    nopLogger{},
		Metrics:   metrics,
	})
	require.NoError(t, err)
	t.Cleanup(c.Close)

	return c, scheduler, metrics
}

func staticLookup(calls *[]string, mu *sync.Mutex, options ...ports.CityOption) lookupFunc {
	return func(ctx context.Context, query string) ([]ports.CityOption, error) {
		mu.Lock()
		*calls = append(*calls, query)
		mu.Unlock()
		return options, nil
	}
}

func TestNewController_Validation(t *testing.T) {
	t.Run("MissingBridge", func(t *testing.T) {
		c, err := NewController(Dependencies{Scheduler: &fakeScheduler{}, Logger: nopLogger{}})

		assert.Nil(t, c)
		assert.ErrorIs(t, err, ErrBridgeUnavailable)
		assert.True(t, errors.IsBridgeUnavailableError(err))
	})

	t.Run("MissingScheduler", func(t *testing.T) {
		_, err := NewController(Dependencies{Lookup: newGatedLookup(), Logger: nopLogger{}})

		assert.True(t, errors.IsValidationError(err))
	})
}

func TestController_DebounceCoalescesBurst(t *testing.T) {
	var (
		mu    sync.Mutex
		calls []string
	)
	c, scheduler, _ := newTestController(t, staticLookup(&calls, &mu, paris, parma))

	c.Input("P")
	scheduler.Advance(100 * time.Millisecond)
	c.Input("Pa")
	scheduler.Advance(100 * time.Millisecond)
	c.Input("Par")
	scheduler.Advance(299 * time.Millisecond)

	mu.Lock()
	assert.Empty(t, calls)
	mu.Unlock()

	scheduler.Advance(time.Millisecond)
	c.Wait()

	mu.Lock()
	assert.Equal(t, []string{"Par"}, calls)
	mu.Unlock()

	state := c.State()
	assert.Equal(t, "Par", state.DebouncedQuery)
	assert.Equal(t, []ports.CityOption{paris, parma}, state.Options)
	assert.True(t, state.IsOpen)
	assert.False(t, state.Loading)
	assert.Equal(t, 0, state.ActiveIndex)
}

func TestController_LookupUsesTrimmedQuery(t *testing.T) {
	var (
		mu    sync.Mutex
		calls []string
	)
	c, scheduler, _ := newTestController(t, staticLookup(&calls, &mu))

	c.Input("  Rome  ")
	scheduler.Advance(DefaultDebounce)
	c.Wait()

	assert.Equal(t, []string{"Rome"}, calls)
	state := c.State()
	assert.True(t, state.IsOpen)
	assert.Equal(t, -1, state.ActiveIndex)
	assert.Equal(t, []Item{{Kind: ItemEmpty, Text: NoMatchText, Index: -1}}, state.Items())
}

func TestController_StaleResponseDiscarded(t *testing.T) {
	lookup := newGatedLookup()
	c, scheduler, metrics := newTestController(t, lookup)
	metrics.EXPECT().RecordStaleResponse().Return().Once()

	c.Input("Lon")
	scheduler.Advance(DefaultDebounce)
	c.Input("London")
	scheduler.Advance(DefaultDebounce)

	lookup.release("London", []ports.CityOption{london}, nil)
	require.Eventually(t, func() bool {
		return len(c.State().Options) == 1
	}, time.Second, 5*time.Millisecond)

	lookup.release("Lon", []ports.CityOption{paris, parma}, nil)
	c.Wait()

	state := c.State()
	assert.Equal(t, []ports.CityOption{london}, state.Options)
	assert.Equal(t, "London", state.DebouncedQuery)
	assert.ElementsMatch(t, []string{"Lon", "London"}, lookup.Calls())
}

func TestController_SelectSuppressesNextLookup(t *testing.T) {
	var (
		mu    sync.Mutex
		calls []string
	)
	c, scheduler, _ := newTestController(t, staticLookup(&calls, &mu, paris, parma))

	c.Input("Par")
	scheduler.Advance(DefaultDebounce)
	c.Wait()
	require.Len(t, c.State().Options, 2)

	c.Select(parma)
	scheduler.Advance(DefaultDebounce)
	c.Wait()

	mu.Lock()
	assert.Equal(t, []string{"Par"}, calls)
	mu.Unlock()

	state := c.State()
	assert.Equal(t, parma.Label, state.Query)
	assert.Equal(t, parma.Label, state.DebouncedQuery)
	require.NotNil(t, state.Selected)
	assert.Equal(t, parma, *state.Selected)
	assert.False(t, state.IsOpen)
	assert.False(t, state.SuppressNextSearch)
	assert.Empty(t, state.Options)
	assert.Equal(t, -1, state.ActiveIndex)
	assert.Nil(t, state.Items())
}

func TestController_TypingAfterSelectStillSearches(t *testing.T) {
	var (
		mu    sync.Mutex
		calls []string
	)
	c, scheduler, _ := newTestController(t, staticLookup(&calls, &mu, paris))

	c.Select(paris)
	c.Input("Berl")
	scheduler.Advance(DefaultDebounce)
	c.Wait()

	mu.Lock()
	assert.Equal(t, []string{"Berl"}, calls)
	mu.Unlock()
}

func TestController_SelectInvalidatesInFlightLookup(t *testing.T) {
	lookup := newGatedLookup()
	c, scheduler, metrics := newTestController(t, lookup)
	metrics.EXPECT().RecordStaleResponse().Return().Once()

	c.Input("Par")
	scheduler.Advance(DefaultDebounce)
	c.Select(paris)

	lookup.release("Par", []ports.CityOption{paris, parma}, nil)
	c.Wait()

	state := c.State()
	assert.False(t, state.IsOpen)
	assert.Empty(t, state.Options)
	assert.False(t, state.Loading)
}

func TestController_ShortInputInvalidatesImmediately(t *testing.T) {
	lookup := newGatedLookup()
	c, scheduler, metrics := newTestController(t, lookup)
	metrics.EXPECT().RecordStaleResponse().Return().Once()

	c.Input("Par")
	scheduler.Advance(DefaultDebounce)
	before := c.State().LastRequestID
	assert.True(t, c.State().Loading)

	c.Input("P")
	state := c.State()
	assert.Greater(t, state.LastRequestID, before)
	assert.False(t, state.IsOpen)
	assert.False(t, state.Loading)
	assert.Equal(t, -1, state.ActiveIndex)

	lookup.release("Par", []ports.CityOption{paris}, nil)
	c.Wait()
	assert.Empty(t, c.State().Options)

	scheduler.Advance(DefaultDebounce)
	assert.Equal(t, []string{"Par"}, lookup.Calls())
	assert.False(t, c.State().IsOpen)
}

func TestController_LookupFailure(t *testing.T) {
	failing := lookupFunc(func(ctx context.Context, query string) ([]ports.CityOption, error) {
		return nil, errors.NewExternalAPIError(`Weather search failed: {"error":{"message":"API key is invalid."}}`, nil)
	})
	c, scheduler, _ := newTestController(t, failing)

	c.Input("Par")
	scheduler.Advance(DefaultDebounce)
	c.Wait()

	state := c.State()
	assert.Equal(t, `Weather search failed: {"error":{"message":"API key is invalid."}}`, state.Error)
	assert.True(t, state.IsOpen)
	assert.Empty(t, state.Options)
	assert.Equal(t, -1, state.ActiveIndex)
	assert.False(t, state.Loading)

	items := state.Items()
	require.Len(t, items, 1)
	assert.Equal(t, ItemError, items[0].Kind)
}

func TestController_RecoversAfterFailure(t *testing.T) {
	fail := true
	var mu sync.Mutex
	lookup := lookupFunc(func(ctx context.Context, query string) ([]ports.CityOption, error) {
		mu.Lock()
		defer mu.Unlock()
		if fail {
			fail = false
			return nil, fmt.Errorf("connection reset")
		}
		return []ports.CityOption{paris}, nil
	})
	c, scheduler, _ := newTestController(t, lookup)

	c.Input("Par")
	scheduler.Advance(DefaultDebounce)
	c.Wait()
	assert.Equal(t, "connection reset", c.State().Error)

	c.Input("Pari")
	scheduler.Advance(DefaultDebounce)
	c.Wait()

	state := c.State()
	assert.Empty(t, state.Error)
	assert.Equal(t, []ports.CityOption{paris}, state.Options)
}

func TestController_Keyboard(t *testing.T) {
	setup := func(t *testing.T) (*Controller, *fakeScheduler) {
		var (
			mu    sync.Mutex
			calls []string
		)
		c, scheduler, _ := newTestController(t, staticLookup(&calls, &mu, paris, parma, london))
		c.Input("Par")
		scheduler.Advance(DefaultDebounce)
		c.Wait()
		return c, scheduler
	}

	t.Run("ArrowDownWrapsAround", func(t *testing.T) {
		c, _ := setup(t)

		assert.True(t, c.HandleKey(KeyArrowDown))
		assert.Equal(t, 1, c.State().ActiveIndex)
		c.HandleKey(KeyArrowDown)
		c.HandleKey(KeyArrowDown)
		assert.Equal(t, 0, c.State().ActiveIndex)
	})

	t.Run("ArrowUpWrapsAround", func(t *testing.T) {
		c, _ := setup(t)

		c.HandleKey(KeyArrowUp)
		assert.Equal(t, 2, c.State().ActiveIndex)
	})

	t.Run("EscapeClosesAndKeepsQuery", func(t *testing.T) {
		c, _ := setup(t)

		assert.True(t, c.HandleKey(KeyEscape))
		state := c.State()
		assert.False(t, state.IsOpen)
		assert.Equal(t, "Par", state.Query)
		assert.Len(t, state.Options, 3)
	})

	t.Run("ArrowReopensClosedList", func(t *testing.T) {
		c, _ := setup(t)
		c.HandleKey(KeyArrowDown)
		c.HandleKey(KeyEscape)

		assert.True(t, c.HandleKey(KeyArrowUp))
		state := c.State()
		assert.True(t, state.IsOpen)
		assert.Equal(t, 0, state.ActiveIndex)
	})

	t.Run("EnterCommitsActiveOption", func(t *testing.T) {
		c, _ := setup(t)
		c.HandleKey(KeyArrowDown)

		assert.True(t, c.HandleKey(KeyEnter))
		state := c.State()
		assert.Equal(t, parma.Label, state.Query)
		require.NotNil(t, state.Selected)
		assert.Equal(t, parma, *state.Selected)
		assert.False(t, state.IsOpen)
	})

	t.Run("EnterWhileClosedIsNoop", func(t *testing.T) {
		c, _ := setup(t)
		c.HandleKey(KeyEscape)

		assert.False(t, c.HandleKey(KeyEnter))
		assert.Nil(t, c.State().Selected)
	})
}

func TestController_ArrowDownOnEmptyClosedListIsNoop(t *testing.T) {
	c, _, _ := newTestController(t, newGatedLookup())
	notified := 0
	c.Subscribe(func(State) { notified++ })
	before := c.State()

	assert.False(t, c.HandleKey(KeyArrowDown))
	assert.False(t, c.HandleKey(KeyArrowUp))

	assert.Equal(t, before, c.State())
	assert.Zero(t, notified)
}

func TestController_ArrowOnOpenEmptyListIsNoop(t *testing.T) {
	var (
		mu    sync.Mutex
		calls []string
	)
	c, scheduler, _ := newTestController(t, staticLookup(&calls, &mu))
	c.Input("Zzq")
	scheduler.Advance(DefaultDebounce)
	c.Wait()
	require.True(t, c.State().IsOpen)

	assert.False(t, c.HandleKey(KeyArrowDown))
	assert.False(t, c.HandleKey(KeyArrowUp))
	assert.False(t, c.HandleKey(KeyEnter))
	assert.Equal(t, -1, c.State().ActiveIndex)
}

func TestController_Blur(t *testing.T) {
	setup := func(t *testing.T) (*Controller, *fakeScheduler) {
		var (
			mu    sync.Mutex
			calls []string
		)
		c, scheduler, _ := newTestController(t, staticLookup(&calls, &mu, paris))
		c.Input("Par")
		scheduler.Advance(DefaultDebounce)
		c.Wait()
		return c, scheduler
	}

	t.Run("ClosesAfterFocusSettles", func(t *testing.T) {
		c, scheduler := setup(t)

		c.Blur(func() bool { return false })
		assert.True(t, c.State().IsOpen)

		scheduler.Advance(0)
		assert.False(t, c.State().IsOpen)
	})

	t.Run("StaysOpenWhenFocusInList", func(t *testing.T) {
		c, scheduler := setup(t)

		c.Blur(func() bool { return true })
		scheduler.Advance(0)

		assert.True(t, c.State().IsOpen)
		c.Select(paris)
		assert.Equal(t, paris.Label, c.State().Query)
	})
}

func TestController_ObserversReceiveSnapshots(t *testing.T) {
	var (
		mu    sync.Mutex
		calls []string
	)
	c, scheduler, _ := newTestController(t, staticLookup(&calls, &mu, paris))

	var (
		obsMu     sync.Mutex
		snapshots []State
	)
	unsubscribe := c.Subscribe(func(s State) {
		obsMu.Lock()
		snapshots = append(snapshots, s)
		obsMu.Unlock()
	})

	c.Input("Par")
	scheduler.Advance(DefaultDebounce)
	c.Wait()
	unsubscribe()
	c.HandleKey(KeyEscape)

	obsMu.Lock()
	defer obsMu.Unlock()
	require.Len(t, snapshots, 3)
	assert.True(t, snapshots[0].Loading)
	assert.False(t, snapshots[0].IsOpen)
	assert.True(t, snapshots[1].Loading)
	assert.True(t, snapshots[1].IsOpen)
	assert.Equal(t, []Item{{Kind: ItemLoading, Text: LoadingText, Index: -1}}, snapshots[1].Items())
	assert.Equal(t, []ports.CityOption{paris}, snapshots[2].Options)

	snapshots[2].Options[0].Label = "mutated"
	assert.Equal(t, paris.Label, c.State().Options[0].Label)
}

func TestState_Items(t *testing.T) {
	state := State{
		IsOpen:         true,
		DebouncedQuery: "Par",
		Options:        []ports.CityOption{paris, parma},
		ActiveIndex:    1,
	}

	assert.Equal(t, []Item{
		{Kind: ItemOption, Text: paris.Label, Index: 0},
		{Kind: ItemOption, Text: parma.Label, Index: 1, Active: true},
	}, state.Items())

	state.IsOpen = false
	assert.Nil(t, state.Items())
}
