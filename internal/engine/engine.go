// Package engine owns a Game of Life board, applies user intents to it and
// advances it on a timer while running.
package engine

import (
	"io"
	"log"
	"math/rand/v2"
	"strconv"
	"sync"
	"time"

	"github.com/pkg/errors"

	icore "lifeboard/internal/core"
	"lifeboard/pkg/core"
	"lifeboard/pkg/sims/life"
)

// Engine is the automaton state machine. It starts Idle with an empty grid.
//
// Mutations are serialised by pub, which is held while listeners run, and
// state reads by mu. Lock order is pub then mu. Listeners may call the read
// methods as well as Start and Stop, but must not call mutating methods
// synchronously.
type Engine struct {
	cfg       Config
	log       *log.Logger
	newTicker icore.TickerFactory
	rng       *rand.Rand

	pub sync.Mutex

	mu        sync.Mutex
	grid      core.Grid
	running   bool
	closed    bool
	run       *run
	stats     Stats
	lastStep  time.Time
	listeners []subscription
	nextID    int
}

// run is one Idle->Running->Idle cycle. The loop goroutine belongs to exactly
// one run and exits once that run is no longer current.
type run struct {
	ticker icore.Ticker
	done   chan struct{}
}

type subscription struct {
	id int
	fn icore.Listener
}

var errStaleRun = errors.New("run no longer current")

// Option customises an Engine.
type Option func(*Engine)

// WithLogger sets the lifecycle logger. The default discards output.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithTicker replaces the wall-clock ticker used while running.
func WithTicker(f icore.TickerFactory) Option {
	return func(e *Engine) {
		if f != nil {
			e.newTicker = f
		}
	}
}

// WithRand sets the random source used by Randomize.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) {
		if r != nil {
			e.rng = r
		}
	}
}

var _ icore.Controller = (*Engine)(nil)

// New validates cfg and returns an Idle engine holding an empty grid.
func New(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	grid, err := core.Empty(cfg.Rows, cfg.Cols)
	if err != nil {
		return nil, err
	}
	e := &Engine{
		cfg:       cfg,
		log:       log.New(io.Discard, "", 0),
		newTicker: icore.NewIntervalTicker,
		grid:      grid,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = core.NewRand(cfg.Seed)
	}
	return e, nil
}

// Start begins advancing one generation per delay. It is a no-op while
// already running or after Close.
func (e *Engine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.running || e.closed {
		return
	}
	r := &run{ticker: e.newTicker(e.cfg.Delay), done: make(chan struct{})}
	e.running = true
	e.run = r
	e.lastStep = time.Time{}
	e.log.Printf("start at generation %d", e.stats.Generation)
	go e.loop(r)
}

// Stop halts the loop and releases its ticker. A step that already holds the
// board when Stop is called completes and publishes; no step starts after.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.running {
		return
	}
	e.stopLocked()
	e.log.Printf("stop at generation %d, average population %.1f", e.stats.Generation, e.stats.AveragePopulation)
}

// Close stops the engine for good.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	if e.running {
		e.stopLocked()
	}
	e.closed = true
	e.listeners = nil
	e.log.Printf("closed")
}

func (e *Engine) stopLocked() {
	e.running = false
	e.run.ticker.Stop()
	close(e.run.done)
	e.run = nil
}

// Running reports whether the loop is active.
func (e *Engine) Running() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.running
}

// Grid returns the current generation.
func (e *Engine) Grid() core.Grid {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.grid
}

// Generation returns the number of steps since the last Clear or Randomize.
func (e *Engine) Generation() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stats.Generation
}

// Stats returns a copy of the run statistics.
func (e *Engine) Stats() Stats {
	e.mu.Lock()
	defer e.mu.Unlock()
	s := e.stats
	s.Population = e.grid.Population()
	return s
}

// ToggleCell flips one cell. It works in any state and returns
// core.ErrOutOfRange, publishing nothing, for coordinates off the board.
func (e *Engine) ToggleCell(row, col int) error {
	return e.mutate(func(g core.Grid) (core.Grid, error) {
		return g.WithCellToggled(row, col)
	})
}

// Randomize replaces the board with a random one and resets the statistics.
func (e *Engine) Randomize() {
	_ = e.mutate(func(core.Grid) (core.Grid, error) {
		g, err := core.Randomized(e.cfg.Rows, e.cfg.Cols, e.cfg.AliveProbability, e.rng)
		if err == nil {
			e.stats = Stats{}
		}
		return g, err
	})
}

// Clear kills every cell and resets the statistics.
func (e *Engine) Clear() {
	_ = e.mutate(func(core.Grid) (core.Grid, error) {
		g, err := core.Empty(e.cfg.Rows, e.cfg.Cols)
		if err == nil {
			e.stats = Stats{}
		}
		return g, err
	})
}

// Step advances exactly one generation regardless of the running state.
func (e *Engine) Step() {
	_ = e.mutate(func(g core.Grid) (core.Grid, error) {
		return e.advanceLocked(g), nil
	})
}

// Subscribe registers l for every published grid. The returned function
// removes it.
func (e *Engine) Subscribe(l icore.Listener) (unsubscribe func()) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed || l == nil {
		return func() {}
	}
	e.nextID++
	id := e.nextID
	e.listeners = append(e.listeners, subscription{id: id, fn: l})

	var once sync.Once
	return func() {
		once.Do(func() {
			e.mu.Lock()
			defer e.mu.Unlock()
			for i, s := range e.listeners {
				if s.id == id {
					e.listeners = append(e.listeners[:i:i], e.listeners[i+1:]...)
					return
				}
			}
		})
	}
}

// Parameters describes the board for the info dialog.
func (e *Engine) Parameters() icore.ParameterSnapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return icore.ParameterSnapshot{Groups: []icore.ParameterGroup{
		{
			Name: "Board",
			Params: []icore.Parameter{
				intParam("rows", "Rows", e.cfg.Rows),
				intParam("cols", "Columns", e.cfg.Cols),
			},
		},
		{
			Name: "Animation",
			Params: []icore.Parameter{
				{Key: "delay", Label: "Step delay", Type: icore.ParamTypeDuration, Value: e.cfg.Delay.String()},
				floatParam("alive_probability", "Random alive probability", e.cfg.AliveProbability),
			},
		},
		{
			Name: "Run",
			Params: []icore.Parameter{
				intParam("generation", "Generation", e.stats.Generation),
				intParam("population", "Population", e.grid.Population()),
				statParam("average_population", "Average population", e.stats.AveragePopulation),
				statParam("generations_per_second", "Generations per second", e.stats.GenerationsPerSecond),
			},
		},
	}}
}

func (e *Engine) loop(r *run) {
	for {
		select {
		case <-r.done:
			return
		case <-r.ticker.C():
			if !e.tick(r) {
				return
			}
		}
	}
}

// tick performs one scheduled step if r is still the current run.
func (e *Engine) tick(r *run) bool {
	current := true
	_ = e.mutate(func(g core.Grid) (core.Grid, error) {
		if !e.running || e.run != r {
			current = false
			return g, errStaleRun
		}
		return e.advanceLocked(g), nil
	})
	return current
}

func (e *Engine) advanceLocked(g core.Grid) core.Grid {
	next := life.StepParallel(g, e.cfg.Workers)
	now := time.Now()
	var since time.Duration
	if !e.lastStep.IsZero() {
		since = now.Sub(e.lastStep)
	}
	e.lastStep = now
	e.stats.update(next.Population(), since)
	return next
}

// mutate replaces the grid with f's result and publishes it. f runs with mu
// held; an error leaves the grid untouched and publishes nothing.
func (e *Engine) mutate(f func(core.Grid) (core.Grid, error)) error {
	e.pub.Lock()
	defer e.pub.Unlock()

	e.mu.Lock()
	next, err := f(e.grid)
	if err != nil {
		e.mu.Unlock()
		return err
	}
	e.grid = next
	listeners := make([]icore.Listener, len(e.listeners))
	for i, s := range e.listeners {
		listeners[i] = s.fn
	}
	e.mu.Unlock()

	for _, l := range listeners {
		l(next)
	}
	return nil
}

func intParam(key, label string, value int) icore.Parameter {
	return icore.Parameter{Key: key, Label: label, Type: icore.ParamTypeInt, Value: strconv.Itoa(value)}
}

func floatParam(key, label string, value float64) icore.Parameter {
	return icore.Parameter{Key: key, Label: label, Type: icore.ParamTypeFloat, Value: strconv.FormatFloat(value, 'f', -1, 64)}
}

func statParam(key, label string, value float64) icore.Parameter {
	return icore.Parameter{Key: key, Label: label, Type: icore.ParamTypeFloat, Value: strconv.FormatFloat(value, 'f', 1, 64)}
}
