package view

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"iotdef.xyz/agro-dashboard-service/pkg/common"
	"iotdef.xyz/agro-dashboard-service/pkg/scheduler"
)

const (
	DefaultPollInterval     = 10 * time.Second
	DefaultRefreshIndicator = 500 * time.Millisecond
)

// Loader fetches the full item collection of a view.
type Loader[T any] func(ctx context.Context) ([]T, error)

// AggregateFunc derives the view aggregate from a freshly loaded collection.
type AggregateFunc[T, A any] func(items []T) A

// Observer is called with a copy of the state after every applied load.
type Observer[T, A any] func(State[T, A])

type Options struct {
	Interval         time.Duration
	RefreshIndicator time.Duration
	// LoadTimeout bounds a single load. Zero means no bound beyond the
	// fetch client's own timeout.
	LoadTimeout time.Duration
	Now         func() time.Time
}

func (o Options) withDefaults() Options {
	if o.Interval <= 0 {
		o.Interval = DefaultPollInterval
	}
	if o.RefreshIndicator <= 0 {
		o.RefreshIndicator = DefaultRefreshIndicator
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// Controller owns the state of one view. Loads run on their own goroutines;
// starting a load cancels the one in flight and the generation check drops
// whatever the cancelled load still delivers.
type Controller[T, A any] struct {
	name         string
	load         Loader[T]
	aggregate    AggregateFunc[T, A]
	errorMessage string
	opts         Options
	logger       *zap.Logger

	mu           sync.Mutex
	state        State[T, A]
	baseCtx      context.Context
	cancel       context.CancelFunc
	refreshTimer *time.Timer
	observers    []Observer[T, A]
	sched        scheduler.IScheduler
	entry        cron.EntryID
	scheduled    bool
	stopped      bool
	inflight     sync.WaitGroup
}

func NewController[T, A any](name string, load Loader[T], agg AggregateFunc[T, A], errorMessage string, opts Options) *Controller[T, A] {
	return &Controller[T, A]{
		name:         name,
		load:         load,
		aggregate:    agg,
		errorMessage: errorMessage,
		opts:         opts.withDefaults(),
		logger:       common.GetViewLogger(name),
		baseCtx:      context.Background(),
	}
}

func (c *Controller[T, A]) Name() string {
	return c.name
}

// Subscribe registers an observer. Observers run outside the state lock, in
// registration order.
func (c *Controller[T, A]) Subscribe(o Observer[T, A]) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observers = append(c.observers, o)
}

// Start runs the initial load and, when sched is not nil, registers the poll
// entry. The returned channel closes once the initial load has settled.
func (c *Controller[T, A]) Start(ctx context.Context, sched scheduler.IScheduler) (<-chan struct{}, error) {
	c.mu.Lock()
	c.baseCtx = ctx
	c.stopped = false
	c.mu.Unlock()

	done := c.begin(TriggerInitial)

	if sched == nil {
		return done, nil
	}

	id, err := sched.Schedule(c.name, c.opts.Interval, func() { c.begin(TriggerPoll) })
	if err != nil {
		c.Stop()
		return done, err
	}

	c.mu.Lock()
	c.sched, c.entry, c.scheduled = sched, id, true
	c.mu.Unlock()

	c.logger.Info("View started", zap.Duration("interval", c.opts.Interval))
	return done, nil
}

// Stop releases the poll entry, cancels the load in flight and the refresh
// timer, then waits for running loads to return. Safe to call twice.
func (c *Controller[T, A]) Stop() {
	c.mu.Lock()
	if c.stopped {
		c.mu.Unlock()
		return
	}
	c.stopped = true
	if c.scheduled {
		c.sched.Remove(c.entry)
		c.scheduled = false
	}
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	if c.refreshTimer != nil {
		c.refreshTimer.Stop()
		c.refreshTimer = nil
	}
	c.state.IsRefreshing = false
	c.mu.Unlock()

	c.inflight.Wait()
	c.logger.Info("View stopped")
}

// Refresh runs a manual load and waits until it settles or ctx is done.
func (c *Controller[T, A]) Refresh(ctx context.Context) State[T, A] {
	select {
	case <-c.RefreshAsync():
	case <-ctx.Done():
	}
	return c.Snapshot()
}

// RefreshAsync starts a manual load. The channel closes once it settles.
func (c *Controller[T, A]) RefreshAsync() <-chan struct{} {
	return c.begin(TriggerManual)
}

func (c *Controller[T, A]) Snapshot() State[T, A] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

func (c *Controller[T, A]) begin(trigger Trigger) <-chan struct{} {
	done := make(chan struct{})

	c.mu.Lock()
	if c.stopped {
		c.mu.Unlock()
		close(done)
		return done
	}
	if c.cancel != nil {
		c.cancel()
	}
	c.state = LoadStart(c.state, trigger)
	gen := c.state.Generation

	var (
		ctx    context.Context
		cancel context.CancelFunc
	)
	if c.opts.LoadTimeout > 0 {
		ctx, cancel = context.WithTimeout(c.baseCtx, c.opts.LoadTimeout)
	} else {
		ctx, cancel = context.WithCancel(c.baseCtx)
	}
	c.cancel = cancel
	c.inflight.Add(1)
	c.mu.Unlock()

	logger := c.logger.With(zap.Uint64("generation", gen), zap.Stringer("trigger", trigger))
	logger.Debug("Load started")

	go func() {
		defer c.inflight.Done()
		defer close(done)
		defer cancel()

		items, err := c.load(ctx)
		if err != nil && ctx.Err() != nil && errors.Is(err, context.Canceled) {
			c.mu.Lock()
			c.state = LoadCancelled(c.state, gen)
			c.mu.Unlock()
			logger.Debug("Load cancelled")
			return
		}
		c.settle(logger, gen, items, err)
	}()

	return done
}

func (c *Controller[T, A]) settle(logger *zap.Logger, gen uint64, items []T, loadErr error) {
	c.mu.Lock()

	var (
		next    State[T, A]
		applied bool
	)
	if loadErr != nil {
		next, applied = LoadFailure(c.state, gen, c.errorMessage)
	} else {
		next, applied = LoadSuccess(c.state, gen, items, c.aggregate(items), c.opts.Now())
	}

	if !applied {
		c.mu.Unlock()
		logger.Debug("Dropped stale load result")
		return
	}

	c.state = next
	if next.IsRefreshing && !c.stopped {
		c.armRefreshTimer(gen)
	}
	snapshot := c.state.clone()
	observers := slices.Clone(c.observers)
	c.mu.Unlock()

	if loadErr != nil {
		logger.Warn("Load failed, keeping last good data", zap.Error(loadErr), zap.Int("items", len(snapshot.Items)))
	} else {
		logger.Info("Load applied", zap.Int("items", len(snapshot.Items)))
	}

	for _, o := range observers {
		o(snapshot)
	}
}

// armRefreshTimer must be called with c.mu held.
func (c *Controller[T, A]) armRefreshTimer(gen uint64) {
	if c.refreshTimer != nil {
		c.refreshTimer.Stop()
	}
	c.refreshTimer = time.AfterFunc(c.opts.RefreshIndicator, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.state = ClearRefreshing(c.state, gen)
	})
}
