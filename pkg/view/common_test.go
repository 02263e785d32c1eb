package view

import (
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// fakeScheduler records jobs so tests can fire polls by hand.
type fakeScheduler struct {
	mu      sync.Mutex
	next    cron.EntryID
	jobs    map[cron.EntryID]func()
	removed []cron.EntryID
}

func newFakeScheduler() *fakeScheduler {
	return &fakeScheduler{jobs: map[cron.EntryID]func(){}}
}

func (f *fakeScheduler) Schedule(name string, interval time.Duration, job func()) (cron.EntryID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.next++
	f.jobs[f.next] = job
	return f.next, nil
}

func (f *fakeScheduler) Remove(id cron.EntryID) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.jobs, id)
	f.removed = append(f.removed, id)
}

func (f *fakeScheduler) fire() {
	f.mu.Lock()
	jobs := make([]func(), 0, len(f.jobs))
	for _, j := range f.jobs {
		jobs = append(jobs, j)
	}
	f.mu.Unlock()
	for _, j := range jobs {
		j()
	}
}

func (f *fakeScheduler) len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.jobs)
}

// scriptedLoader hands out one response per call, blocking each call until
// the test releases it.
type scriptedLoader struct {
	calls chan *pendingLoad
	// ignoreCancel makes loads wait for their reply even after cancellation,
	// like a backend that answers late.
	ignoreCancel bool
}

type pendingLoad struct {
	ctx   context.Context
	reply chan loadResult
}

type loadResult struct {
	items []string
	err   error
}

func newScriptedLoader() *scriptedLoader {
	return &scriptedLoader{calls: make(chan *pendingLoad, 16)}
}

func (l *scriptedLoader) load(ctx context.Context) ([]string, error) {
	p := &pendingLoad{ctx: ctx, reply: make(chan loadResult, 1)}
	l.calls <- p
	if l.ignoreCancel {
		r := <-p.reply
		return r.items, r.err
	}
	select {
	case r := <-p.reply:
		return r.items, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (l *scriptedLoader) next() *pendingLoad {
	select {
	case p := <-l.calls:
		return p
	case <-time.After(2 * time.Second):
		panic("loader was not called")
	}
}

func count(items []string) int { return len(items) }
