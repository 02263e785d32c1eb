package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"iotdef.xyz/agro-dashboard-service/pkg/common"
)

// IScheduler registers repeating jobs. Every view owns exactly one entry and
// removes it when it stops.
type IScheduler interface {
	Schedule(name string, interval time.Duration, job func()) (cron.EntryID, error)
	Remove(id cron.EntryID)
}

type CronScheduler struct {
	cron    *cron.Cron
	mu      sync.Mutex
	entries map[cron.EntryID]string
	logger  *zap.Logger
}

func NewCronScheduler() *CronScheduler {
	logger := common.GetLoggerWith(common.LoggerNameScheduler)
	return &CronScheduler{
		cron:    cron.New(cron.WithChain(cron.Recover(cronLogger{logger.Sugar()}))),
		entries: make(map[cron.EntryID]string),
		logger:  logger,
	}
}

// Schedule runs job every interval. Intervals below one second are raised
// to one second by cron.
func (s *CronScheduler) Schedule(name string, interval time.Duration, job func()) (cron.EntryID, error) {
	if interval <= 0 {
		return 0, fmt.Errorf("schedule %s: interval must be positive, got %v", name, interval)
	}

	spec := "@every " + interval.String()
	id, err := s.cron.AddFunc(spec, job)
	if err != nil {
		return 0, fmt.Errorf("schedule %s: %w", name, err)
	}

	s.mu.Lock()
	s.entries[id] = name
	s.mu.Unlock()

	s.logger.Info("Job scheduled", zap.String("job", name), zap.String("spec", spec), zap.Int("entry_id", int(id)))
	return id, nil
}

func (s *CronScheduler) Remove(id cron.EntryID) {
	s.mu.Lock()
	name, ok := s.entries[id]
	delete(s.entries, id)
	s.mu.Unlock()

	if !ok {
		return
	}
	s.cron.Remove(id)
	s.logger.Info("Job removed", zap.String("job", name), zap.Int("entry_id", int(id)))
}

// Len is the number of registered jobs.
func (s *CronScheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *CronScheduler) Start() {
	s.cron.Start()
	s.logger.Info("Cron scheduler started")
}

// Stop halts the scheduler and waits for running jobs until ctx is done.
func (s *CronScheduler) Stop(ctx context.Context) {
	s.logger.Info("Stopping cron scheduler")
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
		s.logger.Warn("Cron jobs still running at shutdown")
	}
	s.logger.Info("Cron scheduler stopped")
}

// cronLogger routes cron's own logging into zap.
type cronLogger struct {
	sugar *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.sugar.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.sugar.Errorw(msg, append(keysAndValues, "error", err)...)
}
