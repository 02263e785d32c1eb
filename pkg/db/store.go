package db

import (
	"sort"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"iotdef.xyz/agro-dashboard-service/pkg/common"
	"iotdef.xyz/agro-dashboard-service/pkg/models"
	"iotdef.xyz/agro-dashboard-service/pkg/view"
)

const DefaultTrendLimit = 50

// Store keeps a short trend history of the view aggregates.
type Store struct {
	Db     *DB
	logger *zap.Logger
}

func NewStore(db *DB) *Store {
	return &Store{Db: db, logger: common.GetLoggerWith(common.LoggerNameSnapshotStore)}
}

func (s *Store) RecordAverages(takenAt time.Time, activePlots int, avg models.Averages) error {
	row := models.AggregateSnapshot{
		TakenAt:      takenAt.UTC(),
		ActivePlots:  activePlots,
		Temperature:  avg.Temperature,
		Humidity:     avg.Humidity,
		Rain:         avg.Rain,
		SunIntensity: avg.SunIntensity,
	}
	if err := s.Db.Conn.Create(&row).Error; err != nil {
		s.logger.Error("Failed to record averages", zap.Error(err))
		return err
	}
	return nil
}

// NoZonesStatus marks a poll that returned no zones at all.
const NoZonesStatus = ""

// RecordTally stores one row per status of a zones poll, in one transaction.
// An empty tally stores a single NoZonesStatus row with a zero count.
func (s *Store) RecordTally(viewName string, takenAt time.Time, tally models.StatusTally) error {
	statuses := make([]string, 0, len(tally))
	for status := range tally {
		statuses = append(statuses, status)
	}
	sort.Strings(statuses)
	if len(statuses) == 0 {
		statuses = append(statuses, NoZonesStatus)
	}

	err := s.Db.Conn.Transaction(func(tx *gorm.DB) error {
		for _, status := range statuses {
			row := models.StatusCountSnapshot{TakenAt: takenAt.UTC(), View: viewName, Status: status, Count: tally[status]}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Failed to record tally", zap.String("view", viewName), zap.Error(err))
	}
	return err
}

func clampLimit(limit int) int {
	if limit <= 0 || limit > 10*DefaultTrendLimit {
		return DefaultTrendLimit
	}
	return limit
}

// RecentAverages returns up to limit snapshots, newest first.
func (s *Store) RecentAverages(limit int) ([]models.AggregateSnapshot, error) {
	var rows []models.AggregateSnapshot
	err := s.Db.Conn.
		Order("taken_at desc").
		Order("id desc").
		Limit(clampLimit(limit)).
		Find(&rows).Error
	return rows, err
}

// RecentTallies returns the status rows of the last limit polls of a view,
// newest poll first. A poll that found no zones shows up as one
// NoZonesStatus row with Count 0.
func (s *Store) RecentTallies(viewName string, limit int) ([]models.StatusCountSnapshot, error) {
	var times []time.Time
	err := s.Db.Conn.Model(&models.StatusCountSnapshot{}).
		Where("view_name = ?", viewName).
		Distinct("taken_at").
		Order("taken_at desc").
		Limit(clampLimit(limit)).
		Pluck("taken_at", &times).Error
	if err != nil || len(times) == 0 {
		return nil, err
	}

	var rows []models.StatusCountSnapshot
	err = s.Db.Conn.
		Where("view_name = ? AND taken_at >= ?", viewName, times[len(times)-1]).
		Order("taken_at desc").
		Order("status asc").
		Find(&rows).Error
	return rows, err
}

// AveragesObserver records every successful dashboard load.
func (s *Store) AveragesObserver() view.Observer[models.Plot, models.Averages] {
	return func(st view.State[models.Plot, models.Averages]) {
		if st.Status != view.StatusReady {
			return
		}
		_ = s.RecordAverages(st.LastUpdated, len(st.Items), st.Aggregate)
	}
}

// TallyObserver records the status tally of every successful zones load.
func (s *Store) TallyObserver(viewName string) view.Observer[models.Zone, models.StatusTally] {
	return func(st view.State[models.Zone, models.StatusTally]) {
		if st.Status != view.StatusReady {
			return
		}
		_ = s.RecordTally(viewName, st.LastUpdated, st.Aggregate)
	}
}
