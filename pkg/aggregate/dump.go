package aggregate

import (
	"sort"
	"time"

	"iotdef.xyz/agro-dashboard-service/pkg/common"
	"iotdef.xyz/agro-dashboard-service/pkg/models"
)

// isoMillis is the layout used for generated timestamps.
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

func readingsByPlot(readings []models.ReadingRaw) map[string][]models.ReadingRaw {
	grouped := make(map[string][]models.ReadingRaw)
	for _, r := range readings {
		id := r.PlotID.String()
		grouped[id] = append(grouped[id], r)
	}
	return grouped
}

func latestValues(plotID string, grouped map[string][]models.ReadingRaw) models.ReadingValues {
	r, ok := LatestReading(plotID, grouped[plotID])
	return ReadingValues(r, ok)
}

// BuildPlots attaches the latest reading values to every plot in the dump.
func BuildPlots(dump models.Dump) []models.Plot {
	grouped := readingsByPlot(dump.Readings)
	return common.Mapper(dump.Plots, func(raw models.PlotRaw) models.Plot {
		return plotFromRaw(raw, latestValues(raw.ID.String(), grouped))
	})
}

// BuildPlot is BuildPlots for a single plot; ok is false if the dump has no
// plot with that id.
func BuildPlot(dump models.Dump, plotID string) (models.Plot, bool) {
	for _, raw := range dump.Plots {
		if raw.ID.String() == plotID {
			r, ok := LatestReading(plotID, dump.Readings)
			return plotFromRaw(raw, ReadingValues(r, ok)), true
		}
	}
	return models.Plot{}, false
}

func plotFromRaw(raw models.PlotRaw, values models.ReadingValues) models.Plot {
	return models.Plot{
		ID:             raw.ID.String(),
		Name:           raw.Name,
		Location:       raw.Location,
		Responsible:    raw.Responsible,
		CropType:       raw.CropType,
		LastIrrigation: raw.LastIrrigation,
		Latitude:       raw.Latitude,
		Longitude:      raw.Longitude,
		IsDeleted:      raw.IsDeleted,
		ReadingValues:  values,
	}
}

// BuildDeletedPlots lists the deleted plots of the dump with their last known
// temperature and humidity. The last irrigation date doubles as the deletion
// date; when it is missing both fall back to now.
func BuildDeletedPlots(dump models.Dump, now time.Time) []models.DeletedPlot {
	grouped := readingsByPlot(dump.Readings)
	fallback := now.UTC().Format(isoMillis)

	deleted := common.Filter(dump.Plots, func(p models.PlotRaw) bool { return bool(p.IsDeleted) })
	return common.Mapper(deleted, func(raw models.PlotRaw) models.DeletedPlot {
		values := latestValues(raw.ID.String(), grouped)
		lastIrrigation := raw.LastIrrigation
		if lastIrrigation == "" {
			lastIrrigation = fallback
		}
		return models.DeletedPlot{
			ID:              raw.ID.String(),
			Name:            raw.Name,
			Latitude:        raw.Latitude,
			Longitude:       raw.Longitude,
			LastTemperature: values.Temperature,
			LastHumidity:    values.Humidity,
			DeletedAt:       lastIrrigation,
			Responsible:     raw.Responsible,
			LastIrrigation:  lastIrrigation,
		}
	})
}

// BuildHistory returns the readings of one plot, newest first.
func BuildHistory(dump models.Dump, plotID string) []models.HistoryItem {
	readings := common.Filter(dump.Readings, func(r models.ReadingRaw) bool {
		return r.PlotID.String() == plotID
	})
	return buildHistory(dump.Plots, readings)
}

// BuildGeneralHistory returns every reading in the dump, newest first.
func BuildGeneralHistory(dump models.Dump) []models.HistoryItem {
	return buildHistory(dump.Plots, dump.Readings)
}

func buildHistory(plots []models.PlotRaw, readings []models.ReadingRaw) []models.HistoryItem {
	names := make(map[string]string, len(plots))
	for _, p := range plots {
		if _, seen := names[p.ID.String()]; !seen {
			names[p.ID.String()] = p.Name
		}
	}

	type dated struct {
		item models.HistoryItem
		at   time.Time
	}
	entries := common.Mapper(readings, func(r models.ReadingRaw) dated {
		at, _ := models.ParseTime(r.RegisteredAt)
		return dated{
			item: models.HistoryItem{
				ID:            r.ID.String(),
				PlotID:        r.PlotID.String(),
				PlotName:      names[r.PlotID.String()],
				Date:          r.RegisteredAt,
				ReadingValues: ReadingValues(r, true),
			},
			at: at,
		}
	})
	sort.SliceStable(entries, func(a, b int) bool {
		return entries[a].at.After(entries[b].at)
	})

	return common.Mapper(entries, func(e dated) models.HistoryItem { return e.item })
}
