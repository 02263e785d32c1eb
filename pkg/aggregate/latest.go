package aggregate

import (
	"strconv"
	"time"

	"iotdef.xyz/agro-dashboard-service/pkg/models"
)

// LatestReading returns the reading of plotID with the greatest registration
// time. On equal times the higher reading id wins, and on equal ids the one
// that comes later in readings. Readings with an unparseable time rank oldest.
func LatestReading(plotID string, readings []models.ReadingRaw) (models.ReadingRaw, bool) {
	var (
		best     models.ReadingRaw
		bestTime time.Time
		found    bool
	)
	for _, r := range readings {
		if r.PlotID.String() != plotID {
			continue
		}
		t, _ := models.ParseTime(r.RegisteredAt)
		if !found || newer(t, r.ID.String(), bestTime, best.ID.String()) {
			best, bestTime, found = r, t, true
		}
	}
	return best, found
}

// newer reports whether (t, id) ranks at or above (bestT, bestID). Ties
// resolve to the candidate so the last equal reading in input order wins.
func newer(t time.Time, id string, bestT time.Time, bestID string) bool {
	if !t.Equal(bestT) {
		return t.After(bestT)
	}
	return compareIDs(id, bestID) >= 0
}

func compareIDs(a, b string) int {
	ai, errA := strconv.ParseInt(a, 10, 64)
	bi, errB := strconv.ParseInt(b, 10, 64)
	if errA == nil && errB == nil {
		switch {
		case ai < bi:
			return -1
		case ai > bi:
			return 1
		}
		return 0
	}
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// ReadingValues extracts the four sensor values of a reading. All values are
// 0 when ok is false.
func ReadingValues(r models.ReadingRaw, ok bool) models.ReadingValues {
	if !ok {
		return models.ReadingValues{}
	}
	return models.ReadingValues{
		Temperature:  r.Temperature.Float64(),
		Humidity:     r.Humidity.Float64(),
		Rain:         r.Rain.Float64(),
		SunIntensity: r.Sun.Float64(),
	}
}
