package aggregate

import (
	"math"

	"iotdef.xyz/agro-dashboard-service/pkg/common"
	"iotdef.xyz/agro-dashboard-service/pkg/format"
	"iotdef.xyz/agro-dashboard-service/pkg/models"
)

// roundHalfUp matches the rounding of the original dashboard, so -2.5 rounds
// to -2 rather than -3.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

// Averages computes the mean temperature, humidity and sun intensity of the
// plots' latest readings, and whether any of them registered rain.
func Averages(activePlots []models.Plot) models.Averages {
	if len(activePlots) == 0 {
		return models.Averages{}
	}

	sum := common.Reducer(activePlots, func(acc models.ReadingValues, p models.Plot) models.ReadingValues {
		acc.Temperature += p.Temperature
		acc.Humidity += p.Humidity
		acc.SunIntensity += p.SunIntensity
		return acc
	}, models.ReadingValues{})

	n := float64(len(activePlots))
	return models.Averages{
		Temperature:  roundHalfUp(sum.Temperature / n),
		Humidity:     roundHalfUp(sum.Humidity / n),
		SunIntensity: roundHalfUp(sum.SunIntensity / n),
		Rain:         common.Some(activePlots, func(p models.Plot) bool { return p.RainFlag() }),
	}
}

// IsActive reports whether a plot belongs on the map: not deleted and with
// both coordinates finite.
func IsActive(p models.Plot) bool {
	return !bool(p.IsDeleted) && p.Latitude.Valid() && p.Longitude.Valid()
}

// PartitionByDeletion splits plots into the active and deleted sets. A plot
// that is not deleted but has unusable coordinates lands in neither.
func PartitionByDeletion(plots []models.Plot) (active, deleted []models.Plot) {
	active = common.Filter(plots, IsActive)
	deleted = common.Filter(plots, func(p models.Plot) bool { return bool(p.IsDeleted) })
	return active, deleted
}

// TallyByStatus counts zones per lower-cased normalised status.
func TallyByStatus(zones []models.Zone) models.StatusTally {
	return common.Reducer(zones, func(acc models.StatusTally, z models.Zone) models.StatusTally {
		acc[format.StatusKey(z.Status)]++
		return acc
	}, models.StatusTally{})
}
