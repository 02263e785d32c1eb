package main

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"sync"
	"time"

	"iotdef.xyz/agro-dashboard-service/pkg/format"
	"iotdef.xyz/agro-dashboard-service/pkg/models"
)

var (
	crops      = []string{"Maíz", "Frijol", "Café", "Tomate", "Aguacate"}
	irrigation = []string{"Goteo", "Aspersión", "Gravedad"}
	statuses   = []string{
		format.StatusActive,
		format.StatusActive,
		format.StatusInactive,
		format.StatusMaintenance,
		format.StatusBroken,
		format.StatusOutOfService,
	}
)

// backend is an in-memory fixture mimicking the agro API.
type backend struct {
	mu       sync.RWMutex
	rnd      *rand.Rand
	plots    []models.PlotRaw
	readings []models.ReadingRaw
	zones    []models.ZoneRaw
	nextID   int
}

func newBackend(seed int64, plots, zones int) *backend {
	b := &backend{rnd: rand.New(rand.NewSource(seed))}
	for i := 0; i < plots; i++ {
		b.plots = append(b.plots, models.PlotRaw{
			ID:             models.FlexString(strconv.Itoa(i + 1)),
			Name:           fmt.Sprintf("Parcela %d", i+1),
			Location:       fmt.Sprintf("Lote %d", i+1),
			Responsible:    fmt.Sprintf("Responsable %d", i+1),
			CropType:       crops[b.rnd.Intn(len(crops))],
			LastIrrigation: time.Now().Add(-time.Duration(b.rnd.Intn(72)) * time.Hour).Format(time.RFC3339),
			Latitude:       models.Coordinate(strconv.FormatFloat(b.rndFloat64(21.0, 21.2, 6), 'f', -1, 64)),
			Longitude:      models.Coordinate(strconv.FormatFloat(b.rndFloat64(-101.8, -101.6, 6), 'f', -1, 64)),
			IsDeleted:      models.Flag(b.rnd.Intn(10) == 0),
		})
	}
	for i := 0; i < zones; i++ {
		b.zones = append(b.zones, models.ZoneRaw{
			ID:             models.FlexString(strconv.Itoa(i + 1)),
			Sector:         fmt.Sprintf("Sector %c", 'A'+i%6),
			Name:           fmt.Sprintf("Zona %d", i+1),
			IrrigationType: irrigation[b.rnd.Intn(len(irrigation))],
			Status:         statuses[b.rnd.Intn(len(statuses))],
			Latitude:       models.Coordinate(strconv.FormatFloat(b.rndFloat64(21.0, 21.2, 6), 'f', -1, 64)),
			Longitude:      models.Coordinate(strconv.FormatFloat(b.rndFloat64(-101.8, -101.6, 6), 'f', -1, 64)),
		})
	}
	b.tick(time.Now())
	return b
}

func (b *backend) flipCoin() bool {
	return b.rnd.Int31n(100000)%2 == 0
}

func (b *backend) rndFloat64(min, max float64, decimal int) float64 {
	val := min + b.rnd.Float64()*(max-min)
	multiplier := math.Pow10(decimal)
	return math.Round(val*multiplier) / multiplier
}

// tick appends one reading per plot taken at now.
func (b *backend) tick(now time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, p := range b.plots {
		b.nextID++
		rain := 0.0
		if b.flipCoin() {
			rain = b.rndFloat64(0.1, 20.0, 1)
		}
		b.readings = append(b.readings, models.ReadingRaw{
			ID:           models.FlexString(strconv.Itoa(b.nextID)),
			PlotID:       p.ID,
			RegisteredAt: now.Format("2006-01-02 15:04:05"),
			Temperature:  models.FlexFloat(b.rndFloat64(12.0, 38.0, 1)),
			Humidity:     models.FlexFloat(b.rndFloat64(20.0, 95.0, 1)),
			Rain:         models.FlexFloat(rain),
			Sun:          models.FlexFloat(b.rndFloat64(0.0, 100.0, 0)),
		})
	}
}

func (b *backend) dump() models.Dump {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return models.Dump{
		Plots:    append([]models.PlotRaw(nil), b.plots...),
		Readings: append([]models.ReadingRaw(nil), b.readings...),
	}
}

func (b *backend) zonesWhere(keep func(models.ZoneRaw) bool) []models.ZoneRaw {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := []models.ZoneRaw{}
	for _, z := range b.zones {
		if keep(z) {
			out = append(out, z)
		}
	}
	return out
}
