package models

import "time"

// Wire shapes returned by the backend.

type PlotRaw struct {
	ID             FlexString `json:"id"`
	Name           string     `json:"nombre"`
	Location       string     `json:"ubicacion"`
	Responsible    string     `json:"responsable"`
	CropType       string     `json:"tipo_cultivo"`
	LastIrrigation string     `json:"ultimo_riego"`
	Latitude       Coordinate `json:"latitud"`
	Longitude      Coordinate `json:"longitud"`
	IsDeleted      Flag       `json:"is_deleted"`
}

type ReadingRaw struct {
	ID           FlexString `json:"id"`
	PlotID       FlexString `json:"parcela_id"`
	RegisteredAt string     `json:"fecha_registro"`
	Temperature  FlexFloat  `json:"temperatura"`
	Humidity     FlexFloat  `json:"humedad"`
	Rain         FlexFloat  `json:"lluvia"`
	Sun          FlexFloat  `json:"sol"`
}

// Dump is the payload of GET /dump.
type Dump struct {
	Plots    []PlotRaw    `json:"parcelas"`
	Readings []ReadingRaw `json:"historico"`
}

type ZoneRaw struct {
	ID             FlexString `json:"id"`
	Sector         string     `json:"sector"`
	Name           string     `json:"nombre"`
	IrrigationType string     `json:"tipo_riego"`
	Status         string     `json:"estado"`
	Date           *string    `json:"fecha"`
	Latitude       Coordinate `json:"latitud"`
	Longitude      Coordinate `json:"longitud"`
	// LongitudeAlt is a misspelled column some backend versions still send.
	LongitudeAlt Coordinate `json:"longuitud"`
	Color        string     `json:"color"`
	Reason       string     `json:"motivo"`
}

// Derived records.

type ReadingValues struct {
	Temperature  float64 `json:"temperatura"`
	Humidity     float64 `json:"humedad"`
	Rain         float64 `json:"lluvia"`
	SunIntensity float64 `json:"intensidadSol"`
}

// RainFlag reports whether the reading registered rain.
func (v ReadingValues) RainFlag() bool {
	return v.Rain != 0
}

type Plot struct {
	ID             string     `json:"id"`
	Name           string     `json:"nombre"`
	Location       string     `json:"ubicacion"`
	Responsible    string     `json:"responsable"`
	CropType       string     `json:"tipo_cultivo"`
	LastIrrigation string     `json:"ultimo_riego"`
	Latitude       Coordinate `json:"latitud"`
	Longitude      Coordinate `json:"longitud"`
	IsDeleted      Flag       `json:"is_deleted"`
	ReadingValues
}

type DeletedPlot struct {
	ID              string     `json:"id"`
	Name            string     `json:"nombre"`
	Latitude        Coordinate `json:"latitud"`
	Longitude       Coordinate `json:"longitud"`
	LastTemperature float64    `json:"ultimaTemperatura"`
	LastHumidity    float64    `json:"ultimaHumedad"`
	DeletedAt       string     `json:"fechaEliminacion"`
	Responsible     string     `json:"responsable"`
	LastIrrigation  string     `json:"ultimoRiego"`
}

type HistoryItem struct {
	ID       string `json:"id"`
	PlotID   string `json:"parcelaId"`
	PlotName string `json:"parcelaNombre"`
	Date     string `json:"fecha"`
	ReadingValues
}

type Zone struct {
	ID             string     `json:"id"`
	Sector         string     `json:"sector"`
	Name           string     `json:"nombre"`
	IrrigationType string     `json:"tipo_riego"`
	Status         string     `json:"estado"`
	Date           string     `json:"fecha"`
	Latitude       Coordinate `json:"latitud"`
	Longitude      Coordinate `json:"longitud"`
	Color          string     `json:"color"`
	Reason         string     `json:"motivo"`
}

// Averages is the per-poll aggregate over the active plots. Rain is OR-reduced,
// not averaged.
type Averages struct {
	Temperature  int  `json:"temperatura"`
	Humidity     int  `json:"humedad"`
	Rain         bool `json:"lluvia"`
	SunIntensity int  `json:"intensidadSol"`
}

// StatusTally maps a lower-cased normalised status to its zone count.
type StatusTally map[string]int

// Snapshot rows kept by the trend store.

type AggregateSnapshot struct {
	ID           uint      `gorm:"primaryKey" json:"-"`
	TakenAt      time.Time `gorm:"index" json:"taken_at"`
	ActivePlots  int       `json:"active_plots"`
	Temperature  int       `json:"temperatura"`
	Humidity     int       `json:"humedad"`
	Rain         bool      `json:"lluvia"`
	SunIntensity int       `json:"intensidadSol"`
}

type StatusCountSnapshot struct {
	ID      uint      `gorm:"primaryKey" json:"-"`
	TakenAt time.Time `gorm:"index" json:"taken_at"`
	View    string    `gorm:"column:view_name;index;type:varchar(32)" json:"view"`
	Status  string    `gorm:"type:varchar(64)" json:"estado"`
	Count   int       `json:"count"`
}
