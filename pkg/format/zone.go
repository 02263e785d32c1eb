package format

import "iotdef.xyz/agro-dashboard-service/pkg/models"

const Unspecified = "No especificado"

// Fallback colours applied per zone source when neither the backend nor the
// status palette provides one.
const (
	ColorDefault         = "#2196f3"
	ColorFunctioning     = "#4caf50"
	ColorNotFunctioning  = "#f44336"
	ColorMaintenance     = "#ff9800"
	ColorOutOfService    = "#9c27b0"
	ColorDashboardMarker = "#e53935"
)

var statusPalette = map[string]string{
	StatusActive:       ColorFunctioning,
	StatusInactive:     ColorNotFunctioning,
	StatusMaintenance:  ColorMaintenance,
	StatusOutOfService: ColorOutOfService,
}

// ZoneColor picks the display colour of a zone: the backend colour, then the
// status palette, then fallback.
func ZoneColor(rawColor, status, fallback string) string {
	if rawColor != "" {
		return rawColor
	}
	if c, ok := statusPalette[StatusKey(status)]; ok {
		return c
	}
	return fallback
}

// ZoneFromRaw builds the display form of a backend zone.
func ZoneFromRaw(raw models.ZoneRaw, fallbackColor string) models.Zone {
	longitude := raw.Longitude
	if longitude == "" {
		longitude = raw.LongitudeAlt
	}

	date := ""
	if raw.Date != nil {
		date = *raw.Date
	}

	zone := models.Zone{
		ID:             raw.ID.String(),
		Sector:         raw.Sector,
		Name:           raw.Name,
		IrrigationType: raw.IrrigationType,
		Status:         NormalizeStatus(raw.Status),
		Date:           NormalizeDate(date),
		Latitude:       raw.Latitude,
		Longitude:      longitude,
		Color:          ZoneColor(raw.Color, raw.Status, fallbackColor),
		Reason:         raw.Reason,
	}
	if zone.Sector == "" {
		zone.Sector = Unspecified
	}
	if zone.Reason == "" {
		zone.Reason = Unspecified
	}
	return zone
}
