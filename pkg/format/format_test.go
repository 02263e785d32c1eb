package format

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"iotdef.xyz/agro-dashboard-service/pkg/models"
)

func TestNormalizeStatus(t *testing.T) {
	cases := map[string]string{
		"FUERA_DE_SERVICIO": "Fuera de servicio",
		"fuera de servicio": "Fuera de servicio",
		"mantenimiento":     "Mantenimiento",
		"Activo":            "Activo",
		"":                  "",
		"ÉXITO":             "Éxito",
	}
	for in, want := range cases {
		got := NormalizeStatus(in)
		assert.Equal(t, want, got, in)
		assert.Equal(t, got, NormalizeStatus(got), "idempotent for %q", in)
	}
	assert.Equal(t, NormalizeStatus("FUERA_DE_SERVICIO"), NormalizeStatus("fuera de servicio"))
}

func TestStatusClass(t *testing.T) {
	assert.Equal(t, "status-maintenance", StatusClass("MANTENIMIENTO"))
	assert.Equal(t, "status-broken", StatusClass("averiado"))
	assert.Equal(t, "status-broken", StatusClass("Descompuesto"))
	assert.Equal(t, "status-inactive", StatusClass("inactivo"))
	assert.Equal(t, "status-unavailable", StatusClass("fuera_de_servicio"))
	assert.Equal(t, "status-unavailable", StatusClass(""))
}

func TestAttention(t *testing.T) {
	assert.True(t, NeedsAttention("FUERA_DE_SERVICIO"))
	assert.True(t, NeedsAttention("Mantenimiento"))
	assert.True(t, NeedsAttention("descompuesto"))
	assert.False(t, NeedsAttention("activo"))
	assert.Equal(t, "#9c27b0", AttentionColor("fuera de servicio"))
	assert.Equal(t, "", AttentionColor("activo"))
}

func TestNormalizeDate(t *testing.T) {
	assert.Equal(t, "5 de marzo de 2024", NormalizeDate("2024-03-05"))
	assert.Equal(t, "31 de diciembre de 2023", NormalizeDate("2023-12-31T23:10:00"))
	assert.Equal(t, NotAvailable, NormalizeDate(""))
	assert.Equal(t, NotAvailable, NormalizeDate("No disponible"))
	assert.Equal(t, InvalidDate, NormalizeDate("ayer"))
}

func TestShortDate(t *testing.T) {
	assert.Equal(t, "5/3/2024", ShortDate("2024-03-05 08:00:00"))
	assert.Equal(t, InvalidDate, ShortDate("nope"))
}

func TestZoneFromRaw(t *testing.T) {
	date := "2024-01-15"
	raw := models.ZoneRaw{
		ID:           "3",
		Name:         "Riego norte",
		Status:       "FUERA_DE_SERVICIO",
		Date:         &date,
		Latitude:     "21.04",
		LongitudeAlt: "-86.84",
	}

	zone := ZoneFromRaw(raw, ColorDefault)
	assert.Equal(t, "3", zone.ID)
	assert.Equal(t, Unspecified, zone.Sector)
	assert.Equal(t, Unspecified, zone.Reason)
	assert.Equal(t, "Fuera de servicio", zone.Status)
	assert.Equal(t, "15 de enero de 2024", zone.Date)
	assert.Equal(t, models.Coordinate("-86.84"), zone.Longitude)
	assert.Equal(t, ColorOutOfService, zone.Color)

	raw.Date = nil
	raw.Status = "regando"
	raw.Color = "#123456"
	zone = ZoneFromRaw(raw, ColorFunctioning)
	assert.Equal(t, NotAvailable, zone.Date)
	assert.Equal(t, "#123456", zone.Color)

	raw.Color = ""
	assert.Equal(t, ColorFunctioning, ZoneFromRaw(raw, ColorFunctioning).Color)
	assert.Equal(t, ColorNotFunctioning, ZoneFromRaw(raw, ColorNotFunctioning).Color)
}
