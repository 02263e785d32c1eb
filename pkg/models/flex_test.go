package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeLooseDump(t *testing.T) {
	payload := `{
		"parcelas": [
			{"id": 7, "nombre": "Norte", "latitud": "21.06", "longitud": -86.86, "is_deleted": 0},
			{"id": "8", "nombre": "Sur", "latitud": "abc", "longitud": null, "is_deleted": "1"},
			{"id": 9, "nombre": "Este", "latitud": "1", "longitud": "2", "is_deleted": true}
		],
		"historico": [
			{"id": 1, "parcela_id": 7, "fecha_registro": "2024-03-05T10:00:00Z",
			 "temperatura": "24.5", "humedad": 60, "lluvia": "0", "sol": "bad"}
		]
	}`

	var dump Dump
	require.NoError(t, json.Unmarshal([]byte(payload), &dump))
	require.Len(t, dump.Plots, 3)

	assert.Equal(t, FlexString("7"), dump.Plots[0].ID)
	assert.Equal(t, FlexString("8"), dump.Plots[1].ID)
	assert.False(t, bool(dump.Plots[0].IsDeleted))
	assert.True(t, bool(dump.Plots[1].IsDeleted))
	assert.True(t, bool(dump.Plots[2].IsDeleted))

	lat, ok := dump.Plots[0].Latitude.Float()
	assert.True(t, ok)
	assert.InDelta(t, 21.06, lat, 1e-9)
	assert.True(t, dump.Plots[0].Longitude.Valid())
	assert.False(t, dump.Plots[1].Latitude.Valid())
	assert.False(t, dump.Plots[1].Longitude.Valid())

	require.Len(t, dump.Readings, 1)
	r := dump.Readings[0]
	assert.Equal(t, FlexString("7"), r.PlotID)
	assert.Equal(t, 24.5, r.Temperature.Float64())
	assert.Equal(t, 60.0, r.Humidity.Float64())
	assert.Equal(t, 0.0, r.Sun.Float64(), "unparseable values coerce to 0")
}

func TestCoordinateRejectsNonFinite(t *testing.T) {
	for _, raw := range []string{"", "NaN", "Inf", "-Inf", "12,5", "1e400"} {
		assert.False(t, Coordinate(raw).Valid(), raw)
	}
	assert.True(t, Coordinate(" -86.865825 ").Valid())
}

func TestParseTime(t *testing.T) {
	cases := map[string]bool{
		"2024-03-05T10:00:00Z":      true,
		"2024-03-05T10:00:00.123Z":  true,
		"2024-03-05T10:00:00-06:00": true,
		"2024-03-05 10:00:00":       true,
		"2024-03-05T10:00:00":       true,
		"2024-03-05":                true,
		"05/03/2024":                false,
		"":                          false,
		"not a date":                false,
	}
	for raw, want := range cases {
		_, ok := ParseTime(raw)
		assert.Equal(t, want, ok, raw)
	}
}

func TestFlagMarshalsAsInteger(t *testing.T) {
	out, err := json.Marshal(struct {
		A Flag `json:"a"`
		B Flag `json:"b"`
	}{A: true})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1,"b":0}`, string(out))
}
