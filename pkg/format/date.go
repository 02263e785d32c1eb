package format

import (
	"fmt"
	"strings"

	"iotdef.xyz/agro-dashboard-service/pkg/models"
)

const (
	NotAvailable = "No disponible"
	InvalidDate  = "Invalid Date"
)

var monthsES = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// NormalizeDate renders a backend timestamp as a long Spanish date, e.g.
// "5 de marzo de 2024". Empty input and the "No disponible" sentinel map to
// "No disponible". Anything unparseable yields "Invalid Date".
func NormalizeDate(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == NotAvailable {
		return NotAvailable
	}
	t, ok := models.ParseTime(raw)
	if !ok {
		return InvalidDate
	}
	return fmt.Sprintf("%d de %s de %d", t.Day(), monthsES[t.Month()-1], t.Year())
}

// ShortDate renders a timestamp as d/m/yyyy.
func ShortDate(raw string) string {
	t, ok := models.ParseTime(raw)
	if !ok {
		return InvalidDate
	}
	return fmt.Sprintf("%d/%d/%d", t.Day(), int(t.Month()), t.Year())
}
