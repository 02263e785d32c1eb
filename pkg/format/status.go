package format

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	StatusMaintenance  = "mantenimiento"
	StatusBroken       = "descompuesto"
	StatusFaulty       = "averiado"
	StatusInactive     = "inactivo"
	StatusActive       = "activo"
	StatusOutOfService = "fuera de servicio"
)

// NormalizeStatus turns a raw backend status into its display label:
// underscores become spaces, everything is lower-cased and the first letter
// is upper-cased. NormalizeStatus(NormalizeStatus(s)) == NormalizeStatus(s).
func NormalizeStatus(raw string) string {
	label := strings.ToLower(strings.ReplaceAll(raw, "_", " "))
	if label == "" {
		return label
	}
	first, size := utf8.DecodeRuneInString(label)
	return string(unicode.ToUpper(first)) + label[size:]
}

// StatusKey is the case-insensitive key a status is grouped and compared by.
func StatusKey(raw string) string {
	return strings.ToLower(NormalizeStatus(raw))
}

// StatusClass maps a zone status to the CSS class used by the unavailable
// zones list.
func StatusClass(status string) string {
	switch StatusKey(status) {
	case StatusMaintenance:
		return "status-maintenance"
	case StatusFaulty, StatusBroken:
		return "status-broken"
	case StatusInactive:
		return "status-inactive"
	default:
		return "status-unavailable"
	}
}

var attentionColors = map[string]string{
	StatusMaintenance:  "#ff9800",
	StatusBroken:       "#f44336",
	StatusOutOfService: "#9c27b0",
}

// NeedsAttention reports whether a zone in this status belongs in the
// out-of-service list.
func NeedsAttention(status string) bool {
	_, ok := attentionColors[StatusKey(status)]
	return ok
}

// AttentionColor is the highlight colour for a status that needs attention,
// or "" for any other status.
func AttentionColor(status string) string {
	return attentionColors[StatusKey(status)]
}
