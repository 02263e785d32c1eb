package view

import (
	"strings"

	"iotdef.xyz/agro-dashboard-service/pkg/common"
)

// Filter returns the items accepted by pred, in input order, in a new slice.
func Filter[T any](items []T, pred func(T) bool) []T {
	return common.Filter(items, pred)
}

// ContainsFold reports whether substr is within s, ignoring case.
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
