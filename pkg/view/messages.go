package view

const (
	ViewDashboard        = "dashboard"
	ViewDeletedPlots     = "deleted-plots"
	ViewZones            = "zones"
	ViewUnavailableZones = "zones-unavailable"
)

// User facing messages.
const (
	MsgLoadDataError         = "Error al cargar los datos. Por favor, intenta de nuevo más tarde."
	MsgZonesError            = "No se pudieron cargar las zonas de riego."
	MsgUnavailableZonesError = "No se pudieron cargar las zonas de riego no disponibles."

	MsgNoPlots            = "No hay parcelas disponibles."
	MsgNoDeletedPlots     = "No se encontraron parcelas eliminadas"
	MsgNoAttentionZones   = "No hay zonas en mantenimiento o fuera de servicio."
	MsgNoUnavailableZones = "No hay zonas en mantenimiento o fuera de servicio"
)
