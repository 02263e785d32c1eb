package http

import (
	"errors"
	"net/http"
	"strings"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"iotdef.xyz/agro-dashboard-service/pkg/agro"
	"iotdef.xyz/agro-dashboard-service/pkg/api"
	"iotdef.xyz/agro-dashboard-service/pkg/common"
	"iotdef.xyz/agro-dashboard-service/pkg/db"
	"iotdef.xyz/agro-dashboard-service/pkg/models"
	"iotdef.xyz/agro-dashboard-service/pkg/report"
	"iotdef.xyz/agro-dashboard-service/pkg/view"
)

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (rs *RestfulServer) GetDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, rs.Views.Dashboard.View())
}

type TrendQuery struct {
	Limit int `json:"limit" query:"limit"`
}

var trendQuerySchema = z.Struct(z.Shape{
	"Limit": z.Int().GTE(0).LTE(500),
})

func (rs *RestfulServer) parseTrendLimit(c *gin.Context) (int, bool) {
	var q TrendQuery
	if err := trendQuerySchema.Parse(zhttp.Request(c.Request), &q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return 0, false
	}
	if q.Limit == 0 {
		q.Limit = db.DefaultTrendLimit
	}
	return q.Limit, true
}

func (rs *RestfulServer) GetDashboardTrend(c *gin.Context) {
	limit, ok := rs.parseTrendLimit(c)
	if !ok {
		return
	}
	if rs.Store == nil {
		c.JSON(http.StatusOK, []models.AggregateSnapshot{})
		return
	}

	rows, err := rs.Store.RecentAverages(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (rs *RestfulServer) ExportDashboard(c *gin.Context) {
	snapshot := rs.Views.Dashboard.Snapshot()
	if !snapshot.Loaded {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": view.MsgLoadDataError})
		return
	}

	c.Header("Content-Type", report.ContentType)
	c.Header("Content-Disposition", `attachment; filename="parcelas.xlsx"`)
	c.Status(http.StatusOK)
	if err := report.WritePlotsWorkbook(c.Writer, snapshot.Items, snapshot.Aggregate, snapshot.LastUpdated); err != nil {
		common.GetLoggerWith(common.LoggerNameRestfulServer).Error("Export failed", zap.Error(err))
	}
}

func (rs *RestfulServer) GetDeletedPlots(c *gin.Context) {
	c.JSON(http.StatusOK, rs.Views.DeletedPlots.View())
}

type SearchRequest struct {
	Term string `json:"term"`
}

var searchRequestSchema = z.Struct(z.Shape{
	"Term": z.String().Trim().Max(100),
})

func (rs *RestfulServer) SearchDeletedPlots(c *gin.Context) {
	var req SearchRequest
	if err := searchRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	rs.Views.DeletedPlots.SetSearch(req.Term)
	c.JSON(http.StatusOK, rs.Views.DeletedPlots.View())
}

func (rs *RestfulServer) GetZones(c *gin.Context) {
	c.JSON(http.StatusOK, rs.Views.Zones.View())
}

type StatusRequest struct {
	Status string `json:"status"`
}

var statusRequestSchema = z.Struct(z.Shape{
	"Status": z.String().Trim().Required().Min(1).Max(64),
})

func (rs *RestfulServer) ToggleZoneStatus(c *gin.Context) {
	var req StatusRequest
	if err := statusRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}
	if strings.TrimSpace(req.Status) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}

	rs.Views.Zones.ToggleStatus(req.Status)
	c.JSON(http.StatusOK, rs.Views.Zones.View())
}

func (rs *RestfulServer) GetZonesTrend(c *gin.Context) {
	limit, ok := rs.parseTrendLimit(c)
	if !ok {
		return
	}
	if rs.Store == nil {
		c.JSON(http.StatusOK, []models.StatusCountSnapshot{})
		return
	}

	rows, err := rs.Store.RecentTallies(view.ViewZones, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if rows == nil {
		rows = []models.StatusCountSnapshot{}
	}
	c.JSON(http.StatusOK, rows)
}

func (rs *RestfulServer) GetUnavailableZones(c *gin.Context) {
	c.JSON(http.StatusOK, rs.Views.UnavailableZones.View())
}

func (rs *RestfulServer) RefreshView(c *gin.Context) {
	name := c.Param("view")

	refresher, ok := rs.Views.refreshers()[name]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown view"})
		return
	}

	if !rs.CheckViewLimiter(name) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	refresher.RefreshAsync()
	c.JSON(http.StatusAccepted, gin.H{"view": name, "status": "accepted"})
}

// backendError maps a data service failure to a response: 404 for unknown
// plots, 502 with the backend message for everything else.
func backendError(c *gin.Context, err error) {
	if errors.Is(err, agro.ErrPlotNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if reqErr, ok := api.AsRequestError(err); ok {
		c.JSON(http.StatusBadGateway, gin.H{"error": reqErr.Message, "status": reqErr.StatusCode})
		return
	}
	c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
}

func (rs *RestfulServer) GetPlot(c *gin.Context) {
	plot, err := rs.Agro.Plots.FetchPlotByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		backendError(c, err)
		return
	}
	c.JSON(http.StatusOK, plot)
}

func (rs *RestfulServer) GetPlotHistory(c *gin.Context) {
	history, err := rs.Agro.History.FetchPlotHistory(c.Request.Context(), c.Param("id"))
	if err != nil {
		backendError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}

func (rs *RestfulServer) GetGeneralHistory(c *gin.Context) {
	history, err := rs.Agro.History.FetchGeneralHistory(c.Request.Context())
	if err != nil {
		backendError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}

func (rs *RestfulServer) GetZonesByStatus(c *gin.Context) {
	zones, err := rs.Agro.Zones.FetchZonesByStatus(c.Request.Context(), c.Param("estado"))
	if err != nil {
		backendError(c, err)
		return
	}
	c.JSON(http.StatusOK, zones)
}
