package handlers

import (
	"fmt"
	"net/http"

	"github.com/SscSPs/digital_khata_client/internal/apperrors"
	"github.com/SscSPs/digital_khata_client/internal/core/domain"
	portssvc "github.com/SscSPs/digital_khata_client/internal/core/ports/services"
	"github.com/SscSPs/digital_khata_client/internal/utils"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles report and dashboard requests.
type reportingHandler struct {
	reportService    portssvc.ReportSvcFacade
	dashboardService portssvc.DashboardSvcFacade
}

// registerReportRoutes registers the report routes.
func registerReportRoutes(rg *gin.RouterGroup, reportService portssvc.ReportSvcFacade) {
	h := &reportingHandler{reportService: reportService}

	reports := rg.Group("/reports")
	{
		reports.GET("/:kind", h.getReport)
		reports.GET("/:kind/export.csv", h.exportReport)
	}
}

// registerDashboardRoutes registers the dashboard summary route.
func registerDashboardRoutes(rg *gin.RouterGroup, dashboardService portssvc.DashboardSvcFacade) {
	h := &reportingHandler{dashboardService: dashboardService}
	rg.GET("/dashboard", h.getDashboard)
}

func reportKindParam(c *gin.Context) (domain.ReportKind, bool) {
	kind, err := domain.ParseReportKind(c.Param("kind"))
	if err != nil {
		respondError(c, apperrors.NewValidationError("kind", err.Error()), "Unknown report")
		return "", false
	}
	return kind, true
}

// getReport godoc
// @Summary Get a report
// @Description Query parameters are passed through to the backend unchanged.
// @Tags reports
// @Produce json
// @Param kind path string true "sales, purchases or inventory"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string "Unknown report"
// @Router /reports/{kind} [get]
func (h *reportingHandler) getReport(c *gin.Context) {
	kind, ok := reportKindParam(c)
	if !ok {
		return
	}
	report, err := h.reportService.GetReport(c.Request.Context(), kind, c.Request.URL.Query())
	if err != nil {
		respondError(c, err, "Failed to fetch report")
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *reportingHandler) exportReport(c *gin.Context) {
	kind, ok := reportKindParam(c)
	if !ok {
		return
	}
	report, err := h.reportService.GetReport(c.Request.Context(), kind, c.Request.URL.Query())
	if err != nil {
		respondError(c, err, "Failed to fetch report")
		return
	}
	h.reportService.NotifyExport(kind, "csv")
	writeCSVAttachment(c, fmt.Sprintf("%s-report.csv", kind), func(c *gin.Context) error {
		return utils.WriteMapCSV(c.Writer, report)
	})
}

// getDashboard godoc
// @Summary Dashboard summary
// @Tags dashboard
// @Produce json
// @Success 200 {object} domain.DashboardData
// @Router /dashboard [get]
func (h *reportingHandler) getDashboard(c *gin.Context) {
	data, err := h.dashboardService.GetDashboardData(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch dashboard data")
		return
	}
	c.JSON(http.StatusOK, data)
}
