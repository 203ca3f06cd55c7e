package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/csexamtest/examtest-backend/internal/response"
	"github.com/csexamtest/examtest-backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// DashboardHandler handles admin reporting endpoints.
type DashboardHandler struct {
	dashboardService *service.DashboardService
	exportService    *service.ExportService
	log              zerolog.Logger
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService *service.DashboardService, exportService *service.ExportService, log zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		exportService:    exportService,
		log:              log.With().Str("component", "dashboard_handler").Logger(),
	}
}

// Stats godoc
// GET /api/admin/stats
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.dashboardService.Stats(c.Request.Context())
	if err != nil {
		fail(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, stats)
}

// RecentActivity godoc
// GET /api/admin/recent-activity
func (h *DashboardHandler) RecentActivity(c *gin.Context) {
	activity, err := h.dashboardService.RecentActivity(c.Request.Context())
	if err != nil {
		fail(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, activity)
}

// StudentResults godoc
// GET /api/admin/student-results
func (h *DashboardHandler) StudentResults(c *gin.Context) {
	results, err := h.dashboardService.StudentResults(c.Request.Context())
	if err != nil {
		fail(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, results)
}

// ExportStudentResults godoc
// GET /api/admin/student-results/export
// Streams the results as an xlsx attachment.
func (h *DashboardHandler) ExportStudentResults(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.exportService.WriteStudentResults(c.Request.Context(), &buf); err != nil {
		fail(c, h.log, err)
		return
	}

	filename := fmt.Sprintf("student-results-%s.xlsx", time.Now().UTC().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
