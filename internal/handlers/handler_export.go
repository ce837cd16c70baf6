package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SscSPs/digital_khata_client/internal/middleware"
	"github.com/gin-gonic/gin"
)

// writeCSVAttachment streams a CSV download. Headers are sent before write runs,
// so a write failure can only be logged.
func writeCSVAttachment(c *gin.Context, filename string, write func(c *gin.Context) error) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Status(http.StatusOK)
	if err := write(c); err != nil {
		middleware.GetLoggerFromContext(c).Error("Failed to write CSV export",
			slog.String("file", filename),
			slog.String("error", err.Error()),
		)
	}
}
