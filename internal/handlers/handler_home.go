package handlers

import (
	"net/http"

	"github.com/SscSPs/digital_khata_client/internal/metrics"
	"github.com/gin-gonic/gin"
)

// Version is set at build time.
var Version = "dev"

func getHome(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "Digital Khata client shell", "version": Version})
}

// registerHomeRoutes registers the root and the Prometheus scrape endpoint.
func registerHomeRoutes(r *gin.Engine) {
	r.GET("/", getHome)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))
}
