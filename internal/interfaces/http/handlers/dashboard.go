// internal/interfaces/http/handlers/dashboard.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/domain/dashboard"
	"github.com/your-org/storefront-backend/internal/domain/schema"
	"gorm.io/gorm"
)

// DashboardHandler handles admin dashboard endpoints
type DashboardHandler struct {
	dashboardService *dashboard.Service
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(db *gorm.DB, info schema.Info) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboard.NewService(db, info),
	}
}

// GetStats handles GET /admin/dashboard
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.dashboardService.GetStats()
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "Dashboard statistics retrieved successfully", stats)
}
