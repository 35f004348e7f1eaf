package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Oleksandr-DUIKT/coffee-bot-telebot-pd-41/store"
)

// SetupRoutes is the single entry-point that wires up the route groups.
func SetupRoutes(r *gin.Engine, s *store.Store) {
	// Admin routes (API-Key-protected)
	SetupAdminRoutes(r, s)
}
