package catalogController

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Oleksandr-DUIKT/coffee-bot-telebot-pd-41/store"
)

// GetCoffees lists the whole catalog, name ascending.
func GetCoffees(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		coffees, err := s.ListCoffees()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch coffees"})
			return
		}
		c.JSON(http.StatusOK, coffees)
	}
}
