package catalogController

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Oleksandr-DUIKT/coffee-bot-telebot-pd-41/store"
)

// GetCoffeeByID returns a single coffee.
// URL param: /admin/coffees/:id
func GetCoffeeByID(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid coffee ID"})
			return
		}

		coffee, err := s.GetCoffee(uint(id))
		if err != nil {
			if errors.Is(err, store.ErrCoffeeNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Coffee not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve coffee"})
			}
			return
		}
		c.JSON(http.StatusOK, coffee)
	}
}
