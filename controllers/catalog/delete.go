package catalogController

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Oleksandr-DUIKT/coffee-bot-telebot-pd-41/store"
)

// DeleteCoffee removes a coffee and every cart item that references it.
func DeleteCoffee(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid coffee ID"})
			return
		}

		if err := s.DeleteCoffee(uint(id)); err != nil {
			if errors.Is(err, store.ErrCoffeeNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Coffee not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete coffee"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Coffee deleted successfully"})
	}
}
