package catalogController

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Oleksandr-DUIKT/coffee-bot-telebot-pd-41/store"
)

// UpdateCoffee replaces every field of an existing coffee by ID.
func UpdateCoffee(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid coffee ID"})
			return
		}

		var input CoffeeInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if err := s.UpdateCoffee(uint(id), input.Name, input.Description, input.PictureURL, *input.Price); err != nil {
			if errors.Is(err, store.ErrCoffeeNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Coffee not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update coffee"})
			return
		}

		coffee, err := s.GetCoffee(uint(id))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch updated coffee"})
			return
		}

		c.JSON(http.StatusOK, coffee)
	}
}
