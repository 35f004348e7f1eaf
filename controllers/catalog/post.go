package catalogController

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Oleksandr-DUIKT/coffee-bot-telebot-pd-41/store"
)

type CoffeeInput struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	PictureURL  string   `json:"picture_url"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
}

// CreateCoffee adds a new coffee to the catalog.
func CreateCoffee(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CoffeeInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		id, err := s.AddCoffee(input.Name, input.Description, input.PictureURL, *input.Price)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create coffee"})
			return
		}

		coffee, err := s.GetCoffee(id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch created coffee"})
			return
		}

		c.JSON(http.StatusCreated, coffee)
	}
}
