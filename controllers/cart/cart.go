package cartControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Oleksandr-DUIKT/coffee-bot-telebot-pd-41/store"
)

// GET /admin/carts
func GetAllCarts(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		lines, err := s.AllCartItems()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch carts"})
			return
		}
		c.JSON(http.StatusOK, lines)
	}
}

// GET /admin/carts/:user_id
func GetUserCart(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user_id"})
			return
		}

		lines, err := s.CartItems(userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, lines)
	}
}

// DELETE /admin/carts/:user_id
func ClearUserCart(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user_id"})
			return
		}

		if err := s.ClearCart(userID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

// DELETE /admin/carts
func ClearAllCarts(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := s.ClearAllCarts(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear carts"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "All carts cleared"})
	}
}
