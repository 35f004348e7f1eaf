package store

import (
	"errors"

	"github.com/Oleksandr-DUIKT/coffee-bot-telebot-pd-41/models"
	"gorm.io/gorm"
)

var (
	// ErrCoffeeNotFound marks "no such coffee", as opposed to a database failure.
	ErrCoffeeNotFound = errors.New("coffee not found")
	// ErrInvalidCount is returned when a cart operation is asked to add a non-positive count.
	ErrInvalidCount = errors.New("count must be at least 1")
)

// Store owns the coffees and cart_items relations. All access to them goes
// through its methods; each write commits as a single transaction.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Init creates both tables if they are missing. Safe to call on every boot.
func (s *Store) Init() error {
	return s.db.AutoMigrate(&models.Coffee{}, &models.CartItem{})
}

// AddCoffee inserts a new coffee and returns its generated ID.
func (s *Store) AddCoffee(name, description, pictureURL string, price float64) (uint, error) {
	coffee := models.Coffee{
		Name:        name,
		Description: description,
		PictureURL:  pictureURL,
		Price:       price,
	}
	if err := s.db.Create(&coffee).Error; err != nil {
		return 0, err
	}
	return coffee.ID, nil
}

// UpdateCoffee replaces every field of the coffee with the given ID and
// refreshes its UpdatedAt timestamp.
func (s *Store) UpdateCoffee(id uint, name, description, pictureURL string, price float64) error {
	result := s.db.Model(&models.Coffee{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":        name,
		"description": description,
		"picture_url": pictureURL,
		"price":       price,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCoffeeNotFound
	}
	return nil
}

// DeleteCoffee removes the coffee and every cart item referencing it, in one
// transaction.
func (s *Store) DeleteCoffee(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("coffee_id = ?", id).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Coffee{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrCoffeeNotFound
		}
		return nil
	})
}

// GetCoffee fetches one coffee by ID.
func (s *Store) GetCoffee(id uint) (*models.Coffee, error) {
	var coffee models.Coffee
	if err := s.db.First(&coffee, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCoffeeNotFound
		}
		return nil, err
	}
	return &coffee, nil
}

// ListCoffees returns the whole catalog ordered by name.
func (s *Store) ListCoffees() ([]models.Coffee, error) {
	var coffees []models.Coffee
	if err := s.db.Order("name").Find(&coffees).Error; err != nil {
		return nil, err
	}
	return coffees, nil
}

// AddToCart adds count units of a coffee to the user's cart. If the user
// already has that coffee in the cart, the counts are merged; the cart never
// holds two rows for the same (user, coffee) pair.
func (s *Store) AddToCart(userID int64, coffeeID uint, count int) error {
	if count < 1 {
		return ErrInvalidCount
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		var coffee models.Coffee
		if err := tx.Select("id").First(&coffee, coffeeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCoffeeNotFound
			}
			return err
		}

		var item models.CartItem
		err := tx.Where("user_id = ? AND coffee_id = ?", userID, coffeeID).First(&item).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				newItem := models.CartItem{
					UserID:   userID,
					CoffeeID: coffeeID,
					Count:    count,
				}
				return tx.Create(&newItem).Error
			}
			return err
		}

		return tx.Model(&item).Update("count", item.Count+count).Error
	})
}

// ClearCart removes every cart item belonging to one user.
func (s *Store) ClearCart(userID int64) error {
	return s.db.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
}

// ClearAllCarts removes every cart item for every user.
func (s *Store) ClearAllCarts() error {
	return s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.CartItem{}).Error
}

// CartLine is one cart row joined with its coffee. TotalPrice is always
// Price * Count. UserID is filled by AllCartItems only.
type CartLine struct {
	UserID      int64   `json:"user_id,omitempty"`
	CoffeeID    uint    `json:"coffee_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	PictureURL  string  `json:"picture_url"`
	Price       float64 `json:"price"`
	Count       int     `json:"count"`
	TotalPrice  float64 `json:"total_price"`
}

// CartItems returns one user's cart with coffee details and per-line totals.
func (s *Store) CartItems(userID int64) ([]CartLine, error) {
	var lines []CartLine
	err := s.db.Table("cart_items").
		Select("coffees.id AS coffee_id, coffees.name, coffees.description, coffees.picture_url, coffees.price, cart_items.count, coffees.price * cart_items.count AS total_price").
		Joins("JOIN coffees ON coffees.id = cart_items.coffee_id").
		Where("cart_items.user_id = ?", userID).
		Scan(&lines).Error
	if err != nil {
		return nil, err
	}
	return lines, nil
}

// AllCartItems returns every user's cart lines, each carrying its owner's ID.
func (s *Store) AllCartItems() ([]CartLine, error) {
	var lines []CartLine
	err := s.db.Table("cart_items").
		Select("cart_items.user_id, coffees.id AS coffee_id, coffees.name, coffees.description, coffees.picture_url, coffees.price, cart_items.count, coffees.price * cart_items.count AS total_price").
		Joins("JOIN coffees ON coffees.id = cart_items.coffee_id").
		Scan(&lines).Error
	if err != nil {
		return nil, err
	}
	return lines, nil
}
