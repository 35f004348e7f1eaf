package bot

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadCallback is returned for callback data that matches no known shape.
var ErrBadCallback = errors.New("malformed callback data")

// CallbackData is the closed set of actions a button can carry. The encoded
// form round-trips through Telegram as an opaque string.
type CallbackData interface {
	Encode() string
}

// SelectCoffee opens the detail view of one coffee.
type SelectCoffee struct {
	CoffeeID uint
}

func (c SelectCoffee) Encode() string {
	return fmt.Sprintf("coffee_%d", c.CoffeeID)
}

// AddToCart puts Count units of one coffee into the tapping user's cart.
type AddToCart struct {
	CoffeeID uint
	Count    int
}

func (c AddToCart) Encode() string {
	return fmt.Sprintf("add_%d_%d", c.CoffeeID, c.Count)
}

// ListCatalog re-renders the catalog in place.
type ListCatalog struct{}

func (ListCatalog) Encode() string { return "list_coffee" }

// Checkout finishes the cart view for the tapping user.
type Checkout struct{}

func (Checkout) Encode() string { return "checkout" }

// DecodeCallback parses button data back into a typed action. Anything that
// does not match one of the four shapes exactly comes back as ErrBadCallback.
func DecodeCallback(data string) (CallbackData, error) {
	switch data {
	case "list_coffee":
		return ListCatalog{}, nil
	case "checkout":
		return Checkout{}, nil
	}

	parts := strings.Split(data, "_")
	switch {
	case len(parts) == 2 && parts[0] == "coffee":
		id, err := strconv.ParseUint(parts[1], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadCallback, data)
		}
		return SelectCoffee{CoffeeID: uint(id)}, nil

	case len(parts) == 3 && parts[0] == "add":
		id, err := strconv.ParseUint(parts[1], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadCallback, data)
		}
		count, err := strconv.Atoi(parts[2])
		if err != nil || count < 1 {
			return nil, fmt.Errorf("%w: %q", ErrBadCallback, data)
		}
		return AddToCart{CoffeeID: uint(id), Count: count}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrBadCallback, data)
}
