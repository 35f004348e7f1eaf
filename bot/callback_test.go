package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallbackEncode(t *testing.T) {
	assert.Equal(t, "coffee_7", SelectCoffee{CoffeeID: 7}.Encode())
	assert.Equal(t, "add_7_3", AddToCart{CoffeeID: 7, Count: 3}.Encode())
	assert.Equal(t, "list_coffee", ListCatalog{}.Encode())
	assert.Equal(t, "checkout", Checkout{}.Encode())
}

func TestCallbackRoundTrip(t *testing.T) {
	actions := []CallbackData{
		SelectCoffee{CoffeeID: 12},
		AddToCart{CoffeeID: 12, Count: 1},
		AddToCart{CoffeeID: 3, Count: 3},
		ListCatalog{},
		Checkout{},
	}

	for _, action := range actions {
		decoded, err := DecodeCallback(action.Encode())
		require.NoError(t, err)
		assert.Equal(t, action, decoded)
	}
}

func TestDecodeCallbackRejectsMalformed(t *testing.T) {
	bad := []string{
		"",
		"coffee_",
		"coffee_abc",
		"coffee_1_2",
		"add_1",
		"add_x_1",
		"add_1_x",
		"add_1_0",  // zero count must not reach the store
		"add_1_-2", // negative count must not reach the store
		"checkout_now",
		"what_is_this",
	}

	for _, data := range bad {
		_, err := DecodeCallback(data)
		assert.ErrorIs(t, err, ErrBadCallback, "data %q", data)
	}
}
