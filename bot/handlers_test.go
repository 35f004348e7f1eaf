package bot

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Oleksandr-DUIKT/coffee-bot-telebot-pd-41/store"
)

// fakeClient records everything the bot tries to deliver.
type fakeClient struct {
	sent     []tgbotapi.Chattable
	requests []tgbotapi.Chattable
}

func (f *fakeClient) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.sent = append(f.sent, c)
	return tgbotapi.Message{}, nil
}

func (f *fakeClient) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	f.requests = append(f.requests, c)
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func newTestBot(t *testing.T) (*Bot, *fakeClient, *store.Store) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "coffee_test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	s := store.New(db)
	require.NoError(t, s.Init())

	client := &fakeClient{}
	return &Bot{client: client, store: s}, client, s
}

func messageUpdate(userID int64, text string) tgbotapi.Update {
	return tgbotapi.Update{
		Message: &tgbotapi.Message{
			Text: text,
			From: &tgbotapi.User{ID: userID},
			Chat: &tgbotapi.Chat{ID: userID},
		},
	}
}

func callbackUpdate(userID int64, data string) tgbotapi.Update {
	return tgbotapi.Update{
		CallbackQuery: &tgbotapi.CallbackQuery{
			ID:   "cb-1",
			Data: data,
			From: &tgbotapi.User{ID: userID},
			Message: &tgbotapi.Message{
				MessageID: 7,
				Chat:      &tgbotapi.Chat{ID: userID},
			},
		},
	}
}

func lastMessage(t *testing.T, client *fakeClient) tgbotapi.MessageConfig {
	t.Helper()
	require.NotEmpty(t, client.sent)
	msg, ok := client.sent[len(client.sent)-1].(tgbotapi.MessageConfig)
	require.True(t, ok, "last sent item is %T, want MessageConfig", client.sent[len(client.sent)-1])
	return msg
}

func lastCallbackAnswer(t *testing.T, client *fakeClient) tgbotapi.CallbackConfig {
	t.Helper()
	require.NotEmpty(t, client.requests)
	cb, ok := client.requests[len(client.requests)-1].(tgbotapi.CallbackConfig)
	require.True(t, ok, "last request is %T, want CallbackConfig", client.requests[len(client.requests)-1])
	return cb
}

func TestWelcomeShowsMainMenu(t *testing.T) {
	b, client, _ := newTestBot(t)

	b.HandleUpdate(tgbotapi.Update{
		Message: &tgbotapi.Message{
			Text:     "/start",
			From:     &tgbotapi.User{ID: 42},
			Chat:     &tgbotapi.Chat{ID: 42},
			Entities: []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: 6}},
		},
	})

	msg := lastMessage(t, client)
	assert.Contains(t, msg.Text, "Ласкаво просимо")

	markup, ok := msg.ReplyMarkup.(tgbotapi.ReplyKeyboardMarkup)
	require.True(t, ok)
	var labels []string
	for _, row := range markup.Keyboard {
		for _, btn := range row {
			labels = append(labels, btn.Text)
		}
	}
	assert.ElementsMatch(t, []string{btnMenu, btnRandom, btnCart, btnClearCart}, labels)
}

func TestMenuEmptyCatalog(t *testing.T) {
	b, client, _ := newTestBot(t)

	b.HandleUpdate(messageUpdate(42, btnMenu))

	assert.Equal(t, noCoffeeText, lastMessage(t, client).Text)
}

func TestMenuListsCoffeesWithPrices(t *testing.T) {
	b, client, s := newTestBot(t)

	latteID, err := s.AddCoffee("Latte", "", "", 3.5)
	require.NoError(t, err)
	_, err = s.AddCoffee("Espresso", "", "", 2.0)
	require.NoError(t, err)

	b.HandleUpdate(messageUpdate(42, btnMenu))

	msg := lastMessage(t, client)
	assert.Equal(t, menuHeaderText, msg.Text)

	markup, ok := msg.ReplyMarkup.(tgbotapi.InlineKeyboardMarkup)
	require.True(t, ok)
	require.Len(t, markup.InlineKeyboard, 2)

	// Catalog is name-ordered: Espresso first.
	first := markup.InlineKeyboard[0][0]
	assert.Equal(t, "Espresso - $2.00", first.Text)
	second := markup.InlineKeyboard[1][0]
	assert.Equal(t, "Latte - $3.50", second.Text)
	require.NotNil(t, second.CallbackData)
	assert.Equal(t, fmt.Sprintf("coffee_%d", latteID), *second.CallbackData)
}

func TestRandomCoffeeShowsDetails(t *testing.T) {
	b, client, s := newTestBot(t)

	_, err := s.AddCoffee("Latte", "Milk and espresso", "", 3.5)
	require.NoError(t, err)

	b.HandleUpdate(messageUpdate(42, btnRandom))

	msg := lastMessage(t, client)
	assert.Contains(t, msg.Text, "*Latte*")
	assert.Contains(t, msg.Text, "Milk and espresso")
	assert.Contains(t, msg.Text, "$3.50")

	markup, ok := msg.ReplyMarkup.(tgbotapi.InlineKeyboardMarkup)
	require.True(t, ok)
	require.Len(t, markup.InlineKeyboard, 1)
	require.Len(t, markup.InlineKeyboard[0], 2)
}

func TestCoffeeDetailsWithPictureSendsPhoto(t *testing.T) {
	b, client, s := newTestBot(t)

	id, err := s.AddCoffee("Latte", "Milk and espresso", "http://example.com/latte.jpg", 3.5)
	require.NoError(t, err)

	b.HandleUpdate(callbackUpdate(42, SelectCoffee{CoffeeID: id}.Encode()))

	require.NotEmpty(t, client.sent)
	photo, ok := client.sent[len(client.sent)-1].(tgbotapi.PhotoConfig)
	require.True(t, ok, "expected a photo when picture_url is set")
	assert.Contains(t, photo.Caption, "*Latte*")
}

func TestCoffeeDetailsUnknownID(t *testing.T) {
	b, client, _ := newTestBot(t)

	b.HandleUpdate(callbackUpdate(42, SelectCoffee{CoffeeID: 999}.Encode()))

	assert.Equal(t, coffeeMissingText, lastMessage(t, client).Text)
}

func TestAddToCartCallback(t *testing.T) {
	b, client, s := newTestBot(t)

	id, err := s.AddCoffee("Latte", "", "", 3.5)
	require.NoError(t, err)

	b.HandleUpdate(callbackUpdate(42, AddToCart{CoffeeID: id, Count: 3}.Encode()))

	answer := lastCallbackAnswer(t, client)
	assert.Equal(t, "Додано 3 Latte до кошика!", answer.Text)

	lines, err := s.CartItems(42)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Count)
}

func TestAddToCartCallbackUnknownCoffee(t *testing.T) {
	b, client, s := newTestBot(t)

	b.HandleUpdate(callbackUpdate(42, AddToCart{CoffeeID: 999, Count: 1}.Encode()))

	answer := lastCallbackAnswer(t, client)
	assert.Equal(t, genericErrorText, answer.Text)

	lines, err := s.CartItems(42)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestViewCartEmpty(t *testing.T) {
	b, client, _ := newTestBot(t)

	b.HandleUpdate(messageUpdate(42, btnCart))

	assert.Equal(t, cartEmptyText, lastMessage(t, client).Text)
}

func TestViewCartRendersLinesAndTotal(t *testing.T) {
	b, client, s := newTestBot(t)

	latte, err := s.AddCoffee("Latte", "", "", 3.5)
	require.NoError(t, err)
	espresso, err := s.AddCoffee("Espresso", "", "", 2.0)
	require.NoError(t, err)

	require.NoError(t, s.AddToCart(42, latte, 2))
	require.NoError(t, s.AddToCart(42, espresso, 3))

	b.HandleUpdate(messageUpdate(42, btnCart))

	msg := lastMessage(t, client)
	assert.Contains(t, msg.Text, "🛒 *Ваш кошик*")
	assert.Contains(t, msg.Text, "• Latte - 2 x $3.50 = $7.00")
	assert.Contains(t, msg.Text, "• Espresso - 3 x $2.00 = $6.00")
	assert.Contains(t, msg.Text, "*Усього: $13.00*")

	markup, ok := msg.ReplyMarkup.(tgbotapi.InlineKeyboardMarkup)
	require.True(t, ok)
	require.NotNil(t, markup.InlineKeyboard[0][0].CallbackData)
	assert.Equal(t, "checkout", *markup.InlineKeyboard[0][0].CallbackData)
}

func TestClearCartButtonScopedToUser(t *testing.T) {
	b, client, s := newTestBot(t)

	latte, err := s.AddCoffee("Latte", "", "", 3.5)
	require.NoError(t, err)
	require.NoError(t, s.AddToCart(42, latte, 1))
	require.NoError(t, s.AddToCart(77, latte, 2))

	b.HandleUpdate(messageUpdate(42, btnClearCart))

	assert.Equal(t, cartClearedText, lastMessage(t, client).Text)

	lines, err := s.CartItems(42)
	require.NoError(t, err)
	assert.Empty(t, lines)

	lines, err = s.CartItems(77)
	require.NoError(t, err)
	assert.Len(t, lines, 1)
}

func TestCheckoutClearsOnlyInitiatingUser(t *testing.T) {
	b, client, s := newTestBot(t)

	latte, err := s.AddCoffee("Latte", "", "", 3.5)
	require.NoError(t, err)
	require.NoError(t, s.AddToCart(42, latte, 1))
	require.NoError(t, s.AddToCart(77, latte, 2))

	b.HandleUpdate(callbackUpdate(42, Checkout{}.Encode()))

	require.NotEmpty(t, client.sent)
	edit, ok := client.sent[len(client.sent)-1].(tgbotapi.EditMessageTextConfig)
	require.True(t, ok)
	assert.Equal(t, checkoutDoneText, edit.Text)

	lines, err := s.CartItems(42)
	require.NoError(t, err)
	assert.Empty(t, lines)

	lines, err = s.CartItems(77)
	require.NoError(t, err)
	assert.Len(t, lines, 1, "checkout must not touch other users' carts")
}

func TestMalformedCallbackIsIgnored(t *testing.T) {
	b, client, s := newTestBot(t)

	latte, err := s.AddCoffee("Latte", "", "", 3.5)
	require.NoError(t, err)
	require.NoError(t, s.AddToCart(42, latte, 1))

	b.HandleUpdate(callbackUpdate(42, "add_1_0"))
	b.HandleUpdate(callbackUpdate(42, "drop_everything"))

	assert.Empty(t, client.sent, "malformed callbacks must not produce messages")
	assert.Len(t, client.requests, 2, "each callback still gets acknowledged")

	lines, err := s.CartItems(42)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].Count)
}
