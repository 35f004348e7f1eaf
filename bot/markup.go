package bot

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Oleksandr-DUIKT/coffee-bot-telebot-pd-41/models"
	"github.com/Oleksandr-DUIKT/coffee-bot-telebot-pd-41/store"
)

// Main reply-keyboard labels. Incoming messages are matched against these
// verbatim, so they double as the menu "commands".
const (
	btnMenu      = "📋 Меню"
	btnRandom    = "🎲 Випадкова кава"
	btnCart      = "🛒 Кошик"
	btnClearCart = "❌ Очистити кошик"
)

func mainMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnMenu),
			tgbotapi.NewKeyboardButton(btnRandom),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnCart),
			tgbotapi.NewKeyboardButton(btnClearCart),
		),
	)
}

// coffeeListKeyboard renders one tappable row per coffee, each carrying the
// coffee's id in its callback data.
func coffeeListKeyboard(coffees []models.Coffee) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(coffees))
	for _, coffee := range coffees {
		label := fmt.Sprintf("%s - $%.2f", coffee.Name, coffee.Price)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, SelectCoffee{CoffeeID: coffee.ID}.Encode()),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func coffeeDetailKeyboard(coffeeID uint) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Додати в кошик", AddToCart{CoffeeID: coffeeID, Count: 1}.Encode()),
			tgbotapi.NewInlineKeyboardButtonData("Додати 3 в кошик", AddToCart{CoffeeID: coffeeID, Count: 3}.Encode()),
		),
	)
}

func checkoutKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Оформити замовлення", Checkout{}.Encode()),
		),
	)
}

func formatCoffeeDetails(coffee *models.Coffee) string {
	return fmt.Sprintf("*%s*\n\n%s\n\n*Ціна:* $%.2f", coffee.Name, coffee.Description, coffee.Price)
}

func formatCartLine(line store.CartLine) string {
	return fmt.Sprintf("• %s - %d x $%.2f = $%.2f", line.Name, line.Count, line.Price, line.TotalPrice)
}
