package bot

import (
	"fmt"
	"log"
	"math/rand"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	welcomeText = "Ласкаво просимо до Coffee Shop Bot!\n\n" +
		"Ось що ви можете зробити:\n" +
		"📋 Перегляньте наш вибір кави\n" +
		"🎲 Отримайте випадкову рекомендацію кави\n" +
		"🛒 Переглянути кошик\n" +
		"❌ Очистіть кошик\n\n" +
		"Використовуйте кнопки нижче для навігації."

	menuHeaderText    = "Наше меню кави (настиність, щоб отримати більше інформації):"
	noCoffeeText      = "На жаль у нас зараз немає жодної кави"
	noCoffeeAltText   = "На жаль, у нас зараз немає жодної кави"
	noCoffeeEditText  = "На жаль у нас зараз намає кави"
	cartEmptyText     = "Ваш кошик порожній"
	cartClearedText   = "Кошик очищено"
	coffeeMissingText = "Кава не знайдена!"
	genericErrorText  = "Виникла помилка, спробуйте будь-ласка пізніше"
	checkoutDoneText  = "Наш менеджер зв'яжеться з вами для оформлення замовлення"
)

func (b *Bot) sendWelcome(chatID int64) {
	msg := tgbotapi.NewMessage(chatID, welcomeText)
	msg.ReplyMarkup = mainMenuKeyboard()
	b.send(msg)
}

func (b *Bot) listCoffees(chatID int64) {
	coffees, err := b.store.ListCoffees()
	if err != nil {
		log.Printf("❌ Failed to list coffees: %v", err)
		b.send(tgbotapi.NewMessage(chatID, genericErrorText))
		return
	}
	if len(coffees) == 0 {
		b.send(tgbotapi.NewMessage(chatID, noCoffeeText))
		return
	}

	msg := tgbotapi.NewMessage(chatID, menuHeaderText)
	msg.ReplyMarkup = coffeeListKeyboard(coffees)
	b.send(msg)
}

func (b *Bot) recommendCoffee(chatID int64) {
	coffees, err := b.store.ListCoffees()
	if err != nil {
		log.Printf("❌ Failed to list coffees: %v", err)
		b.send(tgbotapi.NewMessage(chatID, genericErrorText))
		return
	}
	if len(coffees) == 0 {
		b.send(tgbotapi.NewMessage(chatID, noCoffeeAltText))
		return
	}

	coffee := coffees[rand.Intn(len(coffees))]
	b.showCoffeeDetails(chatID, coffee.ID)
}

func (b *Bot) showCoffeeDetails(chatID int64, coffeeID uint) {
	coffee, err := b.store.GetCoffee(coffeeID)
	if err != nil {
		log.Printf("❌ Failed to fetch coffee %d: %v", coffeeID, err)
		b.send(tgbotapi.NewMessage(chatID, coffeeMissingText))
		return
	}

	text := formatCoffeeDetails(coffee)
	markup := coffeeDetailKeyboard(coffee.ID)

	if strings.TrimSpace(coffee.PictureURL) != "" {
		photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileURL(coffee.PictureURL))
		photo.Caption = text
		photo.ParseMode = tgbotapi.ModeMarkdown
		photo.ReplyMarkup = markup
		b.send(photo)
		return
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyMarkup = markup
	b.send(msg)
}

func (b *Bot) viewCart(chatID, userID int64) {
	lines, err := b.store.CartItems(userID)
	if err != nil {
		log.Printf("❌ Failed to fetch cart for user %d: %v", userID, err)
		b.send(tgbotapi.NewMessage(chatID, genericErrorText))
		return
	}
	if len(lines) == 0 {
		b.send(tgbotapi.NewMessage(chatID, cartEmptyText))
		return
	}

	var sb strings.Builder
	sb.WriteString("🛒 *Ваш кошик*\n\n")
	var total float64
	for _, line := range lines {
		sb.WriteString(formatCartLine(line))
		sb.WriteString("\n")
		total += line.TotalPrice
	}
	sb.WriteString(fmt.Sprintf("\n*Усього: $%.2f*", total))

	msg := tgbotapi.NewMessage(chatID, sb.String())
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyMarkup = checkoutKeyboard()
	b.send(msg)
}

func (b *Bot) clearCart(chatID, userID int64) {
	if err := b.store.ClearCart(userID); err != nil {
		log.Printf("❌ Failed to clear cart for user %d: %v", userID, err)
		b.send(tgbotapi.NewMessage(chatID, genericErrorText))
		return
	}
	b.send(tgbotapi.NewMessage(chatID, cartClearedText))
}

func (b *Bot) addToCart(query *tgbotapi.CallbackQuery, action AddToCart) {
	userID := query.From.ID

	if err := b.store.AddToCart(userID, action.CoffeeID, action.Count); err != nil {
		log.Printf("❌ Failed to add coffee %d to cart for user %d: %v", action.CoffeeID, userID, err)
		b.answerCallback(query.ID, genericErrorText)
		return
	}

	coffee, err := b.store.GetCoffee(action.CoffeeID)
	if err != nil {
		b.answerCallback(query.ID, genericErrorText)
		return
	}
	b.answerCallback(query.ID, fmt.Sprintf("Додано %d %s до кошика!", action.Count, coffee.Name))
}

func (b *Bot) relistCoffees(query *tgbotapi.CallbackQuery) {
	b.answerCallback(query.ID, "")

	chatID := query.Message.Chat.ID
	messageID := query.Message.MessageID

	coffees, err := b.store.ListCoffees()
	if err != nil {
		log.Printf("❌ Failed to list coffees: %v", err)
		b.send(tgbotapi.NewEditMessageText(chatID, messageID, genericErrorText))
		return
	}
	if len(coffees) == 0 {
		b.send(tgbotapi.NewEditMessageText(chatID, messageID, noCoffeeEditText))
		return
	}

	b.send(tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, menuHeaderText, coffeeListKeyboard(coffees)))
}

// checkout clears the tapping user's cart and replaces the cart view with the
// confirmation text.
func (b *Bot) checkout(query *tgbotapi.CallbackQuery) {
	b.answerCallback(query.ID, "")

	if err := b.store.ClearCart(query.From.ID); err != nil {
		log.Printf("❌ Checkout failed for user %d: %v", query.From.ID, err)
		b.send(tgbotapi.NewMessage(query.Message.Chat.ID, genericErrorText))
		return
	}

	b.send(tgbotapi.NewEditMessageText(query.Message.Chat.ID, query.Message.MessageID, checkoutDoneText))
}
