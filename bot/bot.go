package bot

import (
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Oleksandr-DUIKT/coffee-bot-telebot-pd-41/store"
)

// client is the slice of the Telegram API the handlers actually use.
type client interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// Bot maps inbound Telegram updates onto store operations and sends the
// rendered replies back. It keeps no per-chat state; everything a button needs
// travels inside its callback data.
type Bot struct {
	api    *tgbotapi.BotAPI
	client client
	store  *store.Store
}

func New(api *tgbotapi.BotAPI, s *store.Store) *Bot {
	return &Bot{api: api, client: api, store: s}
}

// Run long-polls for updates until the process exits. One failed update never
// stops the loop.
func (b *Bot) Run() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	log.Printf("🤖 Bot authorized as @%s", b.api.Self.UserName)

	for update := range b.api.GetUpdatesChan(u) {
		b.HandleUpdate(update)
	}
}

// HandleUpdate dispatches a single update to its handler.
func (b *Bot) HandleUpdate(update tgbotapi.Update) {
	switch {
	case update.Message != nil:
		b.handleMessage(update.Message)
	case update.CallbackQuery != nil:
		b.handleCallback(update.CallbackQuery)
	}
}

func (b *Bot) handleMessage(msg *tgbotapi.Message) {
	if msg.IsCommand() {
		switch msg.Command() {
		case "start", "help":
			b.sendWelcome(msg.Chat.ID)
		}
		return
	}

	switch msg.Text {
	case btnMenu:
		b.listCoffees(msg.Chat.ID)
	case btnRandom:
		b.recommendCoffee(msg.Chat.ID)
	case btnCart:
		b.viewCart(msg.Chat.ID, msg.From.ID)
	case btnClearCart:
		b.clearCart(msg.Chat.ID, msg.From.ID)
	}
}

func (b *Bot) handleCallback(query *tgbotapi.CallbackQuery) {
	action, err := DecodeCallback(query.Data)
	if err != nil {
		log.Printf("⚠️ Ignoring callback: %v", err)
		b.answerCallback(query.ID, "")
		return
	}

	switch a := action.(type) {
	case SelectCoffee:
		b.answerCallback(query.ID, "")
		b.showCoffeeDetails(query.Message.Chat.ID, a.CoffeeID)
	case AddToCart:
		b.addToCart(query, a)
	case ListCatalog:
		b.relistCoffees(query)
	case Checkout:
		b.checkout(query)
	}
}

func (b *Bot) answerCallback(callbackID, text string) {
	if _, err := b.client.Request(tgbotapi.NewCallback(callbackID, text)); err != nil {
		log.Printf("❌ Failed to answer callback: %v", err)
	}
}

func (b *Bot) send(c tgbotapi.Chattable) {
	if _, err := b.client.Send(c); err != nil {
		log.Printf("❌ Failed to send message: %v", err)
	}
}
