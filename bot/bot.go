package bot

import (
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Notifier pushes checkout invoices to the operator's Telegram chat. The
// order itself travels over the customer's WhatsApp deep link; this is a
// best-effort heads-up for the operator, not a delivery guarantee.
type Notifier struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

func NewNotifier(token string, chatID int64) (*Notifier, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	return &Notifier{api: api, chatID: chatID}, nil
}

// OrderPlaced sends the invoice text for userID's checkout. Safe to call on
// a nil Notifier; send failures are logged and swallowed.
func (n *Notifier) OrderPlaced(userID, invoice string) {
	if n == nil || n.chatID == 0 {
		return
	}
	text := fmt.Sprintf("New checkout from %s:\n\n%s", userID, invoice)
	if _, err := n.api.Send(tgbotapi.NewMessage(n.chatID, text)); err != nil {
		log.Printf("bot: notify order for %s: %v", userID, err)
	}
}
