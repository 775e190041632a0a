package notification

import (
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"eventCheckout/internal/lib/export"
	"eventCheckout/internal/lib/logger/sl"
	"eventCheckout/internal/models"
)

// TelegramNotifier pings the admin chat when buyers act. With an empty token
// it stays disabled and every call is a no-op.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	log    *slog.Logger
}

func NewTelegramNotifier(token string, chatID int64, log *slog.Logger) (*TelegramNotifier, error) {
	if token == "" {
		log.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{log: log}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("init telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, log: log}, nil
}

func (n *TelegramNotifier) NotifyCheckoutCreated(c *models.Checkout) {
	n.send(fmt.Sprintf(
		"Nova compra %s: evento %s, %d vaga(s), %s",
		c.ID, c.EventID, c.Quantity, export.FormatCents(c.AmountInCents),
	))
}

func (n *TelegramNotifier) NotifyReceiptUploaded(checkoutID string, kind models.AttachmentKind) {
	n.send(fmt.Sprintf("Comprovante enviado na compra %s (%s)", checkoutID, kind))
}

func (n *TelegramNotifier) send(text string) {
	if n.bot == nil {
		return
	}

	if _, err := n.bot.Send(tgbotapi.NewMessage(n.chatID, text)); err != nil {
		n.log.Error("failed to send telegram notification", sl.Err(err))
	}
}
