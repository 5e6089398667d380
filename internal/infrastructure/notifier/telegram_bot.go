package notifier

import (
	"context"
	"fmt"
	"html"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"
)

// TelegramBot пересылает события сделок в чат.
type TelegramBot struct {
	bot    *telego.Bot
	chatID int64
}

func NewTelegramBot(token string, chatID int64, opts ...telego.BotOption) (*TelegramBot, error) {
	bot, err := telego.NewBot(token, opts...)
	if err != nil {
		return nil, fmt.Errorf("create bot: %w", err)
	}

	return &TelegramBot{
		bot:    bot,
		chatID: chatID,
	}, nil
}

func (b *TelegramBot) NotifyDeal(ctx context.Context, eventType string, dealID int64) error {
	text := fmt.Sprintf(
		"<b>%s</b>\n\nDeal: <code>%d</code>",
		html.EscapeString(eventTitle(eventType)),
		dealID,
	)

	msg := tu.Message(
		tu.ID(b.chatID),
		text,
	).WithParseMode(telego.ModeHTML)

	if _, err := b.bot.SendMessage(ctx, msg); err != nil {
		return fmt.Errorf("send message: %w", err)
	}

	return nil
}

func eventTitle(eventType string) string {
	switch eventType {
	case "deal:created":
		return "Deal created"
	case "deal:updated":
		return "Deal updated"
	case "deal:deleted":
		return "Deal deleted"
	default:
		return eventType
	}
}

// Nop используется, когда токен бота не задан.
type Nop struct{}

func (Nop) NotifyDeal(context.Context, string, int64) error {
	return nil
}
