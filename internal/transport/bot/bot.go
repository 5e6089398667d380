package bot

import (
	"context"
	"fmt"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"deal_service/internal/transport/bot/handler"
)

// Bot — административный Telegram-бот для просмотра сделок.
type Bot struct {
	bot     *telego.Bot
	handler *handler.Handler
	adminID int64
}

// New создает новый экземпляр бота. Обновления начинают приниматься в Run.
func New(token string, adminID int64, deals handler.DealReader, opts ...telego.BotOption) (*Bot, error) {
	bot, err := telego.NewBot(token, opts...)
	if err != nil {
		return nil, fmt.Errorf("telego.NewBot: %w", err)
	}

	return &Bot{
		bot:     bot,
		handler: handler.New(deals),
		adminID: adminID,
	}, nil
}

// Run получает обновления через long polling до отмены ctx.
func (b *Bot) Run(ctx context.Context) error {
	updates, err := b.bot.UpdatesViaLongPolling(ctx, &telego.GetUpdatesParams{
		Timeout: 60, //nolint:mnd
	})
	if err != nil {
		return fmt.Errorf("bot.UpdatesViaLongPolling: %w", err)
	}

	botHandler, err := th.NewBotHandler(b.bot, updates)
	if err != nil {
		return fmt.Errorf("th.NewBotHandler: %w", err)
	}

	b.handler.RegisterRoutes(botHandler, b.adminID)

	errCh := make(chan error, 1)
	go func() {
		errCh <- botHandler.Start()
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("botHandler.Start: %w", err)
		}
	}

	if err := botHandler.Stop(); err != nil {
		logger(ctx).Error("bot handler stop failed", "error", err)
	}

	logger(ctx).Info("admin bot stopped")

	return nil
}
