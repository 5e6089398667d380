package application

import (
	"fmt"
	"net/http"

	"github.com/mymmrac/telego"

	"deal_service/internal/config"
	"deal_service/internal/infrastructure/notifier"
	"deal_service/internal/worker"
	"deal_service/pkg/httpx"
	"deal_service/pkg/logx"
)

func newNotifier(cfg config.Bot, logFieldMaxLen int) (worker.Notifier, error) {
	if cfg.Token == "" {
		return notifier.Nop{}, nil
	}

	client := &http.Client{
		Transport: httpx.NewLoggingRoundTripper(
			http.DefaultTransport,
			httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker()),
			httpx.WithLogFieldMaxLen(logFieldMaxLen),
			httpx.WithUpstream("telegram"),
		),
	}

	bot, err := notifier.NewTelegramBot(cfg.Token, cfg.ChatID, telego.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("notifier.NewTelegramBot: %w", err)
	}

	return bot, nil
}
