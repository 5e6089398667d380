package notifier_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mymmrac/telego"
	"github.com/stretchr/testify/require"

	"deal_service/internal/infrastructure/notifier"
)

const testToken = "123456:AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"

func TestTelegramBotNotifyDeal(t *testing.T) {
	rq := require.New(t)

	var (
		gotPath string
		gotBody string
	)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotPath = r.URL.Path
		gotBody = string(body)

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"ok":true,"result":{"message_id":1,"date":0,"chat":{"id":42,"type":"private"}}}`)
	}))
	defer srv.Close()

	bot, err := notifier.NewTelegramBot(testToken, 42,
		telego.WithAPIServer(srv.URL),
		telego.WithDiscardLogger(),
	)
	rq.NoError(err)

	rq.NoError(bot.NotifyDeal(context.Background(), "deal:updated", 7))

	rq.Equal("/bot"+testToken+"/sendMessage", gotPath)
	rq.True(strings.Contains(gotBody, "Deal updated"), gotBody)
	rq.True(strings.Contains(gotBody, "42"), gotBody)
}

func TestTelegramBotNotifyDealError(t *testing.T) {
	rq := require.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`)
	}))
	defer srv.Close()

	bot, err := notifier.NewTelegramBot(testToken, 42,
		telego.WithAPIServer(srv.URL),
		telego.WithDiscardLogger(),
	)
	rq.NoError(err)

	rq.Error(bot.NotifyDeal(context.Background(), "deal:created", 7))
}

func TestNop(t *testing.T) {
	rq := require.New(t)

	rq.NoError(notifier.Nop{}.NotifyDeal(context.Background(), "deal:deleted", 1))
}
