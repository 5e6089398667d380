package bot_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mymmrac/telego"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"deal_service/internal/domain"
	"deal_service/internal/domain/entity"
	"deal_service/internal/transport/bot"
	"deal_service/internal/transport/bot/handler"
	"deal_service/pkg/errcodes"
)

const (
	testToken = "123456:AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"
	adminID   = 99
)

const firstUpdates = `{"ok":true,"result":[
	{"update_id":1,"message":{"message_id":1,"date":0,
		"chat":{"id":100,"type":"private"},"from":{"id":100,"is_bot":false,"first_name":"S"},"text":"/deal 7"}},
	{"update_id":2,"message":{"message_id":2,"date":0,
		"chat":{"id":99,"type":"private"},"from":{"id":99,"is_bot":false,"first_name":"A"},"text":"/deal 7"}}
]}`

// fakeAPI отдаёт два обновления и пересылает тела sendMessage в канал.
func fakeAPI(t *testing.T) (*httptest.Server, <-chan string) {
	t.Helper()

	var polled atomic.Bool
	sent := make(chan string, 8)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")

		switch {
		case strings.HasSuffix(r.URL.Path, "/getUpdates"):
			if polled.CompareAndSwap(false, true) {
				_, _ = io.WriteString(w, firstUpdates)
				return
			}

			time.Sleep(20 * time.Millisecond)
			_, _ = io.WriteString(w, `{"ok":true,"result":[]}`)
		case strings.HasSuffix(r.URL.Path, "/sendMessage"):
			sent <- string(body)
			_, _ = io.WriteString(w, `{"ok":true,"result":{"message_id":3,"date":0,"chat":{"id":99,"type":"private"}}}`)
		default:
			_, _ = io.WriteString(w, `{"ok":true,"result":true}`)
		}
	}))
	t.Cleanup(srv.Close)

	return srv, sent
}

func TestBotAnswersAdminOnly(t *testing.T) {
	rq := require.New(t)

	srv, sent := fakeAPI(t)

	deals := &handler.DealReaderMock{
		GetByIDFunc: func(_ context.Context, id int64) (*entity.Deal, error) {
			if id != 7 {
				return nil, domain.NewError(errcodes.DealNotFound, "deal not found")
			}

			return &entity.Deal{ID: 7, Title: "Renewal", CompanyID: 1, Value: decimal.NewFromInt(10)}, nil
		},
	}

	b, err := bot.New(testToken, adminID, deals,
		telego.WithAPIServer(srv.URL),
		telego.WithDiscardLogger(),
	)
	rq.NoError(err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- b.Run(ctx)
	}()

	select {
	case body := <-sent:
		rq.Contains(body, `"chat_id":99`)
		rq.Contains(body, "Renewal")
	case <-time.After(5 * time.Second):
		rq.FailNow("admin message was not answered")
	}

	// сообщение от постороннего пользователя не обрабатывается
	select {
	case body := <-sent:
		rq.FailNow("unexpected reply", body)
	case <-time.After(200 * time.Millisecond):
	}

	rq.Len(deals.GetByIDCalls(), 1)

	cancel()

	select {
	case err := <-done:
		rq.NoError(err)
	case <-time.After(5 * time.Second):
		rq.FailNow("bot did not stop")
	}
}
