package handler

import (
	"fmt"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"

	"deal_service/internal/transport/bot/view"
)

// OnDealsPage листает список сделок. Формат данных: "deals_page:<номер>".
func (h *Handler) OnDealsPage(ctx *th.Context, query telego.CallbackQuery) error {
	var page int
	if _, err := fmt.Sscanf(query.Data, view.PageCallbackData+":%d", &page); err != nil {
		page = 1
	}

	deals, err := h.deals.List(ctx)
	if err != nil {
		_ = ctx.Bot().AnswerCallbackQuery(ctx, tu.CallbackQuery(query.ID).
			WithText("Не удалось получить сделки").WithShowAlert())

		return fmt.Errorf("deals.List: %w", err)
	}

	pageDeals, page, totalPages := view.Page(deals, page)

	if query.Message != nil {
		// Telegram отвечает ошибкой, если текст не изменился
		_, _ = ctx.Bot().EditMessageText(ctx, &telego.EditMessageTextParams{
			ChatID:      tu.ID(query.Message.GetChat().ID),
			MessageID:   query.Message.GetMessageID(),
			Text:        view.DealList(pageDeals, page, totalPages),
			ParseMode:   telego.ModeHTML,
			ReplyMarkup: view.PaginationKeyboard(page, totalPages),
		})
	}

	_ = ctx.Bot().AnswerCallbackQuery(ctx, tu.CallbackQuery(query.ID))

	return nil
}
