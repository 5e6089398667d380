package handler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"deal_service/internal/domain"
	"deal_service/internal/transport/bot/view"
	"deal_service/pkg/errcodes"
)

func (h *Handler) OnStart(ctx *th.Context, msg telego.Message) error {
	return h.sendHTML(ctx, msg.Chat.ID, view.StartMessage, nil)
}

func (h *Handler) OnDeals(ctx *th.Context, msg telego.Message) error {
	deals, err := h.deals.List(ctx)
	if err != nil {
		return fmt.Errorf("deals.List: %w", err)
	}

	pageDeals, page, totalPages := view.Page(deals, 1)

	return h.sendHTML(ctx, msg.Chat.ID, view.DealList(pageDeals, page, totalPages), view.PaginationKeyboard(page, totalPages))
}

func (h *Handler) OnDeal(ctx *th.Context, msg telego.Message) error {
	args := strings.Fields(msg.Text)
	if len(args) != 2 { //nolint:mnd
		return h.sendHTML(ctx, msg.Chat.ID, view.DealUsage, nil)
	}

	id, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil || id <= 0 {
		return h.sendHTML(ctx, msg.Chat.ID, view.DealUsage, nil)
	}

	deal, err := h.deals.GetByID(ctx, id)
	if err != nil {
		if domain.HasCode(err, errcodes.DealNotFound) {
			return h.sendHTML(ctx, msg.Chat.ID, view.DealNotFound, nil)
		}

		return fmt.Errorf("deals.GetByID: %w", err)
	}

	return h.sendHTML(ctx, msg.Chat.ID, view.Deal(deal), nil)
}

func (h *Handler) sendHTML(ctx *th.Context, chatID int64, text string, markup telego.ReplyMarkup) error {
	_, err := ctx.Bot().SendMessage(ctx, &telego.SendMessageParams{
		ChatID:      telego.ChatID{ID: chatID},
		Text:        text,
		ParseMode:   telego.ModeHTML,
		ReplyMarkup: markup,
	})
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}

	return nil
}
