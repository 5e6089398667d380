package handler

import (
	th "github.com/mymmrac/telego/telegohandler"

	"deal_service/internal/transport/bot/middleware"
	"deal_service/internal/transport/bot/view"
)

func (h *Handler) RegisterRoutes(bh *th.BotHandler, adminID int64) {
	adminGroup := bh.Group(th.AnyMessage())
	adminGroup.Use(middleware.AdminOnly(adminID))

	adminGroup.HandleMessage(h.OnStart, th.CommandEqual("start"))
	adminGroup.HandleMessage(h.OnDeals, th.CommandEqual("deals"))
	adminGroup.HandleMessage(h.OnDeal, th.CommandEqual("deal"))

	cbGroup := bh.Group(th.AnyCallbackQuery())
	cbGroup.Use(middleware.AdminOnly(adminID))

	cbGroup.HandleCallbackQuery(h.OnDealsPage, th.CallbackDataPrefix(view.PageCallbackData))
}
