package view_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/mymmrac/telego"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"deal_service/internal/domain/entity"
	"deal_service/internal/transport/bot/view"
)

func makeDeals(n int) []*entity.Deal {
	deals := make([]*entity.Deal, 0, n)
	for i := 1; i <= n; i++ {
		deals = append(deals, &entity.Deal{
			ID:    int64(i),
			Title: fmt.Sprintf("Deal %d", i),
			Value: decimal.NewFromInt(int64(i)),
		})
	}

	return deals
}

func TestPage(t *testing.T) {
	testCases := []struct {
		name       string
		total      int
		page       int
		wantPage   int
		wantPages  int
		wantFirst  int64
		wantLength int
	}{
		{name: "Empty", total: 0, page: 1, wantPage: 1, wantPages: 1, wantLength: 0},
		{name: "First", total: 25, page: 1, wantPage: 1, wantPages: 3, wantFirst: 1, wantLength: 10},
		{name: "Last partial", total: 25, page: 3, wantPage: 3, wantPages: 3, wantFirst: 21, wantLength: 5},
		{name: "Beyond last", total: 25, page: 9, wantPage: 3, wantPages: 3, wantFirst: 21, wantLength: 5},
		{name: "Below first", total: 5, page: 0, wantPage: 1, wantPages: 1, wantFirst: 1, wantLength: 5},
		{name: "Exact", total: 20, page: 2, wantPage: 2, wantPages: 2, wantFirst: 11, wantLength: 10},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			deals, page, pages := view.Page(makeDeals(tc.total), tc.page)
			rq.Equal(tc.wantPage, page)
			rq.Equal(tc.wantPages, pages)
			rq.Len(deals, tc.wantLength)

			if tc.wantLength > 0 {
				rq.Equal(tc.wantFirst, deals[0].ID)
			}
		})
	}
}

func TestDealList(t *testing.T) {
	rq := require.New(t)

	text := view.DealList([]*entity.Deal{
		{ID: 3, Title: "<Acme & Co>", Value: decimal.RequireFromString("12.5")},
	}, 1, 2)

	rq.Contains(text, "стр. 1/2")
	rq.Contains(text, "&lt;Acme &amp; Co&gt;")
	rq.Contains(text, "12.50")

	rq.Contains(view.DealList(nil, 1, 1), "Сделок пока нет")
}

func TestDeal(t *testing.T) {
	rq := require.New(t)

	deal := &entity.Deal{
		ID:            7,
		Title:         "Renewal",
		CompanyID:     2,
		DistributorID: lo.ToPtr[int64](5),
		TagIDs:        []int64{1, 4},
		Value:         decimal.NewFromInt(100),
		UpdatedAt:     time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	text := view.Deal(deal)
	rq.Contains(text, "<code>7</code>")
	rq.Contains(text, "Дистрибьютор: 5")
	rq.Contains(text, "Теги: 1, 4")
	rq.Contains(text, "100.00")
	rq.Contains(text, "2024-03-01 12:00:00")

	deal.DistributorID = nil
	deal.TagIDs = []int64{}

	text = view.Deal(deal)
	rq.Contains(text, "Дистрибьютор: —")
	rq.Contains(text, "Теги: —")
}

func TestPaginationKeyboard(t *testing.T) {
	testCases := []struct {
		name     string
		page     int
		pages    int
		wantData []string
	}{
		{name: "Single", page: 1, pages: 1, wantData: []string{"noop"}},
		{name: "First", page: 1, pages: 3, wantData: []string{"noop", "deals_page:2"}},
		{name: "Middle", page: 2, pages: 3, wantData: []string{"deals_page:1", "noop", "deals_page:3"}},
		{name: "Last", page: 3, pages: 3, wantData: []string{"deals_page:2", "noop"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			kb := view.PaginationKeyboard(tc.page, tc.pages)
			rq.Len(kb.InlineKeyboard, 1)

			data := lo.Map(kb.InlineKeyboard[0], func(b telego.InlineKeyboardButton, _ int) string {
				return b.CallbackData
			})
			rq.Equal(tc.wantData, data)
		})
	}
}
