package view

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"

	"deal_service/internal/domain/entity"
)

const (
	StartMessage = "<b>Deal service</b>\n\n" +
		"/deals — список сделок\n" +
		"/deal <code>ID</code> — карточка сделки"

	DealUsage    = "Использование: /deal <code>ID</code>"
	DealNotFound = "Сделка не найдена"

	PageSize         = 10
	PageCallbackData = "deals_page"
)

// Page возвращает номер страницы в пределах [1, totalPages] и её сделки.
func Page(deals []*entity.Deal, page int) ([]*entity.Deal, int, int) {
	totalPages := max(1, (len(deals)+PageSize-1)/PageSize)
	page = min(max(page, 1), totalPages)

	start := min((page-1)*PageSize, len(deals))
	end := min(start+PageSize, len(deals))

	return deals[start:end], page, totalPages
}

func DealList(deals []*entity.Deal, page, totalPages int) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "<b>Сделки</b> (стр. %d/%d)\n\n", page, totalPages)

	if len(deals) == 0 {
		sb.WriteString("Сделок пока нет")
		return sb.String()
	}

	for _, d := range deals {
		fmt.Fprintf(&sb, "<code>%d</code> %s — %s\n", d.ID, html.EscapeString(d.Title), d.Value.StringFixed(2))
	}

	return sb.String()
}

func Deal(deal *entity.Deal) string {
	distributor := "—"
	if deal.DistributorID != nil {
		distributor = strconv.FormatInt(*deal.DistributorID, 10)
	}

	tags := "—"
	if len(deal.TagIDs) > 0 {
		ids := make([]string, 0, len(deal.TagIDs))
		for _, id := range deal.TagIDs {
			ids = append(ids, strconv.FormatInt(id, 10))
		}
		tags = strings.Join(ids, ", ")
	}

	return fmt.Sprintf(
		"<b>%s</b>\n\n"+
			"ID: <code>%d</code>\n"+
			"Компания: <code>%d</code>\n"+
			"Дистрибьютор: %s\n"+
			"Теги: %s\n"+
			"Сумма: %s\n"+
			"Обновлена: %s",
		html.EscapeString(deal.Title),
		deal.ID,
		deal.CompanyID,
		distributor,
		tags,
		deal.Value.StringFixed(2),
		deal.UpdatedAt.Format("2006-01-02 15:04:05"),
	)
}

func PaginationKeyboard(page, totalPages int) *telego.InlineKeyboardMarkup {
	var buttons []telego.InlineKeyboardButton

	if page > 1 {
		buttons = append(buttons, tu.InlineKeyboardButton("⬅️").
			WithCallbackData(fmt.Sprintf("%s:%d", PageCallbackData, page-1)))
	}

	buttons = append(buttons, tu.InlineKeyboardButton(fmt.Sprintf("%d / %d", page, totalPages)).
		WithCallbackData("noop"))

	if page < totalPages {
		buttons = append(buttons, tu.InlineKeyboardButton("➡️").
			WithCallbackData(fmt.Sprintf("%s:%d", PageCallbackData, page+1)))
	}

	return tu.InlineKeyboard(
		tu.InlineKeyboardRow(buttons...),
	)
}
