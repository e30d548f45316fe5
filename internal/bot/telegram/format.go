package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/whdzera/atem/internal/browse"
)

const notFoundImage = "https://i.imgur.com/lPSo3Tt.jpg"

// listText renders one page of a browse session as Markdown.
func listText(query string, view browse.PageView) string {
	lines := make([]string, 0, len(view.Items)+2)
	lines = append(lines, fmt.Sprintf("*%d card matches for* `%s` *(Page %d/%d)*\n",
		view.Count, query, view.Number+1, view.Total))
	for i, card := range view.Items {
		lines = append(lines, fmt.Sprintf("%s. %s", view.Labels[i], card.Name))
	}
	lines = append(lines, "\n_Tap a number for details, or the arrows to change pages._")
	return strings.Join(lines, "\n")
}

// listKeyboard builds the selection and navigation buttons for a page.
// Button data carries the same tokens the router matches on.
func listKeyboard(view browse.PageView) tgbotapi.InlineKeyboardMarkup {
	scheme := browse.CallbackScheme()

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, 3)
	row := make([]tgbotapi.InlineKeyboardButton, 0, 5)
	for i := range view.Items {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(view.Labels[i], scheme.Slots[i]))
		if len(row) == 5 {
			rows = append(rows, row)
			row = make([]tgbotapi.InlineKeyboardButton, 0, 5)
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	nav := make([]tgbotapi.InlineKeyboardButton, 0, 2)
	if view.HasPrev {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("⬅️", scheme.Prev))
	}
	if view.HasNext {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("➡️", scheme.Next))
	}
	if len(nav) > 0 {
		rows = append(rows, nav)
	}

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
