package browse

import (
	"strconv"

	"github.com/whdzera/atem/internal/models"
)

// PageView is everything an adapter needs to render one page: the
// item slice, a 1-based position label per item (slot ten is labeled
// "0" to fit the ten digit emojis), and which navigation affordances
// are valid.
type PageView struct {
	Items   []models.Card
	Labels  []string
	Number  int // 0-based page index
	Total   int
	Count   int // total result count across all pages
	HasPrev bool
	HasNext bool
}

// Page renders the current page. Repeated calls with an unchanged page
// index always produce the same slice; there is no incremental state.
func (s *Session) Page() PageView {
	s.mu.Lock()
	page := s.page
	s.mu.Unlock()

	total := s.TotalPages()
	start := page * s.PageSize
	end := start + s.PageSize
	if end > len(s.Results) {
		end = len(s.Results)
	}

	items := s.Results[start:end]
	labels := make([]string, len(items))
	for i := range items {
		labels[i] = slotLabel(i)
	}

	return PageView{
		Items:   items,
		Labels:  labels,
		Number:  page,
		Total:   total,
		Count:   len(s.Results),
		HasPrev: page > 0,
		HasNext: page < total-1,
	}
}

// slotLabel maps a 0-based slot to its display label: "1".."9", then
// "0" for the tenth slot.
func slotLabel(slot int) string {
	if slot == 9 {
		return "0"
	}
	return strconv.Itoa(slot + 1)
}
