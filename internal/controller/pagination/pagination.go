package pagination

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ahmedgamal1254/lms-portal/internal/model"
)

// Button is one pagination affordance: a label plus the callback payload
// the screen handles to change pages. Noop buttons are indicators.
type Button struct {
	Label    string
	Callback string
	Active   bool // the current page
	Noop     bool
}

// PageButtons renders one button per page, 1-based. Stateless: everything
// comes from the page metadata.
// prefix is the callback prefix (for example "exams_page:").
func PageButtons(prefix string, currentPage, lastPage int) []Button {
	if lastPage < 1 {
		return nil
	}

	buttons := make([]Button, 0, lastPage)
	for page := 1; page <= lastPage; page++ {
		buttons = append(buttons, Button{
			Label:    strconv.Itoa(page),
			Callback: prefix + strconv.Itoa(page),
			Active:   page == currentPage,
		})
	}
	return buttons
}

// NavButtons renders the prev/indicator/next row.
func NavButtons(prefix string, meta model.PageMeta) []Button {
	if meta.LastPage <= 1 {
		return nil
	}

	var buttons []Button
	if meta.CurrentPage > 1 {
		buttons = append(buttons, Button{
			Label:    "⬅️",
			Callback: prefix + strconv.Itoa(meta.CurrentPage-1),
		})
	}

	buttons = append(buttons, Button{
		Label: fmt.Sprintf("📄 %d/%d", meta.CurrentPage, meta.LastPage),
		Noop:  true,
	})

	if meta.CurrentPage < meta.LastPage {
		buttons = append(buttons, Button{
			Label:    "➡️",
			Callback: prefix + strconv.Itoa(meta.CurrentPage+1),
		})
	}
	return buttons
}

// ParseCallback extracts the requested page from a callback payload.
// Returns false when the payload does not belong to prefix.
func ParseCallback(prefix, callback string) (int, bool) {
	if !strings.HasPrefix(callback, prefix) {
		return 0, false
	}
	page, err := strconv.Atoi(strings.TrimPrefix(callback, prefix))
	if err != nil || page < 1 {
		return 0, false
	}
	return page, true
}
