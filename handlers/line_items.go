package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/pocketbase/pocketbase/core"

	"quotegen/services"
	"quotegen/templates"
)

// HandleLineItemAdd handles POST /editor/line-items/add. The whole form is
// re-posted, a default row is appended and the line-item table fragment is
// rendered back with recomputed amounts.
func HandleLineItemAdd() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		q, _ := services.ParseQuotationForm(e.Request.Form)
		q.LineItems = append(q.LineItems, services.NewLineItem())

		data := editorData(strings.TrimSpace(e.Request.FormValue("id")), q, nil)
		return templates.LineItemsFragment(data).Render(e.Request.Context(), e.Response)
	}
}

// HandleLineItemRemove handles POST /editor/line-items/remove/{index}. The
// last remaining row cannot be removed; a quotation always keeps at least one.
func HandleLineItemRemove() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		q, _ := services.ParseQuotationForm(e.Request.Form)

		idx, err := strconv.Atoi(e.Request.PathValue("index"))
		if err != nil || idx < 0 || idx >= len(q.LineItems) {
			return ErrorToast(e, http.StatusBadRequest, "Invalid line item")
		}

		if len(q.LineItems) == 1 {
			SetToast(e, "warning", "At least one line item is required.")
		} else {
			q.LineItems = append(q.LineItems[:idx], q.LineItems[idx+1:]...)
		}

		data := editorData(strings.TrimSpace(e.Request.FormValue("id")), q, nil)
		return templates.LineItemsFragment(data).Render(e.Request.Context(), e.Response)
	}
}
