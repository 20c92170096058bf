// Package handlers wires HTTP requests to the quotation store, validator and
// export engines, rendering templ components in response.
package handlers

import (
	"log"
	"strconv"

	"quotegen/services"
	"quotegen/store"
	"quotegen/templates"
)

// editorData converts a quotation into the view model the form renders.
// Validation errors may be nil for a clean render.
func editorData(id string, q services.Quotation, errs services.FieldErrors) templates.EditorData {
	data := templates.EditorData{
		ID:                  id,
		CompanyName:         q.CompanyName,
		CompanyAddress:      q.CompanyAddress,
		CompanyEmail:        q.CompanyEmail,
		CompanyPhone:        q.CompanyPhone,
		HeaderImage:         q.HeaderImage,
		CustomerName:        q.CustomerName,
		CustomerAddress:     q.CustomerAddress,
		KindAttention:       q.KindAttention,
		QuoteName:           q.QuoteName,
		Subject:             q.Subject,
		Terms:               q.Terms,
		AuthorisedSignatory: q.AuthorisedSignatory,
		Total:               services.FormatAmount(services.TotalAmount(q.LineItems)),
		Errors:              map[string]string{},
	}
	if !q.QuoteDate.IsZero() {
		data.QuoteDate = q.QuoteDate.Format("2006-01-02")
	}
	for field, message := range errs {
		data.Errors[field] = message
	}

	for i, item := range q.LineItems {
		row := templates.LineItemRow{
			Index:       i,
			Description: item.Description,
			Quantity:    formatNumber(item.Quantity),
			Unit:        item.Unit,
			Amount:      services.FormatAmount(services.LineAmount(item)),
		}
		if item.Rate != nil {
			row.Rate = formatNumber(*item.Rate)
		}
		data.LineItems = append(data.LineItems, row)
	}
	return data
}

// formatNumber renders a float the way it was typed: no forced decimals, no
// grouping. Grouping is only for the derived amount columns.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// sidebarData loads the quotation list for the navigation column. A load
// failure degrades to an empty list rather than failing the whole page.
func sidebarData(st *store.Store, activeID string) templates.SidebarData {
	list, err := st.List()
	if err != nil {
		log.Printf("sidebar: could not list quotations: %v", err)
		list = nil
	}
	return sidebarDataFromList(list, activeID)
}

func sidebarDataFromList(list []store.QuotationWithID, activeID string) templates.SidebarData {
	data := templates.SidebarData{ActiveID: activeID}
	for _, q := range list {
		data.Items = append(data.Items, templates.SidebarItem{
			ID:        q.ID,
			QuoteName: q.QuoteName,
			Active:    q.ID == activeID,
		})
	}
	return data
}
