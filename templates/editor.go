package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// EditorForm renders the quotation form. Field names follow the paths the
// form parser and validator use, so errors land next to their inputs.
func EditorForm(data EditorData) templ.Component {
	return component(func(w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<form id="quote-form" class="quote-form" method="post" action="%s" enctype="multipart/form-data">
<input type="hidden" name="id" value="%s">
<input type="hidden" name="header_image" value="%s">
<div class="form-actions">
<button type="submit" formaction="/quotations/export" class="btn">Download PDF</button>
<button type="submit" formaction="/quotations/export/excel" class="btn">Download Excel</button>
<button type="submit" class="btn btn-primary">Save Quotation</button>
</div>`,
			esc(data.SaveAction()), esc(data.ID), esc(data.HeaderImage)); err != nil {
			return err
		}

		if err := companyFieldset(w, data); err != nil {
			return err
		}
		if err := customerFieldset(w, data); err != nil {
			return err
		}
		if err := quoteFieldset(w, data); err != nil {
			return err
		}

		if _, err := io.WriteString(w, `<fieldset class="card"><legend>Line Items</legend>`); err != nil {
			return err
		}
		if err := LineItemsFragment(data).Render(context.Background(), w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `</fieldset>`); err != nil {
			return err
		}

		if err := textArea(w, data, "terms", "Terms & Conditions", data.Terms); err != nil {
			return err
		}
		if err := textInput(w, data, "authorised_signatory", "Signatory Name", data.AuthorisedSignatory, "text"); err != nil {
			return err
		}

		_, err := io.WriteString(w, `</form>`)
		return err
	})
}

func companyFieldset(w io.Writer, data EditorData) error {
	if _, err := io.WriteString(w, `<fieldset class="card"><legend>Company Details &amp; Header</legend>`); err != nil {
		return err
	}
	if err := textInput(w, data, "company_name", "Your Company Name", data.CompanyName, "text"); err != nil {
		return err
	}
	if err := headerImageControls(w, data); err != nil {
		return err
	}
	if err := textArea(w, data, "company_address", "Company Address", data.CompanyAddress); err != nil {
		return err
	}
	if err := textInput(w, data, "company_email", "Company Email", data.CompanyEmail, "text"); err != nil {
		return err
	}
	if err := textInput(w, data, "company_phone", "Company Phone", data.CompanyPhone, "text"); err != nil {
		return err
	}
	_, err := io.WriteString(w, `</fieldset>`)
	return err
}

// headerImageControls shows the stored letterhead preview (or the bundled
// default), the upload input and a remove toggle.
func headerImageControls(w io.Writer, data EditorData) error {
	preview := "/static/header.png"
	if data.HeaderImage != "" {
		preview = data.HeaderImage
	}
	_, err := fmt.Fprintf(w, `<div class="field header-image">
<label>Header Image (Optional Letterhead)</label>
<img class="header-preview" src="%s" alt="Letterhead preview">
<input type="file" name="header_image_file" accept="image/png, image/jpeg">
<label class="inline"><input type="checkbox" name="remove_header_image" value="1"> Remove custom image</label>
</div>`, esc(preview))
	return err
}

func customerFieldset(w io.Writer, data EditorData) error {
	if _, err := io.WriteString(w, `<fieldset class="card"><legend>Customer Details</legend>`); err != nil {
		return err
	}
	if err := textInput(w, data, "customer_name", "Customer Name", data.CustomerName, "text"); err != nil {
		return err
	}
	if err := textArea(w, data, "customer_address", "Customer Address", data.CustomerAddress); err != nil {
		return err
	}
	if err := textInput(w, data, "kind_attention", "Kind Attention (Optional)", data.KindAttention, "text"); err != nil {
		return err
	}
	_, err := io.WriteString(w, `</fieldset>`)
	return err
}

func quoteFieldset(w io.Writer, data EditorData) error {
	if _, err := io.WriteString(w, `<fieldset class="card"><legend>Quotation Details</legend>`); err != nil {
		return err
	}
	if err := textInput(w, data, "quote_name", "Quotation Name", data.QuoteName, "text"); err != nil {
		return err
	}
	if err := textInput(w, data, "quote_date", "Quotation Date", data.QuoteDate, "date"); err != nil {
		return err
	}
	if err := textArea(w, data, "subject", "Subject", data.Subject); err != nil {
		return err
	}
	_, err := io.WriteString(w, `</fieldset>`)
	return err
}

// LineItemsFragment renders the editable line-item table with per-row
// amounts and the running total. It is the swap target of the HTMX add and
// remove actions, which re-post the whole form and replace this fragment.
func LineItemsFragment(data EditorData) templ.Component {
	return component(func(w io.Writer) error {
		if _, err := io.WriteString(w, `<div id="line-items">
<table class="line-items">
<thead><tr><th>#</th><th>Description</th><th>Quantity</th><th>Unit</th><th>Rate</th><th>Amount</th><th></th></tr></thead>
<tbody>`); err != nil {
			return err
		}

		for _, row := range data.LineItems {
			prefix := fmt.Sprintf("line_items.%d.", row.Index)
			if _, err := fmt.Fprintf(w, `<tr>
<td>%d</td>
<td>%s%s</td>
<td>%s%s</td>
<td>%s</td>
<td>%s%s</td>
<td class="amount">%s</td>
<td><button type="button" class="btn btn-icon" hx-post="/editor/line-items/remove/%d" hx-include="#quote-form" hx-target="#line-items" hx-swap="outerHTML">&times;</button></td>
</tr>`,
				row.Index+1,
				inputCell(prefix+"description", row.Description, "text"), errorSpan(data, prefix+"description"),
				inputCell(prefix+"quantity", row.Quantity, "number"), errorSpan(data, prefix+"quantity"),
				inputCell(prefix+"unit", row.Unit, "text"),
				inputCell(prefix+"rate", row.Rate, "number"), errorSpan(data, prefix+"rate"),
				esc(row.Amount),
				row.Index); err != nil {
				return err
			}
		}

		_, err := fmt.Fprintf(w, `</tbody>
</table>
%s<button type="button" class="btn" hx-post="/editor/line-items/add" hx-include="#quote-form" hx-target="#line-items" hx-swap="outerHTML">Add Line Item</button>
<div class="total-row"><span>Total</span><strong>%s</strong></div>
</div>`, errorSpan(data, "line_items"), esc(data.Total))
		return err
	})
}

func inputCell(name, value, typ string) string {
	step := ""
	if typ == "number" {
		step = ` step="any"`
	}
	return fmt.Sprintf(`<input type="%s" id="%s" name="%s" value="%s"%s>`, typ, esc(name), esc(name), esc(value), step)
}

func errorSpan(data EditorData, field string) string {
	msg, ok := data.Errors[field]
	if !ok {
		return ""
	}
	return fmt.Sprintf(`<span class="field-error">%s</span>`, esc(msg))
}

func textInput(w io.Writer, data EditorData, field, label, value, typ string) error {
	_, err := fmt.Fprintf(w, `<div class="field"><label for="%s">%s</label>%s%s</div>`,
		esc(field), esc(label), inputCell(field, value, typ), errorSpan(data, field))
	return err
}

func textArea(w io.Writer, data EditorData, field, label, value string) error {
	_, err := fmt.Fprintf(w, `<div class="field"><label for="%s">%s</label><textarea id="%s" name="%s">%s</textarea>%s</div>`,
		esc(field), esc(label), esc(field), esc(field), esc(value), errorSpan(data, field))
	return err
}
