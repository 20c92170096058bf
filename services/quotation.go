// Package services holds the quotation domain model, validation, derived
// amount calculations and the document export engines.
package services

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// LineItem is one billable row of a quotation. Rate is a pointer because an
// empty rate field is "absent", not zero: absence is valid and only defaults
// to 0 when amounts are computed.
type LineItem struct {
	Description string   `json:"description"`
	Quantity    float64  `json:"quantity"`
	Unit        string   `json:"unit"`
	Rate        *float64 `json:"rate,omitempty"`
}

// Quotation is the single domain entity: everything needed to render one
// priced proposal document.
type Quotation struct {
	CompanyName    string
	CompanyAddress string
	CompanyEmail   string
	CompanyPhone   string

	// HeaderImage is an optional letterhead as a base64 data URL. Empty
	// means "use the bundled default asset".
	HeaderImage string

	CustomerName    string
	CustomerAddress string
	KindAttention   string

	QuoteName string
	QuoteDate time.Time
	Subject   string

	LineItems []LineItem

	Terms               string
	AuthorisedSignatory string
}

// CompanyProfile carries the identity pre-filled into a blank quotation.
type CompanyProfile struct {
	Name      string
	Address   string
	Email     string
	Phone     string
	Tagline   string
	Terms     string
	Signatory string
}

// LoadCompanyProfile reads the profile from the environment, falling back to
// built-in values for any unset variable.
func LoadCompanyProfile() CompanyProfile {
	return CompanyProfile{
		Name:      envOr("COMPANY_NAME", "DARSHAN ENTERPRISES"),
		Address:   envOr("COMPANY_ADDRESS", "A-29, Radhey Krishna Recidency Nr. Glorious School, Valia Road GIDC Ankleshwar, Dist- Bharuch (Guj) 393001"),
		Email:     envOr("COMPANY_EMAIL", "cheharmata@rediffmail.com"),
		Phone:     envOr("COMPANY_PHONE", "9998016708"),
		Tagline:   envOr("COMPANY_TAGLINE", "All Kinds of Industrial & Decorative Painting, Sand & Shot Blasting & All Types of Labour Job Works."),
		Terms:     envOr("COMPANY_TERMS", defaultTerms),
		Signatory: envOr("COMPANY_SIGNATORY", "Mata Prasad Prajapati"),
	}
}

const defaultTerms = `1. Subject to be Ankleshwar Juriduction.
2. Payment 50% Advance and 50% After work Completed.
3. Work started with in 4 days after receiving of work order.
4. GST Extra 18% (24BCVPP7836H1ZW).
5. Without Advance I am not agree for Work.`

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// NewQuotation returns a blank quotation pre-filled from the company profile,
// dated today, with a single empty line item.
func NewQuotation(profile CompanyProfile) Quotation {
	return Quotation{
		CompanyName:         profile.Name,
		CompanyAddress:      profile.Address,
		CompanyEmail:        profile.Email,
		CompanyPhone:        profile.Phone,
		QuoteDate:           time.Now(),
		LineItems:           []LineItem{NewLineItem()},
		Terms:               profile.Terms,
		AuthorisedSignatory: profile.Signatory,
	}
}

// NewLineItem returns the default row appended by "Add Line Item".
func NewLineItem() LineItem {
	return LineItem{Quantity: 1, Unit: "Sqft"}
}

// ParseQuotationForm converts raw form values into a Quotation. Numeric
// fields are coerced from their string form; coercion failures are reported
// under the same field paths validation uses so the editor can show them
// inline. The returned quotation is always populated as far as parsing got,
// so it can be re-rendered with the user's input intact.
func ParseQuotationForm(form url.Values) (Quotation, FieldErrors) {
	errs := FieldErrors{}

	q := Quotation{
		CompanyName:         strings.TrimSpace(form.Get("company_name")),
		CompanyAddress:      strings.TrimSpace(form.Get("company_address")),
		CompanyEmail:        strings.TrimSpace(form.Get("company_email")),
		CompanyPhone:        strings.TrimSpace(form.Get("company_phone")),
		HeaderImage:         form.Get("header_image"),
		CustomerName:        strings.TrimSpace(form.Get("customer_name")),
		CustomerAddress:     strings.TrimSpace(form.Get("customer_address")),
		KindAttention:       strings.TrimSpace(form.Get("kind_attention")),
		QuoteName:           strings.TrimSpace(form.Get("quote_name")),
		Subject:             strings.TrimSpace(form.Get("subject")),
		Terms:               strings.TrimSpace(form.Get("terms")),
		AuthorisedSignatory: strings.TrimSpace(form.Get("authorised_signatory")),
	}

	if raw := strings.TrimSpace(form.Get("quote_date")); raw != "" {
		dt, err := time.Parse("2006-01-02", raw)
		if err != nil {
			errs["quote_date"] = "Invalid date"
		} else {
			q.QuoteDate = dt
		}
	}

	for i := 0; ; i++ {
		prefix := fmt.Sprintf("line_items.%d.", i)
		if !form.Has(prefix + "description") {
			break
		}

		item := LineItem{
			Description: strings.TrimSpace(form.Get(prefix + "description")),
			Unit:        strings.TrimSpace(form.Get(prefix + "unit")),
		}

		if raw := strings.TrimSpace(form.Get(prefix + "quantity")); raw != "" {
			qty, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				errs[prefix+"quantity"] = "Quantity must be a number"
			} else {
				item.Quantity = qty
			}
		}

		// An empty rate means "absent", which is valid.
		if raw := strings.TrimSpace(form.Get(prefix + "rate")); raw != "" {
			rate, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				errs[prefix+"rate"] = "Rate must be a number"
			} else {
				item.Rate = &rate
			}
		}

		q.LineItems = append(q.LineItems, item)
	}

	return q, errs
}

// Equal reports whether two quotations hold the same editable content. It is
// the dirty check used to decide whether an export needs an implicit save.
func (q Quotation) Equal(other Quotation) bool {
	if q.CompanyName != other.CompanyName ||
		q.CompanyAddress != other.CompanyAddress ||
		q.CompanyEmail != other.CompanyEmail ||
		q.CompanyPhone != other.CompanyPhone ||
		q.HeaderImage != other.HeaderImage ||
		q.CustomerName != other.CustomerName ||
		q.CustomerAddress != other.CustomerAddress ||
		q.KindAttention != other.KindAttention ||
		q.QuoteName != other.QuoteName ||
		q.Subject != other.Subject ||
		q.Terms != other.Terms ||
		q.AuthorisedSignatory != other.AuthorisedSignatory {
		return false
	}
	if !sameDay(q.QuoteDate, other.QuoteDate) {
		return false
	}
	if len(q.LineItems) != len(other.LineItems) {
		return false
	}
	for i := range q.LineItems {
		if !q.LineItems[i].equal(other.LineItems[i]) {
			return false
		}
	}
	return true
}

func (it LineItem) equal(other LineItem) bool {
	if it.Description != other.Description ||
		it.Quantity != other.Quantity ||
		it.Unit != other.Unit {
		return false
	}
	if (it.Rate == nil) != (other.Rate == nil) {
		return false
	}
	return it.Rate == nil || *it.Rate == *other.Rate
}

// sameDay compares dates at day precision. The editor only lets users pick a
// calendar day, so sub-day differences never count as edits.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
