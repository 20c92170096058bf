package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotegen/services"
)

// newTestRequestEvent creates a RequestEvent suitable for handler tests.
func newTestRequestEvent(app *pocketbase.PocketBase, req *http.Request, rec *httptest.ResponseRecorder) *core.RequestEvent {
	e := &core.RequestEvent{}
	e.App = app
	e.Request = req
	e.Response = rec
	return e
}

// newFormRequest builds a POST with an urlencoded body, the way the editor
// form submits without a file upload.
func newFormRequest(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func testProfile() services.CompanyProfile {
	return services.CompanyProfile{
		Name:      "DARSHAN ENTERPRISES",
		Address:   "GIDC Ankleshwar, Dist- Bharuch (Guj) 393001",
		Email:     "cheharmata@rediffmail.com",
		Phone:     "9998016708",
		Terms:     "1. Payment 50% advance.",
		Signatory: "Mata Prasad Prajapati",
	}
}

// validQuotationForm mirrors the record testhelpers.CreateTestQuotation
// saves, so posting it against that record is a no-op edit.
func validQuotationForm() url.Values {
	form := url.Values{}
	form.Set("company_name", "DARSHAN ENTERPRISES")
	form.Set("company_address", "GIDC Ankleshwar, Dist- Bharuch (Guj) 393001")
	form.Set("company_email", "cheharmata@rediffmail.com")
	form.Set("company_phone", "9998016708")
	form.Set("customer_name", "M/s. Test Industries")
	form.Set("customer_address", "Plot 42, GIDC Panoli")
	form.Set("kind_attention", "")
	form.Set("quote_name", "Painting Work")
	form.Set("quote_date", "2024-06-01")
	form.Set("subject", "Quotation for painting work")
	form.Set("terms", "1. Payment 50% advance.")
	form.Set("authorised_signatory", "Mata Prasad Prajapati")
	form.Set("line_items.0.description", "Epoxy painting")
	form.Set("line_items.0.quantity", "100")
	form.Set("line_items.0.unit", "Sqft")
	form.Set("line_items.0.rate", "12.5")
	return form
}
