package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"quotegen/services"
	"quotegen/store"
	"quotegen/testhelpers"
)

func TestHandleExportPDF_DownloadsDocument(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	st := store.New(app)

	req := newFormRequest("/quotations/export", validQuotationForm())
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleExportPDF(st, services.PDFAssets{})(e); err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("Content-Type = %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); cd != `attachment; filename="Painting-Work.pdf"` {
		t.Errorf("Content-Disposition = %q", cd)
	}
	if body := rec.Body.Bytes(); len(body) < 5 || string(body[:5]) != "%PDF-" {
		t.Error("body is not a PDF")
	}
}

func TestHandleExportPDF_CreatesUnsavedQuotation(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	st := store.New(app)

	req := newFormRequest("/quotations/export", validQuotationForm())
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleExportPDF(st, services.PDFAssets{})(e); err != nil {
		t.Fatalf("handler error = %v", err)
	}

	list, err := st.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("len(list) = %d, want the export to have saved the record", len(list))
	}
	if list[0].QuoteName != "Painting Work" {
		t.Errorf("QuoteName = %q", list[0].QuoteName)
	}
}

func TestHandleExportPDF_HandsBackNewRecordID(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	st := store.New(app)

	req := newFormRequest("/quotations/export", validQuotationForm())
	rec := httptest.NewRecorder()
	if err := HandleExportPDF(st, services.PDFAssets{})(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error = %v", err)
	}

	// A download response cannot navigate, so the id of the implicitly
	// created record comes back in a cookie the page script adopts.
	var id string
	for _, c := range rec.Result().Cookies() {
		if c.Name == "saved_quotation" {
			id = c.Value
		}
	}
	if id == "" {
		t.Fatal("response should carry the created record id in the saved_quotation cookie")
	}
	if _, err := st.Get(id); err != nil {
		t.Fatalf("cookie id %q does not resolve to a record: %v", id, err)
	}

	// Exporting again with the handed-back id must update in place.
	form := validQuotationForm()
	form.Set("id", id)
	req = newFormRequest("/quotations/export", form)
	rec = httptest.NewRecorder()
	if err := HandleExportPDF(st, services.PDFAssets{})(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error = %v", err)
	}

	list, err := st.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("len(list) = %d after exporting the same quotation twice, want 1", len(list))
	}
}

func TestHandleExportPDF_SavesDirtyRecordOnce(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	st := store.New(app)
	record := testhelpers.CreateTestQuotation(t, app, "Painting Work")

	form := validQuotationForm()
	form.Set("subject", "Revised subject")
	form.Set("id", record.Id)

	req := newFormRequest("/quotations/export", form)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleExportPDF(st, services.PDFAssets{})(e); err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	list, err := st.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("len(list) = %d, edits must update in place, not duplicate", len(list))
	}
	if list[0].Subject != "Revised subject" {
		t.Errorf("Subject = %q, want the edit persisted before export", list[0].Subject)
	}
}

func TestHandleExportPDF_CleanRecordNotResaved(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	st := store.New(app)
	record := testhelpers.CreateTestQuotation(t, app, "Painting Work")

	before, err := st.Get(record.Id)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	form := validQuotationForm()
	form.Set("id", record.Id)

	req := newFormRequest("/quotations/export", form)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleExportPDF(st, services.PDFAssets{})(e); err != nil {
		t.Fatalf("handler error = %v", err)
	}

	after, err := st.Get(record.Id)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	// The save timestamp drives list ordering; an unchanged form must not
	// touch it.
	if !after.CreatedAt.Equal(before.CreatedAt) {
		t.Errorf("CreatedAt changed from %v to %v on a clean export", before.CreatedAt, after.CreatedAt)
	}
}

func TestHandleExportPDF_ValidationFailureBlocksExport(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	st := store.New(app)

	form := validQuotationForm()
	form.Set("quote_name", "")

	req := newFormRequest("/quotations/export", form)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleExportPDF(st, services.PDFAssets{})(e); err != nil {
		t.Fatalf("handler error = %v", err)
	}

	if ct := rec.Header().Get("Content-Type"); ct == "application/pdf" {
		t.Error("invalid quotation must not produce a PDF")
	}
	list, _ := st.List()
	if len(list) != 0 {
		t.Errorf("len(list) = %d, nothing may be saved on validation failure", len(list))
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "Quotation name is required.")
}

func TestHandleExportExcel_DownloadsWorkbook(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	st := store.New(app)

	req := newFormRequest("/quotations/export/excel", validQuotationForm())
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleExportExcel(st)(e); err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "spreadsheetml") {
		t.Errorf("Content-Type = %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); cd != `attachment; filename="Painting-Work.xlsx"` {
		t.Errorf("Content-Disposition = %q", cd)
	}
	if rec.Body.Len() == 0 {
		t.Error("empty workbook body")
	}

	// Export saves the unsaved record, same as the PDF path.
	list, _ := st.List()
	if len(list) != 1 {
		t.Errorf("len(list) = %d, want 1", len(list))
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Painting Work", "Painting-Work"},
		{"a/b\\c:d", "a-b-c-d"},
		{"plain", "plain"},
	}

	for _, tt := range tests {
		if got := sanitizeFilename(tt.input); got != tt.want {
			t.Errorf("sanitizeFilename(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
