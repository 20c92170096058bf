package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"quotegen/store"
	"quotegen/testhelpers"
)

func TestHandleEditor_BlankForm(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	st := store.New(app)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleEditor(st, testProfile())(e); err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	body := rec.Body.String()
	testhelpers.AssertHTMLContains(t, body,
		`action="/quotations"`,
		"DARSHAN ENTERPRISES",
		"Quotation Generator",
		"line_items.0.description",
		"Add Line Item",
	)
}

func TestHandleEditor_LoadsSavedQuotation(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	st := store.New(app)
	record := testhelpers.CreateTestQuotation(t, app, "Saved Quote")

	req := httptest.NewRequest(http.MethodGet, "/?id="+record.Id, nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleEditor(st, testProfile())(e); err != nil {
		t.Fatalf("handler error = %v", err)
	}

	body := rec.Body.String()
	testhelpers.AssertHTMLContains(t, body,
		`action="/quotations/`+record.Id+`/save"`,
		"Saved Quote",
		"M/s. Test Industries",
		"Epoxy painting",
	)
}

func TestHandleEditor_SidebarSkeletonUntilFirstSnapshot(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	st := store.New(app)
	testhelpers.CreateTestQuotation(t, app, "Already Saved")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleEditor(st, testProfile())(e); err != nil {
		t.Fatalf("handler error = %v", err)
	}

	// The page ships skeleton rows; the SSE stream delivers the real list.
	body := rec.Body.String()
	testhelpers.AssertHTMLContains(t, body,
		"skeleton",
		`sse-connect="/quotations/stream"`,
	)
}

func TestHandleEditor_UnknownIDShowsBlankForm(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	st := store.New(app)

	req := httptest.NewRequest(http.MethodGet, "/?id=doesnotexist00", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleEditor(st, testProfile())(e); err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	// Falls back to a new-record form instead of erroring.
	testhelpers.AssertHTMLContains(t, rec.Body.String(), `action="/quotations"`)
}
