// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"strings"
	"testing"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotegen/collections"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: t.TempDir(),
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestQuotation creates a valid quotation record with the given name
// and one line item, and returns it.
func CreateTestQuotation(t *testing.T, app *pocketbase.PocketBase, quoteName string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("quotations")
	if err != nil {
		t.Fatalf("failed to find quotations collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("company_name", "DARSHAN ENTERPRISES")
	record.Set("company_address", "GIDC Ankleshwar, Dist- Bharuch (Guj) 393001")
	record.Set("company_email", "cheharmata@rediffmail.com")
	record.Set("company_phone", "9998016708")
	record.Set("customer_name", "M/s. Test Industries")
	record.Set("customer_address", "Plot 42, GIDC Panoli")
	record.Set("quote_name", quoteName)
	record.Set("quote_date", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	record.Set("subject", "Quotation for painting work")
	record.Set("line_items", `[{"description":"Epoxy painting","quantity":100,"unit":"Sqft","rate":12.5}]`)
	record.Set("terms", "1. Payment 50% advance.")
	record.Set("authorised_signatory", "Mata Prasad Prajapati")
	record.Set("created", time.Now().UTC())

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test quotation: %v", err)
	}

	return record
}

// AssertHTMLContains checks that body contains all specified fragments.
func AssertHTMLContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected HTML to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

// AssertHXRedirect checks that the response has an HX-Redirect header with the expected URL.
func AssertHXRedirect(t *testing.T, headerVal, expectedURL string) {
	t.Helper()

	if headerVal != expectedURL {
		t.Errorf("expected HX-Redirect %q, got %q", expectedURL, headerVal)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
