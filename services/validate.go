package services

import (
	"fmt"
	"net/mail"
	"strings"
)

// FieldErrors maps field paths ("customer_name", "line_items.0.quantity") to
// human-readable messages. An empty set means the record is valid.
type FieldErrors map[string]string

// Add records an error for a field unless one is already present, so the
// first failed rule for a field wins.
func (e FieldErrors) Add(field, message string) {
	if _, ok := e[field]; !ok {
		e[field] = message
	}
}

// Merge copies all entries from other into e without overwriting.
func (e FieldErrors) Merge(other FieldErrors) {
	for field, message := range other {
		e.Add(field, message)
	}
}

// ValidateQuotation checks every constraint a quotation must satisfy before
// it can be saved or exported. It is a pure function: both paths run exactly
// the same rules, and a failure never has side effects.
func ValidateQuotation(q Quotation) FieldErrors {
	errs := FieldErrors{}

	validateRequired(errs, "company_name", q.CompanyName, "Your company name is required.")
	validateRequired(errs, "company_address", q.CompanyAddress, "Your company address is required.")
	validateEmail(errs, "company_email", q.CompanyEmail)

	validateRequired(errs, "customer_name", q.CustomerName, "Customer name is required.")
	validateRequired(errs, "customer_address", q.CustomerAddress, "Customer address is required.")

	validateRequired(errs, "quote_name", q.QuoteName, "Quotation name is required.")
	if q.QuoteDate.IsZero() {
		errs.Add("quote_date", "A quotation date is required.")
	}
	validateRequired(errs, "subject", q.Subject, "Subject is required.")

	validateLineItems(errs, q.LineItems)

	validateRequired(errs, "terms", q.Terms, "Terms and conditions are required.")
	validateRequired(errs, "authorised_signatory", q.AuthorisedSignatory, "Signatory name is required.")

	return errs
}

func validateRequired(errs FieldErrors, field, value, message string) {
	if strings.TrimSpace(value) == "" {
		errs.Add(field, message)
	}
}

// validateEmail accepts an empty value; company email is optional but must
// be a plain address when present.
func validateEmail(errs FieldErrors, field, value string) {
	if value == "" {
		return
	}
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		errs.Add(field, "Invalid email address.")
	}
}

func validateLineItems(errs FieldErrors, items []LineItem) {
	if len(items) == 0 {
		errs.Add("line_items", "At least one line item is required.")
		return
	}
	for i, item := range items {
		prefix := fmt.Sprintf("line_items.%d.", i)
		if strings.TrimSpace(item.Description) == "" {
			errs.Add(prefix+"description", "Description is required.")
		}
		if item.Quantity <= 0 {
			errs.Add(prefix+"quantity", "Must be > 0.")
		}
		if item.Rate != nil && *item.Rate < 0 {
			errs.Add(prefix+"rate", "Rate must be a positive number.")
		}
	}
}
