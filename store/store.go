// Package store is the quotation persistence layer: CRUD against the
// quotations collection plus a live subscription that re-emits the full
// ordered list whenever any record changes.
package store

import (
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/pocketbase/pocketbase/core"

	"quotegen/services"
)

// QuotationWithID is a persisted quotation: the record identifier plus the
// server-assigned creation timestamp used for list ordering.
type QuotationWithID struct {
	services.Quotation
	ID        string
	CreatedAt time.Time
}

// Store wraps the app's database handle. It is constructed once in main and
// injected into every handler that needs persistence.
type Store struct {
	app core.App

	mu     sync.Mutex
	nextID int
	subs   map[int]chan []QuotationWithID
}

// New builds a Store and binds the record hooks that drive subscriptions.
func New(app core.App) *Store {
	s := &Store{
		app:  app,
		subs: make(map[int]chan []QuotationWithID),
	}

	app.OnRecordAfterCreateSuccess("quotations").BindFunc(func(e *core.RecordEvent) error {
		s.broadcast()
		return e.Next()
	})
	app.OnRecordAfterUpdateSuccess("quotations").BindFunc(func(e *core.RecordEvent) error {
		s.broadcast()
		return e.Next()
	})
	app.OnRecordAfterDeleteSuccess("quotations").BindFunc(func(e *core.RecordEvent) error {
		s.broadcast()
		return e.Next()
	})

	return s
}

// List returns all saved quotations, most recently saved first.
func (s *Store) List() ([]QuotationWithID, error) {
	col, err := s.app.FindCollectionByNameOrId("quotations")
	if err != nil {
		return nil, fmt.Errorf("quotations collection: %w", err)
	}

	records, err := s.app.FindAllRecords(col)
	if err != nil {
		return nil, fmt.Errorf("list quotations: %w", err)
	}

	quotations := make([]QuotationWithID, 0, len(records))
	for _, rec := range records {
		quotations = append(quotations, recordToQuotation(rec))
	}
	sort.SliceStable(quotations, func(i, j int) bool {
		return quotations[i].CreatedAt.After(quotations[j].CreatedAt)
	})
	return quotations, nil
}

// Get loads one quotation by its identifier.
func (s *Store) Get(id string) (QuotationWithID, error) {
	rec, err := s.app.FindRecordById("quotations", id)
	if err != nil {
		return QuotationWithID{}, fmt.Errorf("quotation %s: %w", id, err)
	}
	return recordToQuotation(rec), nil
}

// Create persists a new quotation and returns its assigned identifier.
func (s *Store) Create(q services.Quotation) (string, error) {
	col, err := s.app.FindCollectionByNameOrId("quotations")
	if err != nil {
		return "", fmt.Errorf("quotations collection: %w", err)
	}

	rec := core.NewRecord(col)
	if err := applyQuotation(rec, q); err != nil {
		return "", err
	}
	rec.Set("created", time.Now().UTC())

	if err := s.app.Save(rec); err != nil {
		return "", fmt.Errorf("create quotation: %w", err)
	}
	return rec.Id, nil
}

// Update replaces the fields of an existing quotation. The creation
// timestamp is refreshed so the record moves to the top of the list, which
// is how the original ordering behaves.
func (s *Store) Update(id string, q services.Quotation) error {
	rec, err := s.app.FindRecordById("quotations", id)
	if err != nil {
		return fmt.Errorf("quotation %s: %w", id, err)
	}

	if err := applyQuotation(rec, q); err != nil {
		return err
	}
	rec.Set("created", time.Now().UTC())

	if err := s.app.Save(rec); err != nil {
		return fmt.Errorf("update quotation %s: %w", id, err)
	}
	return nil
}

// Delete removes a quotation.
func (s *Store) Delete(id string) error {
	rec, err := s.app.FindRecordById("quotations", id)
	if err != nil {
		return fmt.Errorf("quotation %s: %w", id, err)
	}
	if err := s.app.Delete(rec); err != nil {
		return fmt.Errorf("delete quotation %s: %w", id, err)
	}
	return nil
}

// Subscribe returns a channel that receives the full ordered quotation list:
// once immediately, then again after every change. The returned cancel
// function removes the listener and closes the channel; it is safe to call
// more than once.
func (s *Store) Subscribe() (<-chan []QuotationWithID, func()) {
	ch := make(chan []QuotationWithID, 4)

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = ch
	s.mu.Unlock()

	if list, err := s.List(); err == nil {
		ch <- list
	} else {
		log.Printf("store: initial snapshot failed: %v", err)
	}

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

// broadcast pushes the current list to every subscriber. Sends never block:
// each emission carries the complete list, so when a subscriber's buffer is
// full the oldest queued snapshot is evicted to make room. A lagging
// subscriber may skip intermediate states but always receives the latest one.
func (s *Store) broadcast() {
	list, err := s.List()
	if err != nil {
		log.Printf("store: broadcast list failed: %v", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- list:
			continue
		default:
		}
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- list:
		default:
		}
	}
}

func applyQuotation(rec *core.Record, q services.Quotation) error {
	items, err := json.Marshal(q.LineItems)
	if err != nil {
		return fmt.Errorf("encode line items: %w", err)
	}

	rec.Set("company_name", q.CompanyName)
	rec.Set("company_address", q.CompanyAddress)
	rec.Set("company_email", q.CompanyEmail)
	rec.Set("company_phone", q.CompanyPhone)
	rec.Set("header_image", q.HeaderImage)
	rec.Set("customer_name", q.CustomerName)
	rec.Set("customer_address", q.CustomerAddress)
	rec.Set("kind_attention", q.KindAttention)
	rec.Set("quote_name", q.QuoteName)
	rec.Set("quote_date", q.QuoteDate)
	rec.Set("subject", q.Subject)
	rec.Set("line_items", string(items))
	rec.Set("terms", q.Terms)
	rec.Set("authorised_signatory", q.AuthorisedSignatory)
	return nil
}

func recordToQuotation(rec *core.Record) QuotationWithID {
	var items []services.LineItem
	if raw := rec.GetString("line_items"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &items); err != nil {
			log.Printf("store: quotation %s has malformed line items: %v", rec.Id, err)
		}
	}

	return QuotationWithID{
		ID:        rec.Id,
		CreatedAt: rec.GetDateTime("created").Time(),
		Quotation: services.Quotation{
			CompanyName:         rec.GetString("company_name"),
			CompanyAddress:      rec.GetString("company_address"),
			CompanyEmail:        rec.GetString("company_email"),
			CompanyPhone:        rec.GetString("company_phone"),
			HeaderImage:         rec.GetString("header_image"),
			CustomerName:        rec.GetString("customer_name"),
			CustomerAddress:     rec.GetString("customer_address"),
			KindAttention:       rec.GetString("kind_attention"),
			QuoteName:           rec.GetString("quote_name"),
			QuoteDate:           rec.GetDateTime("quote_date").Time(),
			Subject:             rec.GetString("subject"),
			LineItems:           items,
			Terms:               rec.GetString("terms"),
			AuthorisedSignatory: rec.GetString("authorised_signatory"),
		},
	}
}
