// Package collections programmatically ensures the PocketBase collections
// this application needs.
package collections

import (
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Setup creates the quotations collection if it does not exist yet.
//
// A quotation is stored as one document: scalar fields plus the line items
// embedded as a JSON array. The "created" field is a plain date the store
// rewrites on every save, because list ordering follows the last save time;
// "updated" is left to PocketBase.
func Setup(app *pocketbase.PocketBase) {
	ensureCollection(app, "quotations", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "company_name", Required: true})
		c.Fields.Add(&core.TextField{Name: "company_address", Required: true})
		c.Fields.Add(&core.TextField{Name: "company_email"})
		c.Fields.Add(&core.TextField{Name: "company_phone"})
		// Base64 data URL; 2MB of image is ~2.8MB encoded.
		c.Fields.Add(&core.TextField{Name: "header_image", Max: 4 << 20})
		c.Fields.Add(&core.TextField{Name: "customer_name", Required: true})
		c.Fields.Add(&core.TextField{Name: "customer_address", Required: true})
		c.Fields.Add(&core.TextField{Name: "kind_attention"})
		c.Fields.Add(&core.TextField{Name: "quote_name", Required: true})
		c.Fields.Add(&core.DateField{Name: "quote_date", Required: true})
		c.Fields.Add(&core.TextField{Name: "subject", Required: true})
		c.Fields.Add(&core.JSONField{Name: "line_items", Required: true, MaxSize: 1 << 20})
		c.Fields.Add(&core.TextField{Name: "terms", Required: true})
		c.Fields.Add(&core.TextField{Name: "authorised_signatory", Required: true})
		c.Fields.Add(&core.DateField{Name: "created", Required: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned, otherwise a new base collection is
// created with the given fields.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	log.Printf("Created collection %q (id=%s)", name, collection.Id)
	return collection
}
