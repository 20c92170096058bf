// Package templates renders the editor and sidebar views. Components are
// hand-written against the templ runtime and are kept free of domain logic:
// handlers hand them fully formatted view data.
package templates

// SidebarItem is one saved quotation in the navigation list.
type SidebarItem struct {
	ID        string
	QuoteName string
	Active    bool
}

// SidebarData drives the quotation list. Loading renders skeleton rows until
// the first live snapshot arrives.
type SidebarData struct {
	Items    []SidebarItem
	ActiveID string
	Loading  bool
}

// LineItemRow is one editable table row with its derived amount.
type LineItemRow struct {
	Index       int
	Description string
	Quantity    string
	Unit        string
	Rate        string
	Amount      string
}

// EditorData carries everything the quotation form needs, including field
// errors keyed by the same paths validation produces.
type EditorData struct {
	ID string

	CompanyName    string
	CompanyAddress string
	CompanyEmail   string
	CompanyPhone   string
	HeaderImage    string

	CustomerName    string
	CustomerAddress string
	KindAttention   string

	QuoteName string
	QuoteDate string
	Subject   string

	LineItems []LineItemRow
	Total     string

	Terms               string
	AuthorisedSignatory string

	Errors map[string]string
}

// SaveAction returns the form target: create for new records, save-in-place
// for persisted ones.
func (d EditorData) SaveAction() string {
	if d.ID == "" {
		return "/quotations"
	}
	return "/quotations/" + d.ID + "/save"
}
