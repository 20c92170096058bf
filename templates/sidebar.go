package templates

import (
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// Sidebar is the navigation column. The list body subscribes to the SSE
// stream and is replaced wholesale on every "quotations" event.
func Sidebar(data SidebarData) templ.Component {
	return component(func(w io.Writer) error {
		if _, err := io.WriteString(w, `<aside class="sidebar" hx-ext="sse" sse-connect="/quotations/stream">
<div class="sidebar-header">
<h2>Quotations</h2>
<a href="/" class="btn btn-primary">New Quotation</a>
</div>
<div id="quotation-list" sse-swap="quotations" hx-swap="innerHTML">`); err != nil {
			return err
		}
		if err := renderSidebarList(w, data); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</div>
</aside>`)
		return err
	})
}

// SidebarList is the bare list fragment, served standalone for HTMX requests
// and as the payload of each SSE event.
func SidebarList(data SidebarData) templ.Component {
	return component(func(w io.Writer) error {
		return renderSidebarList(w, data)
	})
}

func renderSidebarList(w io.Writer, data SidebarData) error {
	if data.Loading {
		_, err := io.WriteString(w, `<ul class="quotation-list">
<li class="skeleton"></li>
<li class="skeleton"></li>
<li class="skeleton"></li>
</ul>`)
		return err
	}

	if len(data.Items) == 0 {
		_, err := io.WriteString(w, `<p class="empty">No saved quotations yet.</p>`)
		return err
	}

	if _, err := io.WriteString(w, `<ul class="quotation-list">`); err != nil {
		return err
	}
	for _, item := range data.Items {
		name := item.QuoteName
		if name == "" {
			name = "Untitled Quotation"
		}
		class := "quotation-item"
		if item.Active {
			class += " active"
		}
		if _, err := fmt.Fprintf(w, `<li class="%s">
<a href="/?id=%s">%s</a>
<button type="button" class="btn btn-icon" hx-delete="/quotations/%s" hx-confirm="Delete this quotation? This cannot be undone." hx-swap="none">&times;</button>
</li>`, class, esc(item.ID), esc(name), esc(item.ID)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `</ul>`)
	return err
}
