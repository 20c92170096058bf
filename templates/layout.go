package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// component adapts a plain writer function to the templ runtime.
func component(fn func(w io.Writer) error) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return fn(w)
	})
}

func esc(s string) string {
	return templ.EscapeString(s)
}

// page wraps body components in the HTML shell: htmx plus its SSE extension,
// the stylesheet, and the toast listener that picks up HX-Trigger events and
// flash cookies.
func page(title string, body ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s</title>
<link rel="stylesheet" href="/static/app.css">
<script src="/static/htmx.min.js"></script>
<script src="/static/htmx-ext-sse.js"></script>
</head>
<body>
<div id="toast-container"></div>
<script src="/static/toast.js"></script>
<div class="app-layout">`, esc(title)); err != nil {
			return err
		}
		for _, c := range body {
			if err := c.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>
</body>
</html>`)
		return err
	})
}

// EditorPage is the full editor view: sidebar plus quotation form.
func EditorPage(data EditorData, sidebar SidebarData) templ.Component {
	title := "Quotation Generator"
	if data.QuoteName != "" {
		title = data.QuoteName + " - Quotation Generator"
	}
	return page(title, Sidebar(sidebar), editorMain(data))
}

func editorMain(data EditorData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<main class="editor">
<header class="editor-header"><h1>Quotation Generator</h1>
<p class="hint">Create, edit and manage quotations. Changes are saved when you click Save or Download.</p>
</header>`); err != nil {
			return err
		}
		if err := EditorForm(data).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</main>`)
		return err
	})
}
