package handlers

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase/core"

	"quotegen/store"
	"quotegen/templates"
)

// HandleQuotationStream handles GET /quotations/stream: a server-sent event
// stream that pushes the rendered sidebar list on every quotation change,
// starting with the current snapshot. The connection lives until the client
// goes away.
func HandleQuotationStream(st *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		flusher, ok := e.Response.(http.Flusher)
		if !ok {
			return e.String(http.StatusInternalServerError, "Streaming unsupported")
		}

		e.Response.Header().Set("Content-Type", "text/event-stream")
		e.Response.Header().Set("Cache-Control", "no-cache")
		e.Response.Header().Set("Connection", "keep-alive")
		e.Response.WriteHeader(http.StatusOK)
		flusher.Flush()

		activeID := activeQuotationID(e.Request.Header.Get("HX-Current-URL"))

		updates, cancel := st.Subscribe()
		defer cancel()

		ctx := e.Request.Context()
		for {
			select {
			case <-ctx.Done():
				return nil
			case list, open := <-updates:
				if !open {
					return nil
				}

				var buf bytes.Buffer
				data := sidebarDataFromList(list, activeID)
				if err := templates.SidebarList(data).Render(ctx, &buf); err != nil {
					log.Printf("stream: could not render sidebar list: %v", err)
					continue
				}
				if err := writeSSEEvent(e.Response, "quotations", buf.String()); err != nil {
					return nil
				}
				flusher.Flush()
			}
		}
	}
}

// writeSSEEvent emits one named event. Multi-line payloads become one data:
// line each, per the SSE framing rules.
func writeSSEEvent(w io.Writer, event, payload string) error {
	if _, err := fmt.Fprintf(w, "event: %s\n", event); err != nil {
		return err
	}
	for _, line := range strings.Split(payload, "\n") {
		if _, err := fmt.Fprintf(w, "data: %s\n", line); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n")
	return err
}
