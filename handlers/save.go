package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase/core"

	"quotegen/services"
	"quotegen/store"
	"quotegen/templates"
)

const maxUploadMemory = 8 << 20

// parseQuotationRequest reads the posted form, including the optional header
// image upload, into a quotation. Upload problems never fail the request:
// the previous image is kept and a warning toast is set instead.
func parseQuotationRequest(e *core.RequestEvent) (services.Quotation, services.FieldErrors, error) {
	ct := e.Request.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "multipart/form-data") {
		if err := e.Request.ParseMultipartForm(maxUploadMemory); err != nil {
			return services.Quotation{}, nil, err
		}
	} else if err := e.Request.ParseForm(); err != nil {
		return services.Quotation{}, nil, err
	}

	q, errs := services.ParseQuotationForm(e.Request.Form)

	if e.Request.FormValue("remove_header_image") != "" {
		q.HeaderImage = ""
	}

	if e.Request.MultipartForm != nil {
		if file, _, err := e.Request.FormFile("header_image_file"); err == nil {
			defer file.Close()

			raw, err := io.ReadAll(io.LimitReader(file, services.MaxHeaderImageBytes+1))
			if err != nil {
				log.Printf("save: could not read header image upload: %v", err)
				SetToast(e, "warning", "Could not read the uploaded image. Keeping the previous one.")
				return q, errs, nil
			}

			dataURL, err := services.EncodeHeaderUpload(raw)
			switch {
			case errors.Is(err, services.ErrImageTooLarge):
				SetToast(e, "warning", "Header image exceeds the 2MB limit. Keeping the previous one.")
			case err != nil:
				SetToast(e, "warning", "Header image must be a PNG or JPEG. Keeping the previous one.")
			default:
				q.HeaderImage = dataURL
			}
		}
	}

	return q, errs, nil
}

// renderEditorWithErrors re-renders the full editor page with the user's
// input and field errors intact. Like the editor itself, the sidebar starts
// as skeleton rows and fills in from the SSE stream.
func renderEditorWithErrors(e *core.RequestEvent, id string, q services.Quotation, errs services.FieldErrors) error {
	SetToast(e, "warning", "Please fix the errors below")
	data := editorData(id, q, errs)
	sidebar := templates.SidebarData{ActiveID: id, Loading: true}
	return templates.EditorPage(data, sidebar).Render(e.Request.Context(), e.Response)
}

func redirectTo(e *core.RequestEvent, location string) error {
	if e.Request.Header.Get("HX-Request") == "true" {
		e.Response.Header().Set("HX-Redirect", location)
		return e.String(http.StatusOK, "")
	}
	return e.Redirect(http.StatusFound, location)
}

// HandleQuotationCreate handles POST /quotations: validates and saves a new
// quotation, then redirects the editor onto the persisted record.
func HandleQuotationCreate(st *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		q, parseErrs, err := parseQuotationRequest(e)
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		errs := services.ValidateQuotation(q)
		errs.Merge(parseErrs)
		if len(errs) > 0 {
			return renderEditorWithErrors(e, "", q, errs)
		}

		id, err := st.Create(q)
		if err != nil {
			log.Printf("save: could not create quotation: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Quotation saved")
		return redirectTo(e, "/?id="+id)
	}
}

// HandleQuotationSave handles POST /quotations/{id}/save: validates and
// overwrites an existing quotation in place.
func HandleQuotationSave(st *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return ErrorToast(e, http.StatusBadRequest, "Missing quotation ID")
		}
		if _, err := st.Get(id); err != nil {
			log.Printf("save: quotation %q not found: %v", id, err)
			return ErrorToast(e, http.StatusNotFound, "Quotation not found")
		}

		q, parseErrs, err := parseQuotationRequest(e)
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		errs := services.ValidateQuotation(q)
		errs.Merge(parseErrs)
		if len(errs) > 0 {
			return renderEditorWithErrors(e, id, q, errs)
		}

		if err := st.Update(id, q); err != nil {
			log.Printf("save: could not update quotation %q: %v", id, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Quotation saved")
		return redirectTo(e, "/?id="+id)
	}
}
