// Package handler implements the admin panel's page handlers. Every
// handler follows the same shape: read form or query input, call the
// backend through the API client, and render a template or redirect with
// a flash message.
package handler

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/ugordi/gladialore-admin/internal/glapi"
	"github.com/ugordi/gladialore-admin/internal/web/middleware"
	"github.com/ugordi/gladialore-admin/internal/web/templates"
)

// pageSize is how many rows list pages request per page
const pageSize = 25

// Pager carries the prev/next links list templates render. Exported so the
// templates can reach the promoted fields.
type Pager struct {
	PrevURL string
	NextURL string
}

// paginate builds prev/next URLs for a list page. query is the page's
// current filter state; offset moves in pageSize steps.
func paginate(path string, query url.Values, offset, total int) Pager {
	var p Pager
	if offset > 0 {
		prev := offset - pageSize
		if prev < 0 {
			prev = 0
		}
		p.PrevURL = pageURL(path, query, prev)
	}
	if offset+pageSize < total {
		p.NextURL = pageURL(path, query, offset+pageSize)
	}
	return p
}

func pageURL(path string, query url.Values, offset int) string {
	q := url.Values{}
	for k, vs := range query {
		if k == "offset" {
			continue
		}
		q[k] = vs
	}
	if offset > 0 {
		q.Set("offset", strconv.Itoa(offset))
	}
	if encoded := q.Encode(); encoded != "" {
		return path + "?" + encoded
	}
	return path
}

// render writes a page with the session and flash pulled from the request
// context
func render(w http.ResponseWriter, r *http.Request, name, title, section string, data any) {
	renderFlash(w, r, name, title, section, data, middleware.GetFlash(r.Context()))
}

// renderError renders a page with an inline error notice, used when a GET
// handler's backend read fails and there is nothing sensible to redirect to
func renderError(w http.ResponseWriter, r *http.Request, name, title, section string, data any, msg string) {
	renderFlash(w, r, name, title, section, data, &templates.FlashMessage{Type: "error", Message: msg})
}

func renderFlash(w http.ResponseWriter, r *http.Request, name, title, section string, data any, flash *templates.FlashMessage) {
	var username string
	if sess := middleware.GetSession(r.Context()); sess != nil {
		username = sess.Username
	}

	page := templates.PageData{
		Title:    title,
		Username: username,
		Flash:    flash,
		Section:  section,
		Data:     data,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.Render(w, name, page); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// flashRedirect sets a one-shot flash and redirects; the standard
// post-redirect-get ending for action handlers
func flashRedirect(w http.ResponseWriter, r *http.Request, flashType, msg, to string) {
	middleware.SetFlash(w, flashType, msg)
	http.Redirect(w, r, to, http.StatusSeeOther)
}

// errorMessage extracts the human-readable message from a backend error
func errorMessage(err error) string {
	if apiErr, ok := glapi.AsAPIError(err); ok {
		return apiErr.Message
	}
	return err.Error()
}

// formInt reads an integer form field, treating blank or malformed input
// as zero
func formInt(r *http.Request, name string) int {
	n, _ := strconv.Atoi(r.FormValue(name))
	return n
}
