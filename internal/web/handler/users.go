package handler

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/mux"

	"github.com/ugordi/gladialore-admin/internal/glapi"
	"github.com/ugordi/gladialore-admin/internal/model"
)

// UsersHandler handles the user management pages
type UsersHandler struct {
	api    *glapi.Client
	logger *slog.Logger
}

// NewUsersHandler creates a new UsersHandler
func NewUsersHandler(api *glapi.Client, logger *slog.Logger) *UsersHandler {
	return &UsersHandler{api: api, logger: logger}
}

type usersPage struct {
	Query  string
	Status string
	Users  *model.UserList
	Pager
}

// List renders the filterable user list
func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := glapi.UserFilter{
		Query:  q.Get("q"),
		Status: q.Get("status"),
		Limit:  pageSize,
		Offset: formInt(r, "offset"),
	}

	data := usersPage{Query: filter.Query, Status: filter.Status, Users: &model.UserList{}}

	users, err := h.api.ListUsers(r.Context(), filter)
	if err != nil {
		renderError(w, r, "users", "Users", "users", data, errorMessage(err))
		return
	}

	data.Users = users
	data.Pager = paginate("/users", q, filter.Offset, users.Total)
	render(w, r, "users", "Users", "users", data)
}

type userDetailPage struct {
	User     *model.User
	Main     string
	Wallet   string
	Sessions string
	Rank     *model.RankingEntry
}

// Detail renders one user with their best-effort sub-resources
func (h *UsersHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id := model.UserID(mux.Vars(r)["id"])

	user, err := h.api.GetUser(r.Context(), id)
	if err != nil {
		flashRedirect(w, r, "error", errorMessage(err), "/users")
		return
	}

	data := userDetailPage{User: user}

	// Sub-resources and rank are optional; a missing endpoint leaves the
	// section blank
	if raw, err := h.api.GetUserMain(r.Context(), id); err == nil {
		data.Main = prettyJSON(raw)
	}
	if raw, err := h.api.GetUserWallet(r.Context(), id); err == nil {
		data.Wallet = prettyJSON(raw)
	}
	if raw, err := h.api.GetUserSessions(r.Context(), id); err == nil {
		data.Sessions = prettyJSON(raw)
	}
	if rank, err := h.api.GetUserRank(r.Context(), id, model.ScopeSeason); err == nil {
		data.Rank = rank
	}

	render(w, r, "user_detail", user.Username, "users", data)
}

// SetStatus bans, unbans, or otherwise re-states a user
func (h *UsersHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := r.ParseForm(); err != nil {
		flashRedirect(w, r, "error", "Invalid form data", "/users")
		return
	}

	status := r.FormValue("status")
	reason := strings.TrimSpace(r.FormValue("reason"))
	if status == "" {
		flashRedirect(w, r, "error", "Status is required", "/users")
		return
	}

	if _, err := h.api.SetUserStatus(r.Context(), model.UserID(id), status, reason); err != nil {
		flashRedirect(w, r, "error", errorMessage(err), backTo(r, "/users"))
		return
	}

	flashRedirect(w, r, "success", "User status updated", backTo(r, "/users"))
}

// SetRole changes a user's role
func (h *UsersHandler) SetRole(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := r.ParseForm(); err != nil {
		flashRedirect(w, r, "error", "Invalid form data", "/users")
		return
	}

	role := r.FormValue("role")
	if role == "" {
		flashRedirect(w, r, "error", "Role is required", "/users/"+id)
		return
	}

	if _, err := h.api.SetUserRole(r.Context(), model.UserID(id), role); err != nil {
		flashRedirect(w, r, "error", errorMessage(err), "/users/"+id)
		return
	}

	flashRedirect(w, r, "success", "User role updated", "/users/"+id)
}

// Delete removes a user account
func (h *UsersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.api.DeleteUser(r.Context(), model.UserID(id)); err != nil {
		flashRedirect(w, r, "error", errorMessage(err), "/users/"+id)
		return
	}

	flashRedirect(w, r, "success", "User deleted", "/users")
}

// backTo returns the referring page's local path, else the fallback. Status
// actions live on both the list and detail pages, so the redirect follows
// wherever the form was submitted from.
func backTo(r *http.Request, fallback string) string {
	ref, err := url.Parse(r.Header.Get("Referer"))
	if err != nil || !strings.HasPrefix(ref.Path, "/") {
		return fallback
	}
	return ref.RequestURI()
}

func prettyJSON(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}
