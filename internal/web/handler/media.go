package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/ugordi/gladialore-admin/internal/glapi"
	"github.com/ugordi/gladialore-admin/internal/model"
)

// maxUploadBytes bounds in-memory parsing of upload forms
const maxUploadBytes = 32 << 20 // 32 MiB

// MediaHandler handles the media library pages
type MediaHandler struct {
	api    *glapi.Client
	logger *slog.Logger
}

// NewMediaHandler creates a new MediaHandler
func NewMediaHandler(api *glapi.Client, logger *slog.Logger) *MediaHandler {
	return &MediaHandler{api: api, logger: logger}
}

// mediaRow pairs an asset with its browser-reachable URL
type mediaRow struct {
	model.MediaAsset
	ResolvedURL string
}

type mediaPage struct {
	Query  string
	Kind   string
	Assets []mediaRow
	Total  int
	Pager
}

// List renders the media library
func (h *MediaHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := glapi.MediaFilter{
		Query:  q.Get("q"),
		Kind:   q.Get("kind"),
		Limit:  pageSize,
		Offset: formInt(r, "offset"),
	}

	data := mediaPage{Query: filter.Query, Kind: filter.Kind}

	assets, err := h.api.ListMedia(r.Context(), filter)
	if err != nil {
		renderError(w, r, "media", "Media", "media", data, errorMessage(err))
		return
	}

	for _, asset := range assets.Items {
		data.Assets = append(data.Assets, mediaRow{
			MediaAsset:  asset,
			ResolvedURL: h.api.ResolveMediaURL(asset.URL),
		})
	}
	data.Total = assets.Total
	data.Pager = paginate("/media", q, filter.Offset, assets.Total)

	render(w, r, "media", "Media", "media", data)
}

// Create registers an externally hosted asset by URL
func (h *MediaHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		flashRedirect(w, r, "error", "Invalid form data", "/media")
		return
	}

	assetURL := strings.TrimSpace(r.FormValue("url"))
	kind := r.FormValue("kind")
	if assetURL == "" {
		flashRedirect(w, r, "error", "URL is required", "/media")
		return
	}

	if _, err := h.api.CreateMediaAsset(r.Context(), assetURL, kind); err != nil {
		flashRedirect(w, r, "error", errorMessage(err), "/media")
		return
	}

	flashRedirect(w, r, "success", "Media asset added", "/media")
}

// Upload forwards a file upload to the backend as multipart form data
func (h *MediaHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		flashRedirect(w, r, "error", "Invalid upload", "/media")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		flashRedirect(w, r, "error", "A file is required", "/media")
		return
	}
	defer func() { _ = file.Close() }()

	filename := strings.TrimSpace(r.FormValue("filename"))
	if filename == "" {
		filename = header.Filename
	}

	extra := map[string]string{"filename": filename}
	if kind := r.FormValue("kind"); kind != "" {
		extra["kind"] = kind
	}

	asset, err := h.api.UploadMedia(r.Context(), filename, file, extra)
	if err != nil {
		flashRedirect(w, r, "error", errorMessage(err), "/media")
		return
	}

	flashRedirect(w, r, "success", "Uploaded "+asset.URL, "/media")
}
