package glapi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"regexp"
	"strings"

	"github.com/ugordi/gladialore-admin/internal/model"
)

// MediaFilter narrows a media asset listing
type MediaFilter struct {
	Kind   string
	Query  string
	Limit  int
	Offset int
}

// ListMedia returns a page of media assets
func (c *Client) ListMedia(ctx context.Context, filter MediaFilter) (*model.MediaAssetList, error) {
	query := CleanQuery(map[string]any{
		"kind":   filter.Kind,
		"q":      filter.Query,
		"limit":  filter.Limit,
		"offset": filter.Offset,
	})

	var list model.MediaAssetList
	if err := c.get(ctx, "/admin/media", query, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// CreateMediaAsset registers an externally hosted asset by URL
func (c *Client) CreateMediaAsset(ctx context.Context, assetURL, kind string) (*model.MediaAsset, error) {
	body := map[string]string{"url": assetURL, "kind": kind}

	var resp uploadResponse
	if err := c.post(ctx, "/admin/media", body, &resp); err != nil {
		return nil, err
	}
	return resp.asset(), nil
}

// UploadMedia uploads a file as multipart form data. Extra fields (e.g.
// filename, kind) are sent alongside the file part. This is the one call
// that does not use JSON encoding.
func (c *Client) UploadMedia(ctx context.Context, filename string, file io.Reader, extra map[string]string) (*model.MediaAsset, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, newTransportError(fmt.Errorf("failed to build upload form: %w", err))
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, newTransportError(fmt.Errorf("failed to read upload file: %w", err))
	}
	for key, value := range extra {
		if err := writer.WriteField(key, value); err != nil {
			return nil, newTransportError(fmt.Errorf("failed to build upload form: %w", err))
		}
	}
	if err := writer.Close(); err != nil {
		return nil, newTransportError(fmt.Errorf("failed to build upload form: %w", err))
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/admin/media/upload", nil, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var resp uploadResponse
	if err := c.send(req, &resp); err != nil {
		return nil, err
	}
	return resp.asset(), nil
}

// uploadResponse tolerates both shapes the backend returns from media
// writes: the asset at the top level, or nested under an asset wrapper
type uploadResponse struct {
	model.MediaAsset
	Asset *model.MediaAsset `json:"asset"`
}

// asset resolves the wire variant into the one canonical shape
func (r *uploadResponse) asset() *model.MediaAsset {
	if r.Asset != nil && r.Asset.ID != "" {
		return r.Asset
	}
	copied := r.MediaAsset
	return &copied
}

var absoluteURL = regexp.MustCompile(`(?i)^https?://`)

// ResolveMediaURL turns a backend-relative asset path (/uploads/...) into an
// absolute URL against the API origin. Absolute URLs pass through untouched.
func (c *Client) ResolveMediaURL(assetURL string) string {
	if assetURL == "" {
		return ""
	}
	if absoluteURL.MatchString(assetURL) {
		return assetURL
	}

	// Uploads are served from the origin, not under the API mount
	origin := strings.TrimRight(c.baseURL, "/")
	if idx := strings.LastIndex(strings.ToLower(origin), "/api/v1"); idx >= 0 && idx == len(origin)-len("/api/v1") {
		origin = origin[:idx]
	}
	return origin + assetURL
}
