package glapi

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadMediaSendsMultipartForm(t *testing.T) {
	var contentType, fileName, fileBody, kind string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		require.NoError(t, r.ParseMultipartForm(1<<20))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()

		data, _ := io.ReadAll(file)
		fileName = header.Filename
		fileBody = string(data)
		kind = r.FormValue("kind")

		w.Write([]byte(`{"id":"m1","url":"/uploads/orc.png","kind":"image"}`))
	}, &fakeTokens{token: "t"})

	asset, err := client.UploadMedia(context.Background(), "orc.png",
		strings.NewReader("png-bytes"), map[string]string{"kind": "image"})
	require.NoError(t, err)

	assert.Contains(t, contentType, "multipart/form-data")
	assert.Equal(t, "orc.png", fileName)
	assert.Equal(t, "png-bytes", fileBody)
	assert.Equal(t, "image", kind)
	assert.Equal(t, "/uploads/orc.png", asset.URL)
}

func TestUploadMediaAcceptsTopLevelAsset(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"m1","url":"/uploads/a.png","kind":"image"}`))
	}, &fakeTokens{token: "t"})

	asset, err := client.UploadMedia(context.Background(), "a.png", strings.NewReader("x"), nil)
	require.NoError(t, err)
	assert.Equal(t, "m1", string(asset.ID))
}

func TestUploadMediaAcceptsWrappedAsset(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok":true,"asset":{"id":"m2","url":"/uploads/b.png","kind":"image"}}`))
	}, &fakeTokens{token: "t"})

	asset, err := client.UploadMedia(context.Background(), "b.png", strings.NewReader("x"), nil)
	require.NoError(t, err)
	assert.Equal(t, "m2", string(asset.ID))
	assert.Equal(t, "/uploads/b.png", asset.URL)
}

func TestResolveMediaURL(t *testing.T) {
	client := New(Config{BaseURL: "http://localhost:3000/api/v1"}, nil)

	assert.Empty(t, client.ResolveMediaURL(""))
	assert.Equal(t, "https://cdn.example.com/a.png",
		client.ResolveMediaURL("https://cdn.example.com/a.png"))
	assert.Equal(t, "HTTP://cdn.example.com/a.png",
		client.ResolveMediaURL("HTTP://cdn.example.com/a.png"))
	assert.Equal(t, "http://localhost:3000/uploads/a.png",
		client.ResolveMediaURL("/uploads/a.png"))
}

func TestResolveMediaURLWithoutAPIMount(t *testing.T) {
	client := New(Config{BaseURL: "http://backend:9000"}, nil)

	assert.Equal(t, "http://backend:9000/uploads/a.png",
		client.ResolveMediaURL("/uploads/a.png"))
}
