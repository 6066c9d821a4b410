package upload

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bgshelf/bgshelf/internal/testutil"
)

func TestUploadSendsMultipartForm(t *testing.T) {
	var gotPreset, gotFilename, gotContent string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotPreset = r.FormValue("upload_preset")

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer func() { _ = file.Close() }()
		gotFilename = header.Filename
		content, err := io.ReadAll(file)
		require.NoError(t, err)
		gotContent = string(content)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"secure_url": "https://media.example.com/abc.jpg"}`))
	}))
	defer server.Close()

	u := New(server.URL, "shelf-preset", testutil.NopLogger())
	url, err := u.Upload(context.Background(), "/tmp/covers/brass.jpg", strings.NewReader("image-bytes"))
	require.NoError(t, err)

	assert.Equal(t, "https://media.example.com/abc.jpg", url)
	assert.Equal(t, "shelf-preset", gotPreset)
	assert.Equal(t, "brass.jpg", gotFilename)
	assert.Equal(t, "image-bytes", gotContent)
}

func TestUploadSurfacesHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"message": "invalid preset"}}`, http.StatusBadRequest)
	}))
	defer server.Close()

	u := New(server.URL, "bad-preset", testutil.NopLogger())
	_, err := u.Upload(context.Background(), "a.jpg", strings.NewReader("x"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 400")
}

func TestUploadRejectsResponseWithoutURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	u := New(server.URL, "p", testutil.NopLogger())
	_, err := u.Upload(context.Background(), "a.jpg", strings.NewReader("x"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "secure_url")
}
