// Package upload pushes images and files to the external media host.
// The host returns a public URL which is stored on the game or file record;
// the backend never sees the bytes.
package upload

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"time"
)

// Uploader posts files to the media host's unsigned upload endpoint
type Uploader struct {
	uploadURL  string
	preset     string
	httpClient *http.Client
	logger     *slog.Logger
}

// New creates an Uploader for the given endpoint and upload preset
func New(uploadURL, preset string, logger *slog.Logger) *Uploader {
	return &Uploader{
		uploadURL: uploadURL,
		preset:    preset,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		logger: logger,
	}
}

// uploadResponse is the media host's response body
type uploadResponse struct {
	SecureURL string `json:"secure_url"`
}

// Upload sends the file as a multipart POST and returns the hosted URL
func (u *Uploader) Upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	body, contentType, err := u.multipartBody(filename, r)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.uploadURL, body)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("upload failed: HTTP %d: %s", resp.StatusCode, string(respBody))
	}

	var parsed uploadResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse upload response: %w", err)
	}
	if parsed.SecureURL == "" {
		return "", fmt.Errorf("upload response missing secure_url")
	}

	if u.logger != nil {
		u.logger.Debug("file uploaded",
			slog.String("filename", filepath.Base(filename)),
			slog.String("url", parsed.SecureURL),
		)
	}
	return parsed.SecureURL, nil
}

// multipartBody builds the host's expected form: a "file" part plus the
// "upload_preset" credential field. The body is streamed through a pipe
// so large files are not buffered in memory.
func (u *Uploader) multipartBody(filename string, r io.Reader) (io.Reader, string, error) {
	pr, pw := io.Pipe()
	writer := multipart.NewWriter(pw)

	go func() {
		var err error
		defer func() { _ = pw.CloseWithError(err) }()

		part, ferr := writer.CreateFormFile("file", filepath.Base(filename))
		if ferr != nil {
			err = ferr
			return
		}
		if _, cerr := io.Copy(part, r); cerr != nil {
			err = cerr
			return
		}
		if ferr := writer.WriteField("upload_preset", u.preset); ferr != nil {
			err = ferr
			return
		}
		err = writer.Close()
	}()

	return pr, writer.FormDataContentType(), nil
}
