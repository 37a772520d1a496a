// Package uploads implements media ingest: it accepts a single uploaded
// image per post-creation request, stores it under the configured directory
// with a collision-resistant filename, and serves the same directory
// read-only under the public URL prefix.
package uploads

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/user/socialpost-go/apperror"
	"github.com/user/socialpost-go/config"
)

// FieldName is the fixed multipart field carrying the image.
const FieldName = "image"

// URLPrefix is the public path uploaded files are served under.
const URLPrefix = "/uploads"

// Saver stores uploaded images on the filesystem.
type Saver struct {
	dir      string
	maxBytes int64
}

// NewSaver creates a Saver, making sure the upload directory exists.
func NewSaver(cfg *config.UploadConfig) (*Saver, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, apperror.NewConfigError(fmt.Sprintf("failed to create upload directory %s", cfg.Dir), err)
	}
	return &Saver{dir: cfg.Dir, maxBytes: cfg.MaxBytes}, nil
}

// ImageFromRequest extracts the image file from a multipart request, stores
// it, and returns its public URL path. A request without an image returns
// "" with no error; a file over the size ceiling is rejected.
//
// The content type is taken as the client declared it; there is no sniffing
// and no transformation.
func (s *Saver) ImageFromRequest(w http.ResponseWriter, r *http.Request) (string, error) {
	// Bound the whole body: the image cap plus slack for the text field and
	// multipart framing.
	r.Body = http.MaxBytesReader(w, r.Body, s.maxBytes+1<<20)

	if err := r.ParseMultipartForm(s.maxBytes); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return "", apperror.NewValidationError("Image exceeds the maximum upload size.", err)
		}
		return "", apperror.NewValidationError("Invalid multipart form.", err)
	}

	file, header, err := r.FormFile(FieldName)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", nil
		}
		return "", apperror.NewValidationError("Invalid image upload.", err)
	}
	defer file.Close()

	if header.Size > s.maxBytes {
		return "", apperror.NewValidationError("Image exceeds the maximum upload size.", nil)
	}

	filename := GenerateFilename(header.Filename)
	dst, err := os.Create(filepath.Join(s.dir, filename))
	if err != nil {
		return "", apperror.NewInternalError("Failed to store image.", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", apperror.NewInternalError("Failed to store image.", err)
	}

	return URLPrefix + "/" + filename, nil
}

// Handler serves the upload directory read-only for the public URL prefix.
func (s *Saver) Handler() http.Handler {
	return http.StripPrefix(URLPrefix+"/", http.FileServer(http.Dir(s.dir)))
}

// GenerateFilename derives a collision-resistant name for an upload: the
// fixed field name, the current time, a random component, and the original
// extension preserved.
func GenerateFilename(original string) string {
	ext := filepath.Ext(original)
	return fmt.Sprintf("%s-%d-%s%s", FieldName, time.Now().UnixMilli(), uuid.NewString(), ext)
}
