package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/SscSPs/vidtube_backend/internal/apperrors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var allowedImageExt = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true,
}

// uploadSaver stages multipart files in a temp directory before they are handed to object storage.
type uploadSaver struct {
	dir     string
	maxSize int64
}

// save writes the named form file to the temp dir and returns its path.
// A missing file yields an empty path and no error.
func (u uploadSaver) save(c *gin.Context, field string) (string, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return "", nil
		}
		return "", apperrors.NewValidationError("Invalid " + field + " upload")
	}

	if u.maxSize > 0 && fh.Size > u.maxSize {
		return "", apperrors.NewValidationError(field + " exceeds the maximum upload size")
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedImageExt[ext] {
		return "", apperrors.NewValidationError(field + " must be an image")
	}

	if err := os.MkdirAll(u.dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: failed to prepare upload dir: %v", apperrors.ErrInternal, err)
	}
	dst := filepath.Join(u.dir, uuid.NewString()+ext)
	if err := c.SaveUploadedFile(fh, dst); err != nil {
		return "", fmt.Errorf("%w: failed to save %s: %v", apperrors.ErrInternal, field, err)
	}
	return dst, nil
}

// discard removes staged files that never reached storage. Missing files are fine.
func discard(paths ...string) {
	for _, p := range paths {
		if p != "" {
			_ = os.Remove(p)
		}
	}
}
