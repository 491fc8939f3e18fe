package storage

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	// MaxFiles is the per-request attachment limit.
	MaxFiles = 5
	// MaxFileSize is the per-file size limit (5 MB).
	MaxFileSize = 5 * 1024 * 1024
)

// allowedTypes is the MIME allow-list for uploaded documents.
var allowedTypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"image/jpeg": true,
	"image/png":  true,
}

// extTypes maps extensions to MIME types for parts that arrive as
// application/octet-stream or with no Content-Type at all.
var extTypes = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

// UploadError reports a rejected upload; handlers turn it into a 400.
type UploadError struct {
	Message string
}

func (e *UploadError) Error() string { return e.Message }

// Store writes uploaded documents into a local staging directory. Files
// stay there permanently once the matching row commits; there is no
// later move or archival step.
type Store struct {
	Dir string
}

// NewStore creates the staging directory if it does not exist yet.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{Dir: dir}, nil
}

// SaveAll writes every file under the given multipart field to the
// staging directory and returns the on-disk paths. Count, size and MIME
// checks run before any byte is written for that file; if any file in
// the batch is rejected or fails to write, files already staged for this
// request are removed and an *UploadError (or the write error) comes
// back.
func (s *Store) SaveAll(form *multipart.Form, field string) ([]string, error) {
	if form == nil {
		return nil, nil
	}
	files := form.File[field]
	if len(files) == 0 {
		return nil, nil
	}
	if len(files) > MaxFiles {
		return nil, &UploadError{Message: fmt.Sprintf("Too many files. Maximum is %d files", MaxFiles)}
	}

	var paths []string
	for _, fh := range files {
		if fh.Size > MaxFileSize {
			s.Remove(paths)
			return nil, &UploadError{Message: "File size too large. Maximum size is 5MB"}
		}
		if !allowed(fh) {
			s.Remove(paths)
			return nil, &UploadError{Message: "Invalid file type: " + contentType(fh)}
		}

		dst, err := s.save(fh, field)
		if err != nil {
			s.Remove(paths)
			return nil, err
		}
		paths = append(paths, dst)
	}
	return paths, nil
}

// Remove deletes staged files best-effort: a file that cannot be removed
// is logged and skipped, never escalated.
func (s *Store) Remove(paths []string) {
	for _, p := range paths {
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			slog.Error("failed to delete staged file", "path", p, "error", err)
		}
	}
}

func (s *Store) save(fh *multipart.FileHeader, field string) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	// timestamp + random suffix keeps names unique within the directory
	name := fmt.Sprintf("%s-%d-%d%s",
		field, time.Now().UnixMilli(), rand.Intn(1_000_000_000), strings.ToLower(filepath.Ext(fh.Filename)))
	dst := filepath.Join(s.Dir, name)

	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("create staged file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		os.Remove(dst)
		return "", fmt.Errorf("write staged file: %w", err)
	}
	return dst, nil
}

func contentType(fh *multipart.FileHeader) string {
	ct := fh.Header.Get("Content-Type")
	if ct == "" || ct == "application/octet-stream" {
		if byExt, ok := extTypes[strings.ToLower(filepath.Ext(fh.Filename))]; ok {
			return byExt
		}
	}
	return ct
}

func allowed(fh *multipart.FileHeader) bool {
	return allowedTypes[contentType(fh)]
}
