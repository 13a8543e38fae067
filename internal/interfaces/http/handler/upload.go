package handler

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// FileSaver persists uploaded files under generated names. Both storage
// drivers satisfy it.
type FileSaver interface {
	Save(ctx context.Context, filename string, content io.Reader) error
}

// allowed image extensions for product uploads
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// saveUpload writes one uploaded file under a fresh unique name and
// returns that name. The caller passes the names to the application
// layer, which deletes them again if its transaction does not commit.
func saveUpload(ctx context.Context, store FileSaver, fh *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !imageExtensions[ext] {
		return "", fmt.Errorf("unsupported image type: %q", ext)
	}

	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer f.Close()

	name := uuid.New().String() + ext
	if err := store.Save(ctx, name, f); err != nil {
		return "", err
	}
	return name, nil
}

// saveUploads stores a batch of uploaded files, returning the generated
// names in input order. On failure the names written so far are still
// returned so the caller can remove them.
func saveUploads(ctx context.Context, store FileSaver, fhs []*multipart.FileHeader) ([]string, error) {
	names := make([]string, 0, len(fhs))
	for _, fh := range fhs {
		name, err := saveUpload(ctx, store, fh)
		if err != nil {
			return names, err
		}
		names = append(names, name)
	}
	return names, nil
}
