// Package files stores chat attachments in the Cloud Storage bucket.
package files

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"cloud.google.com/go/storage"
)

var ErrNotFound = errors.New("object not found")

// Upload is the stored attachment: the object path used for later deletion
// and the URL handed to chat clients.
type Upload struct {
	Path string `json:"filePath"`
	URL  string `json:"fileUrl"`
}

type Store struct {
	bucket *storage.BucketHandle
}

func NewStore(bucket *storage.BucketHandle) *Store {
	return &Store{bucket: bucket}
}

// ObjectPath places an attachment under its chat scope with a millisecond
// prefix, so repeated uploads of the same file name never collide.
func ObjectPath(chatScope, fileName string, now time.Time) string {
	// Strip any client-supplied directory part.
	name := path.Base(strings.ReplaceAll(fileName, "\\", "/"))
	return fmt.Sprintf("uploads/%s/%d_%s", chatScope, now.UnixMilli(), name)
}

// Save streams the attachment into the bucket and returns its path and
// download URL.
func (s *Store) Save(ctx context.Context, chatScope, fileName, contentType string, r io.Reader) (*Upload, error) {
	objPath := ObjectPath(chatScope, fileName, time.Now())
	obj := s.bucket.Object(objPath)

	w := obj.NewWriter(ctx)
	if contentType != "" {
		w.ContentType = contentType
	}
	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return nil, fmt.Errorf("uploading %s: %w", objPath, err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("uploading %s: %w", objPath, err)
	}

	attrs, err := obj.Attrs(ctx)
	if err != nil {
		return nil, err
	}
	return &Upload{Path: objPath, URL: attrs.MediaLink}, nil
}

// Delete removes a stored attachment by path. A missing object maps to
// ErrNotFound so callers can treat it as already gone.
func (s *Store) Delete(ctx context.Context, objPath string) error {
	err := s.bucket.Object(objPath).Delete(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return ErrNotFound
	}
	return err
}
