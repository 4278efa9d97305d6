package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path"
	"path/filepath"

	"circula/internal/config"
	"circula/internal/model"

	"github.com/google/uuid"
)

// URLPrefix is where the upload directory is served.
const URLPrefix = "/uploads"

type Kind int

const (
	ProfilePicture Kind = iota
	ProductImage
)

type rule struct {
	dir     string
	maxSize int64
	allowed map[string]string // sniffed content type -> extension
}

// ImageStore writes uploaded images to disk and returns their public path.
type ImageStore interface {
	Save(file *multipart.FileHeader, kind Kind) (string, error)
	Remove(publicPath string) error
}

type diskStoreImpl struct {
	root  string
	rules map[Kind]rule
}

func NewImageStore(cfg config.Upload) (ImageStore, error) {
	s := &diskStoreImpl{
		root: cfg.Dir,
		rules: map[Kind]rule{
			ProfilePicture: {
				dir:     "profile-pictures",
				maxSize: cfg.MaxProfileBytes,
				allowed: map[string]string{"image/jpeg": ".jpg", "image/png": ".png", "image/gif": ".gif"},
			},
			ProductImage: {
				dir:     "product-images",
				maxSize: cfg.MaxProductBytes,
				allowed: map[string]string{"image/jpeg": ".jpg", "image/png": ".png"},
			},
		},
	}

	for _, r := range s.rules {
		if err := os.MkdirAll(filepath.Join(s.root, r.dir), 0o755); err != nil {
			return nil, fmt.Errorf("create upload dir: %w", err)
		}
	}

	return s, nil
}

func (s *diskStoreImpl) Save(file *multipart.FileHeader, kind Kind) (string, error) {
	r, ok := s.rules[kind]
	if !ok {
		return "", fmt.Errorf("unknown upload kind %d", kind)
	}
	if r.maxSize > 0 && file.Size > r.maxSize {
		return "", model.ErrImageTooLarge
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	head := make([]byte, 512)
	n, err := io.ReadFull(src, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", fmt.Errorf("read upload: %w", err)
	}

	ext, ok := r.allowed[http.DetectContentType(head[:n])]
	if !ok {
		return "", model.ErrInvalidImage
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("rewind upload: %w", err)
	}

	name := uuid.NewString() + ext
	dst, err := os.Create(filepath.Join(s.root, r.dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write upload file: %w", err)
	}

	return path.Join(URLPrefix, r.dir, name), nil
}

// Remove deletes a previously saved file. Paths outside the upload prefix are ignored.
func (s *diskStoreImpl) Remove(publicPath string) error {
	rel, err := filepath.Rel(URLPrefix, filepath.FromSlash(publicPath))
	if err != nil || rel == "." || filepath.IsAbs(rel) || len(rel) >= 2 && rel[:2] == ".." {
		return nil
	}

	if err := os.Remove(filepath.Join(s.root, rel)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove upload: %w", err)
	}

	return nil
}
