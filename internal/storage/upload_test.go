package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"circula/internal/config"
	"circula/internal/model"
	"circula/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) (ImageStore, string) {
	dir := t.TempDir()
	s, err := NewImageStore(config.Upload{Dir: dir, MaxProfileBytes: 64, MaxProductBytes: 1024})
	require.NoError(t, err)
	return s, dir
}

func TestImageStore_SavePNG(t *testing.T) {
	s, dir := newStore(t)

	url, err := s.Save(testutil.FileHeader(t, "lamp.png", testutil.PNG), ProductImage)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/uploads/product-images/"))
	assert.True(t, strings.HasSuffix(url, ".png"))

	stored, err := os.ReadFile(filepath.Join(dir, "product-images", filepath.Base(url)))
	require.NoError(t, err)
	assert.Equal(t, testutil.PNG, stored)

	require.NoError(t, s.Remove(url))
	_, err = os.Stat(filepath.Join(dir, "product-images", filepath.Base(url)))
	assert.True(t, os.IsNotExist(err))
}

func TestImageStore_RejectsWrongType(t *testing.T) {
	s, _ := newStore(t)

	_, err := s.Save(testutil.FileHeader(t, "notes.png", []byte("just some text")), ProductImage)
	assert.ErrorIs(t, err, model.ErrInvalidImage)

	gif := []byte("GIF89a\x01\x00\x01\x00")
	_, err = s.Save(testutil.FileHeader(t, "a.gif", gif), ProductImage)
	assert.ErrorIs(t, err, model.ErrInvalidImage, "gif is only allowed for profile pictures")

	_, err = s.Save(testutil.FileHeader(t, "a.gif", gif), ProfilePicture)
	assert.NoError(t, err)
}

func TestImageStore_RejectsOversized(t *testing.T) {
	s, _ := newStore(t)

	big := append(append([]byte{}, testutil.PNG...), make([]byte, 100)...)
	_, err := s.Save(testutil.FileHeader(t, "me.png", big), ProfilePicture)
	assert.ErrorIs(t, err, model.ErrImageTooLarge)
}

func TestImageStore_RemoveIgnoresForeignPaths(t *testing.T) {
	s, _ := newStore(t)

	assert.NoError(t, s.Remove("/etc/passwd"))
	assert.NoError(t, s.Remove("/uploads/../secret"))
	assert.NoError(t, s.Remove("/uploads/product-images/missing.png"))
}
