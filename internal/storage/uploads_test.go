package storage

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartFiles(t *testing.T, field string, files map[string]string) []*multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for name, content := range files {
		part, err := w.CreateFormFile(field, name)
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req, err := http.NewRequest(http.MethodPost, "/", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File[field]
}

func TestSaveWritesFileUnderUniqueName(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)

	fhs := multipartFiles(t, "image", map[string]string{"portrait.PNG": "pixels"})
	url, err := store.Save(fhs[0])
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, PublicPrefix+"/"))
	assert.True(t, strings.HasSuffix(url, ".png"), "extension is kept, lowercased")
	assert.NotContains(t, url, "portrait", "original name is not reused")

	data, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(url, PublicPrefix+"/")))
	require.NoError(t, err)
	assert.Equal(t, "pixels", string(data))
}

func TestSaveAllIsAllOrNothing(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)

	fhs := multipartFiles(t, "images", map[string]string{"a.png": "aaa", "b.png": "bbb"})
	urls, err := store.SaveAll(fhs)
	require.NoError(t, err)
	require.Len(t, urls, 2)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	store.RemoveAll(urls)
	entries, err = os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRemoveToleratesMissingFile(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	assert.NoError(t, store.Remove(PublicPrefix+"/never-existed.png"))
}

func TestRemoveRejectsTraversal(t *testing.T) {
	dir := t.TempDir()
	outside := filepath.Join(dir, "secret.txt")
	require.NoError(t, os.WriteFile(outside, []byte("keep"), 0o600))

	store, err := NewStore(filepath.Join(dir, "uploads"))
	require.NoError(t, err)

	err = store.Remove(PublicPrefix + "/../secret.txt")
	require.Error(t, err)

	data, err := os.ReadFile(outside)
	require.NoError(t, err)
	assert.Equal(t, "keep", string(data))
}
