package storage

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newUpload builds a real multipart upload the way a browser would, so
// the header carries both a filename and a declared Content-Type.
func newUpload(t *testing.T, filename, contentType string, content []byte) (multipart.File, *multipart.FileHeader) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	partHeader := textproto.MIMEHeader{}
	partHeader.Set("Content-Disposition", `form-data; name="profileImage"; filename="`+filename+`"`)
	partHeader.Set("Content-Type", contentType)
	part, err := writer.CreatePart(partHeader)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	file, header, err := req.FormFile("profileImage")
	require.NoError(t, err)
	t.Cleanup(func() { file.Close() })

	return file, header
}

func newLocalForTest(t *testing.T) *LocalStorage {
	t.Helper()
	store, err := NewLocal(LocalConfig{
		Dir:        t.TempDir(),
		PublicPath: "/uploads",
	})
	require.NoError(t, err)
	return store
}

func TestLocalStorage_Save(t *testing.T) {
	store := newLocalForTest(t)
	content := []byte("\x89PNG fake image bytes")

	t.Run("stores a valid png", func(t *testing.T) {
		file, header := newUpload(t, "avatar.png", "image/png", content)

		stored, err := store.Save(context.Background(), file, header)
		require.NoError(t, err)
		assert.Equal(t, int64(len(content)), stored.Size)
		assert.Equal(t, "image/png", stored.MimeType)
		assert.Equal(t, "/uploads/"+stored.Key, stored.URL)

		onDisk, err := os.ReadFile(filepath.Join(store.Dir(), stored.Key))
		require.NoError(t, err)
		assert.Equal(t, content, onDisk)
	})

	t.Run("identical uploads get distinct names", func(t *testing.T) {
		fileA, headerA := newUpload(t, "same.png", "image/png", content)
		fileB, headerB := newUpload(t, "same.png", "image/png", content)

		storedA, err := store.Save(context.Background(), fileA, headerA)
		require.NoError(t, err)
		storedB, err := store.Save(context.Background(), fileB, headerB)
		require.NoError(t, err)

		assert.NotEqual(t, storedA.Key, storedB.Key)
	})

	t.Run("rejects a non-image extension", func(t *testing.T) {
		file, header := newUpload(t, "notes.txt", "text/plain", []byte("hello"))

		_, err := store.Save(context.Background(), file, header)
		assert.ErrorIs(t, err, ErrInvalidMediaType)
	})

	t.Run("rejects an image mime with a mismatched extension", func(t *testing.T) {
		file, header := newUpload(t, "payload.exe", "image/png", content)

		_, err := store.Save(context.Background(), file, header)
		assert.ErrorIs(t, err, ErrInvalidMediaType)
	})

	t.Run("rejects a file over the size ceiling", func(t *testing.T) {
		big := bytes.Repeat([]byte("a"), MaxFileSize+1)
		file, header := newUpload(t, "huge.png", "image/png", big)

		_, err := store.Save(context.Background(), file, header)
		assert.ErrorIs(t, err, ErrFileTooLarge)
	})

	t.Run("accepts a file exactly at the ceiling", func(t *testing.T) {
		exact := bytes.Repeat([]byte("a"), MaxFileSize)
		file, header := newUpload(t, "exact.png", "image/png", exact)

		stored, err := store.Save(context.Background(), file, header)
		require.NoError(t, err)
		assert.Equal(t, int64(MaxFileSize), stored.Size)
	})
}

func TestLocalStorage_Delete(t *testing.T) {
	store := newLocalForTest(t)

	file, header := newUpload(t, "avatar.png", "image/png", []byte("img"))
	stored, err := store.Save(context.Background(), file, header)
	require.NoError(t, err)

	require.NoError(t, store.Delete(context.Background(), stored.Key))

	_, err = os.Stat(filepath.Join(store.Dir(), stored.Key))
	assert.True(t, os.IsNotExist(err))
}

func TestGenerateName_PreservesExtensionOnly(t *testing.T) {
	name := generateName("../../etc/Passwd.PNG")
	assert.True(t, filepath.Ext(name) == ".png")
	assert.NotContains(t, name, "..")
	assert.NotContains(t, name, "/")
}
