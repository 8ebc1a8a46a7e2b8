package storage

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageRoundTrip(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	docID := uuid.New()

	path, err := store.Save(ctx, docID, "lease.pdf", strings.NewReader("document body"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, "documents/"))
	assert.Contains(t, path, docID.String())

	reader, err := store.Open(ctx, path)
	require.NoError(t, err)
	defer reader.Close()

	content, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "document body", string(content))
}

func TestLocalStorageRemove(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	path, err := store.Save(ctx, uuid.New(), "note.txt", strings.NewReader("x"))
	require.NoError(t, err)

	require.NoError(t, store.Remove(ctx, path))

	_, err = store.Open(ctx, path)
	assert.Error(t, err)

	// Removing an already-removed document is not an error
	assert.NoError(t, store.Remove(ctx, path))
}

func TestLocalStorageOpenMissing(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	_, err = store.Open(context.Background(), "documents/ab/absent.pdf")
	assert.ErrorContains(t, err, "not found")
}

func TestDocumentPathLayout(t *testing.T) {
	docID := uuid.MustParse("5f6f0b5e-3f48-4a2b-9a74-1f0d9c8e4a11")

	path := documentPath(docID, "my rental agreement.pdf")
	assert.Equal(t, "documents/5f/5f6f0b5e-3f48-4a2b-9a74-1f0d9c8e4a11_my_rental_agreement.pdf", path)

	// Path separators in the client file name must not escape the layout
	path = documentPath(docID, "../../etc/passwd")
	assert.False(t, strings.Contains(filepath.ToSlash(path), ".."))
}

func TestNewFromEnvDefaultsToLocal(t *testing.T) {
	t.Setenv("STORAGE_TYPE", "")
	t.Setenv("STORAGE_LOCAL_PATH", filepath.Join(t.TempDir(), "docs"))

	store, err := NewFromEnv()
	require.NoError(t, err)
	assert.IsType(t, &LocalStorage{}, store)
}

func TestNewFromEnvS3RequiresBucket(t *testing.T) {
	t.Setenv("STORAGE_TYPE", "s3")
	t.Setenv("AWS_S3_BUCKET", "")

	_, err := NewFromEnv()
	assert.ErrorContains(t, err, "AWS_S3_BUCKET")
}

func TestNewFromEnvUnknownBackend(t *testing.T) {
	t.Setenv("STORAGE_TYPE", "tape")

	_, err := NewFromEnv()
	assert.ErrorContains(t, err, "unknown storage backend")
}
