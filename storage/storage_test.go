package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_RoundTrip(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	obj := Object{FileID: uuid.New(), CaseID: 12, Filename: "Rent Agreement.PDF"}
	p, err := store.Put(ctx, obj, strings.NewReader("signed copy"))
	require.NoError(t, err)
	assert.Equal(t, "cases/12/"+obj.FileID.String()+"_Rent_Agreement.pdf", p)

	rc, err := store.Open(ctx, p)
	require.NoError(t, err)
	body, err := io.ReadAll(rc)
	require.NoError(t, rc.Close())
	require.NoError(t, err)
	assert.Equal(t, "signed copy", string(body))

	require.NoError(t, store.Remove(ctx, p))
	_, err = store.Open(ctx, p)
	assert.ErrorIs(t, err, ErrObjectNotFound)

	assert.NoError(t, store.Remove(ctx, p), "removing twice is fine")
}

func TestLocalStorage_RejectsEscapingPaths(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	for _, p := range []string{"", "/etc/passwd", "../secret", "cases/../../x"} {
		_, err := store.Open(context.Background(), p)
		assert.ErrorIs(t, err, ErrInvalidPath, p)
		assert.ErrorIs(t, store.Remove(context.Background(), p), ErrInvalidPath, p)
	}
}

func TestObjectPath_SanitizesName(t *testing.T) {
	id := uuid.MustParse("6f1c9a6e-2b43-4c55-9e0e-1f7b7f0c2a10")
	got := objectPath(Object{FileID: id, CaseID: 3, Filename: `dir\evi:dence?.png`})
	assert.Equal(t, "cases/3/6f1c9a6e-2b43-4c55-9e0e-1f7b7f0c2a10_dir_evi_dence_.png", got)
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "application/pdf", ContentType("notice.PDF"))
	assert.Equal(t, "image/jpeg", ContentType("photo.jpeg"))
	assert.Equal(t, "application/octet-stream", ContentType("archive.zip"))
	assert.True(t, Accepted("a.docx"))
	assert.False(t, Accepted("run.exe"))
}

func TestNew_UnknownBackend(t *testing.T) {
	_, err := New(context.Background(), Config{Backend: "ftp"})
	assert.Error(t, err)

	_, err = New(context.Background(), Config{Backend: BackendS3})
	assert.Error(t, err)
}
