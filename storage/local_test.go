package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_SaveAndOpen(t *testing.T) {
	t.Parallel()

	st, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()

	storedName, err := st.Save(ctx, "report.txt", strings.NewReader("hello"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(storedName, "-report.txt"), "stored name should keep the original name: %s", storedName)

	r, err := st.Open(ctx, storedName)
	require.NoError(t, err)
	defer r.Close()

	data, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestLocalStorage_StoredNamesDiffer(t *testing.T) {
	t.Parallel()

	st, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()

	a, err := st.Save(ctx, "same.txt", strings.NewReader("a"))
	require.NoError(t, err)
	b, err := st.Save(ctx, "same.txt", strings.NewReader("b"))
	require.NoError(t, err)

	assert.NotEqual(t, a, b, "two uploads of the same filename must not share a stored name")
}

func TestLocalStorage_SanitizesFilename(t *testing.T) {
	t.Parallel()

	st, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()

	storedName, err := st.Save(ctx, "../etc/pass wd", strings.NewReader("x"))
	require.NoError(t, err)
	assert.NotContains(t, storedName, "/")
	assert.NotContains(t, storedName, " ")

	r, err := st.Open(ctx, storedName)
	require.NoError(t, err)
	r.Close()
}

func TestLocalStorage_OpenMissing(t *testing.T) {
	t.Parallel()

	st, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	_, err = st.Open(context.Background(), "1-2-nope.txt")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLocalStorage_DeleteIsIdempotent(t *testing.T) {
	t.Parallel()

	st, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()

	storedName, err := st.Save(ctx, "gone.txt", strings.NewReader("x"))
	require.NoError(t, err)

	require.NoError(t, st.Delete(ctx, storedName))
	require.NoError(t, st.Delete(ctx, storedName), "deleting a missing blob should not error")

	_, err = st.Open(ctx, storedName)
	assert.ErrorIs(t, err, ErrNotFound)
}
