package loader

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadReadsWholeFile(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "/docs/a.txt", []byte("line1\nline2"), 0o644))

	text, err := New(mem).Load(context.Background(), "/docs/a.txt")
	require.NoError(t, err)
	assert.Equal(t, "line1\nline2", text)
}

func TestLoadErrors(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, mem.MkdirAll("/dir", 0o755))
	require.NoError(t, afero.WriteFile(mem, "/bin.dat", []byte{0xff, 0xfe, 0x00}, 0o644))

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	tests := []struct {
		name string
		ctx  context.Context
		path string
		want Kind
	}{
		{"missing file", context.Background(), "/nope.txt", NotFound},
		{"invalid utf8", context.Background(), "/bin.dat", Other},
		{"cancelled context", cancelled, "/bin.dat", Other},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(mem).Load(tt.ctx, tt.path)
			require.Error(t, err)
			var lerr *Error
			require.True(t, errors.As(err, &lerr))
			assert.Equal(t, tt.want, lerr.Kind)
			assert.Equal(t, tt.path, lerr.Path)
		})
	}
}

func TestLoadDirectoryOnOsFs(t *testing.T) {
	dir := t.TempDir()
	_, err := New(nil).Load(context.Background(), dir)
	require.Error(t, err)
	var lerr *Error
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, Other, lerr.Kind)
}

func TestLoadMissingOnOsFs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")
	_, err := New(afero.NewOsFs()).Load(context.Background(), path)
	var lerr *Error
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, NotFound, lerr.Kind)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLoadUnreadableOnOsFs(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root ignores file permissions")
	}
	path := filepath.Join(t.TempDir(), "secret.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o000))

	_, err := New(afero.NewOsFs()).Load(context.Background(), path)
	var lerr *Error
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, PermissionDenied, lerr.Kind)
}

func TestClassify(t *testing.T) {
	assert.Equal(t, NotFound, Classify(&fs.PathError{Op: "open", Path: "x", Err: fs.ErrNotExist}))
	assert.Equal(t, PermissionDenied, Classify(&fs.PathError{Op: "open", Path: "x", Err: fs.ErrPermission}))
	assert.Equal(t, Other, Classify(errors.New("boom")))
	assert.Equal(t, Other, Classify(nil))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "not found", NotFound.String())
	assert.Equal(t, "permission denied", PermissionDenied.String())
	assert.Equal(t, "other", Other.String())
}
