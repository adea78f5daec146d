package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadStoreSave(t *testing.T) {
	uploads, err := NewUploadStore(t.TempDir())
	require.NoError(t, err)

	url, err := uploads.Save("BLR-001", "front view.jpg", strings.NewReader("jpegbytes"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, PublicUploadPath+"/BLR-001_"), "url %q should carry the property prefix", url)
	assert.True(t, strings.HasSuffix(url, "frontview.jpg"))

	data, err := os.ReadFile(filepath.Join(uploads.Dir, strings.TrimPrefix(url, PublicUploadPath+"/")))
	require.NoError(t, err)
	assert.Equal(t, "jpegbytes", string(data))
}

func TestUploadStoreSaveNamesNeverCollide(t *testing.T) {
	uploads, err := NewUploadStore(t.TempDir())
	require.NoError(t, err)

	first, err := uploads.Save("P1", "photo.png", strings.NewReader("a"))
	require.NoError(t, err)
	second, err := uploads.Save("P1", "photo.png", strings.NewReader("b"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"photo.jpg", "photo.jpg"},
		{"../../etc/passwd", "passwd"},
		{`..\..\windows\system32\cmd.exe`, "cmd.exe"},
		{"with spaces & symbols!.png", "withspacessymbols.png"},
		{"...", "image"},
		{"", "image"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizeFilename(tt.in), "input %q", tt.in)
	}
}
