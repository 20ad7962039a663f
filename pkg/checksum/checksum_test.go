package checksum

import (
	"crypto/sha512"
	"encoding/hex"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSHA512Reader(t *testing.T) {
	content := strings.Repeat("pkgvault", 1024)
	r := NewSHA512Reader(strings.NewReader(content))

	n, err := io.Copy(io.Discard, r)
	require.NoError(t, err)

	want := sha512.Sum512([]byte(content))
	assert.Equal(t, int64(len(content)), n)
	assert.Equal(t, int64(len(content)), r.Size())
	assert.Equal(t, hex.EncodeToString(want[:]), r.Sum())
}
