package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	saved := info
	t.Cleanup(func() { info = saved })

	Set("1.4.0", "", "2026-01-02")

	got := Get()
	assert.Equal(t, "1.4.0", got.Version)
	assert.Equal(t, "unknown", got.Commit)
	assert.Equal(t, "2026-01-02", got.BuildDate)
	assert.Equal(t, "pkgvault 1.4.0 (commit unknown, built 2026-01-02)", got.String())
}
