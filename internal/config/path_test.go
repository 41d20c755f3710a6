package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, "", ExpandPath(""))
	assert.Equal(t, home, ExpandPath("~"))
	assert.Equal(t, filepath.Join(home, "data", "centsible.db"), ExpandPath("~/data/centsible.db"))
	assert.Equal(t, "/var/lib/centsible.db", ExpandPath("/var/lib/centsible.db"))

	t.Setenv("CENTSIBLE_TEST_DIR", "/tmp/centsible")
	assert.Equal(t, "/tmp/centsible/test.db", ExpandPath("$CENTSIBLE_TEST_DIR/test.db"))
}
