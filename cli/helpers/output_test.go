package helpers

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutput(t *testing.T) {
	t.Run("Should print plain lines to non-terminal writers", func(t *testing.T) {
		var buf bytes.Buffer

		PrintSuccess(&buf, "done")
		PrintInfo(&buf, "path")
		PrintError(&buf, errors.New("boom"))

		assert.Equal(t, "✅ done\n📊 path\n❌ Error: boom\n", buf.String())
	})

	t.Run("Should write JSON untouched to non-terminal writers", func(t *testing.T) {
		var buf bytes.Buffer

		require.NoError(t, WriteJSON(&buf, []byte(`{"a":1}`)))

		assert.Equal(t, `{"a":1}`, buf.String())
	})

	t.Run("Should not treat regular files as terminals", func(t *testing.T) {
		f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
		require.NoError(t, err)
		defer f.Close()

		assert.False(t, IsTerminal(f))
		assert.False(t, IsTerminal(&bytes.Buffer{}))
	})
}
