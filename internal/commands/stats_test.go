package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunStats_EmptyLedger(t *testing.T) {
	assert.NoError(t, runStats(t.TempDir()))
}

func TestRunStats_WithTransactions(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, runImport(root, writeMessages(t, swiggyMsg, zomatoMsg), false))

	assert.NoError(t, runStats(root))
}

func TestNewRootCommand(t *testing.T) {
	root := NewRootCommand()
	assert.Equal(t, "upitrail", root.Use)

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "init")
	assert.Contains(t, names, "import")
	assert.Contains(t, names, "fetch")
	assert.Contains(t, names, "stats")
}
