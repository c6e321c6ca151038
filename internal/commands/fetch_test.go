package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/upitrail/upitrail/internal/ledger"
	"github.com/upitrail/upitrail/internal/runlog"
)

func TestRunFetch(t *testing.T) {
	root := t.TempDir()

	require.NoError(t, runFetch(root, 5))

	txns, err := ledger.NewService(root).Load()
	require.NoError(t, err)
	require.Len(t, txns, 5)
	for _, tx := range txns {
		assert.Equal(t, "Simulated", tx.Bank)
		assert.True(t, tx.Amount.IsPositive())
		assert.NotEmpty(t, tx.Category)
	}

	entries, err := runlog.Read(root)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "fetch", entries[0].Source)
	assert.Equal(t, 5, entries[0].Received)
	assert.Equal(t, 5, entries[0].Imported)
}

func TestRunFetch_AccumulatesAcrossRuns(t *testing.T) {
	root := t.TempDir()

	require.NoError(t, runFetch(root, 3))
	require.NoError(t, runFetch(root, 3))

	txns, err := ledger.NewService(root).Load()
	require.NoError(t, err)

	// Reference ids are random 12-digit numbers; a collision across six
	// draws is effectively impossible.
	assert.Len(t, txns, 6)
}
