package id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSyntheticRef_Prefix(t *testing.T) {
	ref := NewSyntheticRef()
	assert.True(t, strings.HasPrefix(ref, SyntheticPrefix))
	assert.Greater(t, len(ref), len(SyntheticPrefix))
}

func TestNewSyntheticRef_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		ref := NewSyntheticRef()
		assert.False(t, seen[ref], "duplicate synthetic ref %s", ref)
		seen[ref] = true
	}
}

func TestIsSynthetic(t *testing.T) {
	assert.True(t, IsSynthetic(NewSyntheticRef()))
	assert.True(t, IsSynthetic("txn_1705303800123_9f86d081"))
	assert.False(t, IsSynthetic("401234567890"))
	assert.False(t, IsSynthetic(""))
}
