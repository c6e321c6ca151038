package id

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SyntheticPrefix marks reference ids we invented because the source message
// carried none.
const SyntheticPrefix = "txn_"

// NewSyntheticRef returns a reference id like "txn_1705303800123_9f86d081".
// It is unique within a process run but deliberately not reproducible across
// runs; it only exists so id-less transactions stay individually addressable
// for dedup and display.
func NewSyntheticRef() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%s%d_%s", SyntheticPrefix, time.Now().UnixMilli(), suffix)
}

// IsSynthetic reports whether ref was produced by NewSyntheticRef.
func IsSynthetic(ref string) bool {
	return strings.HasPrefix(ref, SyntheticPrefix)
}
