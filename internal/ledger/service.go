// Package ledger stores accumulated transactions in a headered CSV file,
// newest first, deduplicated by reference id.
package ledger

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/upitrail/upitrail/internal/model"
)

// FileName is the store file under the repo root.
const FileName = "transactions.csv"

// Service reads and merges the transaction store for one repo root.
type Service struct {
	repoRoot string
}

// NewService creates a ledger Service.
func NewService(repoRoot string) *Service {
	return &Service{repoRoot: repoRoot}
}

// Load returns all stored transactions. A missing store file is an empty
// ledger, not an error.
func (s *Service) Load() ([]model.Transaction, error) {
	f, err := os.Open(s.path())
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening ledger: %w", err)
	}
	defer f.Close()

	txns, err := ReadTransactions(f)
	if err != nil {
		return nil, fmt.Errorf("reading ledger: %w", err)
	}
	return txns, nil
}

// Merge adds transactions whose reference id is not already stored, resorts
// the ledger newest first and writes it back. Duplicates are discarded
// entirely; existing rows always win. Returns the number added.
func (s *Service) Merge(incoming []model.Transaction) (int, error) {
	existing, err := s.Load()
	if err != nil {
		return 0, err
	}

	seen := make(map[string]bool, len(existing))
	for _, tx := range existing {
		seen[tx.ReferenceID] = true
	}

	added := 0
	for _, tx := range incoming {
		if seen[tx.ReferenceID] {
			continue
		}
		seen[tx.ReferenceID] = true
		existing = append(existing, tx)
		added++
	}

	sort.SliceStable(existing, func(i, j int) bool {
		return existing[i].OccurredAt.After(existing[j].OccurredAt)
	})

	// Write to a sibling temp file and rename so a failure mid-write never
	// loses the existing store.
	tmp, err := os.CreateTemp(s.repoRoot, FileName+".tmp-*")
	if err != nil {
		return 0, fmt.Errorf("creating ledger temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := WriteTransactions(tmp, existing); err != nil {
		tmp.Close()
		return 0, fmt.Errorf("writing ledger: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return 0, fmt.Errorf("closing ledger temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path()); err != nil {
		return 0, fmt.Errorf("replacing ledger: %w", err)
	}
	return added, nil
}

func (s *Service) path() string {
	return filepath.Join(s.repoRoot, FileName)
}
