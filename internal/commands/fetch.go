package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/upitrail/upitrail/internal/config"
	"github.com/upitrail/upitrail/internal/feed"
	"github.com/upitrail/upitrail/internal/ledger"
	"github.com/upitrail/upitrail/internal/logger"
	"github.com/upitrail/upitrail/internal/runlog"
)

func newFetchCommand() *cobra.Command {
	var repoDir string
	var count int

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Pull a batch of simulated transactions into the ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(repoDir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runFetch(absDir, count)
		},
	}

	cmd.Flags().StringVar(&repoDir, "repo", ".", "project directory")
	cmd.Flags().IntVar(&count, "count", 0, "number of transactions (0 = random within configured range)")

	return cmd
}

func runFetch(repoRoot string, count int) error {
	log := logger.New(false)

	cfg, err := config.Load(filepath.Join(repoRoot, config.FileName))
	if errors.Is(err, fs.ErrNotExist) {
		cfg = config.Default()
	} else if err != nil {
		return err
	}

	f := feed.New(cfg.Feed)
	if count <= 0 {
		count = f.Count()
	}
	txns := f.Generate(count)

	added, err := ledger.NewService(repoRoot).Merge(txns)
	if err != nil {
		return err
	}

	entry := runlog.Entry{
		Timestamp:  time.Now(),
		Source:     "fetch",
		Received:   len(txns),
		Imported:   added,
		Duplicates: len(txns) - added,
	}
	if err := runlog.Append(repoRoot, []runlog.Entry{entry}); err != nil {
		return fmt.Errorf("writing import log: %w", err)
	}

	log.Info().Int("fetched", len(txns)).Int("imported", added).Msg("fetch finished")
	fmt.Printf("Fetched %d transactions, %d new\n", len(txns), added)
	return nil
}
