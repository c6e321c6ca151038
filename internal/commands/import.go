package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/upitrail/upitrail/internal/categorizer"
	"github.com/upitrail/upitrail/internal/config"
	"github.com/upitrail/upitrail/internal/ledger"
	"github.com/upitrail/upitrail/internal/logger"
	"github.com/upitrail/upitrail/internal/runlog"
	"github.com/upitrail/upitrail/internal/sms"
)

func newImportCommand() *cobra.Command {
	var repoDir string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "import <messages-file>",
		Short: "Parse a file of notification messages into the ledger",
		Long: `Reads raw bank/payment-app notification messages separated by
blank lines (a single message may span several lines), extracts
transactions, assigns categories and merges them into
transactions.csv. Unrecognized messages are skipped, not errors.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(repoDir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runImport(absDir, args[0], verbose)
		},
	}

	cmd.Flags().StringVar(&repoDir, "repo", ".", "project directory")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log per-message diagnostics")

	return cmd
}

func runImport(repoRoot, messagesPath string, verbose bool) error {
	log := logger.New(verbose)

	data, err := os.ReadFile(messagesPath)
	if err != nil {
		return fmt.Errorf("reading messages file: %w", err)
	}

	messages := splitMessages(string(data))

	cat, err := loadCategorizer(repoRoot)
	if err != nil {
		return err
	}

	parser := sms.NewParser()

	matched := 0
	for _, msg := range messages {
		if _, ok := parser.ParseOne(msg); ok {
			matched++
		} else {
			log.Debug().Str("message", sms.Normalize(msg)).Msg("no dialect matched")
		}
	}

	txns := parser.ParseBatch(messages)
	for i := range txns {
		txns[i].Category = cat.Categorize(txns[i].Description, txns[i].Merchant)
	}

	added, err := ledger.NewService(repoRoot).Merge(txns)
	if err != nil {
		return err
	}

	entry := runlog.Entry{
		Timestamp:  time.Now(),
		Source:     "import:" + filepath.Base(messagesPath),
		Received:   len(messages),
		Imported:   added,
		Duplicates: matched - added,
		Unmatched:  len(messages) - matched,
	}
	if err := runlog.Append(repoRoot, []runlog.Entry{entry}); err != nil {
		return fmt.Errorf("writing import log: %w", err)
	}

	log.Info().
		Int("received", entry.Received).
		Int("imported", entry.Imported).
		Int("duplicates", entry.Duplicates).
		Int("unmatched", entry.Unmatched).
		Msg("import finished")

	fmt.Printf("Imported %d of %d messages (%d duplicates, %d unrecognized)\n",
		entry.Imported, entry.Received, entry.Duplicates, entry.Unmatched)
	return nil
}

// splitMessages cuts a messages file into blank-line-separated blocks. A
// message may span several lines; its newlines reach the parser intact and
// survive verbatim in RawMessage.
func splitMessages(data string) []string {
	var messages []string
	var block []string

	flush := func() {
		if len(block) > 0 {
			messages = append(messages, strings.Join(block, "\n"))
			block = nil
		}
	}

	for _, line := range strings.Split(data, "\n") {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		block = append(block, line)
	}
	flush()

	return messages
}

// loadCategorizer builds a categorizer from upitrail.yaml when present,
// falling back to the built-in table.
func loadCategorizer(repoRoot string) (*categorizer.Categorizer, error) {
	cfg, err := config.Load(filepath.Join(repoRoot, config.FileName))
	if errors.Is(err, fs.ErrNotExist) {
		return categorizer.New(), nil
	}
	if err != nil {
		return nil, err
	}

	rules := make([]categorizer.Rule, 0, len(cfg.Categories))
	for _, r := range cfg.Categories {
		rules = append(rules, categorizer.Rule{Name: r.Name, Keywords: r.Keywords})
	}
	return categorizer.NewWithRules(rules), nil
}
