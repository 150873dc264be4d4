package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/venkatkrish78/finplanner-sub001/internal/categories"
	"github.com/venkatkrish78/finplanner-sub001/internal/config"
	"github.com/venkatkrish78/finplanner-sub001/internal/inbox"
	"github.com/venkatkrish78/finplanner-sub001/internal/ledger"
	"github.com/venkatkrish78/finplanner-sub001/internal/model"
	"github.com/venkatkrish78/finplanner-sub001/internal/parselog"
	"github.com/venkatkrish78/finplanner-sub001/internal/smsparser"
)

func newParseCommand() *cobra.Command {
	var root string
	var record bool
	var fromInbox bool

	cmd := &cobra.Command{
		Use:   "parse [message]",
		Short: "Parse a bank notification message",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			absRoot, err := filepath.Abs(root)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			if fromInbox {
				return runParseInbox(absRoot, record)
			}
			if len(args) != 1 {
				return fmt.Errorf("message text required unless --inbox is set")
			}
			return runParseOne(absRoot, args[0], record)
		},
	}

	cmd.Flags().StringVar(&root, "root", ".", "project directory")
	cmd.Flags().BoolVar(&record, "record", false, "append parsed transactions to the ledger")
	cmd.Flags().BoolVar(&fromInbox, "inbox", false, "parse message dumps from the inbox directory")

	return cmd
}

// loadConfig reads the project config, falling back to defaults when the
// command runs outside an initialized project.
func loadConfig(root string) *config.Config {
	cfg, err := config.Load(filepath.Join(root, "finplanner.yaml"))
	if err != nil {
		return config.Default()
	}
	return cfg
}

// newParser builds the message parser per config: with platform hints off,
// every message goes through the universal patterns only.
func newParser(cfg *config.Config) *smsparser.Parser {
	if !cfg.Parser.PlatformHints {
		return smsparser.New(smsparser.NewRegistry())
	}
	return smsparser.New(nil)
}

func runParseOne(root, text string, record bool) error {
	cfg := loadConfig(root)

	txn, err := newParser(cfg).Parse(text)
	logAttempt(root, cfg, text, txn, err)
	if err != nil {
		return err
	}

	printTransaction(txn)
	if flag := decimal.NewFromFloat(cfg.Ledger.FlagAmount); flag.IsPositive() && txn.Amount.GreaterThanOrEqual(flag) {
		fmt.Printf("Note: amount at or above the %s flag threshold\n", flag.StringFixed(2))
	}

	if record {
		recordID, err := recordTransaction(root, cfg, txn)
		if err != nil {
			return err
		}
		fmt.Printf("Recorded as %s\n", recordID)
	}
	return nil
}

func runParseInbox(root string, record bool) error {
	cfg := loadConfig(root)

	files, err := inbox.Scan(root)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Println("Inbox is empty")
		return nil
	}

	parser := newParser(cfg)
	for _, file := range files {
		data, err := os.ReadFile(file.Path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", file.Name, err)
		}

		parsed, skipped := 0, 0
		for _, line := range strings.Split(string(data), "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			txn, err := parser.Parse(line)
			logAttempt(root, cfg, line, txn, err)
			if err != nil {
				skipped++
				continue
			}
			if record {
				if _, err := recordTransaction(root, cfg, txn); err != nil {
					return err
				}
			}
			parsed++
		}

		if err := inbox.MarkProcessed(root, file.Name); err != nil {
			return err
		}
		fmt.Printf("%s: %d parsed, %d skipped\n", file.Name, parsed, skipped)
	}
	return nil
}

// recordTransaction appends a parsed transaction to the ledger with a
// suggested category when auto-categorization is on and the keyword table
// knows one.
func recordTransaction(root string, cfg *config.Config, txn model.ParsedTransaction) (string, error) {
	category := ""
	if cfg.Ledger.AutoCategorize {
		if svc, err := categories.Load(root); err == nil {
			category, _ = svc.Suggest(txn.Description, txn.Merchant)
		}
	}
	return ledger.NewService(root).Append(txn, category)
}

// logAttempt best-effort records the parse outcome; audit failures never
// block the command.
func logAttempt(root string, cfg *config.Config, text string, txn model.ParsedTransaction, parseErr error) {
	if !cfg.Parser.AuditLog {
		return
	}
	entry := parselog.Entry{
		Timestamp: time.Now(),
		Outcome:   parselog.OutcomeParsed,
		Message:   parselog.Truncate(text),
	}
	if parseErr != nil {
		entry.Outcome = parselog.OutcomeNoAmount
	} else {
		entry.Platform = txn.Platform
		entry.Amount = txn.Amount.StringFixed(2)
		entry.Reference = txn.Reference
	}
	_ = parselog.Append(root, []parselog.Entry{entry})
}

func printTransaction(txn model.ParsedTransaction) {
	fmt.Printf("Amount:      %s\n", txn.Amount.StringFixed(2))
	fmt.Printf("Direction:   %s\n", txn.Direction)
	fmt.Printf("Description: %s\n", txn.Description)
	if txn.Merchant != "" {
		fmt.Printf("Merchant:    %s\n", txn.Merchant)
	}
	if txn.AccountSuffix != "" {
		fmt.Printf("Account:     ...%s\n", txn.AccountSuffix)
	}
	if txn.Reference != "" {
		fmt.Printf("Reference:   %s\n", txn.Reference)
	}
	fmt.Printf("Date:        %s\n", txn.OccurredAt.Format(time.RFC3339))
	if txn.BalanceAfter != nil {
		fmt.Printf("Balance:     %s\n", txn.BalanceAfter.StringFixed(2))
	}
	fmt.Printf("Status:      %s\n", txn.Status)
	if txn.Platform != "" {
		fmt.Printf("Platform:    %s\n", txn.Platform)
	}
}
