package cmd

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/arcana"
	"github.com/google/subcommands"
)

// useTempLedger points the global ledger file at a fresh path for one test.
func useTempLedger(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ledger.json")

	oldLedgerFile := ledgerFile
	ledgerFile = &path
	t.Cleanup(func() { ledgerFile = oldLedgerFile })

	return path
}

func TestAddCreatesSortedLedger(t *testing.T) {
	path := useTempLedger(t)

	readings := []*addCmd{
		{question: "focus?", cards: "The Fool, The Lovers", spread: "Three Card", date: "2024-03-01"},
		{question: "blocker?", cards: "The Fool", spread: "Single Card", date: "2024-01-15"},
	}
	for _, cmd := range readings {
		f := flag.NewFlagSet("test", flag.ContinueOnError)
		if status := cmd.Execute(context.Background(), f); status != subcommands.ExitSuccess {
			t.Fatalf("add Execute() = %v, want ExitSuccess", status)
		}
	}

	ledger, err := arcana.LoadLedger(path)
	if err != nil {
		t.Fatalf("LoadLedger() returned an unexpected error: %v", err)
	}

	entries := ledger.Entries()
	if len(entries) != 2 {
		t.Fatalf("ledger holds %d entries, want 2", len(entries))
	}
	if entries[0].Date.String() != "2024-01-15" {
		t.Errorf("first entry is dated %s, want 2024-01-15 (sorted ascending)", entries[0].Date)
	}
}

func TestAddRejectsMissingFlags(t *testing.T) {
	useTempLedger(t)

	tests := []struct {
		name string
		cmd  *addCmd
	}{
		{"missing question", &addCmd{cards: "The Fool", date: "2024-01-15"}},
		{"missing cards", &addCmd{question: "?", date: "2024-01-15"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := flag.NewFlagSet("test", flag.ContinueOnError)
			if status := tt.cmd.Execute(context.Background(), f); status != subcommands.ExitUsageError {
				t.Errorf("Execute() = %v, want ExitUsageError", status)
			}
		})
	}
}

func TestAddRejectsMalformedDate(t *testing.T) {
	path := useTempLedger(t)

	cmd := &addCmd{question: "?", cards: "The Fool", date: "2024-1-15"}
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	if status := cmd.Execute(context.Background(), f); status != subcommands.ExitUsageError {
		t.Errorf("Execute() with a malformed date = %v, want ExitUsageError", status)
	}

	// The rejected reading never reached the store.
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("a rejected add should not create the store, stat err = %v", err)
	}
}

func TestFmtRewritesCanonically(t *testing.T) {
	path := useTempLedger(t)

	// A hand-edited store: unsorted, unindented, with fields missing.
	handEdited := `[{"date":"2024-03-01","question":"later"},{"date":"2024-01-15","question":"earlier"}]`
	if err := os.WriteFile(path, []byte(handEdited), 0644); err != nil {
		t.Fatalf("failed to seed store: %v", err)
	}

	cmd := &fmtCmd{}
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	if status := cmd.Execute(context.Background(), f); status != subcommands.ExitSuccess {
		t.Fatalf("fmt Execute() = %v, want ExitSuccess", status)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	content := string(data)

	if !strings.HasPrefix(content, "[\n") {
		t.Errorf("fmt should indent the store, got:\n%s", content)
	}
	if strings.Index(content, "2024-01-15") > strings.Index(content, "2024-03-01") {
		t.Errorf("fmt should sort readings by date, got:\n%s", content)
	}

	// A second fmt is byte-stable.
	if status := cmd.Execute(context.Background(), f); status != subcommands.ExitSuccess {
		t.Fatalf("second fmt Execute() = %v, want ExitSuccess", status)
	}
	again, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(again) != content {
		t.Errorf("fmt is not idempotent.\nFirst:\n%s\nSecond:\n%s", content, again)
	}
}

func TestFmtFailsOnMalformedStore(t *testing.T) {
	path := useTempLedger(t)
	if err := os.WriteFile(path, []byte("not a ledger"), 0644); err != nil {
		t.Fatalf("failed to seed store: %v", err)
	}

	cmd := &fmtCmd{}
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	if status := cmd.Execute(context.Background(), f); status != subcommands.ExitFailure {
		t.Errorf("fmt Execute() on a malformed store = %v, want ExitFailure", status)
	}
}
