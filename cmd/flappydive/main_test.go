package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got := expandHome("~/.flappydive/x.log"); got != filepath.Join(home, ".flappydive", "x.log") {
		t.Errorf("expandHome() = %q", got)
	}
	if got := expandHome("/tmp/x.log"); got != "/tmp/x.log" {
		t.Errorf("absolute path changed to %q", got)
	}
}

func TestNewLoggerRejectsBadLevel(t *testing.T) {
	old := flagLogLevel
	defer func() { flagLogLevel = old }()

	flagLogLevel = "chatty"
	if _, _, err := newLogger(false); err == nil {
		t.Error("expected an error for an unknown level")
	}
}

func TestNewLoggerWritesFile(t *testing.T) {
	oldLevel, oldFile := flagLogLevel, flagLogFile
	defer func() { flagLogLevel, flagLogFile = oldLevel, oldFile }()

	flagLogLevel = "debug"
	flagLogFile = filepath.Join(t.TempDir(), "logs", "dive.log")
	logger, closer, err := newLogger(true)
	if err != nil {
		t.Fatalf("newLogger() failed: %v", err)
	}
	logger.Info("hello", "depth", 3)
	closer.Close()

	data, err := os.ReadFile(flagLogFile)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if len(data) == 0 {
		t.Error("log file is empty")
	}
}

func TestOpenJournalDisabledByDefault(t *testing.T) {
	old := flagJournal
	defer func() { flagJournal = old }()

	flagJournal = ""
	if store := openJournal(); store != nil {
		t.Error("journal should be off without --journal")
	}

	flagJournal = filepath.Join(t.TempDir(), "journal.db")
	store := openJournal()
	if store == nil {
		t.Fatal("journal should open at an explicit path")
	}
	defer store.Close()
	if err := printHistory(store, 5); err != nil {
		t.Errorf("printHistory() on empty journal failed: %v", err)
	}
}
