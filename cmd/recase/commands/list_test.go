package commands

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSetupListFlags(t *testing.T) {
	fs, flags := SetupListFlags()

	t.Run("default values", func(t *testing.T) {
		if flags.Sample != "My variable NAME" {
			t.Errorf("expected default sample, got '%s'", flags.Sample)
		}
		if flags.Format != FormatText {
			t.Errorf("expected Format '%s' by default, got '%s'", FormatText, flags.Format)
		}
	})

	t.Run("parse flags", func(t *testing.T) {
		args := []string{"--sample", "Another Example", "-f", "json"}
		if err := fs.Parse(args); err != nil {
			t.Fatalf("unexpected parse error: %v", err)
		}
		if flags.Sample != "Another Example" {
			t.Errorf("expected Sample 'Another Example', got '%s'", flags.Sample)
		}
		if flags.Format != "json" {
			t.Errorf("expected Format 'json', got '%s'", flags.Format)
		}
	})
}

func TestHandleList(t *testing.T) {
	if err := HandleList([]string{}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestHandleList_WithArgs(t *testing.T) {
	if err := HandleList([]string{"extra"}); err == nil {
		t.Error("expected error when arguments given")
	}
}

func TestHandleList_InvalidFormat(t *testing.T) {
	if err := HandleList([]string{"-f", "xml"}); err == nil {
		t.Error("expected error for invalid format")
	}
}

func TestHandleList_WithCasesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cases.yaml")
	content := "cases:\n  shouty:\n    boundaries: [space]\n    pattern: upper\n    delimiter: \" \"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := HandleList([]string{"--cases-file", path, "-f", "json"}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestHandleList_Help(t *testing.T) {
	if err := HandleList([]string{"--help"}); err != nil {
		t.Errorf("unexpected error for help: %v", err)
	}
}
