package collect_test

import (
	"os"
	"path/filepath"
	"testing"

	"cookietrace/internal/collect"
)

// writePayload drops content into a temp file and returns its path.
func writePayload(t *testing.T, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "payload.txt")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write payload: %v", err)
	}
	return path
}

func TestReadPayload(t *testing.T) {
	path := writePayload(t, []byte("username,user\npassword,pa,ss\n\nsubmit, \n"))

	vals, err := collect.ReadPayload(path)
	if err != nil {
		t.Fatalf("ReadPayload: %v", err)
	}
	if got := vals.Get("username"); got != "user" {
		t.Fatalf("username: want %q, got %q", "user", got)
	}
	// Only the first comma splits; the value keeps the rest.
	if got := vals.Get("password"); got != "pa,ss" {
		t.Fatalf("password: want %q, got %q", "pa,ss", got)
	}
	// Lines are trimmed before splitting, so "submit, " submits empty.
	if got := vals.Get("submit"); got != "" {
		t.Fatalf("submit: want empty value, got %q", got)
	}
}

func TestReadPayloadFieldWithoutValue(t *testing.T) {
	path := writePayload(t, []byte("login\n"))

	vals, err := collect.ReadPayload(path)
	if err != nil {
		t.Fatalf("ReadPayload: %v", err)
	}
	if _, ok := vals["login"]; !ok {
		t.Fatalf("want field %q present, got %v", "login", vals)
	}
	if got := vals.Get("login"); got != "" {
		t.Fatalf("login: want empty value, got %q", got)
	}
}

func TestReadPayloadMissingFile(t *testing.T) {
	if _, err := collect.ReadPayload(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Fatal("want error for missing file, got nil")
	}
}

func TestReadPayloadBinaryFile(t *testing.T) {
	path := writePayload(t, []byte{0xff, 0xfe, 0x00, 0x41})

	if _, err := collect.ReadPayload(path); err == nil {
		t.Fatal("want error for non-UTF-8 file, got nil")
	}
}
