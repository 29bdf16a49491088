package demofolio

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"
)

func TestStoreRoundTrip(t *testing.T) {
	store := NewStore(t.TempDir())
	b := newSeededBundle("demo@example.com", time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))

	if err := store.Save(b); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	got, ok := store.Load("demo@example.com")
	if !ok {
		t.Fatal("Load() returned ok=false after Save")
	}
	if got.UserKey != b.UserKey || got.BaseSeed != b.BaseSeed {
		t.Errorf("loaded bundle = %q/%d, want %q/%d", got.UserKey, got.BaseSeed, b.UserKey, b.BaseSeed)
	}
	if len(got.Accounts) != len(b.Accounts) {
		t.Fatalf("len(Accounts) = %d, want %d", len(got.Accounts), len(b.Accounts))
	}
	for i := range b.Accounts {
		if !got.Accounts[i].CurrentBalance.Equal(b.Accounts[i].CurrentBalance) {
			t.Errorf("account %q balance changed across the round trip", b.Accounts[i].ID)
		}
	}
}

func TestStoreLoadAbsent(t *testing.T) {
	store := NewStore(t.TempDir())
	if _, ok := store.Load("nobody@example.com"); ok {
		t.Error("Load() of an absent record returned ok=true")
	}
}

func TestStoreLoadMalformed(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)
	if err := os.WriteFile(store.bundlePath("demo@example.com"), []byte("{truncated"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, ok := store.Load("demo@example.com"); ok {
		t.Error("Load() of a malformed record returned ok=true")
	}
}

func TestStoreKeyNormalization(t *testing.T) {
	store := NewStore(t.TempDir())
	b := newSeededBundle("  Demo@Example.COM ", time.Now())
	if err := store.Save(b); err != nil {
		t.Fatal(err)
	}
	if _, ok := store.Load("demo@example.com"); !ok {
		t.Error("record saved under a messy key is not readable by the normalized one")
	}
}

func TestMergeLinkedIDs(t *testing.T) {
	store := NewStore(t.TempDir())

	if err := store.MergeLinkedIDs("demo@example.com", []string{"a", "b"}); err != nil {
		t.Fatal(err)
	}
	if err := store.MergeLinkedIDs("demo@example.com", []string{"b", "c"}); err != nil {
		t.Fatal(err)
	}

	got := store.LinkedIDs("demo@example.com")
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("LinkedIDs() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("LinkedIDs()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestLinkedIDsMalformed(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)
	if err := os.WriteFile(store.linkedPath("demo@example.com"), []byte("not a list"), 0644); err != nil {
		t.Fatal(err)
	}
	if got := store.LinkedIDs("demo@example.com"); got != nil {
		t.Errorf("LinkedIDs() = %v, want nil for a malformed list", got)
	}
}

func TestEncodeBundleReadable(t *testing.T) {
	b := newSeededBundle("demo@example.com", time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))

	var buf bytes.Buffer
	if err := EncodeBundle(&buf, b); err != nil {
		t.Fatalf("EncodeBundle() error = %v", err)
	}
	out := buf.String()
	// The record is meant to be browsed by hand: indented, named fields.
	if !strings.Contains(out, "\n  \"accounts\"") {
		t.Error("encoded bundle is not indented")
	}
	if !strings.Contains(out, `"userKey": "demo@example.com"`) {
		t.Error("encoded bundle has no userKey field")
	}

	got, err := DecodeBundle(&buf)
	if err != nil {
		t.Fatalf("DecodeBundle() error = %v", err)
	}
	if got.SchemaVersion != SchemaVersion {
		t.Errorf("SchemaVersion = %d, want %d", got.SchemaVersion, SchemaVersion)
	}
}
