package demofolio

import (
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"os"
	"path/filepath"
)

// Store is the key-value persistence adapter. Each user owns two records
// under the store directory: the serialized bundle, and a flat list of linked
// account ids the consuming app uses as an unlock gate. Records are plain
// files named after the normalized user key.
//
// Construct one Store at process start and hand it to every caller; there is
// no hidden global.
type Store struct {
	dir string
}

// NewStore returns a store rooted at dir. The directory is created lazily on
// the first write.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the store's root directory.
func (s *Store) Dir() string { return s.dir }

func (s *Store) bundlePath(userKey string) string {
	return filepath.Join(s.dir, "bundle."+url.PathEscape(NormalizeUserKey(userKey))+".json")
}

func (s *Store) linkedPath(userKey string) string {
	return filepath.Join(s.dir, "linked."+url.PathEscape(NormalizeUserKey(userKey))+".json")
}

// Load reads the bundle for this user. It returns ok=false when the record is
// absent, unreadable or malformed: a broken record is indistinguishable from
// no record, the caller reseeds instead of failing.
func (s *Store) Load(userKey string) (b *Bundle, ok bool) {
	f, err := os.Open(s.bundlePath(userKey))
	if err != nil {
		return nil, false
	}
	defer f.Close()

	b, err = DecodeBundle(f)
	if err != nil {
		log.Printf("discard-malformed-bundle user=%q: %v", NormalizeUserKey(userKey), err)
		return nil, false
	}
	return b, true
}

// Save persists the bundle, keyed by its normalized user key.
func (s *Store) Save(b *Bundle) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("could not create store directory %q: %w", s.dir, err)
	}

	path := s.bundlePath(b.UserKey)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot open %q for writing: %w", path, err)
	}
	defer f.Close()

	if err := EncodeBundle(f, b); err != nil {
		return fmt.Errorf("persist error: %w", err)
	}
	log.Printf("save-bundle user=%q accounts=%d", NormalizeUserKey(b.UserKey), len(b.Accounts))
	return nil
}

// LinkedIDs reads the linked-account gate list for this user. Absent or
// malformed lists read as empty.
func (s *Store) LinkedIDs(userKey string) []string {
	data, err := os.ReadFile(s.linkedPath(userKey))
	if err != nil {
		return nil
	}
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		log.Printf("discard-malformed-gate-list user=%q: %v", NormalizeUserKey(userKey), err)
		return nil
	}
	return ids
}

// MergeLinkedIDs unions ids into the user's gate list, preserving the
// existing order and appending unseen ids in the given order.
func (s *Store) MergeLinkedIDs(userKey string, ids []string) error {
	existing := s.LinkedIDs(userKey)
	seen := make(map[string]struct{}, len(existing))
	for _, id := range existing {
		seen[id] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		existing = append(existing, id)
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("could not create store directory %q: %w", s.dir, err)
	}
	data, err := json.Marshal(existing)
	if err != nil {
		return fmt.Errorf("failed to marshal gate list: %w", err)
	}
	path := s.linkedPath(userKey)
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("cannot write %q: %w", path, err)
	}
	return nil
}
