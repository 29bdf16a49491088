package demofolio

import (
	"fmt"
	"log"
	"sync"
	"time"
)

// System is the engine's whole surface: a handle over one Store plus the
// query and linking operations the consuming app calls. It is safe for
// concurrent use; writes are serialized per normalized user key so two
// simultaneous link calls cannot lose an appended account.
type System struct {
	store *Store

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewSystem creates a system over the given store.
func NewSystem(store *Store) *System {
	return &System{
		store: store,
		locks: make(map[string]*sync.Mutex),
	}
}

// Store exposes the underlying store, mostly for tests and tooling.
func (s *System) Store() *Store { return s.store }

// userLock returns the mutex guarding writes for one user.
func (s *System) userLock(userKey string) *sync.Mutex {
	key := NormalizeUserKey(userKey)
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[key]
	if !ok {
		l = &sync.Mutex{}
		s.locks[key] = l
	}
	return l
}

// EnsureSeeded makes sure a bundle exists for this user. The first call
// creates and persists the fixed starter set and populates the linked-account
// gate list; every later call is a no-op, except that it backfills the gate
// list from the bundle if that list went missing.
func (s *System) EnsureSeeded(userKey string) error {
	l := s.userLock(userKey)
	l.Lock()
	defer l.Unlock()
	return s.ensureSeededLocked(userKey)
}

func (s *System) ensureSeededLocked(userKey string) error {
	if b, ok := s.store.Load(userKey); ok {
		if len(s.store.LinkedIDs(userKey)) == 0 {
			return s.store.MergeLinkedIDs(userKey, b.AccountIDs())
		}
		return nil
	}

	b := newSeededBundle(userKey, time.Now())
	log.Printf("seed-bundle user=%q accounts=%d", b.UserKey, len(b.Accounts))
	if err := s.store.Save(b); err != nil {
		return fmt.Errorf("could not persist seeded bundle: %w", err)
	}
	return s.store.MergeLinkedIDs(userKey, b.AccountIDs())
}

// UpsertLinkedAccounts links an institution and its accounts into the user's
// bundle. The bundle is seeded first if needed, duplicate external ids are
// silently skipped, and newly added ids are unioned into the gate list. The
// bundle is persisted whenever it grew, even when the institution is the only
// addition. Calling it twice with the same payload changes nothing the
// second time.
func (s *System) UpsertLinkedAccounts(userKey string, inst InstitutionDescriptor, accounts []AccountDescriptor) error {
	l := s.userLock(userKey)
	l.Lock()
	defer l.Unlock()

	if err := s.ensureSeededLocked(userKey); err != nil {
		return err
	}
	b, ok := s.store.Load(userKey)
	if !ok {
		// ensureSeededLocked just persisted it; a miss here means the store
		// itself is broken.
		return fmt.Errorf("bundle for %q vanished after seeding", NormalizeUserKey(userKey))
	}

	added, institutionAdded := b.upsertLinked(inst, accounts, time.Now())
	if len(added) == 0 && !institutionAdded {
		return nil
	}
	log.Printf("link-accounts user=%q institution=%q added=%d", b.UserKey, inst.Name, len(added))
	if err := s.store.Save(b); err != nil {
		return fmt.Errorf("could not persist linked accounts: %w", err)
	}
	if len(added) == 0 {
		return nil
	}
	return s.store.MergeLinkedIDs(userKey, added)
}

// bundle loads the user's bundle for a read operation. Absent reads as an
// empty bundle: queries return zero results, never errors.
func (s *System) bundle(userKey string) *Bundle {
	if b, ok := s.store.Load(userKey); ok {
		return b
	}
	return &Bundle{SchemaVersion: SchemaVersion, UserKey: NormalizeUserKey(userKey)}
}
