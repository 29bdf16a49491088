package demofolio

import (
	"fmt"
	"time"
)

// ConnectionStatus is the simulated health of an institution link.
type ConnectionStatus int

const (
	Connected ConnectionStatus = iota
	Syncing
)

func (c ConnectionStatus) String() string {
	switch c {
	case Connected:
		return "connected"
	case Syncing:
		return "syncing"
	}
	return "unknown"
}

// SyncedInstitution is one institution with its simulated connection status
// and the accounts it holds, in catalog order.
type SyncedInstitution struct {
	Institution Institution
	Status      ConnectionStatus
	Accounts    []Account
}

// SyncedInstitutions lists every institution in the user's catalog with a
// deterministic connection status. The status is stable within a weekly
// bucket so the connections screen does not flicker between reads, and
// reshuffles when the bucket rolls over.
func (s *System) SyncedInstitutions(userKey string, now time.Time) []SyncedInstitution {
	b := s.bundle(userKey)

	out := make([]SyncedInstitution, 0, len(b.Institutions))
	for _, inst := range b.Institutions {
		out = append(out, SyncedInstitution{
			Institution: inst,
			Status:      institutionStatus(b.UserKey, inst.ID, now),
			Accounts:    b.AccountsOf(inst.ID),
		})
	}
	return out
}

func institutionStatus(userKey, institutionID string, now time.Time) ConnectionStatus {
	key := fmt.Sprintf("status|%s|%s|%d", userKey, institutionID, Week.Bucket(now))
	if NewKeyedRNG(key).Bool() {
		return Connected
	}
	return Syncing
}
