package demofolio

import (
	"encoding/binary"

	"github.com/google/uuid"
)

// StableID derives the identifier used for an account's balance history from
// the (userKey, accountID) pair. The same pair always maps to the same
// identifier across process runs, so no allocator or persisted mapping is
// needed. Version and variant bits are forced so the result is shaped like a
// random v4 UUID even though it is fully deterministic.
func StableID(userKey, accountID string) uuid.UUID {
	userKey = NormalizeUserKey(userKey)
	hi := Hash64("idA|" + userKey + "|" + accountID)
	lo := Hash64("idB|" + userKey + "|" + accountID)

	var b [16]byte
	binary.BigEndian.PutUint64(b[:8], hi)
	binary.BigEndian.PutUint64(b[8:], lo)

	b[6] = (b[6] & 0x0f) | 0x40 // version 4
	b[8] = (b[8] & 0x3f) | 0x80 // RFC 4122 variant

	return uuid.UUID(b)
}
