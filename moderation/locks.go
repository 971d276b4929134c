package moderation

import "sync"

// keyedLocks serializes operations against the same guild+user pair while
// letting unrelated users proceed concurrently.
type keyedLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newKeyedLocks() *keyedLocks {
	return &keyedLocks{locks: make(map[string]*sync.Mutex)}
}

func userKey(guildID, userID string) string {
	return guildID + "/" + userID
}

// Lock acquires the mutex for a guild+user pair and returns its unlock func.
func (k *keyedLocks) Lock(guildID, userID string) func() {
	key := userKey(guildID, userID)

	k.mu.Lock()
	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	k.mu.Unlock()

	m.Lock()
	return m.Unlock
}
