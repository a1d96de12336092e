package bootstrap

import "sync"

// Credential represents a developer-supplied access token & user ID pair that allows
// skipping the interactive login flow during local testing
type Credential struct {
	AccessToken string
	UserID      string
}

// Pending holds an optional bootstrap credential that may be consumed at most once
// across the whole process lifetime.
// The zero value holds no credential.
type Pending struct {
	mu         sync.Mutex
	credential *Credential
}

// NewPending creates a new pending bootstrap credential holder.
// If either value is empty, the holder starts out drained.
func NewPending(accessToken, userID string) *Pending {
	pending := &Pending{}
	if accessToken != "" && userID != "" {
		pending.credential = &Credential{
			AccessToken: accessToken,
			UserID:      userID,
		}
	}
	return pending
}

// Live reports whether the credential is still available for consumption
func (pending *Pending) Live() bool {
	pending.mu.Lock()
	defer pending.mu.Unlock()
	return pending.credential != nil
}

// Take removes and returns the credential.
// Only the first successful caller receives it; every subsequent call reports false.
func (pending *Pending) Take() (Credential, bool) {
	pending.mu.Lock()
	defer pending.mu.Unlock()
	if pending.credential == nil {
		return Credential{}, false
	}
	credential := *pending.credential
	pending.credential = nil
	return credential, true
}
