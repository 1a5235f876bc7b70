package sampling

import (
	"sort"
	"sync"
)

// TrustStore is the set of MCP servers whose sampling requests skip approval.
// It is safe for concurrent use.
type TrustStore struct {
	mu      sync.RWMutex
	servers map[string]struct{}
}

func NewTrustStore(servers ...string) *TrustStore {
	t := &TrustStore{servers: make(map[string]struct{}, len(servers))}
	for _, s := range servers {
		t.servers[s] = struct{}{}
	}
	return t
}

func (t *TrustStore) Trust(server string) {
	t.mu.Lock()
	t.servers[server] = struct{}{}
	t.mu.Unlock()
}

func (t *TrustStore) Revoke(server string) {
	t.mu.Lock()
	delete(t.servers, server)
	t.mu.Unlock()
}

func (t *TrustStore) IsTrusted(server string) bool {
	if t == nil {
		return false
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.servers[server]
	return ok
}

// List returns the trusted servers in sorted order.
func (t *TrustStore) List() []string {
	if t == nil {
		return nil
	}
	t.mu.RLock()
	out := make([]string, 0, len(t.servers))
	for s := range t.servers {
		out = append(out, s)
	}
	t.mu.RUnlock()
	sort.Strings(out)
	return out
}
