// Package peer tracks known peer nodes and speaks the ledger-fetch protocol to them.
package peer

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// ErrMalformedAddress is returned for addresses that do not reduce to host:port.
var ErrMalformedAddress = errors.New("malformed peer address")

var schemePorts = map[string]string{
	"http":  "80",
	"https": "443",
}

// Normalize reduces a URL or bare host:port to a lowercase host:port. A URL
// without a port takes the default port of its http or https scheme.
func Normalize(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: empty", ErrMalformedAddress)
	}
	hasScheme := strings.Contains(raw, "://")
	if !hasScheme {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedAddress, err)
	}
	host, port := u.Hostname(), u.Port()
	if host == "" {
		return "", fmt.Errorf("%w: %q: missing host", ErrMalformedAddress, u.Host)
	}
	if port == "" && hasScheme {
		port = schemePorts[strings.ToLower(u.Scheme)]
	}
	if port == "" {
		return "", fmt.Errorf("%w: %q: missing port", ErrMalformedAddress, u.Host)
	}
	if n, err := strconv.Atoi(port); err != nil || n < 1 || n > 65535 {
		return "", fmt.Errorf("%w: %q: invalid port", ErrMalformedAddress, u.Host)
	}

	return net.JoinHostPort(strings.ToLower(host), port), nil
}

// Registry is the append-only set of known peer addresses.
type Registry struct {
	mu    sync.RWMutex
	peers map[string]struct{}
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{peers: make(map[string]struct{})}
}

// Add normalizes raw and inserts it. Adding a known peer is a no-op.
func (r *Registry) Add(raw string) (string, error) {
	addr, err := Normalize(raw)
	if err != nil {
		return "", err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.peers[addr] = struct{}{}
	return addr, nil
}

// AddAll validates every address before inserting any of them.
func (r *Registry) AddAll(raw []string) error {
	addrs := make([]string, 0, len(raw))
	for _, a := range raw {
		addr, err := Normalize(a)
		if err != nil {
			return err
		}
		addrs = append(addrs, addr)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, addr := range addrs {
		r.peers[addr] = struct{}{}
	}
	return nil
}

// Peers returns the known addresses in sorted order.
func (r *Registry) Peers() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.peers))
	for addr := range r.peers {
		out = append(out, addr)
	}
	sort.Strings(out)
	return out
}
