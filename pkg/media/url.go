// Package media rewrites upload URLs recorded by field devices so they point
// at the public host instead of the machine that captured them.
package media

import (
	"net/url"
	"strings"
)

const uploadsPrefix = "/uploads/"

var localHosts = map[string]struct{}{
	"localhost": {},
	"127.0.0.1": {},
	"10.0.2.2":  {}, // android emulator
	"10.0.3.2":  {}, // genymotion
}

type Normalizer struct {
	origin string // scheme://host[:port], empty disables rewriting
}

// NewNormalizer accepts the PUBLIC_BASE_URL setting. An empty or unparsable
// base yields a Normalizer that returns URLs unchanged.
func NewNormalizer(publicBase string) *Normalizer {
	publicBase = strings.TrimSpace(publicBase)
	if publicBase == "" {
		return &Normalizer{}
	}
	u, err := url.Parse(publicBase)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return &Normalizer{}
	}
	return &Normalizer{origin: u.Scheme + "://" + u.Host}
}

// URL rewrites a single URL. Absolute URLs on a local development host under
// /uploads/ and bare /uploads/ paths move onto the public origin; anything
// else is returned as is.
func (n *Normalizer) URL(raw string) string {
	if raw == "" || n == nil || n.origin == "" {
		return raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	if u.Host == "" {
		if strings.HasPrefix(raw, uploadsPrefix) {
			return n.origin + raw
		}
		return raw
	}
	if _, ok := localHosts[u.Hostname()]; !ok || !strings.HasPrefix(u.Path, uploadsPrefix) {
		return raw
	}
	out := n.origin + u.EscapedPath()
	if u.RawQuery != "" {
		out += "?" + u.RawQuery
	}
	return out
}

// URLs normalises every entry and drops empty ones. The result is never nil.
func (n *Normalizer) URLs(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		if v := n.URL(r); v != "" {
			out = append(out, v)
		}
	}
	return out
}
