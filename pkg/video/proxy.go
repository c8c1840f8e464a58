package video

import (
	"fmt"
	"strings"
)

const DefaultProxyURL = "https://videoiq.duckdns.org"

// Resolver maps video identifiers to playable stream URLs on the proxy.
type Resolver struct {
	base string
}

func NewResolver(base string) *Resolver {
	if base == "" {
		base = DefaultProxyURL
	}
	return &Resolver{base: strings.TrimRight(base, "/")}
}

func (r *Resolver) Base() string {
	return r.base
}

func (r *Resolver) StreamURL(videoID string) string {
	return r.base + "/" + videoID
}

// Resolve extracts the video id from a lecture URL and returns it together
// with its stream URL.
func (r *Resolver) Resolve(lectureURL string) (id, stream string, err error) {
	id, err = Extract(lectureURL)
	if err != nil {
		return "", "", fmt.Errorf("resolve %q: %w", lectureURL, err)
	}
	return id, r.StreamURL(id), nil
}
