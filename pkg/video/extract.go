package video

import (
	"errors"
	"regexp"
	"strings"
)

// ErrNoVideoID is returned when a lecture URL carries no recognisable
// video identifier. Lecture URLs come from untrusted datasets, so callers
// treat it as malformed data rather than a failure.
var ErrNoVideoID = errors.New("no video id in url")

// Order matters: the embed form must win over the bare 36-char form.
var idPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)/embed/\d+/([a-f0-9-]{36})`),
	regexp.MustCompile(`(?i)/([a-f0-9-]{36})`),
	regexp.MustCompile(`(?i)/([a-f0-9]{8}-[a-f0-9]{4}-[a-f0-9]{4}-[a-f0-9]{4}-[a-f0-9]{12})`),
}

var idToken = regexp.MustCompile(`(?i)^[a-f0-9-]{36}$`)

// Extract returns the 36-character hyphenated hex identifier embedded in url.
func Extract(url string) (string, error) {
	for _, p := range idPatterns {
		if m := p.FindStringSubmatch(url); len(m) > 1 && m[1] != "" {
			return m[1], nil
		}
	}

	var last string
	for _, seg := range strings.Split(url, "/") {
		if seg != "" {
			last = seg
		}
	}
	if i := strings.IndexByte(last, '?'); i >= 0 {
		last = last[:i]
	}
	if idToken.MatchString(last) {
		return last, nil
	}

	return "", ErrNoVideoID
}
