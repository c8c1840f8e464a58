package video

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const uuid = "3f2504e0-4f89-11d3-9a0c-0305e82c3301"

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"embed form", "https://x/embed/42/" + uuid, uuid},
		{"bare id in path", "https://player.example.com/v/" + uuid + "/watch", uuid},
		{"query string ignored", "https://x/" + uuid + "?t=5", uuid},
		{"upper case hex", "https://x/embed/7/3F2504E0-4F89-11D3-9A0C-0305E82C3301", "3F2504E0-4F89-11D3-9A0C-0305E82C3301"},
		{"trailing slash", "https://x/videos/" + uuid + "/", uuid},
		{"embed wins over earlier bare token", "https://x/" + "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa" + "/embed/1/" + uuid, uuid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Extract(tt.url)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractFallbackLastSegment(t *testing.T) {
	// No leading slash, so only the last-segment fallback can match.
	got, err := Extract(uuid + "?autoplay=1")
	require.NoError(t, err)
	assert.Equal(t, uuid, got)
}

func TestExtractNotFound(t *testing.T) {
	for _, url := range []string{
		"https://x/abcd",
		"https://x/",
		"",
		"https://x/3f2504e0-4f89-11d3-9a0c",
		"https://x/zzzzzzzz-zzzz-zzzz-zzzz-zzzzzzzzzzzz",
	} {
		_, err := Extract(url)
		assert.ErrorIs(t, err, ErrNoVideoID, url)
	}
}

func TestResolver(t *testing.T) {
	r := NewResolver("https://proxy.example.com/")
	assert.Equal(t, "https://proxy.example.com", r.Base())
	assert.Equal(t, "https://proxy.example.com/"+uuid, r.StreamURL(uuid))

	id, stream, err := r.Resolve("https://x/embed/42/" + uuid)
	require.NoError(t, err)
	assert.Equal(t, uuid, id)
	assert.Equal(t, "https://proxy.example.com/"+uuid, stream)

	_, _, err = r.Resolve("https://x/abcd")
	assert.ErrorIs(t, err, ErrNoVideoID)
}

func TestResolverDefaultBase(t *testing.T) {
	assert.Equal(t, DefaultProxyURL, NewResolver("").Base())
}
