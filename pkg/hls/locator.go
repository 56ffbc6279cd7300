package hls

import (
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/grafov/m3u8"
)

// MediaRef points at a media playlist and the directory its segments live in.
type MediaRef struct {
	URL  string
	Base string
}

// Locate returns the first media playlist referenced by a master playlist.
// Only absolute https references ending in .m3u8 are considered.
func Locate(masterText string) (MediaRef, error) {
	playlist, listType, err := m3u8.DecodeFrom(strings.NewReader(masterText), false)
	if err != nil {
		return MediaRef{}, fmt.Errorf("%w: decode master playlist: %v", ErrMalformedPlaylist, err)
	}

	if listType != m3u8.MASTER {
		return MediaRef{}, fmt.Errorf("%w: expected master playlist", ErrMalformedPlaylist)
	}

	master, ok := playlist.(*m3u8.MasterPlaylist)
	if !ok {
		return MediaRef{}, fmt.Errorf("%w: unexpected playlist type", ErrMalformedPlaylist)
	}

	for _, v := range master.Variants {
		if v == nil {
			continue
		}

		u, err := url.Parse(strings.TrimSpace(v.URI))
		if err != nil || u.Scheme != "https" || u.Host == "" || !strings.HasSuffix(u.Path, ".m3u8") {
			continue
		}

		return MediaRef{
			URL:  u.String(),
			Base: baseOf(u),
		}, nil
	}

	return MediaRef{}, fmt.Errorf("%w: no media playlist reference", ErrMalformedPlaylist)
}

func baseOf(u *url.URL) string {
	parent := *u
	parent.Path = path.Dir(u.Path)
	parent.RawPath = ""
	parent.RawQuery = ""
	parent.Fragment = ""
	return strings.TrimSuffix(parent.String(), "/")
}
