package hls

import (
	"regexp"
	"strconv"
)

// SegmentParser turns media playlist text into segments whose URIs are qualified with base.
type SegmentParser interface {
	Parse(text, base string) ([]Segment, error)
}

var segmentRe = regexp.MustCompile(`#EXTINF:([0-9]+\.[0-9]{3}),\r?\n([0-9]+)\.ts`)

// VODParser understands the two-line segment records of Twitch VOD playlists:
//
//	#EXTINF:10.000,
//	42.ts
//
// Anything else (ads, discontinuities, muted segments) is skipped.
type VODParser struct{}

func (VODParser) Parse(text, base string) ([]Segment, error) {
	matches := segmentRe.FindAllStringSubmatch(text, -1)

	segments := make([]Segment, 0, len(matches))
	for _, m := range matches {
		duration, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return nil, &ParseError{Token: m[1], Err: err}
		}

		if _, err := strconv.ParseUint(m[2], 10, 64); err != nil {
			return nil, &ParseError{Token: m[2], Err: err}
		}

		segments = append(segments, Segment{
			URI:      base + "/" + m[2] + ".ts",
			Duration: duration,
		})
	}

	return segments, nil
}
