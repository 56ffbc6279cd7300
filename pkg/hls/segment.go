// Package hls rebuilds standalone media playlists out of Twitch VOD playlists.
//
// The work is split into small pure stages: Locate picks the media playlist out of
// a master playlist, a SegmentParser turns media playlist text into segments,
// Select keeps the segments inside a time window and Emit renders the result.
package hls

import "math"

// Segment is one chunk of video referenced by a media playlist.
type Segment struct {
	URI string
	// Duration in seconds
	Duration float64
}

// Window is a range over cumulative playlist time, in seconds.
type Window struct {
	Start float64
	End   float64
}

// DefaultWindow covers the whole playlist.
func DefaultWindow() Window {
	return Window{Start: 0, End: math.Inf(1)}
}

// NewWindow fills in the defaults for missing bounds.
func NewWindow(start, end *float64) Window {
	w := DefaultWindow()
	if start != nil {
		w.Start = *start
	}
	if end != nil {
		w.End = *end
	}
	return w
}

func TotalDuration(segments []Segment) float64 {
	total := 0.0
	for _, s := range segments {
		total += s.Duration
	}
	return total
}
