package hls

import (
	"errors"
	"fmt"
)

var ErrMalformedPlaylist = errors.New("malformed playlist")

// ParseError reports a segment token that matched the playlist shape but could not be converted.
type ParseError struct {
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse segment token %q: %v", e.Token, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
