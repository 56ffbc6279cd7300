package hls

import (
	"strconv"
	"strings"
)

const header = "#EXTM3U\n" +
	"#EXT-X-VERSION:3\n" +
	"#EXT-X-TARGETDURATION:12\n" +
	"#EXT-X-PLAYLIST-TYPE:EVENT\n" +
	"#EXT-X-MEDIA-SEQUENCE:0\n"

const endList = "#EXT-X-ENDLIST\n"

// Emit renders segments as a finished media playlist. The end marker is written even when segments is empty.
func Emit(segments []Segment) string {
	var b strings.Builder
	b.Grow(len(header) + len(endList) + len(segments)*64)

	b.WriteString(header)
	for _, s := range segments {
		b.WriteString("#EXTINF:")
		b.WriteString(strconv.FormatFloat(s.Duration, 'f', 3, 64))
		b.WriteString(",\n")
		b.WriteString(s.URI)
		b.WriteByte('\n')
	}
	b.WriteString(endList)

	return b.String()
}
