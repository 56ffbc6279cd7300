package hls

import (
	"errors"
	"testing"

	"github.com/matryer/is"
)

const twitchMaster = `#EXTM3U
#EXT-X-TWITCH-INFO:ORIGIN="s3",B="false",REGION="EU",USER-IP="127.0.0.1",SERVING-ID="abc",CLUSTER="cloudfront_vod",USER-COUNTRY="IT",MANIFEST-CLUSTER="cloudfront_vod"
#EXT-X-MEDIA:TYPE=VIDEO,GROUP-ID="chunked",NAME="1080p60",AUTOSELECT=YES,DEFAULT=YES
#EXT-X-STREAM-INF:BANDWIDTH=6191767,CODECS="avc1.64002A,mp4a.40.2",RESOLUTION=1920x1080,VIDEO="chunked",FRAME-RATE=60.000
https://d2nvs31859zcd8.cloudfront.net/abc_123/chunked/index-dvr.m3u8
#EXT-X-MEDIA:TYPE=VIDEO,GROUP-ID="720p60",NAME="720p60",AUTOSELECT=YES,DEFAULT=YES
#EXT-X-STREAM-INF:BANDWIDTH=3422999,CODECS="avc1.4D401F,mp4a.40.2",RESOLUTION=1280x720,VIDEO="720p60",FRAME-RATE=60.000
https://d2nvs31859zcd8.cloudfront.net/abc_123/720p60/index-dvr.m3u8
`

func TestLocateFirstVariant(t *testing.T) {
	is := is.New(t)

	ref, err := Locate(twitchMaster)
	is.NoErr(err)
	is.Equal(ref.URL, "https://d2nvs31859zcd8.cloudfront.net/abc_123/chunked/index-dvr.m3u8")
	is.Equal(ref.Base, "https://d2nvs31859zcd8.cloudfront.net/abc_123/chunked")
}

func TestLocateSkipsRelativeVariants(t *testing.T) {
	is := is.New(t)

	text := `#EXTM3U
#EXT-X-STREAM-INF:BANDWIDTH=1000
low/index.m3u8
#EXT-X-STREAM-INF:BANDWIDTH=2000
https://cdn.example.com/vod/high/index.m3u8?token=abc
`
	ref, err := Locate(text)
	is.NoErr(err)
	is.Equal(ref.URL, "https://cdn.example.com/vod/high/index.m3u8?token=abc")
	is.Equal(ref.Base, "https://cdn.example.com/vod/high") // query is not part of the base
}

func TestLocateMalformed(t *testing.T) {
	cases := map[string]string{
		"empty":      "",
		"not hls":    "<html>Forbidden</html>",
		"media":      "#EXTM3U\n#EXT-X-TARGETDURATION:10\n#EXTINF:10.000,\n0.ts\n#EXT-X-ENDLIST\n",
		"plain http": "#EXTM3U\n#EXT-X-STREAM-INF:BANDWIDTH=1000\nhttp://cdn.example.com/index.m3u8\n",
		"no m3u8":    "#EXTM3U\n#EXT-X-STREAM-INF:BANDWIDTH=1000\nhttps://cdn.example.com/index.mp4\n",
	}

	for name, text := range cases {
		t.Run(name, func(t *testing.T) {
			is := is.New(t)

			_, err := Locate(text)
			is.True(errors.Is(err, ErrMalformedPlaylist))
		})
	}
}
