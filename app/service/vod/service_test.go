package vod

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"ttvcli/app/client/twitch"
	"ttvcli/pkg/config"
	"ttvcli/pkg/hls"
	"ttvcli/pkg/paginate"

	"github.com/samber/do"
	"github.com/stretchr/testify/require"
)

type fakeTwitch struct {
	server *httptest.Server

	tokenBody  string
	masterBody string
	mediaBody  string

	mediaHits atomic.Int32
}

func newFakeTwitch(t *testing.T) *fakeTwitch {
	t.Helper()

	f := &fakeTwitch{tokenBody: `{"sig":"s1","token":"t1"}`}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/vods/{id}/access_token", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, f.tokenBody)
	})
	mux.HandleFunc("/usher/vod/{file}", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("sig") != "s1" || r.URL.Query().Get("token") != "t1" {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		_, _ = io.WriteString(w, f.masterBody)
	})
	mux.HandleFunc("/vod/chunked/index-dvr.m3u8", func(w http.ResponseWriter, r *http.Request) {
		f.mediaHits.Add(1)
		_, _ = io.WriteString(w, f.mediaBody)
	})

	f.server = httptest.NewTLSServer(mux)
	t.Cleanup(f.server.Close)

	f.masterBody = fmt.Sprintf("#EXTM3U\n"+
		"#EXT-X-MEDIA:TYPE=VIDEO,GROUP-ID=\"chunked\",NAME=\"1080p60\",AUTOSELECT=YES,DEFAULT=YES\n"+
		"#EXT-X-STREAM-INF:BANDWIDTH=6191767,RESOLUTION=1920x1080,VIDEO=\"chunked\"\n"+
		"%s/vod/chunked/index-dvr.m3u8\n", f.server.URL)
	f.mediaBody = "#EXTM3U\n#EXT-X-VERSION:3\n#EXT-X-TARGETDURATION:10\n" +
		"#EXTINF:5.000,\n0.ts\n" +
		"#EXTINF:5.000,\n1.ts\n" +
		"#EXTINF:5.000,\n2.ts\n" +
		"#EXT-X-ENDLIST\n"

	return f
}

func (f *fakeTwitch) service(t *testing.T) *Service {
	t.Helper()

	cfg := config.Default()
	cfg.Twitch.Endpoints.API = f.server.URL
	cfg.Twitch.Endpoints.Usher = f.server.URL + "/usher"
	cfg.Twitch.Endpoints.GQL = f.server.URL + "/gql"

	di := do.New()
	do.ProvideValue(di, cfg)
	do.ProvideValue(di, f.server.Client())
	do.Provide(di, twitch.NewClient)
	do.Provide(di, New)

	return do.MustInvoke[*Service](di)
}

func TestPlaylistWindow(t *testing.T) {
	f := newFakeTwitch(t)
	s := f.service(t)

	out, err := s.Playlist(context.Background(), "596966295", hls.Window{Start: 4, End: 10})
	require.NoError(t, err)

	base := f.server.URL + "/vod/chunked"
	require.Equal(t, "#EXTM3U\n"+
		"#EXT-X-VERSION:3\n"+
		"#EXT-X-TARGETDURATION:12\n"+
		"#EXT-X-PLAYLIST-TYPE:EVENT\n"+
		"#EXT-X-MEDIA-SEQUENCE:0\n"+
		"#EXTINF:5.000,\n"+base+"/0.ts\n"+
		"#EXTINF:5.000,\n"+base+"/1.ts\n"+
		"#EXT-X-ENDLIST\n", out)
}

func TestPlaylistDefaultWindow(t *testing.T) {
	f := newFakeTwitch(t)

	out, err := f.service(t).Playlist(context.Background(), "596966295", hls.DefaultWindow())
	require.NoError(t, err)
	require.Equal(t, 3, strings.Count(out, "#EXTINF:"))
}

func TestPlaylistWindowPastEnd(t *testing.T) {
	f := newFakeTwitch(t)

	out, err := f.service(t).Playlist(context.Background(), "596966295", hls.Window{Start: 60, End: 120})
	require.NoError(t, err)
	require.NotContains(t, out, "#EXTINF")
	require.True(t, strings.HasSuffix(out, "#EXT-X-ENDLIST\n"))
}

func TestPlaylistMissingSignature(t *testing.T) {
	f := newFakeTwitch(t)
	f.tokenBody = `{"token":"t1"}`

	out, err := f.service(t).Playlist(context.Background(), "596966295", hls.DefaultWindow())
	require.Empty(t, out)

	var missing *twitch.MissingFieldError
	require.ErrorAs(t, err, &missing)
	require.Equal(t, "sig", missing.Field)
}

func TestPlaylistMalformedMaster(t *testing.T) {
	f := newFakeTwitch(t)
	f.masterBody = "#EXTM3U\n#EXT-X-TWITCH-INFO:ORIGIN=\"s3\"\n"

	out, err := f.service(t).Playlist(context.Background(), "596966295", hls.DefaultWindow())
	require.Empty(t, out)
	require.ErrorIs(t, err, hls.ErrMalformedPlaylist)
	require.Zero(t, f.mediaHits.Load())
}

func TestPlaylistParseError(t *testing.T) {
	f := newFakeTwitch(t)
	f.mediaBody = "#EXTINF:" + strings.Repeat("9", 400) + ".000,\n0.ts\n"

	out, err := f.service(t).Playlist(context.Background(), "596966295", hls.DefaultWindow())
	require.Empty(t, out)

	var parseErr *hls.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestPlaylistTransportError(t *testing.T) {
	f := newFakeTwitch(t)
	f.tokenBody = `{"sig":"wrong","token":"t1"}`

	_, err := f.service(t).Playlist(context.Background(), "596966295", hls.DefaultWindow())

	var transportErr *twitch.TransportError
	require.ErrorAs(t, err, &transportErr)
	require.Equal(t, http.StatusForbidden, transportErr.StatusCode)
	require.NotContains(t, transportErr.Error(), "sig=wrong")
}

func TestDirectLink(t *testing.T) {
	f := newFakeTwitch(t)

	link, err := f.service(t).DirectLink(context.Background(), "596966295")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(link, f.server.URL+"/usher/vod/596966295.m3u8?"))
	require.Contains(t, link, "sig=s1")
}

type stubParser struct{ err error }

func (p stubParser) Parse(string, string) ([]hls.Segment, error) {
	return nil, p.err
}

func TestPlaylistUsesInjectedParser(t *testing.T) {
	f := newFakeTwitch(t)
	s := f.service(t)
	s.parser = stubParser{err: errors.New("boom")}

	_, err := s.Playlist(context.Background(), "596966295", hls.DefaultWindow())
	require.ErrorContains(t, err, "boom")
}

func TestVodsPagination(t *testing.T) {
	f := newFakeTwitch(t)

	var calls atomic.Int32
	f.server.Config.Handler.(*http.ServeMux).HandleFunc("/gql", func(w http.ResponseWriter, r *http.Request) {
		switch calls.Add(1) {
		case 1:
			_, _ = io.WriteString(w, `[{"data":{"user":{"videos":{"edges":[{"cursor":"c1","node":{"id":"1","title":"a"}}]}}}}]`)
		case 2:
			_, _ = io.WriteString(w, `[{"data":{"user":{"videos":{"edges":[{"cursor":"c2","node":{"id":"2","title":"b"}}]}}}}]`)
		default:
			http.Error(w, "rate limited", http.StatusTooManyRequests)
		}
	})

	var ids []string
	for vods := range f.service(t).Vods(context.Background(), "streamer", paginate.Options{}) {
		for _, v := range vods {
			ids = append(ids, v.ID)
		}
	}

	require.Equal(t, []string{"1", "2"}, ids)
	require.EqualValues(t, 3, calls.Load())
}

func TestCommentsMaxPages(t *testing.T) {
	f := newFakeTwitch(t)

	var cursors []string
	f.server.Config.Handler.(*http.ServeMux).HandleFunc("/v5/videos/{id}/comments", func(w http.ResponseWriter, r *http.Request) {
		cursors = append(cursors, r.URL.Query().Get("cursor"))
		_, _ = fmt.Fprintf(w, `{"_next":"n%d","comments":[]}`, len(cursors))
	})

	pages := 0
	for range f.service(t).Comments(context.Background(), "596966295", paginate.Options{Cursor: "start", MaxPages: 2}) {
		pages++
	}

	require.Equal(t, 2, pages)
	require.Equal(t, []string{"start", "n1"}, cursors)
}
