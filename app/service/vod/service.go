package vod

import (
	"context"
	"fmt"
	"iter"
	"log/slog"
	"ttvcli/app/client/twitch"
	"ttvcli/pkg/hls"
	"ttvcli/pkg/paginate"

	"github.com/getsentry/sentry-go"
	"github.com/samber/do"
)

type Service struct {
	client *twitch.Client
	parser hls.SegmentParser
}

func New(di *do.Injector) (*Service, error) {
	return &Service{
		client: do.MustInvoke[*twitch.Client](di),
		parser: hls.VODParser{},
	}, nil
}

// DirectLink resolves the signed master playlist URL of a VOD.
func (s *Service) DirectLink(ctx context.Context, vodID string) (string, error) {
	token, err := s.client.GetVodAccessToken(ctx, vodID)
	if err != nil {
		return "", fmt.Errorf("get access token: %w", err)
	}

	return s.client.MasterPlaylistURL(vodID, token), nil
}

// Playlist rebuilds the part of a VOD that falls inside window as a standalone media playlist.
// Either the whole playlist is produced or an error is returned.
func (s *Service) Playlist(ctx context.Context, vodID string, window hls.Window) (string, error) {
	span := sentry.StartSpan(ctx, "vod.playlist")
	defer span.Finish()
	span.SetTag("vod_id", vodID)
	ctx = span.Context()

	masterURL, err := s.DirectLink(ctx, vodID)
	if err != nil {
		return "", err
	}

	masterText, err := s.client.FetchText(ctx, masterURL)
	if err != nil {
		return "", fmt.Errorf("fetch master playlist: %w", err)
	}

	ref, err := hls.Locate(masterText)
	if err != nil {
		return "", fmt.Errorf("locate media playlist: %w", err)
	}

	slog.DebugContext(ctx, "Located media playlist",
		slog.String("vod_id", vodID),
		slog.String("base", ref.Base),
	)

	mediaText, err := s.client.FetchText(ctx, ref.URL)
	if err != nil {
		return "", fmt.Errorf("fetch media playlist: %w", err)
	}

	segments, err := s.parser.Parse(mediaText, ref.Base)
	if err != nil {
		return "", fmt.Errorf("parse media playlist: %w", err)
	}

	selected := hls.Select(segments, window)

	slog.DebugContext(ctx, "Selected segments",
		slog.String("vod_id", vodID),
		slog.Int("total", len(segments)),
		slog.Float64("total_duration", hls.TotalDuration(segments)),
		slog.Int("selected", len(selected)),
		slog.Float64("start", window.Start),
		slog.Float64("end", window.End),
	)

	return hls.Emit(selected), nil
}

// Vods walks the archived broadcasts of login page by page.
func (s *Service) Vods(ctx context.Context, login string, opts paginate.Options) iter.Seq[[]twitch.Vod] {
	return paginate.Pages(ctx, func(ctx context.Context, cursor string) (paginate.Page[twitch.Vod], error) {
		page, err := s.client.GetVideos(ctx, login, cursor)
		if err != nil {
			return paginate.Page[twitch.Vod]{}, err
		}
		return paginate.Page[twitch.Vod]{Items: page.Vods, Cursor: page.Cursor}, nil
	}, opts)
}

// Comments walks the chat replay of a VOD page by page.
func (s *Service) Comments(ctx context.Context, vodID string, opts paginate.Options) iter.Seq[[]twitch.Comment] {
	return paginate.Pages(ctx, func(ctx context.Context, cursor string) (paginate.Page[twitch.Comment], error) {
		page, err := s.client.GetComments(ctx, vodID, cursor)
		if err != nil {
			return paginate.Page[twitch.Comment]{}, err
		}
		return paginate.Page[twitch.Comment]{Items: page.Comments, Cursor: page.Cursor}, nil
	}, opts)
}
