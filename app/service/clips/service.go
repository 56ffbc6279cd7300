package clips

import (
	"context"
	"fmt"
	"iter"
	"log/slog"
	"time"
	"ttvcli/app/client/twitch"
	"ttvcli/pkg/paginate"

	"github.com/getsentry/sentry-go"
	"github.com/samber/do"
)

var pageSize = 100

type Service struct {
	client *twitch.Client
}

func New(di *do.Injector) (*Service, error) {
	return &Service{
		client: do.MustInvoke[*twitch.Client](di),
	}, nil
}

// Clips walks the clips of login created between startedAt and endedAt.
// The broadcaster is resolved once, a failure there is returned; page failures only end the sequence.
func (s *Service) Clips(ctx context.Context, login string, startedAt, endedAt time.Time, opts paginate.Options) (iter.Seq[[]twitch.Clip], error) {
	span := sentry.StartSpan(ctx, "clips.list")
	defer span.Finish()
	span.SetTag("login", login)

	user, err := s.client.GetUser(span.Context(), login)
	if err != nil {
		return nil, fmt.Errorf("resolve broadcaster: %w", err)
	}

	slog.DebugContext(ctx, "Getting clips...",
		slog.String("broadcaster_id", user.ID),
		slog.Time("started_at", startedAt),
		slog.Time("ended_at", endedAt),
		slog.String("after", opts.Cursor),
	)

	return paginate.Pages(ctx, func(ctx context.Context, cursor string) (paginate.Page[twitch.Clip], error) {
		res, err := s.client.GetClips(ctx, &twitch.GetClipsParams{
			BroadcasterID: user.ID,
			First:         pageSize,
			StartedAt:     startedAt,
			EndedAt:       endedAt,
			After:         cursor,
		})
		if err != nil {
			return paginate.Page[twitch.Clip]{}, err
		}

		page := paginate.Page[twitch.Clip]{Items: res.Data}
		if res.Pagination != nil {
			page.Cursor = res.Pagination.Cursor
		}
		return page, nil
	}, opts), nil
}

// ClipURL returns a signed direct link to a clip.
func (s *Service) ClipURL(ctx context.Context, slug string) (string, error) {
	return s.client.GetClipURL(ctx, slug)
}
