package streamer

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"ttvcli/app/client/twitch"

	"github.com/samber/do"
	"github.com/samber/lo"
)

var maxWorkers = 8

type Service struct {
	client *twitch.Client
}

func New(di *do.Injector) (*Service, error) {
	return &Service{
		client: do.MustInvoke[*twitch.Client](di),
	}, nil
}

// LiveStatus is the outcome of a live check for one streamer.
type LiveStatus struct {
	Login string
	Live  bool
	Err   error
}

func (s *Service) Infos(ctx context.Context, login string) (*twitch.User, error) {
	return s.client.GetUser(ctx, login)
}

// AreLive checks every login in parallel. Results keep the order of logins; failed checks carry Err.
func (s *Service) AreLive(ctx context.Context, logins []string) []LiveStatus {
	results := lo.Map(logins, func(login string, _ int) LiveStatus {
		return LiveStatus{Login: login}
	})

	var wg sync.WaitGroup
	indexChan := make(chan int, len(logins))

	for i := 0; i < min(maxWorkers, len(logins)); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range indexChan {
				streams, err := s.client.GetStreams(ctx, results[idx].Login)
				if err != nil {
					slog.WarnContext(ctx, "Live check failed",
						slog.String("login", results[idx].Login),
						slog.Any("error", err),
					)
					results[idx].Err = err
					continue
				}
				results[idx].Live = len(streams) > 0
			}
		}()
	}

	for i := range logins {
		indexChan <- i
	}
	close(indexChan)

	wg.Wait()

	return results
}

func (s *Service) Chatters(ctx context.Context, login string) (*twitch.Chatters, error) {
	chatters, err := s.client.GetChatters(ctx, login)
	if err != nil {
		return nil, fmt.Errorf("get chatters of %s: %w", login, err)
	}
	return chatters, nil
}

// AreOnline reports, for each username, whether it is connected to the chat.
func AreOnline(chatters *twitch.Chatters, usernames []string) []bool {
	return lo.Map(usernames, func(username string, _ int) bool {
		return chatters.IsOnline(username)
	})
}
