package twitch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

func (c *Client) helixGet(ctx context.Context, path string, queryParams url.Values, out any) error {
	requestURL := fmt.Sprintf("%s/%s?%s", c.cfg.Twitch.Endpoints.Helix, path, queryParams.Encode())

	req, err := c.newRequest(ctx, http.MethodGet, requestURL, nil, authHeaders)
	if err != nil {
		return err
	}

	body, err := c.do(req)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decoding response failed: %w", err)
	}

	return nil
}

// GetUser looks up a profile by login name.
func (c *Client) GetUser(ctx context.Context, login string) (*User, error) {
	var res helixResponse[User]
	if err := c.helixGet(ctx, "users", url.Values{"login": {login}}, &res); err != nil {
		return nil, err
	}

	if len(res.Data) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrUserNotFound, login)
	}

	return &res.Data[0], nil
}

// GetStreams returns the live broadcasts of login, empty when offline.
func (c *Client) GetStreams(ctx context.Context, login string) ([]Stream, error) {
	var res helixResponse[Stream]
	if err := c.helixGet(ctx, "streams", url.Values{"user_login": {login}}, &res); err != nil {
		return nil, err
	}

	return res.Data, nil
}

func (c *Client) GetClips(ctx context.Context, params *GetClipsParams) (*ClipsResponse, error) {
	queryParams := url.Values{}

	if params.BroadcasterID != "" {
		queryParams.Add("broadcaster_id", params.BroadcasterID)
	}
	if params.First > 0 {
		queryParams.Add("first", fmt.Sprintf("%d", params.First))
	}
	if params.After != "" {
		queryParams.Add("after", params.After)
	}
	if !params.StartedAt.IsZero() {
		queryParams.Add("started_at", params.StartedAt.Format(time.RFC3339))
	}
	if !params.EndedAt.IsZero() {
		queryParams.Add("ended_at", params.EndedAt.Format(time.RFC3339))
	}

	var clipsResponse ClipsResponse
	if err := c.helixGet(ctx, "clips", queryParams, &clipsResponse); err != nil {
		return nil, err
	}

	return &clipsResponse, nil
}
