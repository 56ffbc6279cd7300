package twitch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
)

var videosPageSize = 30

func (c *Client) gqlPost(ctx context.Context, payload any, headers http.Header) ([]byte, error) {
	queryBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("could not marshal query: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, c.cfg.Twitch.Endpoints.GQL, bytes.NewReader(queryBytes), identityHeaders)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "text/plain;charset=UTF-8")
	for key, values := range headers {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	return c.do(req)
}

func persisted(operation, hash string, variables map[string]any) gqlRequest {
	return gqlRequest{
		OperationName: operation,
		Variables:     variables,
		Extensions: gqlExtensions{
			PersistedQuery: gqlPersistedQuery{Version: 1, Sha256Hash: hash},
		},
	}
}

// GetVideos returns one page of archived broadcasts of login, newest first.
func (c *Client) GetVideos(ctx context.Context, login, cursor string) (*VideosPage, error) {
	variables := map[string]any{
		"limit":             videosPageSize,
		"channelOwnerLogin": login,
		"broadcastType":     "ARCHIVE",
		"videoSort":         "TIME",
	}
	if cursor != "" {
		variables["cursor"] = cursor
	}

	headers := http.Header{}
	headers.Set("Origin", "https://www.twitch.tv")
	headers.Set("Referer", fmt.Sprintf("https://www.twitch.tv/%s/videos?filter=archives&sort=time", url.PathEscape(login)))

	body, err := c.gqlPost(ctx, []gqlRequest{persisted("FilterableVideoTower_Videos", c.cfg.Twitch.VodsHash, variables)}, headers)
	if err != nil {
		return nil, err
	}

	var response []struct {
		Data struct {
			User *struct {
				Videos struct {
					Edges []struct {
						Cursor string          `json:"cursor"`
						Node   json.RawMessage `json:"node"`
					} `json:"edges"`
				} `json:"videos"`
			} `json:"user"`
		} `json:"data"`
	}

	if err = json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to decode response body: %w", err)
	}

	if len(response) == 0 {
		return nil, &MissingFieldError{Field: "data"}
	}

	user := response[0].Data.User
	if user == nil {
		return nil, fmt.Errorf("%w: %s", ErrUserNotFound, login)
	}

	page := &VideosPage{Vods: make([]Vod, 0, len(user.Videos.Edges))}
	for _, edge := range user.Videos.Edges {
		if edge.Cursor != "" {
			page.Cursor = edge.Cursor
		}

		var node videoNode
		if err := json.Unmarshal(edge.Node, &node); err != nil || node.ID == "" {
			slog.DebugContext(ctx, "Skipping undecodable video node", slog.Any("error", err))
			continue
		}

		page.Vods = append(page.Vods, Vod{
			ID:            node.ID,
			LengthSeconds: node.LengthSeconds,
			PublishedAt:   node.PublishedAt,
			ViewCount:     node.ViewCount,
			Title:         node.Title,
			URL:           "https://www.twitch.tv/videos/" + node.ID,
		})
	}

	return page, nil
}

// GetClipURL returns a signed direct link to the first quality of a clip.
func (c *Client) GetClipURL(ctx context.Context, slug string) (string, error) {
	query := persisted("VideoAccessToken_Clip", c.cfg.Twitch.ClipHash, map[string]any{"slug": slug})

	body, err := c.gqlPost(ctx, query, nil)
	if err != nil {
		return "", fmt.Errorf("could not get clip access token: %w", err)
	}

	var response struct {
		Data struct {
			Clip *clipAccessToken `json:"clip"`
		} `json:"data"`
	}

	if err = json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("failed to decode response body: %w", err)
	}

	accessToken := response.Data.Clip
	if accessToken == nil {
		return "", fmt.Errorf("access token not found for clip: %s", slug)
	}

	if len(accessToken.VideoQualities) == 0 {
		return "", fmt.Errorf("no video qualities available for clip: %s", slug)
	}

	params := url.Values{}
	params.Add("sig", accessToken.PlaybackAccessToken.Signature)
	params.Add("token", accessToken.PlaybackAccessToken.Value)

	return fmt.Sprintf("%s?%s", accessToken.VideoQualities[0].SourceURL, params.Encode()), nil
}
