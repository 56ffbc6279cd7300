package twitch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"slices"
)

// GetChatters returns the users currently connected to the chat of login.
func (c *Client) GetChatters(ctx context.Context, login string) (*Chatters, error) {
	requestURL := fmt.Sprintf("%s/group/user/%s/chatters", c.cfg.Twitch.Endpoints.TMI, url.PathEscape(login))

	req, err := c.newRequest(ctx, http.MethodGet, requestURL, nil, browserHeaders)
	if err != nil {
		return nil, err
	}

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var chatters Chatters
	if err := json.Unmarshal(body, &chatters); err != nil {
		return nil, fmt.Errorf("decoding response failed: %w", err)
	}

	return &chatters, nil
}

// IsOnline reports whether username appears in any role group.
func (c *Chatters) IsOnline(username string) bool {
	groups := [][]string{
		c.Chatters.Broadcaster,
		c.Chatters.VIPs,
		c.Chatters.Moderators,
		c.Chatters.Staff,
		c.Chatters.Admins,
		c.Chatters.GlobalMods,
		c.Chatters.Viewers,
	}

	for _, group := range groups {
		if slices.Contains(group, username) {
			return true
		}
	}
	return false
}
