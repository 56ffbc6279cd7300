package twitch

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/buger/jsonparser"
)

// GetVodAccessToken exchanges a VOD id for the signature and token that unlock its playlists.
func (c *Client) GetVodAccessToken(ctx context.Context, vodID string) (*AccessToken, error) {
	queryParams := url.Values{}
	queryParams.Set("need_https", "true")
	queryParams.Set("oauth_token", "")
	queryParams.Set("platform", "_")
	queryParams.Set("player_backend", "mediaplayer")
	queryParams.Set("player_type", "site")

	requestURL := fmt.Sprintf("%s/api/vods/%s/access_token?%s", c.cfg.Twitch.Endpoints.API, url.PathEscape(vodID), queryParams.Encode())

	req, err := c.newRequest(ctx, http.MethodGet, requestURL, nil, identityHeaders)
	if err != nil {
		return nil, err
	}

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	sig, err := jsonparser.GetString(body, "sig")
	if err != nil {
		return nil, &MissingFieldError{Field: "sig", Err: err}
	}

	token, err := jsonparser.GetString(body, "token")
	if err != nil {
		return nil, &MissingFieldError{Field: "token", Err: err}
	}

	return &AccessToken{Signature: sig, Token: token}, nil
}

// MasterPlaylistURL builds the source quality, avc1 only master playlist URL of a VOD.
func (c *Client) MasterPlaylistURL(vodID string, token *AccessToken) string {
	queryParams := url.Values{}
	queryParams.Set("allow_source", "true")
	queryParams.Set("player_backend", "mediaplayer")
	queryParams.Set("playlist_include_framerate", "true")
	queryParams.Set("reassignments_supported", "true")
	queryParams.Set("supported_codecs", "avc1")
	queryParams.Set("cdm", "wv")
	queryParams.Set("player_version", c.cfg.Twitch.PlayerVersion)
	queryParams.Set("sig", token.Signature)
	queryParams.Set("token", token.Token)

	return fmt.Sprintf("%s/vod/%s.m3u8?%s", c.cfg.Twitch.Endpoints.Usher, url.PathEscape(vodID), queryParams.Encode())
}
