package twitch

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/buger/jsonparser"
)

// GetComments returns one page of the chat replay of a VOD.
// Comments missing any required field are dropped.
func (c *Client) GetComments(ctx context.Context, vodID, cursor string) (*CommentsPage, error) {
	queryParams := url.Values{}
	queryParams.Set("client_id", c.cfg.Twitch.ClientID)
	queryParams.Set("cursor", cursor)

	requestURL := fmt.Sprintf("%s/v5/videos/%s/comments?%s", c.cfg.Twitch.Endpoints.API, url.PathEscape(vodID), queryParams.Encode())

	req, err := c.newRequest(ctx, http.MethodGet, requestURL, nil, browserHeaders)
	if err != nil {
		return nil, err
	}

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	page := &CommentsPage{Comments: make([]Comment, 0)}
	page.Cursor, _ = jsonparser.GetString(body, "_next")

	_, err = jsonparser.ArrayEach(body, func(value []byte, dataType jsonparser.ValueType, _ int, _ error) {
		if dataType != jsonparser.Object {
			return
		}
		if comment, ok := parseComment(value); ok {
			page.Comments = append(page.Comments, comment)
		}
	}, "comments")
	if err != nil {
		return nil, &MissingFieldError{Field: "comments", Err: err}
	}

	return page, nil
}

func parseComment(data []byte) (Comment, bool) {
	var (
		comment Comment
		err     error
	)

	required := []struct {
		dst  *string
		path []string
	}{
		{&comment.CreatedAt, []string{"created_at"}},
		{&comment.UpdatedAt, []string{"updated_at"}},
		{&comment.ChannelID, []string{"channel_id"}},
		{&comment.ContentID, []string{"content_id"}},
		{&comment.Message, []string{"message", "body"}},
		{&comment.User.DisplayName, []string{"commenter", "display_name"}},
		{&comment.User.Username, []string{"commenter", "name"}},
		{&comment.User.CreatedAt, []string{"commenter", "created_at"}},
		{&comment.User.UpdatedAt, []string{"commenter", "updated_at"}},
		{&comment.User.ProfilePictureURL, []string{"commenter", "logo"}},
	}
	for _, field := range required {
		if *field.dst, err = jsonparser.GetString(data, field.path...); err != nil {
			return Comment{}, false
		}
	}

	if comment.ContentOffsetSeconds, err = jsonparser.GetFloat(data, "content_offset_seconds"); err != nil {
		return Comment{}, false
	}

	comment.User.ID = optionalString(data, "commenter", "_id")
	comment.User.Biography = optionalString(data, "commenter", "bio")
	comment.User.Color = optionalString(data, "message", "user_color")

	comment.User.Badges = make([]CommentBadge, 0)
	_, _ = jsonparser.ArrayEach(data, func(value []byte, _ jsonparser.ValueType, _ int, _ error) {
		id, err := jsonparser.GetString(value, "_id")
		if err != nil {
			return
		}
		version, err := jsonparser.GetString(value, "version")
		if err != nil {
			return
		}
		comment.User.Badges = append(comment.User.Badges, CommentBadge{ID: id, Version: version})
	}, "message", "user_badges")

	return comment, true
}

func optionalString(data []byte, path ...string) *string {
	value, err := jsonparser.GetString(data, path...)
	if err != nil {
		return nil
	}
	return &value
}
