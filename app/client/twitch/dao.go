package twitch

import "time"

// helixResponse is the envelope shared by Helix endpoints
type helixResponse[T any] struct {
	Data       []T         `json:"data"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Pagination represents pagination information
type Pagination struct {
	Cursor string `json:"cursor,omitempty"`
}

// User represents a Twitch user profile
type User struct {
	ID              string `json:"id"`
	Login           string `json:"login"`
	DisplayName     string `json:"display_name"`
	Type            string `json:"type"`
	BroadcasterType string `json:"broadcaster_type"`
	Description     string `json:"description"`
	ProfileImageURL string `json:"profile_image_url"`
	OfflineImageURL string `json:"offline_image_url"`
	ViewCount       int64  `json:"view_count"`
}

// Stream represents a live broadcast
type Stream struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	UserLogin   string    `json:"user_login"`
	UserName    string    `json:"user_name"`
	GameID      string    `json:"game_id"`
	GameName    string    `json:"game_name"`
	Title       string    `json:"title"`
	ViewerCount int       `json:"viewer_count"`
	StartedAt   time.Time `json:"started_at"`
}

// GetClipsParams represents the parameters for getting clips
type GetClipsParams struct {
	BroadcasterID string
	First         int
	After         string
	StartedAt     time.Time
	EndedAt       time.Time
}

// Clip represents a Twitch clip
type Clip struct {
	ID              string    `json:"id"`
	URL             string    `json:"url"`
	EmbedURL        string    `json:"embed_url"`
	BroadcasterID   string    `json:"broadcaster_id"`
	BroadcasterName string    `json:"broadcaster_name"`
	CreatorID       string    `json:"creator_id"`
	CreatorName     string    `json:"creator_name"`
	VideoID         string    `json:"video_id"`
	GameID          string    `json:"game_id"`
	Language        string    `json:"language"`
	Title           string    `json:"title"`
	ViewCount       int       `json:"view_count"`
	CreatedAt       time.Time `json:"created_at"`
	ThumbnailURL    string    `json:"thumbnail_url"`
	Duration        float64   `json:"duration"`
}

// ClipsResponse represents the response from the clips endpoint
type ClipsResponse = helixResponse[Clip]

// Vod represents an archived broadcast
type Vod struct {
	ID            string `json:"id"`
	LengthSeconds int64  `json:"length_seconds"`
	PublishedAt   string `json:"published_at"`
	ViewCount     int64  `json:"view_count"`
	Title         string `json:"title"`
	URL           string `json:"url"`
}

// VideosPage is one page of a channel's archived broadcasts
type VideosPage struct {
	Vods   []Vod
	Cursor string
}

// Comment represents a chat message replayed on a VOD
type Comment struct {
	CreatedAt            string      `json:"created_at"`
	UpdatedAt            string      `json:"updated_at"`
	ChannelID            string      `json:"channel_id"`
	ContentID            string      `json:"content_id"`
	ContentOffsetSeconds float64     `json:"content_offset_seconds"`
	Message              string      `json:"message"`
	User                 CommentUser `json:"user"`
}

// CommentUser is the author of a comment
type CommentUser struct {
	DisplayName       string         `json:"display_name"`
	ID                *string        `json:"id"`
	Username          string         `json:"username"`
	Biography         *string        `json:"biography"`
	CreatedAt         string         `json:"created_at"`
	UpdatedAt         string         `json:"updated_at"`
	ProfilePictureURL string         `json:"profile_picture_url"`
	Color             *string        `json:"color"`
	Badges            []CommentBadge `json:"badges"`
}

// CommentBadge is a chat badge shown next to the author
type CommentBadge struct {
	ID      string `json:"id"`
	Version string `json:"version"`
}

// CommentsPage is one page of VOD comments
type CommentsPage struct {
	Comments []Comment
	Cursor   string
}

// Chatters is the chat roster of a channel
type Chatters struct {
	ChatterCount int64        `json:"chatter_count"`
	Chatters     ChatterGroup `json:"chatters"`
}

// ChatterGroup lists connected chatters by role
type ChatterGroup struct {
	Broadcaster []string `json:"broadcaster"`
	VIPs        []string `json:"vips"`
	Moderators  []string `json:"moderators"`
	Staff       []string `json:"staff"`
	Admins      []string `json:"admins"`
	GlobalMods  []string `json:"global_mods"`
	Viewers     []string `json:"viewers"`
}

// AccessToken is a signed playback token for a VOD
type AccessToken struct {
	Signature string
	Token     string
}

// gqlRequest is a persisted GQL query
type gqlRequest struct {
	OperationName string         `json:"operationName"`
	Variables     map[string]any `json:"variables"`
	Extensions    gqlExtensions  `json:"extensions"`
}

type gqlExtensions struct {
	PersistedQuery gqlPersistedQuery `json:"persistedQuery"`
}

type gqlPersistedQuery struct {
	Version    int    `json:"version"`
	Sha256Hash string `json:"sha256Hash"`
}

// videoNode is a VOD as returned by FilterableVideoTower_Videos
type videoNode struct {
	ID            string `json:"id"`
	LengthSeconds int64  `json:"lengthSeconds"`
	PublishedAt   string `json:"publishedAt"`
	ViewCount     int64  `json:"viewCount"`
	Title         string `json:"title"`
}

// clipAccessToken represents an access token for a clip
type clipAccessToken struct {
	ID                  string `json:"id"`
	PlaybackAccessToken struct {
		Signature string `json:"signature"`
		Value     string `json:"value"`
	} `json:"playbackAccessToken"`
	VideoQualities []videoQuality `json:"videoQualities"`
}

// videoQuality represents a clip video quality option
type videoQuality struct {
	FrameRate float32 `json:"frameRate"`
	Quality   string  `json:"quality"`
	SourceURL string  `json:"sourceURL"`
}
