package moodapi

import "strings"

// Track mirrors the track payload shared by /recommend and /get_tracks_info.
type Track struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Artist     string `json:"artist"`
	AlbumCover string `json:"album_cover"`
	SpotifyURL string `json:"spotify_url"`
	Empty      bool   `json:"empty,omitempty"`
}

// IsPlaceholder reports whether the track is a padding entry rather than a
// real recommendation.
func (t Track) IsPlaceholder() bool {
	return t.Empty || strings.TrimSpace(t.ID) == ""
}

// Recommendation mirrors /recommend.
type Recommendation struct {
	Success     bool    `json:"success"`
	Emotion     string  `json:"emotion"`
	Tracks      []Track `json:"tracks"`
	PlaylistURL string  `json:"spotify_playlist_url"`
	Message     string  `json:"message"`
}

// EmotionResponse mirrors /get_emotion.
type EmotionResponse struct {
	Emotion string `json:"emotion"`
}

// ActionResponse is the generic {success, message} envelope used by /play,
// /skip and /feedback.
type ActionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// FavoriteResponse mirrors /favorite.
type FavoriteResponse struct {
	Success    bool   `json:"success"`
	IsFavorite bool   `json:"is_favorite"`
	Message    string `json:"message"`
}

// UserData mirrors /get_user_data.
type UserData struct {
	Success       bool     `json:"success"`
	Favorites     []string `json:"favorites"`
	SkippedTracks []string `json:"skipped_tracks"`
	Message       string   `json:"message"`
}

// TracksInfo mirrors /get_tracks_info.
type TracksInfo struct {
	Success bool    `json:"success"`
	Tracks  []Track `json:"tracks"`
	Message string  `json:"message"`
}

// FeedbackKind distinguishes emotion-detection feedback from track ratings.
type FeedbackKind string

const (
	FeedbackEmotion FeedbackKind = "emotion"
	FeedbackTrack   FeedbackKind = "track"
)

// Feedback is the request body for /feedback.
type Feedback struct {
	Type    FeedbackKind `json:"type"`
	Rating  int          `json:"rating"`
	Comment string       `json:"comment"`
	TrackID string       `json:"track_id,omitempty"`
}

type trackRequest struct {
	TrackID string `json:"track_id"`
}

type tracksInfoRequest struct {
	TrackIDs []string `json:"track_ids"`
}

// NormalizeEmotion lower-cases and trims an emotion label.
func NormalizeEmotion(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}
