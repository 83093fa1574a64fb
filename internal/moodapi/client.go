package moodapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"
)

// API defines the server operations the UI and poller depend on.
// It is implemented by *Client and can be faked in tests.
type API interface {
	FetchRecommendations(ctx context.Context) (Recommendation, error)
	FetchEmotion(ctx context.Context) (string, error)
	Play(ctx context.Context, trackID string) error
	ToggleFavorite(ctx context.Context, trackID string) (bool, error)
	Skip(ctx context.Context, trackID string) error
	SubmitFeedback(ctx context.Context, fb Feedback) error
	FetchUserData(ctx context.Context) (UserData, error)
	FetchTracksInfo(ctx context.Context, ids []string) ([]Track, error)
}

// Ensure Client implements API at compile time.
var _ API = (*Client)(nil)

// Client talks to the recommendation server's HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultServerAddr = "127.0.0.1:5000"
	defaultUserAgent  = "cadence/0.1"
	requestTimeout    = 10 * time.Second
	maxErrorBody      = 64 << 10
)

// NewClient builds a Client for the given server address. The address may be
// a bare host:port or a full URL. The client keeps a cookie jar because the
// server tracks favorites and skips per session.
func NewClient(serverAddr string) (*Client, error) {
	base, err := parseBaseURL(serverAddr)
	if err != nil {
		return nil, err
	}
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
			Jar:     jar,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// BaseURL returns the normalized server URL.
func (c *Client) BaseURL() string {
	if c == nil || c.baseURL == nil {
		return ""
	}
	return c.baseURL.String()
}

// FetchRecommendations retrieves the current emotion and recommended tracks.
func (c *Client) FetchRecommendations(ctx context.Context) (Recommendation, error) {
	if c == nil {
		return Recommendation{}, fmt.Errorf("client is nil")
	}
	var payload Recommendation
	if err := c.do(ctx, http.MethodGet, "/recommend", nil, &payload); err != nil {
		return Recommendation{}, err
	}
	if !payload.Success {
		return Recommendation{}, &APIError{Path: "/recommend", Message: payload.Message}
	}
	return payload, nil
}

// FetchEmotion retrieves the latest detected emotion label as reported.
func (c *Client) FetchEmotion(ctx context.Context) (string, error) {
	if c == nil {
		return "", fmt.Errorf("client is nil")
	}
	var payload EmotionResponse
	if err := c.do(ctx, http.MethodGet, "/get_emotion", nil, &payload); err != nil {
		return "", err
	}
	return payload.Emotion, nil
}

// Play asks the server to start playback of a track.
func (c *Client) Play(ctx context.Context, trackID string) error {
	return c.action(ctx, "/play", trackRequest{TrackID: trackID})
}

// Skip records a skip for the track and advances server-side playback.
func (c *Client) Skip(ctx context.Context, trackID string) error {
	return c.action(ctx, "/skip", trackRequest{TrackID: trackID})
}

// ToggleFavorite flips the favorite state of a track and returns the state
// acknowledged by the server.
func (c *Client) ToggleFavorite(ctx context.Context, trackID string) (bool, error) {
	if c == nil {
		return false, fmt.Errorf("client is nil")
	}
	var payload FavoriteResponse
	if err := c.do(ctx, http.MethodPost, "/favorite", trackRequest{TrackID: trackID}, &payload); err != nil {
		return false, err
	}
	if !payload.Success {
		return false, &APIError{Path: "/favorite", Message: payload.Message}
	}
	return payload.IsFavorite, nil
}

// SubmitFeedback sends an emotion or track rating.
func (c *Client) SubmitFeedback(ctx context.Context, fb Feedback) error {
	if fb.Rating < 1 || fb.Rating > 5 {
		return fmt.Errorf("rating %d out of range", fb.Rating)
	}
	if fb.Type == FeedbackEmotion {
		fb.TrackID = ""
	}
	return c.action(ctx, "/feedback", fb)
}

// FetchUserData retrieves the session's favorite and skipped track ids.
func (c *Client) FetchUserData(ctx context.Context) (UserData, error) {
	if c == nil {
		return UserData{}, fmt.Errorf("client is nil")
	}
	var payload UserData
	if err := c.do(ctx, http.MethodGet, "/get_user_data", nil, &payload); err != nil {
		return UserData{}, err
	}
	if !payload.Success {
		return UserData{}, &APIError{Path: "/get_user_data", Message: payload.Message}
	}
	return payload, nil
}

// FetchTracksInfo resolves full track details for the given ids.
func (c *Client) FetchTracksInfo(ctx context.Context, ids []string) ([]Track, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload TracksInfo
	if err := c.do(ctx, http.MethodPost, "/get_tracks_info", tracksInfoRequest{TrackIDs: ids}, &payload); err != nil {
		return nil, err
	}
	if !payload.Success || payload.Tracks == nil {
		return nil, &APIError{Path: "/get_tracks_info", Message: payload.Message}
	}
	return payload.Tracks, nil
}

func (c *Client) action(ctx context.Context, path string, body any) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	var payload ActionResponse
	if err := c.do(ctx, http.MethodPost, path, body, &payload); err != nil {
		return err
	}
	if !payload.Success {
		return &APIError{Path: path, Message: payload.Message}
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body, dest any) error {
	reqURL := c.baseURL.ResolveReference(&url.URL{Path: path})

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return &APIError{Path: path, Status: resp.StatusCode, Message: errorMessage(resp.Body)}
	}
	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// errorMessage extracts the "message" field from an error body, if any.
func errorMessage(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, maxErrorBody))
	if err != nil || len(raw) == 0 {
		return ""
	}
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return ""
	}
	return strings.TrimSpace(payload.Message)
}

func parseBaseURL(serverAddr string) (*url.URL, error) {
	trimmed := strings.TrimSpace(serverAddr)
	if trimmed == "" {
		trimmed = defaultServerAddr
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse server url %q: %w", serverAddr, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
