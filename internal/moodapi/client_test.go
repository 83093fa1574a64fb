package moodapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "http" {
		t.Fatalf("scheme = %q, want http", u.Scheme)
	}
	if u.Host != defaultServerAddr {
		t.Fatalf("host = %q, want %q", u.Host, defaultServerAddr)
	}

	u, err = parseBaseURL("https://example.com:1234/path?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "https" || u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}
}

func TestClient_FetchesEndpointsAndEncodesBodies(t *testing.T) {
	t.Parallel()

	var gotUserAgent string
	var gotContentType string
	bodies := map[string]map[string]any{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		if r.Method == http.MethodPost {
			gotContentType = r.Header.Get("Content-Type")
			var body map[string]any
			_ = json.NewDecoder(r.Body).Decode(&body)
			bodies[r.URL.Path] = body
		}
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case "/recommend":
			_ = json.NewEncoder(w).Encode(Recommendation{
				Success:     true,
				Emotion:     "happy",
				Tracks:      []Track{{ID: "t1", Name: "Song"}},
				PlaylistURL: "https://open.spotify.com/playlist/p1",
			})
		case "/get_emotion":
			_ = json.NewEncoder(w).Encode(EmotionResponse{Emotion: "Sad"})
		case "/play", "/skip", "/feedback":
			_ = json.NewEncoder(w).Encode(ActionResponse{Success: true})
		case "/favorite":
			_ = json.NewEncoder(w).Encode(FavoriteResponse{Success: true, IsFavorite: true})
		case "/get_user_data":
			_ = json.NewEncoder(w).Encode(UserData{Success: true, Favorites: []string{"t1"}, SkippedTracks: []string{"t2"}})
		case "/get_tracks_info":
			_ = json.NewEncoder(w).Encode(TracksInfo{Success: true, Tracks: []Track{{ID: "t1"}, {ID: "t2"}}})
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	rec, err := c.FetchRecommendations(ctx)
	if err != nil {
		t.Fatalf("FetchRecommendations returned error: %v", err)
	}
	if rec.Emotion != "happy" || len(rec.Tracks) != 1 || rec.PlaylistURL == "" {
		t.Fatalf("FetchRecommendations payload = %#v", rec)
	}

	emotion, err := c.FetchEmotion(ctx)
	if err != nil || emotion != "Sad" {
		t.Fatalf("FetchEmotion = %q, %v; want Sad", emotion, err)
	}

	if err := c.Play(ctx, "t1"); err != nil {
		t.Fatalf("Play returned error: %v", err)
	}
	if bodies["/play"]["track_id"] != "t1" {
		t.Fatalf("/play body = %v, want track_id=t1", bodies["/play"])
	}
	if gotContentType != "application/json" {
		t.Fatalf("Content-Type = %q, want application/json", gotContentType)
	}

	if err := c.Skip(ctx, "t2"); err != nil {
		t.Fatalf("Skip returned error: %v", err)
	}
	if bodies["/skip"]["track_id"] != "t2" {
		t.Fatalf("/skip body = %v, want track_id=t2", bodies["/skip"])
	}

	fav, err := c.ToggleFavorite(ctx, "t1")
	if err != nil || !fav {
		t.Fatalf("ToggleFavorite = %v, %v; want true", fav, err)
	}

	if err := c.SubmitFeedback(ctx, Feedback{Type: FeedbackEmotion, Rating: 4, Comment: "ok", TrackID: "ignored"}); err != nil {
		t.Fatalf("SubmitFeedback returned error: %v", err)
	}
	fb := bodies["/feedback"]
	if fb["type"] != "emotion" || fb["rating"] != float64(4) || fb["comment"] != "ok" {
		t.Fatalf("/feedback body = %v", fb)
	}
	if _, ok := fb["track_id"]; ok {
		t.Fatalf("/feedback body carries track_id for emotion feedback: %v", fb)
	}

	data, err := c.FetchUserData(ctx)
	if err != nil {
		t.Fatalf("FetchUserData returned error: %v", err)
	}
	if len(data.Favorites) != 1 || len(data.SkippedTracks) != 1 {
		t.Fatalf("FetchUserData payload = %#v", data)
	}

	tracks, err := c.FetchTracksInfo(ctx, []string{"t1", "t2"})
	if err != nil || len(tracks) != 2 {
		t.Fatalf("FetchTracksInfo = %v, %v; want 2 tracks", tracks, err)
	}
	ids, _ := bodies["/get_tracks_info"]["track_ids"].([]any)
	if len(ids) != 2 || ids[0] != "t1" {
		t.Fatalf("/get_tracks_info body = %v", bodies["/get_tracks_info"])
	}

	if !strings.HasPrefix(gotUserAgent, "cadence/") {
		t.Fatalf("User-Agent = %q, want cadence/*", gotUserAgent)
	}
}

func TestClient_ApplicationFailuresCarryServerMessage(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/recommend":
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"success":false,"message":"Please ensure your face is visible to the camera."}`))
		case "/skip":
			_, _ = w.Write([]byte(`{"success":false,"message":"Error skipping track. Please ensure Spotify is active."}`))
		case "/play":
			_, _ = w.Write([]byte(`{"success":false}`))
		case "/favorite":
			http.Error(w, "boom", http.StatusInternalServerError)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	ctx := context.Background()

	_, err = c.FetchRecommendations(ctx)
	if got := Message(err, "fallback"); got != "Please ensure your face is visible to the camera." {
		t.Fatalf("recommend message = %q (err %v)", got, err)
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusBadRequest {
		t.Fatalf("recommend err = %#v, want APIError status 400", err)
	}

	err = c.Skip(ctx, "t1")
	if got := Message(err, "fallback"); got != "Error skipping track. Please ensure Spotify is active." {
		t.Fatalf("skip message = %q", got)
	}

	err = c.Play(ctx, "t1")
	if !IsAPIError(err) {
		t.Fatalf("play err = %v, want APIError", err)
	}
	if got := Message(err, "fallback"); got != "fallback" {
		t.Fatalf("play message = %q, want fallback", got)
	}

	_, err = c.ToggleFavorite(ctx, "t1")
	if err == nil || !strings.Contains(err.Error(), "returned status 500") {
		t.Fatalf("favorite err = %v, want status 500", err)
	}
	if got := Message(err, "Failed to update favorites"); got != "Failed to update favorites" {
		t.Fatalf("favorite message = %q, want fallback for non-JSON body", got)
	}
}

func TestClient_TransportFailureIsNotAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := server.URL
	server.Close()

	c, err := NewClient(addr)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	_, err = c.FetchEmotion(context.Background())
	if err == nil {
		t.Fatalf("FetchEmotion returned nil error against closed server")
	}
	if IsAPIError(err) {
		t.Fatalf("transport failure classified as APIError: %v", err)
	}
	if got := Message(err, "Failed to get recommendations"); got != "Failed to get recommendations" {
		t.Fatalf("Message = %q, want fallback", got)
	}
}

func TestClient_DecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("{not-json"))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	_, err = c.FetchUserData(context.Background())
	if err == nil || !strings.Contains(err.Error(), "decode response") {
		t.Fatalf("FetchUserData error = %v, want decode response error", err)
	}
}

func TestClient_KeepsSessionCookie(t *testing.T) {
	var sawCookie bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := r.Cookie("session"); err == nil {
			sawCookie = true
		}
		http.SetCookie(w, &http.Cookie{Name: "session", Value: "abc", Path: "/"})
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"is_favorite":true}`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	for i := 0; i < 2; i++ {
		if _, err := c.ToggleFavorite(context.Background(), "t1"); err != nil {
			t.Fatalf("ToggleFavorite returned error: %v", err)
		}
	}
	if !sawCookie {
		t.Fatalf("second request did not send the session cookie")
	}
}

func TestSubmitFeedback_RejectsOutOfRangeRating(t *testing.T) {
	c, err := NewClient("127.0.0.1:1")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if err := c.SubmitFeedback(context.Background(), Feedback{Type: FeedbackTrack, Rating: 0}); err == nil {
		t.Fatalf("SubmitFeedback returned nil error for rating 0")
	}
}
