package settings

import (
	"testing"
	"time"
)

func TestSettings_Timeout(t *testing.T) {
	tests := []struct {
		seconds int
		want    time.Duration
	}{
		{seconds: 10, want: 10 * time.Second},
		{seconds: 0, want: 0},
		{seconds: -5, want: 0},
	}
	for _, tt := range tests {
		got := Settings{TimeoutSeconds: tt.seconds}.Timeout()
		if got != tt.want {
			t.Fatalf("Timeout() with %d = %v, want %v", tt.seconds, got, tt.want)
		}
	}
}

func TestSettings_ShareURL(t *testing.T) {
	cfg := Settings{FeedURL: "https://example.com/feed.csv"}
	if got := cfg.ShareURL(); got != "https://example.com/feed.csv" {
		t.Fatalf("ShareURL() = %q, want feed url", got)
	}

	cfg.Share.URL = "https://festivals.example.com"
	if got := cfg.ShareURL(); got != "https://festivals.example.com" {
		t.Fatalf("ShareURL() = %q, want share url", got)
	}
}
