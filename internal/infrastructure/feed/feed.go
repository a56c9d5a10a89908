// Package feed fetches the festival CSV feed and normalizes it into events.
package feed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/tesso57/festdays/internal/application/usecase"
	"github.com/tesso57/festdays/internal/domain/festival"
)

const (
	feedAcceptHeader = "text/csv, text/plain;q=0.9, */*;q=0.5"
	userAgent        = "Festdays/1.0"
	maxBodyBytes     = 8 << 20
)

// ErrFetch marks a failure to retrieve the feed: transport errors, non-2xx
// statuses and non-text responses.
var ErrFetch = errors.New("feed fetch failed")

// ErrEmptyURL is returned when no feed URL is configured.
var ErrEmptyURL = errors.New("feed url is empty")

type acceptTransport struct {
	base http.RoundTripper
}

func (t acceptTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	clone := req.Clone(req.Context())
	if clone.Header.Get("Accept") == "" {
		clone.Header.Set("Accept", feedAcceptHeader)
	}
	if clone.Header.Get("User-Agent") == "" {
		clone.Header.Set("User-Agent", userAgent)
	}
	return base.RoundTrip(clone)
}

// Fetcher implements usecase.CatalogFetcher over HTTP.
type Fetcher struct {
	Client  *http.Client
	Options ParseOptions
}

// NewFetcher creates a Fetcher with the feed headers installed.
func NewFetcher(opts ParseOptions) *Fetcher {
	return &Fetcher{
		Client:  &http.Client{Transport: acceptTransport{base: http.DefaultTransport}},
		Options: opts,
	}
}

// Fetch downloads the feed and parses it.
func (f *Fetcher) Fetch(ctx context.Context, url string, now time.Time) ([]festival.Event, usecase.LoadReport, error) {
	body, err := f.download(ctx, url)
	if err != nil {
		return nil, usecase.LoadReport{}, err
	}
	events, report := Parse(body, now, f.Options)
	return events, report, nil
}

func (f *Fetcher) download(ctx context.Context, url string) (string, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return "", ErrEmptyURL
	}
	if ctx == nil {
		ctx = context.Background()
	}
	client := f.Client
	if client == nil {
		client = &http.Client{Transport: acceptTransport{}}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFetch, err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFetch, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: unexpected status %s", ErrFetch, resp.Status)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "" && !isTextual(ct) {
		return "", fmt.Errorf("%w: unexpected content type %q", ErrFetch, ct)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes+1))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFetch, err)
	}
	if len(data) > maxBodyBytes {
		return "", fmt.Errorf("%w: feed too large (over %d bytes)", ErrFetch, maxBodyBytes)
	}
	return string(data), nil
}

func isTextual(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return strings.HasPrefix(mediaType, "text/")
}
