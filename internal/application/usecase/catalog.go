// Package usecase contains application-level services.
package usecase

import (
	"context"
	"time"

	"github.com/tesso57/festdays/internal/domain/festival"
	"go.uber.org/zap"
)

// LoadReport summarizes one feed load.
type LoadReport struct {
	Rows    int
	Kept    int
	Dropped int
}

// CatalogFetcher abstracts retrieving and normalizing the festival feed.
type CatalogFetcher interface {
	Fetch(ctx context.Context, url string, now time.Time) ([]festival.Event, LoadReport, error)
}

// CatalogService loads the canonical festival catalog.
type CatalogService struct {
	Fetcher CatalogFetcher
	FeedURL string
	Timeout time.Duration
	Logger  *zap.Logger
	Now     func() time.Time
}

// NewCatalogService constructs a CatalogService.
func NewCatalogService(fetcher CatalogFetcher, feedURL string, timeout time.Duration, logger *zap.Logger, now func() time.Time) CatalogService {
	return CatalogService{
		Fetcher: fetcher,
		FeedURL: feedURL,
		Timeout: timeout,
		Logger:  logger,
		Now:     now,
	}
}

// Load fetches the feed once and builds the catalog. There is no retry;
// a failure leaves the caller without data.
func (s CatalogService) Load(ctx context.Context) (festival.Catalog, LoadReport, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	log := s.logger()
	log.Info("feed fetch start", zap.String("url", s.FeedURL))

	events, report, err := s.Fetcher.Fetch(ctx, s.FeedURL, s.now())
	if err != nil {
		log.Error("feed fetch failed", zap.Error(err), zap.String("url", s.FeedURL))
		return festival.Catalog{}, report, err
	}
	if report.Dropped > 0 {
		log.Debug("feed rows dropped", zap.Int("dropped", report.Dropped), zap.Int("rows", report.Rows))
	}

	catalog := festival.NewCatalog(events)
	log.Info("feed fetch done", zap.Int("festivals", catalog.Len()))
	return catalog, report, nil
}

func (s CatalogService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s CatalogService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return zap.NewNop()
}
