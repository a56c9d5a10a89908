package usecase

import (
	"context"
	"fmt"

	"github.com/tesso57/festdays/internal/domain/festival"
	"go.uber.org/zap"
)

// Payload is the content handed to a share target.
type Payload struct {
	Title string
	Text  string
	URL   string
}

// ClipboardText joins the text and URL the way a pasted share reads.
func (p Payload) ClipboardText() string {
	return p.Text + "\n" + p.URL
}

// SharePayload builds the share payload for an event.
func SharePayload(e festival.Event, pageURL string) Payload {
	return Payload{
		Title: e.Name,
		Text: fmt.Sprintf("%s %s is coming up in %d days (%s)!",
			e.EmojiOrDefault(), e.Name, e.DaysUntil(), e.DisplayDate()),
		URL: pageURL,
	}
}

// NativeSharer hands a payload to a platform share facility.
type NativeSharer interface {
	Share(ctx context.Context, p Payload) error
}

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

// ShareResult reports which path a share took.
type ShareResult int

const (
	// ShareNone means nothing was shared.
	ShareNone ShareResult = iota
	// Shared means the native facility was invoked.
	Shared
	// Copied means the payload went to the clipboard.
	Copied
)

// ShareService shares festivals natively when possible and falls back to
// the clipboard otherwise.
type ShareService struct {
	Native    NativeSharer
	Clipboard Clipboard
	PageURL   string
	Logger    *zap.Logger
}

// NewShareService constructs a ShareService. A nil native sharer means the
// platform has no share facility.
func NewShareService(native NativeSharer, clipboard Clipboard, pageURL string, logger *zap.Logger) ShareService {
	return ShareService{
		Native:    native,
		Clipboard: clipboard,
		PageURL:   pageURL,
		Logger:    logger,
	}
}

// Share shares one event. Native share failures, including the user
// dismissing the dialog, are logged and swallowed.
func (s ShareService) Share(ctx context.Context, e festival.Event) (ShareResult, error) {
	p := SharePayload(e, s.PageURL)
	log := s.logger()

	if s.Native != nil {
		if ctx == nil {
			ctx = context.Background()
		}
		if err := s.Native.Share(ctx, p); err != nil {
			log.Warn("share canceled or unsupported", zap.Error(err), zap.String("festival", e.Name))
		}
		return Shared, nil
	}

	if s.Clipboard == nil {
		return ShareNone, fmt.Errorf("no share target available")
	}
	if err := s.Clipboard.WriteAll(p.ClipboardText()); err != nil {
		log.Warn("clipboard write failed", zap.Error(err), zap.String("festival", e.Name))
		return ShareNone, fmt.Errorf("copy to clipboard: %w", err)
	}
	return Copied, nil
}

func (s ShareService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return zap.NewNop()
}
