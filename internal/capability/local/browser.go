package local

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"desktop-assistant/pkg/log"
)

// BrowserController drives the default browser via xdg-open.
type BrowserController struct {
	l log.Logger
}

func (b *BrowserController) Search(ctx context.Context, query string) error {
	target := "https://www.google.com/search?q=" + url.QueryEscape(query)
	return b.OpenURL(ctx, target)
}

func (b *BrowserController) OpenURL(ctx context.Context, target string) error {
	if !strings.HasPrefix(target, "http://") && !strings.HasPrefix(target, "https://") {
		target = "https://" + target
	}
	if err := run(ctx, "xdg-open", target); err != nil {
		return fmt.Errorf("failed to open url: %w", err)
	}
	b.l.Infof(ctx, "opened url: %s", target)
	return nil
}

func (b *BrowserController) NavigateVideo(ctx context.Context, videoName string) error {
	if videoName == "" {
		return b.OpenURL(ctx, "https://www.youtube.com")
	}
	target := "https://www.youtube.com/results?search_query=" + url.QueryEscape(videoName)
	return b.OpenURL(ctx, target)
}
