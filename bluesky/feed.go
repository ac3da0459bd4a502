package bluesky

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/bluesky-social/indigo/xrpc"

	"go-hermes/types"
)

const (
	feedMethod = "app.bsky.feed.getFeed"
	publicHost = "https://public.api.bsky.app"
)

// FeedParams selects which feed page to fetch.
type FeedParams struct {
	URI    string
	Limit  int
	Cursor string
}

// FetchFeed fetches a hydrated feed page from the public Bluesky API.
func FetchFeed(ctx context.Context, p FeedParams) (types.FeedResponse, error) {
	client := &xrpc.Client{
		Client:    &http.Client{Timeout: 10 * time.Second},
		Host:      publicHost, // public endpoint for unauthenticated requests.
		UserAgent: nil,
	}

	// The limit can be adjusted (min 1, max 100, default 50).
	limit := 10
	if p.Limit != 0 {
		limit = p.Limit
	}

	// Cursors arrive URL-decoded, put the '+' back.
	cursor := strings.ReplaceAll(p.Cursor, " ", "+")

	params := map[string]interface{}{
		"feed":   p.URI,
		"limit":  limit,
		"cursor": cursor,
	}

	var out types.FeedResponse
	if err := client.Do(ctx, xrpc.Query, "json", feedMethod, params, nil, &out); err != nil {
		return types.FeedResponse{}, fmt.Errorf("fetching feed via xrpc: %w", err)
	}

	return out, nil
}
