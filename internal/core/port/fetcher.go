package port

import "context"

type MediaFetcher interface {
	// Fetch downloads the media behind a video URL to a local file and
	// returns its path. An empty path with a nil error means the source had
	// no downloadable media. The file is owned by the caller, including its
	// removal.
	Fetch(ctx context.Context, url string) (string, error)
}
