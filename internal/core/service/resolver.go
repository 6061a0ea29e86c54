package service

import (
	"context"
	"errors"
	"strings"

	"tokbot/internal/core/domain"
	"tokbot/internal/core/port"

	"github.com/rs/zerolog/log"
)

// Resolver turns command input into a concrete video reference, either by
// querying the catalog or by validating user-supplied text.
type Resolver struct {
	catalog port.CatalogStore
}

func NewResolver(catalog port.CatalogStore) *Resolver {
	return &Resolver{catalog: catalog}
}

// Random picks a random active video from the catalog. Store failures are
// logged and reported as not found, never propagated.
func (r *Resolver) Random(ctx context.Context) (domain.VideoReference, error) {
	url, err := r.catalog.RandomVideo(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrNoVideoFound) {
			log.Error().Err(err).Msg("random video lookup failed")
		}
		return domain.VideoReference{}, domain.ErrNoVideoFound
	}

	return reference(url), nil
}

// RandomForSource picks a random active video of one source.
func (r *Resolver) RandomForSource(ctx context.Context, source string) (domain.VideoReference, error) {
	url, err := r.catalog.RandomVideoForSource(ctx, source)
	if err != nil {
		if !errors.Is(err, domain.ErrNoVideoFound) {
			log.Error().Err(err).Str("source", source).Msg("source video lookup failed")
		}
		return domain.VideoReference{}, domain.ErrNoVideoFound
	}

	return reference(url), nil
}

// FromExplicitInput validates a user-supplied URL. Valid iff the trimmed
// input is present and starts with an HTTP(S) scheme marker.
func (r *Resolver) FromExplicitInput(raw string) (domain.VideoReference, error) {
	url := strings.TrimSpace(raw)
	if url == "" || !strings.HasPrefix(url, "http") {
		return domain.VideoReference{}, domain.ErrInvalidURL
	}

	return reference(url), nil
}

// FromReplyCaption extracts the video URL from the caption of a replied-to
// delivery message.
func (r *Resolver) FromReplyCaption(caption string) (domain.VideoReference, error) {
	url := domain.ExtractCaptionLink(caption)
	if url == "" || !strings.HasPrefix(url, "http") {
		return domain.VideoReference{}, domain.ErrNoCaptionLink
	}

	return reference(url), nil
}

func reference(url string) domain.VideoReference {
	return domain.VideoReference{URL: url, Owner: domain.ExtractUsername(url)}
}
