package results

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/alumni-sante/sondage-backend/internal/domain"
	"github.com/alumni-sante/sondage-backend/internal/stats"
)

// Output is a computed dashboard payload. Body is the exact JSON the
// transport writes; ETag is a strong validator over that body.
type Output struct {
	Payload stats.Results
	Body    []byte
	ETag    string
}

// Results computes the dashboard payload for the given raw filters. Filters
// are sanitized first; blank values are dropped, and a key naming no record
// field matches nothing. Facet counts always derive from the unfiltered
// snapshot so deselected options stay visible.
func (s *Service) Results(ctx context.Context, rawFilters map[string][]string) (*Output, error) {
	all, err := s.Records(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnavailable, err)
	}

	filters := domain.SanitizeFilters(rawFilters)
	filtered := domain.Apply(all, filters)

	payload := stats.Aggregate(filtered)
	payload.Filters = stats.Facets(all, filters)

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("results.Results marshal: %w", err)
	}

	return &Output{
		Payload: payload,
		Body:    body,
		ETag:    etagFor(body),
	}, nil
}

// etagFor returns the quoted SHA-256 hex of the payload body.
func etagFor(body []byte) string {
	sum := sha256.Sum256(body)
	return `"` + hex.EncodeToString(sum[:]) + `"`
}
