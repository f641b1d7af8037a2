package lookup

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/infofinder-backend/internal/domain"
	"github.com/heartmarshall/infofinder-backend/internal/normalizer"
)

// Search validates raw for category c, fetches it upstream and stores the
// normalized result in sess. Invalid input never reaches the network. A failed
// search leaves the session as it was.
func (s *Service) Search(ctx context.Context, sess *domain.Session, c domain.Category, raw string) (*domain.Presentation, error) {
	if !sess.TryAcquire() {
		return nil, ErrSessionBusy
	}
	defer sess.Release()

	res := domain.Validate(c, raw)
	if !res.Valid() {
		s.metrics.IncrementValidationFailure(c.String(), string(res.Reason))
		return nil, res.Err(c)
	}

	body, err := s.provider.Fetch(ctx, c, res.Value)
	if err != nil {
		return nil, fmt.Errorf("search %s: %w", c, err)
	}

	p := normalizer.Normalize(c, res.Value, body)

	sess.Category = c
	sess.ChainedID = deref(p.ChainedID)
	sess.LastAddress = deref(p.LocationHint)
	sess.Result = &p

	s.log.InfoContext(ctx, "search completed",
		slog.String("session_id", sess.ID),
		slog.String("category", c.String()),
		slog.Int("sections", len(p.Sections)),
		slog.Bool("chain_available", sess.ChainAvailable()),
	)

	return sess.Snapshot(), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
