package lookup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/infofinder-backend/internal/domain"
	"github.com/heartmarshall/infofinder-backend/internal/normalizer"
)

// FetchChained looks up the chained id of the last result and appends the
// resulting section to it. The trigger is retired only on success, so a
// failed attempt can be retried. The chain is one hop: ids inside the chained
// result are ignored.
func (s *Service) FetchChained(ctx context.Context, sess *domain.Session) (*domain.Presentation, domain.Section, error) {
	if !sess.TryAcquire() {
		return nil, domain.Section{}, ErrSessionBusy
	}
	defer sess.Release()

	if !sess.ChainAvailable() || sess.Result == nil {
		s.metrics.IncrementChained("unavailable")
		return nil, domain.Section{}, ErrNoChainedID
	}

	target := domain.DefinitionFor(sess.Category).ChainsTo
	if target == "" {
		s.metrics.IncrementChained("unavailable")
		return nil, domain.Section{}, ErrNoChainedID
	}

	body, err := s.provider.Fetch(ctx, target, sess.ChainedID)
	if err != nil {
		s.metrics.IncrementChained(chainedOutcome(err))
		return nil, domain.Section{}, fmt.Errorf("fetch chained %s: %w", target, err)
	}

	section := normalizer.NormalizeChained(sess.ChainedID, body)
	sess.Result.AppendSection(section)
	sess.Result.ChainedID = nil
	sess.ChainedID = ""

	s.metrics.IncrementChained("ok")
	s.log.InfoContext(ctx, "chained lookup completed",
		slog.String("session_id", sess.ID),
		slog.String("category", target.String()),
	)

	return sess.Snapshot(), section, nil
}

func chainedOutcome(err error) string {
	var le *domain.LookupError
	if errors.As(err, &le) {
		return string(le.Kind)
	}
	return "error"
}
