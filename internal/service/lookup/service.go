package lookup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/infofinder-backend/internal/domain"
	"github.com/heartmarshall/infofinder-backend/internal/metrics"
)

var (
	// ErrNoChainedID is returned when a chained lookup is requested but the
	// last result offered none, or it was already used.
	ErrNoChainedID = errors.New("no chained id available to fetch")

	// ErrSessionBusy is returned when the session already runs an operation.
	ErrSessionBusy = fmt.Errorf("session has an operation in flight: %w", domain.ErrConflict)
)

type lookupProvider interface {
	Fetch(ctx context.Context, c domain.Category, identifier string) (json.RawMessage, error)
}

// Service runs the validate, fetch, normalize pipeline against a session.
type Service struct {
	log      *slog.Logger
	provider lookupProvider
	metrics  *metrics.Metrics
}

// NewService creates a new lookup service. m may be nil.
func NewService(logger *slog.Logger, provider lookupProvider, m *metrics.Metrics) *Service {
	return &Service{
		log:      logger.With("service", "lookup"),
		provider: provider,
		metrics:  m,
	}
}

// Reset clears the session back to its initial state.
func (s *Service) Reset(sess *domain.Session) error {
	if !sess.TryAcquire() {
		return ErrSessionBusy
	}
	defer sess.Release()

	sess.Reset()
	return nil
}
