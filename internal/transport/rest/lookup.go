package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/heartmarshall/infofinder-backend/internal/adapter/memory/session"
	"github.com/heartmarshall/infofinder-backend/internal/domain"
	"github.com/heartmarshall/infofinder-backend/internal/service/lookup"
	"github.com/heartmarshall/infofinder-backend/internal/transport/middleware"
	"github.com/heartmarshall/infofinder-backend/pkg/ctxutil"
)

// lookupService defines the minimal interface needed by LookupHandler.
type lookupService interface {
	Search(ctx context.Context, sess *domain.Session, c domain.Category, raw string) (*domain.Presentation, error)
	FetchChained(ctx context.Context, sess *domain.Session) (*domain.Presentation, domain.Section, error)
	Reset(sess *domain.Session) error
}

type sessionStore interface {
	Get(id string) (*domain.Session, error)
	GetOrCreate(id string) *domain.Session
	Delete(id string) bool
}

// LookupHandler serves the category, lookup and session endpoints.
type LookupHandler struct {
	svc      lookupService
	sessions sessionStore
	validate *validator.Validate
	log      *slog.Logger
}

// NewLookupHandler creates a LookupHandler.
func NewLookupHandler(svc lookupService, sessions sessionStore, logger *slog.Logger) *LookupHandler {
	v := validator.New()
	if err := v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseCategory(fl.Field().String())
		return err == nil
	}); err != nil {
		panic(fmt.Sprintf("register category validation: %v", err))
	}

	return &LookupHandler{
		svc:      svc,
		sessions: sessions,
		validate: v,
		log:      logger.With("handler", "lookup"),
	}
}

// Register mounts the lookup endpoints on the router.
func (h *LookupHandler) Register(r chi.Router) {
	r.Get("/categories", h.Categories)
	r.Post("/lookups", h.Search)
	r.Post("/lookups/chained", h.FetchChained)
	r.Delete("/sessions/{id}", h.DeleteSession)
}

type searchRequest struct {
	Category string `json:"category" validate:"required,category"`
	Query    string `json:"query"    validate:"max=256"`
}

type categoryResponse struct {
	ID          domain.Category `json:"id"`
	Icon        string          `json:"icon"`
	Name        string          `json:"name"`
	Placeholder string          `json:"placeholder"`
	Hint        string          `json:"hint"`
	MaxLength   int             `json:"maxLength"`
	Pattern     string          `json:"pattern"`
	ChainsTo    domain.Category `json:"chainsTo,omitempty"`
}

type searchResponse struct {
	SessionID string               `json:"sessionId"`
	Result    *domain.Presentation `json:"result"`
}

type chainedResponse struct {
	SessionID string               `json:"sessionId"`
	Result    *domain.Presentation `json:"result"`
	Section   domain.Section       `json:"section"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Reason  string `json:"reason,omitempty"`
}

// Categories handles GET /categories.
func (h *LookupHandler) Categories(w http.ResponseWriter, r *http.Request) {
	ids := domain.Categories()
	out := make([]categoryResponse, 0, len(ids))
	for _, c := range ids {
		def := domain.DefinitionFor(c)
		out = append(out, categoryResponse{
			ID:          def.ID,
			Icon:        def.Icon,
			Name:        def.Name,
			Placeholder: def.Placeholder,
			Hint:        def.Hint,
			MaxLength:   def.MaxLength,
			Pattern:     def.Pattern.String(),
			ChainsTo:    def.ChainsTo,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// Search handles POST /lookups. An absent or unknown X-Session-Id starts a new session.
func (h *LookupHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.handleError(w, r, requestError(err))
		return
	}

	c, err := domain.ParseCategory(req.Category)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	id, _ := ctxutil.SessionIDFromCtx(r.Context())
	sess := h.sessions.GetOrCreate(id)
	w.Header().Set(middleware.SessionIDHeader, sess.ID)

	result, err := h.svc.Search(r.Context(), sess, c, req.Query)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, searchResponse{SessionID: sess.ID, Result: result})
}

// FetchChained handles POST /lookups/chained for the session in X-Session-Id.
func (h *LookupHandler) FetchChained(w http.ResponseWriter, r *http.Request) {
	id, ok := ctxutil.SessionIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusBadRequest, "bad_request", "missing "+middleware.SessionIDHeader+" header")
		return
	}

	sess, err := h.sessions.Get(id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	w.Header().Set(middleware.SessionIDHeader, sess.ID)

	result, section, err := h.svc.FetchChained(r.Context(), sess)
	if err != nil {
		h.handleError(w, r, chainedError{err: err})
		return
	}

	writeJSON(w, http.StatusOK, chainedResponse{SessionID: sess.ID, Result: result, Section: section})
}

// DeleteSession handles DELETE /sessions/{id}: resets and forgets the session.
func (h *LookupHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	sess, err := h.sessions.Get(id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if err := h.svc.Reset(sess); err != nil {
		h.handleError(w, r, err)
		return
	}
	h.sessions.Delete(id)

	w.WriteHeader(http.StatusNoContent)
}

// chainedError marks failures of the chained lookup, whose messages carry a prefix.
type chainedError struct {
	err error
}

func (e chainedError) Error() string { return e.err.Error() }
func (e chainedError) Unwrap() error { return e.err }

func (h *LookupHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		ve *domain.ValidationError
		le *domain.LookupError
		ce chainedError
	)
	chained := errors.As(err, &ce)

	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error:   "validation",
			Message: ve.UserMessage(),
			Reason:  string(ve.Reason()),
		})
	case errors.Is(err, session.ErrSessionNotFound):
		writeError(w, http.StatusNotFound, "session_not_found", "session not found")
	case errors.Is(err, lookup.ErrSessionBusy):
		writeError(w, http.StatusConflict, "session_busy", "another request for this session is in progress")
	case errors.Is(err, lookup.ErrNoChainedID):
		writeError(w, http.StatusConflict, "no_chained_id", domain.NoChainedIDMessage)
	case errors.As(err, &le):
		status, code := http.StatusNotFound, "not_found"
		msg := le.UserMessage()
		if le.Kind == domain.LookupTransport {
			status, code = http.StatusBadGateway, "upstream_unavailable"
			h.log.ErrorContext(r.Context(), "upstream unavailable",
				slog.String("category", le.Category.String()),
				slog.String("error", err.Error()),
			)
		}
		if chained {
			msg = le.ChainedMessage()
		}
		writeJSON(w, status, errorResponse{Error: code, Message: msg, Reason: string(le.Kind)})
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal", "internal server error")
	}
}

// requestError converts struct validation failures to a domain validation error.
func requestError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return domain.NewValidationError("request", err.Error())
	}

	fields := make([]domain.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		msg := field + " is invalid"
		switch fe.Tag() {
		case "required":
			field, msg = "category", "category is required"
		case "category":
			field, msg = "category", "unknown category"
		case "max":
			field, msg = "query", fmt.Sprintf("query must be at most %s characters", fe.Param())
		}
		fields = append(fields, domain.FieldError{Field: field, Message: msg})
	}
	return &domain.ValidationError{Errors: fields}
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: code, Message: message})
}
