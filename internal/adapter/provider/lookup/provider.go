package lookup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/infofinder-backend/internal/domain"
	"github.com/heartmarshall/infofinder-backend/internal/metrics"
	"github.com/heartmarshall/infofinder-backend/internal/payload"
)

const defaultUserAgent = "InfoFinder/1.0"

// Options configures a Provider. Empty BaseURLs entries fall back to the
// endpoint declared by the category definition.
type Options struct {
	UserAgent string
	BaseURLs  map[domain.Category]string
}

// Provider fetches raw lookup responses from the per-category upstream services.
// It issues exactly one GET per call: no retries, no caching.
type Provider struct {
	client   *resty.Client
	baseURLs map[domain.Category]string
	metrics  *metrics.Metrics
	log      *slog.Logger
}

// NewProvider creates a Provider.
func NewProvider(opts Options, m *metrics.Metrics, logger *slog.Logger) *Provider {
	ua := opts.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}

	baseURLs := make(map[domain.Category]string, len(opts.BaseURLs))
	for c, u := range opts.BaseURLs {
		if u != "" {
			baseURLs[c] = u
		}
	}

	client := resty.New().
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", ua)

	return &Provider{
		client:   client,
		baseURLs: baseURLs,
		metrics:  m,
		log:      logger.With("adapter", "lookup"),
	}
}

// NewProviderWithURL creates a Provider that sends every category to baseURL (for testing).
func NewProviderWithURL(baseURL string, logger *slog.Logger) *Provider {
	urls := make(map[domain.Category]string)
	for _, c := range domain.Categories() {
		urls[c] = baseURL
	}
	return NewProvider(Options{BaseURLs: urls}, nil, logger)
}

// Fetch queries the upstream service of category c for identifier and returns
// the decoded-but-unshaped body. Failures are *domain.LookupError.
func (p *Provider) Fetch(ctx context.Context, c domain.Category, identifier string) (json.RawMessage, error) {
	endpoint := p.endpointFor(c)

	p.log.DebugContext(ctx, "lookup request",
		slog.String("category", c.String()),
		slog.String("url", endpoint.BaseURL),
	)

	start := time.Now()
	body, err := p.fetch(ctx, c, endpoint, identifier)
	p.metrics.ObserveLookup(c.String(), outcome(err), time.Since(start))

	if err != nil {
		level := slog.LevelWarn
		var le *domain.LookupError
		if errors.As(err, &le) && le.Kind == domain.LookupTransport {
			level = slog.LevelError
		}
		p.log.Log(ctx, level, "lookup failed",
			slog.String("category", c.String()),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	p.log.DebugContext(ctx, "lookup response",
		slog.String("category", c.String()),
		slog.Int("bytes", len(body)),
	)

	return body, nil
}

func (p *Provider) fetch(ctx context.Context, c domain.Category, endpoint domain.Endpoint, identifier string) (json.RawMessage, error) {
	target, err := lookupURL(endpoint, identifier)
	if err != nil {
		return nil, &domain.LookupError{Kind: domain.LookupTransport, Category: c, Err: err}
	}

	resp, err := p.client.R().
		SetContext(ctx).
		Get(target)
	if err != nil {
		return nil, &domain.LookupError{Kind: domain.LookupTransport, Category: c, Err: err}
	}

	if !resp.IsSuccess() {
		return nil, &domain.LookupError{Kind: domain.LookupHTTP, Category: c, Status: resp.StatusCode()}
	}

	body := resp.Body()
	v, ok := payload.Parse(body)
	if !ok {
		return nil, &domain.LookupError{Kind: domain.LookupTransport, Category: c, Err: errInvalidJSON}
	}
	if payload.IsEmpty(v) {
		return nil, &domain.LookupError{Kind: domain.LookupEmpty, Category: c}
	}

	return json.RawMessage(body), nil
}

var errInvalidJSON = errors.New("upstream returned invalid JSON")

// lookupURL appends param=identifier to the base URL. The identifier is
// percent-encoded with %20 for spaces, matching browser encodeURIComponent.
func lookupURL(endpoint domain.Endpoint, identifier string) (string, error) {
	u, err := url.Parse(endpoint.BaseURL)
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}

	pair := endpoint.Param + "=" + strings.ReplaceAll(url.QueryEscape(identifier), "+", "%20")
	if u.RawQuery == "" {
		u.RawQuery = pair
	} else {
		u.RawQuery += "&" + pair
	}
	return u.String(), nil
}

// Ping checks that every distinct upstream host answers. Any HTTP status
// counts as reachable; only transport failures are reported.
func (p *Provider) Ping(ctx context.Context) error {
	seen := make(map[string]struct{})
	g, ctx := errgroup.WithContext(ctx)

	for _, c := range domain.Categories() {
		base := p.endpointFor(c).BaseURL
		if _, ok := seen[base]; ok {
			continue
		}
		seen[base] = struct{}{}

		g.Go(func() error {
			if _, err := p.client.R().SetContext(ctx).Head(base); err != nil {
				return fmt.Errorf("ping %s: %w", base, err)
			}
			return nil
		})
	}

	return g.Wait()
}

func (p *Provider) endpointFor(c domain.Category) domain.Endpoint {
	endpoint := domain.DefinitionFor(c).Endpoint
	if u, ok := p.baseURLs[c]; ok {
		endpoint.BaseURL = u
	}
	return endpoint
}

func outcome(err error) string {
	if err == nil {
		return "ok"
	}
	var le *domain.LookupError
	if errors.As(err, &le) {
		return string(le.Kind)
	}
	return "error"
}
