// Package resolver turns issue, pull request and bug report URLs into
// normalized issue.Info values, one URL at a time or as a concurrent batch.
package resolver

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/lerenn/issue-state/pkg/forge"
	"github.com/lerenn/issue-state/pkg/host"
	"github.com/lerenn/issue-state/pkg/issue"
	"github.com/lerenn/issue-state/pkg/logger"
)

// Resolver resolves URLs into issue information.
type Resolver interface {
	// ResolveOne resolves a single URL.
	ResolveOne(ctx context.Context, rawURL string) (issue.Info, error)
	// ResolveWithHost resolves a URL against an explicit host, skipping domain detection.
	ResolveWithHost(ctx context.Context, h host.Host, rawURL string) (issue.Info, error)
	// ResolveMany resolves every URL concurrently. Results keep the input order.
	ResolveMany(ctx context.Context, rawURLs []string) []Result
}

// Result is the outcome of resolving one URL in a batch.
type Result struct {
	URL  string
	Info issue.Info
	Err  error
}

// NewResolverParams contains parameters for creating a new Resolver.
type NewResolverParams struct {
	Forges forge.ManagerInterface
	Logger logger.Logger
	// Concurrency caps the number of in-flight resolutions in a batch.
	// Zero or less launches all of them at once.
	Concurrency int
}

type realResolver struct {
	forges      forge.ManagerInterface
	logger      logger.Logger
	concurrency int
}

// NewResolver creates a new Resolver instance.
func NewResolver(params NewResolverParams) (Resolver, error) {
	if params.Forges == nil {
		return nil, ErrForgesMissing
	}

	l := params.Logger
	if l == nil {
		l = logger.NewNoopLogger()
	}

	return &realResolver{
		forges:      params.Forges,
		logger:      l,
		concurrency: params.Concurrency,
	}, nil
}

func (r *realResolver) ResolveOne(ctx context.Context, rawURL string) (issue.Info, error) {
	u, domain, err := parseURL(rawURL)
	if err != nil {
		return issue.Info{}, err
	}

	h, err := host.Resolve(domain)
	if err != nil {
		return issue.Info{}, err
	}

	return r.resolve(ctx, h, u)
}

func (r *realResolver) ResolveWithHost(ctx context.Context, h host.Host, rawURL string) (issue.Info, error) {
	u, _, err := parseURL(rawURL)
	if err != nil {
		return issue.Info{}, err
	}

	return r.resolve(ctx, h, u)
}

func (r *realResolver) ResolveMany(ctx context.Context, rawURLs []string) []Result {
	results := make([]Result, len(rawURLs))

	var g errgroup.Group
	if r.concurrency > 0 {
		g.SetLimit(r.concurrency)
	}

	for i, rawURL := range rawURLs {
		i, rawURL := i, rawURL
		g.Go(func() error {
			info, err := r.resolveIsolated(ctx, rawURL)
			results[i] = Result{URL: rawURL, Info: info, Err: err}
			// Failures stay in their slot and never cancel siblings.
			return nil
		})
	}

	_ = g.Wait()

	return results
}

// resolveIsolated resolves one URL, converting a panic into an error.
func (r *realResolver) resolveIsolated(ctx context.Context, rawURL string) (info issue.Info, err error) {
	defer func() {
		if p := recover(); p != nil {
			info, err = issue.Info{}, fmt.Errorf("%w: panic while resolving %s: %v", issue.ErrUnreachable, rawURL, p)
		}
	}()
	return r.ResolveOne(ctx, rawURL)
}

func (r *realResolver) resolve(ctx context.Context, h host.Host, u *url.URL) (issue.Info, error) {
	r.logger.Logf("Getting %s", u)

	fields, err := h.Extract(u)
	if err != nil {
		return issue.Info{}, err
	}

	f, err := r.forges.GetForge(h.Provider)
	if err != nil {
		return issue.Info{}, err
	}

	return f.Fetch(ctx, h, fields)
}

// parseURL parses rawURL and returns it with its lowercase domain. IP
// addresses and URLs without a host have no domain.
func parseURL(rawURL string) (*url.URL, string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", issue.ErrInvalidURL, err)
	}

	domain := strings.ToLower(u.Hostname())
	if domain == "" || net.ParseIP(domain) != nil {
		return nil, "", fmt.Errorf("%w: %q has no domain", issue.ErrInvalidURL, rawURL)
	}

	return u, domain, nil
}
