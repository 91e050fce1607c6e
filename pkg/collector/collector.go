package collector

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"golang.org/x/time/rate"
	"k8s.io/apimachinery/pkg/labels"

	"github.com/openshift/managed-resources/pkg/defaults"
	"github.com/openshift/managed-resources/pkg/oc"
	"github.com/openshift/managed-resources/pkg/report"
)

// Option is a functional option for configuring a Collector.
type Option func(*Collector)

// WithProgress sets where the per-kind progress lines are written.
func WithProgress(w io.Writer) Option {
	return func(c *Collector) {
		if w != nil {
			c.progress = w
		}
	}
}

// WithRateLimit limits kind queries to qps per second. Zero or less disables the limit.
func WithRateLimit(qps float64) Option {
	return func(c *Collector) {
		if qps <= 0 {
			c.limiter = nil
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(qps), 1)
	}
}

// WithSelector overrides the label selector used to find managed resources.
func WithSelector(selector labels.Selector) Option {
	return func(c *Collector) {
		if selector != nil {
			c.selector = selector
		}
	}
}

// WithExcludedKinds skips discovered kinds matching any of the wildcard patterns.
// It has no effect on the default namespaces-only scan.
func WithExcludedKinds(patterns ...string) Option {
	return func(c *Collector) {
		c.excluded = append(c.excluded, patterns...)
	}
}

// Collector gathers managed resources kind by kind through a ClusterClient.
type Collector struct {
	client   oc.ClusterClient
	selector labels.Selector
	progress io.Writer
	limiter  *rate.Limiter
	excluded []string
}

var _ Interface = (*Collector)(nil)

// New creates a Collector backed by client.
func New(client oc.ClusterClient, opts ...Option) *Collector {
	c := &Collector{
		client:   client,
		selector: defaults.ManagedSelector(),
		progress: os.Stdout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Kinds returns every kind known to the cluster when all is set, and only
// namespaces otherwise. The cluster is not queried in the latter case.
func (c *Collector) Kinds(ctx context.Context, all bool) ([]string, error) {
	if !all {
		return []string{defaults.DefaultKind}, nil
	}

	kinds, err := c.client.ListKinds(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get a list of api-resources: %w", err)
	}

	filtered := FilterKinds(kinds, c.excluded)
	slog.Debug("discovered resource kinds",
		slog.Int("count", len(kinds)),
		slog.Int("excluded", len(kinds)-len(filtered)),
	)
	return filtered, nil
}

// Collect queries each kind in order and groups the managed resources by
// their canonical kind. Kinds without managed resources are left out. The
// backplane service account is redacted and the additional managed
// namespaces are always appended, so the result has a Namespace entry.
func (c *Collector) Collect(ctx context.Context, kinds []string) (*report.Report, error) {
	rep := report.New()

	for _, kind := range kinds {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		fmt.Fprintf(c.progress, "Collecting %s...\n", kind)

		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, fmt.Errorf("rate limiter wait for %s: %w", kind, err)
			}
		}

		name, records, err := c.collectKind(ctx, kind)
		if err != nil {
			return nil, err
		}
		if len(records) == 0 {
			continue
		}
		rep.Set(name, records)
	}

	if err := RedactBackplaneServiceAccount(ctx, c.client, rep); err != nil {
		return nil, err
	}

	for _, ns := range defaults.AdditionalManagedNamespaces {
		rep.Append(defaults.NamespaceKind, report.Record{Name: ns})
	}

	collectedRecords.Reset()
	for _, kind := range rep.Kinds() {
		collectedRecords.WithLabelValues(kind).Set(float64(len(rep.Get(kind))))
	}

	slog.Debug("collection complete",
		slog.Int("kinds_scanned", len(kinds)),
		slog.Int("kinds_reported", rep.Len()),
		slog.Int("records", rep.Count()),
	)

	return rep, nil
}

// collectKind runs the labeled query for one kind. A query that produced no
// data is not an error: it yields no records.
func (c *Collector) collectKind(ctx context.Context, kind string) (string, []report.Record, error) {
	start := time.Now()
	outcome := outcomeFound
	defer func() {
		kindQueryDuration.WithLabelValues(outcome).Observe(time.Since(start).Seconds())
		kindQueryTotal.WithLabelValues(outcome).Inc()
	}()

	list, err := c.client.ListLabeled(ctx, kind, c.selector)
	if err != nil {
		if errors.Is(err, oc.ErrNoData) {
			outcome = outcomeNoData
			slog.Debug("skipping kind", "kind", kind, "reason", err.Error())
			return "", nil, nil
		}
		outcome = outcomeFailure
		return "", nil, fmt.Errorf("failed to collect %s: %w", kind, err)
	}

	name, records := RecordsFromList(list)
	if len(records) == 0 {
		outcome = outcomeEmpty
		return "", nil, nil
	}

	slog.Debug("collected managed resources", "kind", name, "requested", kind, "count", len(records))
	return name, records, nil
}
