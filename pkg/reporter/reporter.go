package reporter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/openshift/managed-resources/pkg/collector"
	"github.com/openshift/managed-resources/pkg/oc"
	"github.com/openshift/managed-resources/pkg/report"
	"github.com/openshift/managed-resources/pkg/serializer"
)

// ErrNotLoggedIn is returned when the cluster client has no authenticated session.
var ErrNotLoggedIn = errors.New("must be logged into an OSD cluster to gather list of managed resources")

// introMessage is printed before the first kind is collected.
const introMessage = "Collecting a list of hive-managed resources from cluster..."

// Reporter runs the identity check, collects managed resources and writes the report.
type Reporter struct {
	// Client is the cluster client. Required.
	Client oc.ClusterClient

	// Collector is the collector to use. If nil, a default collector over Client is used.
	Collector collector.Interface

	// All scans every kind known to the cluster instead of only namespaces.
	All bool

	// Format and Path select the output. An empty Path writes to stdout.
	Format serializer.Format
	Path   string

	// ConfigMap names the generated ConfigMap in serializer.FormatConfigMap.
	// The zero value uses serializer.DefaultConfigMapMeta.
	ConfigMap serializer.ConfigMapMeta

	// Serializer overrides Format and Path when set.
	Serializer serializer.Serializer

	// Progress receives the operator facing progress lines. Defaults to stdout.
	Progress io.Writer

	// MetricsFile, when set, receives the run metrics in Prometheus text format.
	MetricsFile string
}

// Run executes the pipeline once and returns the report that was written.
// The identity check runs first; when it fails nothing else is attempted.
func (r *Reporter) Run(ctx context.Context) (rep *report.Report, err error) {
	if r.Client == nil {
		return nil, errors.New("reporter requires a cluster client")
	}
	if r.Progress == nil {
		r.Progress = os.Stdout
	}

	start := time.Now()
	defer func() {
		reportRunDuration.Observe(time.Since(start).Seconds())
		switch {
		case err == nil:
			reportRunTotal.WithLabelValues("success").Inc()
			reportLastSuccess.SetToCurrentTime()
		case errors.Is(err, ErrNotLoggedIn):
			reportRunTotal.WithLabelValues("unauthenticated").Inc()
		default:
			reportRunTotal.WithLabelValues("error").Inc()
		}
		r.writeMetrics()
	}()

	identity, err := r.Client.WhoAmI(ctx)
	if err != nil {
		slog.Debug("identity check failed", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrNotLoggedIn, err)
	}
	slog.Debug("authenticated", "identity", identity)

	fmt.Fprintln(r.Progress, introMessage)

	c := r.Collector
	if c == nil {
		c = collector.New(r.Client, collector.WithProgress(r.Progress))
	}

	kinds, err := c.Kinds(ctx, r.All)
	if err != nil {
		return nil, err
	}

	rep, err = c.Collect(ctx, kinds)
	if err != nil {
		return nil, err
	}
	reportKinds.Set(float64(rep.Len()))

	if err := r.write(ctx, rep); err != nil {
		return nil, err
	}

	slog.Info("managed resource report written",
		"format", r.Format,
		"path", r.Path,
		"kinds", rep.Len(),
		"resources", rep.Count(),
		"duration_sec", time.Since(start).Seconds(),
	)

	return rep, nil
}

func (r *Reporter) write(ctx context.Context, rep *report.Report) error {
	if r.Serializer != nil {
		return r.Serializer.Serialize(ctx, rep)
	}

	var opts []serializer.Option
	if r.ConfigMap != (serializer.ConfigMapMeta{}) {
		opts = append(opts, serializer.WithConfigMapMeta(r.ConfigMap))
	}

	w, err := serializer.NewFileWriterOrStdout(r.Format, r.Path, opts...)
	if err != nil {
		return err
	}
	defer func() {
		if err := w.Close(); err != nil {
			slog.Warn("failed to close serializer", "error", err)
		}
	}()

	if err := w.Serialize(ctx, rep); err != nil {
		return fmt.Errorf("failed to write report to %q: %w", r.Path, err)
	}
	return nil
}

func (r *Reporter) writeMetrics() {
	if r.MetricsFile == "" {
		return
	}
	if err := WriteMetrics(r.MetricsFile); err != nil {
		slog.Warn("failed to write metrics file", "path", r.MetricsFile, "error", err)
		return
	}
	slog.Debug("metrics written", "path", r.MetricsFile)
}
