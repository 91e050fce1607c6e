package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"
	"k8s.io/client-go/tools/clientcmd"

	"github.com/openshift/managed-resources/pkg/collector"
	"github.com/openshift/managed-resources/pkg/defaults"
	"github.com/openshift/managed-resources/pkg/logging"
	"github.com/openshift/managed-resources/pkg/oc"
	"github.com/openshift/managed-resources/pkg/reporter"
	"github.com/openshift/managed-resources/pkg/serializer"
)

const name = "managed-resources"

var (
	// overridden at build time with ldflags
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// rootFlags returns new flag values on every call. Parsed values live on the
// flag structs, so commands must not share them.
func rootFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "path",
			Aliases:  []string{"p"},
			Required: true,
			Usage:    fmt.Sprintf("output file path (%q for stdout)", serializer.StdoutURI),
		},
		&cli.StringFlag{
			Name:     "output",
			Aliases:  []string{"o"},
			Required: true,
			Usage:    fmt.Sprintf("output format (%s)", serializer.SupportedFormats()),
			Validator: func(s string) error {
				_, err := serializer.ParseFormat(s)
				return err
			},
		},
		&cli.BoolFlag{
			Name:  "all",
			Usage: "scan every resource kind known to the cluster instead of only namespaces",
		},
		&cli.StringFlag{
			Name:      "namespace",
			Aliases:   []string{"ns"},
			Value:     defaults.ConfigMapNamespace,
			Usage:     "namespace of the generated ConfigMap",
			Validator: validateNamespace,
		},
		&cli.StringFlag{
			Name:      "name",
			Value:     defaults.ConfigMapName,
			Usage:     "name of the generated ConfigMap",
			Validator: validateName,
		},
		&cli.StringFlag{
			Name:  "kubeconfig",
			Usage: fmt.Sprintf("path to the kubeconfig passed to the cluster client (default: $%s or ~/.kube/config)", clientcmd.RecommendedConfigPathEnvVar),
		},
		&cli.StringSliceFlag{
			Name:  "exclude",
			Usage: "skip discovered kinds matching a wildcard pattern with --all (e.g. 'events*', can be repeated)",
		},
		&cli.StringFlag{
			Name:  "oc",
			Value: defaults.ClientBinary,
			Usage: "cluster client binary",
		},
		&cli.FloatFlag{
			Name:  "qps",
			Usage: "maximum kind queries per second (0 for unlimited)",
			Validator: func(f float64) error {
				if f < 0 {
					return fmt.Errorf("qps must not be negative, got %v", f)
				}
				return nil
			},
		},
		&cli.StringFlag{
			Name:  "metrics-file",
			Usage: "write run metrics to this file in Prometheus text format",
		},
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "enable debug logging",
		},
		&cli.BoolFlag{
			Name:  "log-json",
			Usage: "output logs in JSON format",
		},
	}
}

// Execute runs the root command with the process arguments and exits on error.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// newRootCmd builds the root command. Extra client options are applied after
// the ones derived from flags.
func newRootCmd(clientOpts ...oc.Option) *cli.Command {
	return &cli.Command{
		Name:                  name,
		Version:               fmt.Sprintf("%s (commit: %s, date: %s)", version, commit, date),
		EnableShellCompletion: true,
		Usage:                 "List hive-managed resources of a cluster as YAML or as a ConfigMap",
		Description: `Queries the cluster through a logged-in oc client for every resource labeled
hive.openshift.io/managed=true and writes them grouped by kind.

By default only namespaces are scanned. Use --all to scan every resource kind
the cluster serves (slow on large clusters).

# Examples

Plain listing of managed namespaces:
  managed-resources --path managed.yaml --output yaml

ConfigMap with every managed resource:
  managed-resources -p cm.yaml -o configmap --all --ns openshift-monitoring --name managed-namespaces`,
		Flags: rootFlags(),
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			level := ""
			if cmd.Bool("debug") {
				level = "debug"
			}
			logging.SetDefault(logging.Options{
				Module:  name,
				Version: version,
				Level:   level,
				JSON:    cmd.Bool("log-json"),
				Output:  cmd.Root().ErrWriter,
				Attrs:   []any{slog.String("run", uuid.NewString())},
			})
			return ctx, nil
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format, err := serializer.ParseFormat(cmd.String("output"))
			if err != nil {
				return exitError(err)
			}

			kubeconfig := cmd.String("kubeconfig")
			if err := describeTarget(kubeconfig); err != nil {
				return exitError(err)
			}

			client := oc.New(append([]oc.Option{
				oc.WithBinary(cmd.String("oc")),
				oc.WithKubeconfig(kubeconfig),
			}, clientOpts...)...)

			progress := progressWriter(cmd)
			r := &reporter.Reporter{
				Client: client,
				Collector: collector.New(client,
					collector.WithProgress(progress),
					collector.WithRateLimit(cmd.Float("qps")),
					collector.WithExcludedKinds(cmd.StringSlice("exclude")...),
				),
				All:    cmd.Bool("all"),
				Format: format,
				Path:   cmd.String("path"),
				ConfigMap: serializer.ConfigMapMeta{
					Name:      cmd.String("name"),
					Namespace: cmd.String("namespace"),
				},
				Progress:    progress,
				MetricsFile: cmd.String("metrics-file"),
			}

			slog.Debug("starting report",
				slog.String("client", client.Binary()),
				slog.Bool("all", r.All),
				slog.String("format", format.String()),
				slog.String("path", r.Path),
			)

			if _, err := r.Run(ctx); err != nil {
				return exitError(err)
			}
			return nil
		},
	}
}
