package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"
	"k8s.io/apimachinery/pkg/util/validation"

	"github.com/openshift/managed-resources/pkg/oc"
	"github.com/openshift/managed-resources/pkg/reporter"
	"github.com/openshift/managed-resources/pkg/serializer"
)

const (
	exitCodeError    = 1
	exitCodeCanceled = 2
)

// notLoggedInMessage is printed when the cluster client has no session.
const notLoggedInMessage = "Must be logged into an OSD cluster to gather list of managed resources"

// exitError maps err to a cli.ExitCoder carrying the process exit code.
func exitError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		slog.Warn("run canceled", "error", err)
		return cli.Exit(fmt.Sprintf("canceled: %v", err), exitCodeCanceled)
	case errors.Is(err, reporter.ErrNotLoggedIn):
		slog.Debug("identity check failed", "error", err)
		return cli.Exit(notLoggedInMessage, exitCodeError)
	default:
		slog.Error("run failed", "error", err)
		return cli.Exit(err.Error(), exitCodeError)
	}
}

// progressWriter returns where progress lines go. When the report itself is
// written to stdout they move to the error writer.
func progressWriter(cmd *cli.Command) io.Writer {
	if strings.TrimSpace(cmd.String("path")) == serializer.StdoutURI {
		return cmd.Root().ErrWriter
	}
	return cmd.Root().Writer
}

func validateNamespace(ns string) error {
	if errs := validation.IsDNS1123Label(ns); len(errs) > 0 {
		return fmt.Errorf("invalid namespace %q: %s", ns, strings.Join(errs, "; "))
	}
	return nil
}

func validateName(name string) error {
	if errs := validation.IsDNS1123Subdomain(name); len(errs) > 0 {
		return fmt.Errorf("invalid name %q: %s", name, strings.Join(errs, "; "))
	}
	return nil
}

// describeTarget logs the cluster the client will talk to. An explicit
// kubeconfig must load; the implicit one is only described when readable.
func describeTarget(kubeconfig string) error {
	path := oc.ResolveKubeconfig(kubeconfig)
	if path == "" {
		slog.Debug("no kubeconfig found, relying on the cluster client defaults")
		return nil
	}

	info, err := oc.DescribeKubeconfig(path)
	if err != nil {
		if kubeconfig != "" {
			return err
		}
		slog.Debug("unable to read kubeconfig", "path", path, "error", err)
		return nil
	}

	slog.Debug("cluster target",
		slog.String("kubeconfig", info.Path),
		slog.String("context", info.Context),
		slog.String("server", info.Server),
	)
	return nil
}
