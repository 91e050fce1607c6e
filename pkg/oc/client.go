package oc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/labels"
	"k8s.io/utils/exec"

	"github.com/openshift/managed-resources/pkg/defaults"
)

// ErrNoData is returned by ListLabeled when the query exited non-zero or printed nothing.
var ErrNoData = errors.New("no data returned")

// ClusterClient is the set of cluster queries the collector depends on.
type ClusterClient interface {
	// WhoAmI returns the identity of the logged-in user.
	WhoAmI(ctx context.Context) (string, error)
	// ListKinds returns the resource kind names known to the cluster.
	ListKinds(ctx context.Context) ([]string, error)
	// ListLabeled returns the resources of kind matching selector across all namespaces.
	ListLabeled(ctx context.Context, kind string, selector labels.Selector) (*unstructured.UnstructuredList, error)
}

// Option is a functional option for configuring a Client.
type Option func(*Client)

// WithBinary sets the client binary to invoke.
func WithBinary(binary string) Option {
	return func(c *Client) {
		if binary != "" {
			c.binary = binary
		}
	}
}

// WithKubeconfig passes an explicit kubeconfig to every invocation.
func WithKubeconfig(path string) Option {
	return func(c *Client) {
		c.kubeconfig = path
	}
}

// WithExecutor sets the executor used to run commands.
func WithExecutor(e exec.Interface) Option {
	return func(c *Client) {
		c.exec = e
	}
}

// Client implements ClusterClient by running the cluster CLI.
type Client struct {
	binary     string
	kubeconfig string
	exec       exec.Interface
}

var _ ClusterClient = (*Client)(nil)

// New creates a Client with the given options.
func New(opts ...Option) *Client {
	c := &Client{
		binary: defaults.ClientBinary,
		exec:   exec.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Binary returns the client binary the Client invokes.
func (c *Client) Binary() string {
	return c.binary
}

func (c *Client) command(ctx context.Context, args ...string) exec.Cmd {
	if c.kubeconfig != "" {
		args = append([]string{"--kubeconfig", c.kubeconfig}, args...)
	}
	slog.Debug("running cluster client", "binary", c.binary, "args", strings.Join(args, " "))
	return c.exec.CommandContext(ctx, c.binary, args...)
}

// WhoAmI runs `whoami` and returns the trimmed identity.
func (c *Client) WhoAmI(ctx context.Context) (string, error) {
	cmd := c.command(ctx, "whoami")
	cmd.SetStderr(io.Discard)

	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("%s whoami failed: %w", c.binary, err)
	}
	return strings.TrimSpace(string(out)), nil
}

// ListKinds runs `api-resources -o name` and returns one kind per output line.
func (c *Client) ListKinds(ctx context.Context) ([]string, error) {
	cmd := c.command(ctx, "api-resources", "-o", "name")
	cmd.SetStderr(io.Discard)

	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("%s api-resources failed: %w", c.binary, err)
	}
	return SplitLines(out), nil
}

// ListLabeled runs `get` for kind across all namespaces and decodes the JSON list.
// It returns ErrNoData when the command exits non-zero or prints nothing.
func (c *Client) ListLabeled(ctx context.Context, kind string, selector labels.Selector) (*unstructured.UnstructuredList, error) {
	cmd := c.command(ctx, "get", "--ignore-not-found", kind, "-A", "-o", "json", "-l", selector.String())

	out, err := cmd.Output()
	if err != nil {
		var exitErr exec.ExitError
		if errors.As(err, &exitErr) {
			slog.Debug("kind query exited non-zero", "kind", kind, "status", exitErr.ExitStatus())
			return nil, fmt.Errorf("%s: exit status %d: %w", kind, exitErr.ExitStatus(), ErrNoData)
		}
		return nil, fmt.Errorf("failed to query %s: %w", kind, err)
	}

	if len(bytes.TrimSpace(out)) == 0 {
		return nil, fmt.Errorf("%s: empty output: %w", kind, ErrNoData)
	}

	list := &unstructured.UnstructuredList{}
	if err := list.UnmarshalJSON(out); err != nil {
		return nil, fmt.Errorf("failed to decode %s list: %w", kind, err)
	}

	return list, nil
}

// SplitLines splits command output into trimmed, non-empty lines.
func SplitLines(out []byte) []string {
	lines := strings.Split(string(out), "\n")
	res := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		res = append(res, line)
	}
	return res
}
