package oc

import (
	"fmt"
	"os"
	"path/filepath"

	"k8s.io/client-go/tools/clientcmd"
	"k8s.io/client-go/util/homedir"
)

// KubeconfigInfo describes the cluster a kubeconfig points the client at.
type KubeconfigInfo struct {
	Path    string
	Context string
	Server  string
}

// ResolveKubeconfig returns the kubeconfig file the client will read. An
// explicit path wins, then the first entry of KUBECONFIG, then
// ~/.kube/config if it exists. Empty means none was found.
func ResolveKubeconfig(path string) string {
	if path != "" {
		return path
	}

	for _, p := range filepath.SplitList(os.Getenv(clientcmd.RecommendedConfigPathEnvVar)) {
		if p != "" {
			return p
		}
	}

	home := filepath.Join(homedir.HomeDir(), clientcmd.RecommendedHomeDir, clientcmd.RecommendedFileName)
	if _, err := os.Stat(home); err == nil {
		return home
	}
	return ""
}

// DescribeKubeconfig loads the kubeconfig at path and returns its current
// context and the API server of that context's cluster.
func DescribeKubeconfig(path string) (KubeconfigInfo, error) {
	cfg, err := clientcmd.LoadFromFile(path)
	if err != nil {
		return KubeconfigInfo{}, fmt.Errorf("failed to load kubeconfig %q: %w", path, err)
	}

	info := KubeconfigInfo{Path: path, Context: cfg.CurrentContext}
	if ctx, ok := cfg.Contexts[cfg.CurrentContext]; ok && ctx != nil {
		if cluster, ok := cfg.Clusters[ctx.Cluster]; ok && cluster != nil {
			info.Server = cluster.Server
		}
	}
	return info, nil
}
