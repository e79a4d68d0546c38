// Package acp fetches the clusters and namespaces an ACP console knows about.
//
// Requests go through the console itself: cluster modules are listed from the
// global API at {base}/apis/cluster.alauda.io/v1alpha1/clustermodules and
// namespaces through the per-cluster proxy at {base}/kubernetes/{cluster}.
// Failures never propagate; callers always receive a (possibly empty) list.
package acp

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
	clientcmdapi "k8s.io/client-go/tools/clientcmd/api"

	"github.com/futuretea/acp-mcp-server/pkg/core/logging"
	"github.com/futuretea/acp-mcp-server/pkg/options"
	"github.com/futuretea/acp-mcp-server/pkg/util/url"
)

// ClusterModuleGVR is the resource the console registers workload clusters as.
var ClusterModuleGVR = schema.GroupVersionResource{
	Group:    "cluster.alauda.io",
	Version:  "v1alpha1",
	Resource: "clustermodules",
}

type tokenKey struct{}

// WithToken returns a context whose console requests authenticate with token
// instead of the client's own.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// tokenFor returns the per-request token carried by ctx, or the client's.
func (c *Client) tokenFor(ctx context.Context) string {
	if token, ok := ctx.Value(tokenKey{}).(string); ok && token != "" {
		return token
	}
	return c.token
}

// Client lists clusters and namespaces from an ACP console.
type Client struct {
	token    string
	insecure bool
	timeout  time.Duration
}

// NewClient creates a new console client. token is sent as a bearer token
// when non-empty unless the request context carries its own (see WithToken);
// timeout bounds every request.
func NewClient(token string, insecure bool, timeout time.Duration) *Client {
	return &Client{
		token:    token,
		insecure: insecure,
		timeout:  timeout,
	}
}

// createRestConfig creates a Kubernetes REST config for the given server URL.
func (c *Client) createRestConfig(serverURL, token string) (*rest.Config, error) {
	kubeconfig := clientcmdapi.NewConfig()
	kubeconfig.Clusters["console"] = &clientcmdapi.Cluster{
		Server:                serverURL,
		InsecureSkipTLSVerify: c.insecure,
	}
	kubeconfig.AuthInfos["user"] = &clientcmdapi.AuthInfo{
		Token: token,
	}
	kubeconfig.Contexts["context"] = &clientcmdapi.Context{
		Cluster:  "console",
		AuthInfo: "user",
	}
	kubeconfig.CurrentContext = "context"

	restConfig, err := clientcmd.NewNonInteractiveClientConfig(
		*kubeconfig,
		kubeconfig.CurrentContext,
		&clientcmd.ConfigOverrides{},
		nil,
	).ClientConfig()
	if err != nil {
		return nil, err
	}
	restConfig.Timeout = c.timeout
	return restConfig, nil
}

// ListClusters returns the sorted names of the cluster modules registered in
// the console at baseURL.
func (c *Client) ListClusters(ctx context.Context, baseURL string) []string {
	names, err := c.listClusters(ctx, baseURL)
	if err != nil {
		logging.Logger().Warn().Err(err).Str("server", baseURL).Msg("failed to list clusters")
		return []string{}
	}
	logging.Debug("Listed %d clusters from %s", len(names), baseURL)
	return names
}

func (c *Client) listClusters(ctx context.Context, baseURL string) ([]string, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("no console server url")
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	clientset, err := c.newClientset(ctx, url.NormalizeServerURL(baseURL))
	if err != nil {
		return nil, err
	}

	// Read raw so that any body with items[].metadata.name is accepted,
	// whether or not it carries apiVersion and kind.
	body, err := clientset.CoreV1().RESTClient().Get().AbsPath(clusterModulePath()).DoRaw(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", ClusterModuleGVR.Resource, err)
	}

	var list metav1.PartialObjectMetadataList
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", ClusterModuleGVR.Resource, err)
	}

	names := make([]string, 0, len(list.Items))
	for _, item := range list.Items {
		names = append(names, item.Name)
	}
	return sortedNames(names), nil
}

func clusterModulePath() string {
	return "/apis/" + ClusterModuleGVR.Group + "/" + ClusterModuleGVR.Version + "/" + ClusterModuleGVR.Resource
}

// newClientset builds a clientset for serverURL authenticated with the
// token in effect for ctx.
func (c *Client) newClientset(ctx context.Context, serverURL string) (*kubernetes.Clientset, error) {
	restConfig, err := c.createRestConfig(serverURL, c.tokenFor(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to create REST config: %w", err)
	}
	clientset, err := kubernetes.NewForConfig(restConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create clientset: %w", err)
	}
	return clientset, nil
}

// ListNamespaces returns the sorted namespace names of cluster, read through
// the console proxy at baseURL.
func (c *Client) ListNamespaces(ctx context.Context, baseURL, cluster string) []string {
	names, err := c.listNamespaces(ctx, baseURL, cluster)
	if err != nil {
		logging.Logger().Warn().Err(err).Str("server", baseURL).Str("cluster", cluster).Msg("failed to list namespaces")
		return []string{}
	}
	logging.Debug("Listed %d namespaces in cluster %s", len(names), cluster)
	return names
}

func (c *Client) listNamespaces(ctx context.Context, baseURL, cluster string) ([]string, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("no console server url")
	}
	if cluster == "" {
		return nil, fmt.Errorf("no cluster")
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	clientset, err := c.newClientset(ctx, url.GetClusterProxyURL(baseURL, cluster))
	if err != nil {
		return nil, err
	}

	list, err := clientset.CoreV1().Namespaces().List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to list namespaces: %w", err)
	}

	names := make([]string, 0, len(list.Items))
	for _, ns := range list.Items {
		names = append(names, ns.Name)
	}
	return sortedNames(names), nil
}

// ClusterOptions merges the configured clusters with the ones the console reports.
func (c *Client) ClusterOptions(ctx context.Context, baseURL string, configured []string) []options.Entry {
	return options.Merge(configured, c.ListClusters(ctx, baseURL))
}

// NamespaceOptions merges the configured namespaces with the ones found in
// cluster. Without a cluster there is nothing to ask, so the configured
// namespaces are returned as they are.
func (c *Client) NamespaceOptions(ctx context.Context, baseURL, cluster string, configured []string) []options.Entry {
	if strings.TrimSpace(cluster) == "" {
		return options.ConfiguredOnly(configured)
	}
	return options.Merge(configured, c.ListNamespaces(ctx, baseURL, cluster))
}

// sortedNames drops empty names and sorts the rest.
func sortedNames(names []string) []string {
	names = slices.DeleteFunc(names, func(name string) bool { return name == "" })
	slices.Sort(names)
	return names
}
