package cmd

import (
	"fmt"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/futuretea/acp-mcp-server/pkg/client/acp"
	"github.com/futuretea/acp-mcp-server/pkg/consoleurl"
	"github.com/futuretea/acp-mcp-server/pkg/core/config"
	"github.com/futuretea/acp-mcp-server/pkg/core/logging"
	"github.com/futuretea/acp-mcp-server/pkg/toolset"
	"github.com/futuretea/acp-mcp-server/pkg/toolset/handler"
	"github.com/futuretea/acp-mcp-server/pkg/toolset/navigation"
)

// openURL opens a page in the user's browser. Replaced in tests.
var openURL = browser.OpenURL

// commandContext loads the configuration and logging for a subcommand.
func commandContext(v *viper.Viper, streams IOStreams) (*config.StaticConfig, error) {
	cfg, err := loadStaticConfig(v)
	if err != nil {
		return nil, err
	}
	logging.Initialize(cfg.LogLevel, streams.ErrOut)
	browser.Stdout = streams.ErrOut
	browser.Stderr = streams.ErrOut
	return cfg, nil
}

func navigationToolset(cfg *config.StaticConfig) *navigation.Toolset {
	return &navigation.Toolset{
		ServerURL:        cfg.ServerURL,
		ClusterOptions:   cfg.ClusterOptions,
		NamespaceOptions: cfg.NamespaceOptions,
		KubectlOpenType:  cfg.KubectlOpenType,
		DefaultFormat:    cfg.ListOutput,
	}
}

// runTool calls a navigation tool the same way the MCP server would.
func runTool(cmd *cobra.Command, cfg *config.StaticConfig, streams IOStreams, name string, params map[string]interface{}) error {
	client := acp.NewClient(cfg.Token, cfg.TLSInsecure, cfg.GetFetchTimeout())
	if _, ok := params[handler.ParamFormat]; !ok {
		params[handler.ParamFormat] = cfg.ListOutput
	}

	var tool *toolset.ServerTool
	for _, t := range navigationToolset(cfg).GetTools(client) {
		if t.Tool.Name == name {
			tool = &t
			break
		}
	}
	if tool == nil {
		return fmt.Errorf("unknown tool %s", name)
	}

	out, err := tool.Handler(cmd.Context(), client, params)
	if err != nil {
		return err
	}
	fmt.Fprintln(streams.Out, out)
	return nil
}

func newClassifyCommand(v *viper.Viper, streams IOStreams) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "classify URL",
		Short: "Show the family, project, cluster and namespace of a console page URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := commandContext(v, streams)
			if err != nil {
				return err
			}
			params := map[string]interface{}{handler.ParamURL: args[0]}
			if output != "" {
				params[handler.ParamFormat] = output
			}
			return runTool(cmd, cfg, streams, "url_classify", params)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output format (table, yaml, json); defaults to --list-output")
	return cmd
}

func newSwitchCommand(v *viper.Viper, streams IOStreams) *cobra.Command {
	var cluster, namespace string
	var open bool
	cmd := &cobra.Command{
		Use:   "switch URL",
		Short: "Print the same console page for another cluster and/or namespace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := commandContext(v, streams); err != nil {
				return err
			}
			target, err := consoleurl.Switch(args[0], cluster, namespace)
			if err != nil {
				return err
			}
			fmt.Fprintln(streams.Out, target)
			if open {
				return openURL(target)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&cluster, "cluster", "", "Target cluster (keeps the current one when empty)")
	cmd.Flags().StringVar(&namespace, "namespace", "", "Target namespace (keeps the current one when empty)")
	cmd.Flags().BoolVar(&open, "open", false, "Open the new page in the browser")
	return cmd
}

func newKubectlCommand(v *viper.Viper, streams IOStreams) *cobra.Command {
	var open bool
	cmd := &cobra.Command{
		Use:   "kubectl URL",
		Short: "Print the web kubectl terminal URL for the console a page belongs to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := commandContext(v, streams)
			if err != nil {
				return err
			}
			target, err := consoleurl.KubectlURL(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(streams.Out, target)
			if !open {
				return nil
			}
			// A browser launched from a terminal cannot reuse the current tab.
			if consoleurl.ParseOpenType(cfg.KubectlOpenType) == consoleurl.OpenInCurrent {
				logging.Warn("kubectl_open_type %q is not supported from the command line, opening a new tab", cfg.KubectlOpenType)
			}
			return openURL(target)
		},
	}
	cmd.Flags().BoolVar(&open, "open", false, "Open the terminal page in the browser")
	return cmd
}

func newOptionsCommand(v *viper.Viper, streams IOStreams) *cobra.Command {
	var pageURL, output string
	var configured []string

	params := func(cmd *cobra.Command) map[string]interface{} {
		p := map[string]interface{}{}
		if pageURL != "" {
			p[handler.ParamURL] = pageURL
		}
		if output != "" {
			p[handler.ParamFormat] = output
		}
		if cmd.Flags().Changed("configured") {
			p[handler.ParamConfigured] = configured
		}
		return p
	}

	cmd := &cobra.Command{
		Use:   "options",
		Short: "List selectable clusters or namespaces",
	}
	cmd.PersistentFlags().StringVar(&pageURL, "url", "", "Console page URL; its origin is queried instead of --server-url")
	cmd.PersistentFlags().StringVarP(&output, "output", "o", "", "Output format (table, yaml, json); defaults to --list-output")
	cmd.PersistentFlags().StringSliceVar(&configured, "configured", nil, "Names to list first (defaults to the configured options)")

	clusters := &cobra.Command{
		Use:   "clusters",
		Short: "List configured clusters followed by the clusters registered in the console",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := commandContext(v, streams)
			if err != nil {
				return err
			}
			return runTool(cmd, cfg, streams, "cluster_options", params(cmd))
		},
	}

	var cluster string
	namespaces := &cobra.Command{
		Use:   "namespaces",
		Short: "List configured namespaces followed by the namespaces of a cluster",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := commandContext(v, streams)
			if err != nil {
				return err
			}
			p := params(cmd)
			if cluster != "" {
				p[handler.ParamCluster] = cluster
			}
			return runTool(cmd, cfg, streams, "namespace_options", p)
		},
	}
	namespaces.Flags().StringVar(&cluster, "cluster", "", "Cluster to list namespaces of (defaults to the one in --url)")

	cmd.AddCommand(clusters, namespaces)
	return cmd
}
