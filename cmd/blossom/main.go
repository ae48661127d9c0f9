package main

import (
	stderrors "errors"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/blossom-graphql/blossom"
	"github.com/blossom-graphql/blossom/config"
	"github.com/blossom-graphql/blossom/errors"
	"github.com/blossom-graphql/blossom/internal/loader"
	"github.com/blossom-graphql/blossom/log"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "blossom",
	Short: "GraphQL schema compiler",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// if we got this far, CLI parsing worked just fine; no
		// need to show usage for runtime errors
		cmd.SilenceUsage = true
	},
}

var checkCmd = &cobra.Command{
	Use:   "check [entry.graphql]",
	Short: "Resolve, parse and link a schema graph, reporting every defect",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCheck,
}

var graphCmd = &cobra.Command{
	Use:   "graph [entry.graphql]",
	Short: "Print the resolved import graph",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runGraph,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "project config file (default "+config.DefaultFile+")")
	rootCmd.AddCommand(checkCmd, graphCmd)
}

// loadConfig resolves the effective project settings: an explicit entry
// argument wins, then the config file, if any.
func loadConfig(args []string) (*config.Config, error) {
	path := configPath
	if path == "" {
		if _, err := os.Stat(config.DefaultFile); err == nil {
			path = config.DefaultFile
		}
	}

	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if len(args) == 1 {
		cfg.Entry = args[0]
		cfg.Targets = []string{args[0]}
	}
	if cfg.Entry == "" {
		return nil, fmt.Errorf("no entry file: pass one as an argument or set %q in %s", "entry", config.DefaultFile)
	}
	return cfg, nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}

	compiler := blossom.New()
	if !cfg.WarnDuplicates {
		compiler.Logger = log.LoggerFunc(func(string, ...interface{}) {})
	}

	bundles, err := compiler.CompileTargets(cfg.Entry, cfg.Targets)
	if err != nil {
		var le *errors.LinkingError
		if stderrors.As(err, &le) {
			for _, d := range le.Defects {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s: %s\n", le.File, d.Declaration, d.Err)
			}
			return fmt.Errorf("%d unresolved reference(s)", len(le.Defects))
		}
		return err
	}

	paths := make([]string, 0, len(bundles))
	for path := range bundles {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	for _, path := range paths {
		b := bundles[path]
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d objects, %d inputs, %d enums, %d unions, %d operations, %d imports\n",
			path, len(b.Objects), len(b.Inputs), len(b.Enums), len(b.Unions), len(b.Operations), len(b.Imports))
	}
	return nil
}

func runGraph(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}

	graph, err := loader.Load(cfg.Entry)
	if err != nil {
		return err
	}
	paths := make([]string, 0, len(graph))
	for path := range graph {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	for _, path := range paths {
		fmt.Fprintln(cmd.OutOrStdout(), path)
		for _, imp := range graph[path].Manifest.Imports {
			if imp.All {
				fmt.Fprintf(cmd.OutOrStdout(), "\t%s (all)\n", imp.Path)
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\t%s %v\n", imp.Path, imp.Names)
		}
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
