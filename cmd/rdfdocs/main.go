// Package main provides the rdfdocs binary entry point.
// Rdfdocs converts RDF sources (OWL ontologies, SHACL-described SPARQL
// example queries) into documents for retrieval-augmented generation.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vemonet/rdfdocs/config"
	"github.com/vemonet/rdfdocs/ontology"
	"github.com/vemonet/rdfdocs/sparqlexamples"
)

const (
	Version = "0.1.0"
	appName = "rdfdocs"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type cliFlags struct {
	configPath string
	output     string
	timeout    time.Duration
	verbose    bool
}

func rootCmd() *cobra.Command {
	flags := &cliFlags{}

	cmd := &cobra.Command{
		Use:     appName,
		Short:   "Convert RDF sources into documents for RAG pipelines",
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if flags.verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "path to YAML config file")
	cmd.PersistentFlags().StringVarP(&flags.output, "output", "o", "", "output format: json, yaml or text")
	cmd.PersistentFlags().DurationVar(&flags.timeout, "timeout", 0, "fetch/request timeout")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(ontologyCmd(flags))
	cmd.AddCommand(examplesCmd(flags))
	return cmd
}

// loadConfig layers the config file (when given) over defaults, then the
// shared flags over both.
func loadConfig(flags *cliFlags) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if flags.configPath != "" {
		loaded, err := config.LoadFromFile(flags.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if flags.output != "" {
		cfg.Output.Format = flags.output
	}
	if flags.timeout > 0 {
		cfg.Ontology.Timeout = flags.timeout
		cfg.Examples.Timeout = flags.timeout
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func ontologyCmd(flags *cliFlags) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "ontology <path-or-url>",
		Short: "Extract class and property documents from an OWL ontology",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			if format != "" {
				cfg.Ontology.Format = format
			}

			loader, err := ontology.New(ontology.Config{
				Source:  args[0],
				Format:  cfg.Ontology.Format,
				Timeout: cfg.Ontology.Timeout,
			})
			if err != nil {
				return err
			}

			docs, err := loader.Load(cmd.Context())
			if err != nil {
				return err
			}
			return writeDocuments(cmd.OutOrStdout(), docs, cfg.Output.Format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "RDF serialization: auto, turtle, ntriples or rdfxml")
	return cmd
}

func examplesCmd(flags *cliFlags) *cobra.Command {
	var graphIRI string

	cmd := &cobra.Command{
		Use:   "examples <endpoint-url>",
		Short: "Extract SHACL-described example queries from a SPARQL endpoint",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}

			endpoint := cfg.Examples.Endpoint
			if len(args) == 1 {
				endpoint = args[0]
			}
			if endpoint == "" {
				return fmt.Errorf("endpoint URL required (argument or examples.endpoint in config)")
			}
			if graphIRI == "" {
				graphIRI = cfg.Examples.Graph
			}

			loader, err := sparqlexamples.New(sparqlexamples.Config{
				Endpoint:      endpoint,
				ExamplesGraph: graphIRI,
				Timeout:       cfg.Examples.Timeout,
			})
			if err != nil {
				return err
			}

			docs, err := loader.Load(cmd.Context())
			if err != nil {
				return err
			}
			return writeDocuments(cmd.OutOrStdout(), docs, cfg.Output.Format)
		},
	}

	cmd.Flags().StringVarP(&graphIRI, "graph", "g", "", "named graph IRI holding the examples")
	return cmd
}
