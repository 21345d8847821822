package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/urlscope/urlscope-core/cliout"
	"github.com/urlscope/urlscope-core/logutil"
	"github.com/urlscope/urlscope-core/version"
)

// Populated at release time via -ldflags "-X main.buildVersion=...".
var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

type rootOptions struct {
	base               string
	flattenBackslashes bool
	output             string
	debug              bool
	noColor            bool
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "urlscope",
		Short: "Inspect how URL references resolve and decompose",
		Long: `urlscope resolves URL references against an optional base and reports
the structure of each result: scheme, authority, path, query, fragment
and, for data URLs, the content media type. Conditions that matter to
URL classification (paths that climb past the root, authorities invented
during resolution, unrecognized schemes) are flagged on every result.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logutil.SetupLogger(opts.debug, false)
			if opts.noColor {
				cliout.NoColor()
			}
			if logutil.IsDebugEnabled() {
				cmd.Flags().VisitAll(func(f *pflag.Flag) {
					if f.Changed {
						logutil.Debug("flag set", "name", f.Name, "value", f.Value.String())
					}
				})
			}
			return cliout.SetFormat(opts.output)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.base, "base", "", "base URL that relative references resolve against")
	pf.BoolVar(&opts.flattenBackslashes, "flatten-backslashes", false, "treat backslashes in references as path separators")
	pf.StringVarP(&opts.output, "output", "o", "text", "output format: text, json or yaml")
	pf.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	pf.BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	cmd.AddCommand(newInspectCommand(opts))
	cmd.AddCommand(newOpenCommand(opts))
	cmd.AddCommand(version.NewCommand(newVersionInfo(), &opts.output))

	return cmd
}

func newVersionInfo() *version.Info {
	info := version.New("urlscope")
	if buildVersion != "" {
		info.Version = buildVersion
	}
	if buildCommit != "" {
		info.GitCommit = buildCommit
	}
	if buildDate != "" {
		info.BuildDate = buildDate
	}
	return info
}

// Execute runs the root command and exits nonzero on failure.
func Execute() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
