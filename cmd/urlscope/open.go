package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/urlscope/urlscope-core/browser"
	"github.com/urlscope/urlscope-core/cliout"
	"github.com/urlscope/urlscope-core/logutil"
	"github.com/urlscope/urlscope-core/security"
	"github.com/urlscope/urlscope-core/urlmetrics"
	"github.com/urlscope/urlscope-core/urlutil"
	"github.com/urlscope/urlscope-core/urlvalue"
)

type openOptions struct {
	root      *rootOptions
	browser   string
	httpsOnly bool
}

func newOpenCommand(root *rootOptions) *cobra.Command {
	opts := &openOptions{root: root}
	cmd := &cobra.Command{
		Use:   "open <url>",
		Short: "Resolve a URL reference and open it in the browser",
		Long: `Open resolves a reference against the configured base URL, refuses
anything a classifier would flag (unknown schemes, hosts invented during
resolution, paths that climb above the root, userinfo or embedded
credentials in the authority), and hands the resolved URL to the system
browser. Bare host text is given an https:// scheme when no base URL is
configured.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOpen(opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.browser, "browser", string(browser.TargetDefault),
		"browser target: "+browser.FormatValidTargets())
	cmd.Flags().BoolVar(&opts.httpsOnly, "https-only", false,
		"require https (http allowed for loopback hosts)")

	return cmd
}

func runOpen(opts *openOptions, ref string) error {
	log := logutil.NewLogger("open")

	if !browser.IsValid(opts.browser) {
		return fmt.Errorf("invalid browser target: %s (valid options: %s)",
			opts.browser, browser.FormatValidTargets())
	}
	target := browser.Target(opts.browser)

	// Bare host convenience applies only without a base URL; with one,
	// schemeless text is a relative reference and must stay one.
	if opts.root.base == "" {
		ref = urlutil.NormalizeScheme(ref, "https")
	}

	ctx, err := urlvalue.NewContext(urlvalue.Options{
		BaseURL:            opts.root.base,
		FlattenBackslashes: opts.root.flattenBackslashes,
	})
	if err != nil {
		return fmt.Errorf("building resolution context: %w", err)
	}
	v, err := urlvalue.Of(ctx, ref)
	if err != nil {
		return err
	}
	urlmetrics.Observe(v)

	if v.InheritsPlaceholderAuthority() {
		return fmt.Errorf("refusing to open: %s has no real host", v.OriginalText())
	}
	if v.ReachesRootsParent() {
		return fmt.Errorf("refusing to open: %s climbs above the root", v.OriginalText())
	}
	if err := security.CheckCredentials(v); err != nil {
		return fmt.Errorf("refusing to open: %w", err)
	}
	if security.HasUserInfo(v) {
		return fmt.Errorf("refusing to open: authority of %s carries userinfo", security.Redact(v))
	}
	if opts.httpsOnly {
		if err := urlutil.ValidateHTTPSOnly(v.Text()); err != nil {
			return fmt.Errorf("refusing to open: %w", err)
		}
	}

	log.WithOperation("launch").Debug("opening browser",
		"url", v.Text(), "target", opts.browser)
	if err := browser.Open(v.Text(), target); err != nil {
		return err
	}

	if browser.ResolveTarget(target) == browser.TargetNone {
		cliout.Success("%s is safe to open", cliout.URL(v.Text()))
	} else {
		cliout.Success("Opened %s in %s", cliout.URL(v.Text()), browser.GetTargetDisplayName(target))
	}
	return nil
}
