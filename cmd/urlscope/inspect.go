package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/urlscope/urlscope-core/cliout"
	"github.com/urlscope/urlscope-core/logutil"
	"github.com/urlscope/urlscope-core/security"
	"github.com/urlscope/urlscope-core/urlmetrics"
	"github.com/urlscope/urlscope-core/urlvalue"
	"github.com/urlscope/urlscope-core/valuecache"
)

type inspectOptions struct {
	root   *rootOptions
	stats  bool
	strict bool
}

func newInspectCommand(root *rootOptions) *cobra.Command {
	opts := &inspectOptions{root: root}
	cmd := &cobra.Command{
		Use:   "inspect [url ...]",
		Short: "Resolve URL references and report their structure",
		Long: `Inspect resolves each argument against the configured base URL and
prints the resolved text together with its structural components and
anomaly flags. With no arguments, references are read from stdin, one
per line.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, opts, args)
		},
	}

	cmd.Flags().BoolVar(&opts.stats, "stats", false, "append cache and anomaly summaries")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "exit nonzero when any reference is flagged")

	return cmd
}

// inspectReport is the per-reference result. Component fields are pointers
// so structured output keeps the present-but-empty versus absent
// distinction.
type inspectReport struct {
	Input                string  `json:"input" yaml:"input"`
	Resolved             string  `json:"resolved" yaml:"resolved"`
	Scheme               string  `json:"scheme,omitempty" yaml:"scheme,omitempty"`
	Authority            *string `json:"authority,omitempty" yaml:"authority,omitempty"`
	Path                 *string `json:"path,omitempty" yaml:"path,omitempty"`
	Query                *string `json:"query,omitempty" yaml:"query,omitempty"`
	Fragment             *string `json:"fragment,omitempty" yaml:"fragment,omitempty"`
	ContentMetadata      *string `json:"contentMetadata,omitempty" yaml:"contentMetadata,omitempty"`
	MediaType            string  `json:"mediaType,omitempty" yaml:"mediaType,omitempty"`
	RootTraversal        bool    `json:"rootTraversal" yaml:"rootTraversal"`
	PlaceholderAuthority bool    `json:"placeholderAuthority" yaml:"placeholderAuthority"`
	UserInfo             bool    `json:"userInfo" yaml:"userInfo"`
	Undecomposable       bool    `json:"undecomposable" yaml:"undecomposable"`
}

func (r inspectReport) flagged() bool {
	return r.Undecomposable || r.RootTraversal || r.PlaceholderAuthority || r.UserInfo
}

type inspectStats struct {
	References             int `json:"references" yaml:"references"`
	Flagged                int `json:"flagged" yaml:"flagged"`
	Undecomposable         int `json:"undecomposable" yaml:"undecomposable"`
	RootTraversals         int `json:"rootTraversals" yaml:"rootTraversals"`
	PlaceholderAuthorities int `json:"placeholderAuthorities" yaml:"placeholderAuthorities"`
	UserInfoAuthorities    int `json:"userInfoAuthorities" yaml:"userInfoAuthorities"`
	CacheHits              int `json:"cacheHits" yaml:"cacheHits"`
	CacheMisses            int `json:"cacheMisses" yaml:"cacheMisses"`
	CacheEvictions         int `json:"cacheEvictions" yaml:"cacheEvictions"`
	CacheEntries           int `json:"cacheEntries" yaml:"cacheEntries"`
}

type inspectOutput struct {
	Results []inspectReport `json:"results" yaml:"results"`
	Stats   *inspectStats   `json:"stats,omitempty" yaml:"stats,omitempty"`
}

func runInspect(cmd *cobra.Command, opts *inspectOptions, args []string) error {
	log := logutil.NewLogger("inspect")

	ctx, err := urlvalue.NewContext(urlvalue.Options{
		BaseURL:            opts.root.base,
		FlattenBackslashes: opts.root.flattenBackslashes,
	})
	if err != nil {
		return fmt.Errorf("building resolution context: %w", err)
	}
	mgr, err := valuecache.NewManager(ctx, valuecache.Options{})
	if err != nil {
		return err
	}
	log.Debug("resolution context ready",
		"base", opts.root.base,
		"flattenBackslashes", opts.root.flattenBackslashes)

	inputs := args
	if len(inputs) == 0 {
		inputs, err = readReferences(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading references: %w", err)
		}
	}
	if len(inputs) == 0 {
		return errors.New("no URL references to inspect")
	}

	out := inspectOutput{Results: make([]inspectReport, 0, len(inputs))}
	stats := inspectStats{References: len(inputs)}
	for _, ref := range inputs {
		v := mgr.Get(ref)
		urlmetrics.Observe(v)
		rep := newInspectReport(ref, v)
		log.WithScheme(rep.Scheme).Debug("resolved reference",
			"input", ref, "resolved", rep.Resolved)

		if rep.flagged() {
			stats.Flagged++
		}
		if rep.Undecomposable {
			stats.Undecomposable++
		}
		if rep.RootTraversal {
			stats.RootTraversals++
		}
		if rep.PlaceholderAuthority {
			stats.PlaceholderAuthorities++
		}
		if rep.UserInfo {
			stats.UserInfoAuthorities++
		}
		out.Results = append(out.Results, rep)
	}

	cs := mgr.GetStats()
	stats.CacheHits = cs.Hits
	stats.CacheMisses = cs.Misses
	stats.CacheEvictions = cs.Evictions
	stats.CacheEntries = mgr.Len()
	if opts.stats {
		out.Stats = &stats
	}

	if err := cliout.Print(out, func() {
		for _, rep := range out.Results {
			printInspectReport(rep)
		}
		if out.Stats != nil {
			printInspectStats(*out.Stats)
		}
	}); err != nil {
		return err
	}

	if opts.strict && stats.Flagged > 0 {
		return fmt.Errorf("%d of %d references flagged", stats.Flagged, stats.References)
	}
	return nil
}

// readReferences reads one reference per line, skipping blank lines.
func readReferences(r io.Reader) ([]string, error) {
	var refs []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		refs = append(refs, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return refs, nil
}

func newInspectReport(input string, v *urlvalue.Value) inspectReport {
	rep := inspectReport{
		Input:                input,
		Resolved:             v.Text(),
		Scheme:               v.Scheme().Name(),
		RootTraversal:        v.ReachesRootsParent(),
		PlaceholderAuthority: v.InheritsPlaceholderAuthority(),
		UserInfo:             security.HasUserInfo(v),
		Undecomposable:       !v.Scheme().Known(),
	}
	rep.Authority = optComponent(v.Authority())
	rep.Path = optComponent(v.Path())
	rep.Query = optComponent(v.Query())
	rep.Fragment = optComponent(v.Fragment())
	rep.ContentMetadata = optComponent(v.ContentMetadata())
	if mt, ok := v.ContentMediaType(); ok {
		rep.MediaType = mt.String()
	}
	return rep
}

func optComponent(s string, ok bool) *string {
	if !ok {
		return nil
	}
	return &s
}

func printInspectReport(rep inspectReport) {
	cliout.Header(rep.Input)
	cliout.Label("Resolved", cliout.URL(rep.Resolved))

	schemeValue := rep.Scheme
	if schemeValue == "" {
		schemeValue = "(none)"
	}
	if rep.Undecomposable {
		schemeValue += " " + cliout.Status("unknown")
	}
	cliout.Label("Scheme", schemeValue)

	printComponent("Authority", rep.Authority)
	printComponent("Path", rep.Path)
	printComponent("Query", rep.Query)
	printComponent("Fragment", rep.Fragment)
	printComponent("Metadata", rep.ContentMetadata)
	if rep.MediaType != "" {
		cliout.Label("Media Type", rep.MediaType)
	}
	cliout.Label("Status", strings.Join(statusBadges(rep), " "))
}

func printComponent(label string, value *string) {
	if value == nil {
		return
	}
	cliout.Label(label, *value)
}

func statusBadges(rep inspectReport) []string {
	var badges []string
	if rep.Undecomposable {
		badges = append(badges, cliout.Status("undecomposable"))
	}
	if rep.RootTraversal {
		badges = append(badges, cliout.Status("root-traversal"))
	}
	if rep.PlaceholderAuthority {
		badges = append(badges, cliout.Status("placeholder"))
	}
	if rep.UserInfo {
		badges = append(badges, cliout.Status("userinfo"))
	}
	if len(badges) == 0 {
		badges = append(badges, cliout.Status("ok"))
	}
	return badges
}

func printInspectStats(stats inspectStats) {
	cliout.Header("Summary")
	cliout.Table([]string{"Metric", "Value"}, []cliout.TableRow{
		{"Metric": "References", "Value": strconv.Itoa(stats.References)},
		{"Metric": "Flagged", "Value": strconv.Itoa(stats.Flagged)},
		{"Metric": "Undecomposable", "Value": strconv.Itoa(stats.Undecomposable)},
		{"Metric": "Root traversals", "Value": strconv.Itoa(stats.RootTraversals)},
		{"Metric": "Placeholder authorities", "Value": strconv.Itoa(stats.PlaceholderAuthorities)},
		{"Metric": "Userinfo authorities", "Value": strconv.Itoa(stats.UserInfoAuthorities)},
		{"Metric": "Cache hits", "Value": strconv.Itoa(stats.CacheHits)},
		{"Metric": "Cache misses", "Value": strconv.Itoa(stats.CacheMisses)},
		{"Metric": "Cache evictions", "Value": strconv.Itoa(stats.CacheEvictions)},
		{"Metric": "Cache entries", "Value": strconv.Itoa(stats.CacheEntries)},
	})
	cliout.Newline()
}
