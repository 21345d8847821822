package urlvalue

import (
	"errors"
	"fmt"
	"strings"

	"github.com/urlscope/urlscope-core/scheme"
)

// PlaceholderAuthority is substituted when a resolved URL requires an
// authority and neither the reference nor the base supplies one. The
// .invalid TLD is reserved by RFC 2606, so the placeholder can never
// name a real host, which makes the substitution detectable afterwards.
const PlaceholderAuthority = "placeholder.invalid"

// ErrNilContext reports a nil *Context passed to Of.
var ErrNilContext = errors.New("urlvalue: nil context")

// Options configures a Context. The zero value works: no base URL, the
// default scheme registry, and the standard placeholder authority.
type Options struct {
	// BaseURL is the absolute URL that relative references resolve
	// against. Empty means no base: references must carry their own
	// scheme to be decomposable.
	BaseURL string

	// PlaceholderAuthority overrides the authority substituted when one
	// is required but absent. Empty means PlaceholderAuthority.
	PlaceholderAuthority string

	// Schemes resolves scheme names during decomposition. Nil means
	// scheme.DefaultRegistry().
	Schemes *scheme.Registry

	// FlattenBackslashes rewrites '\' to '/' before parsing, so text
	// pasted from Windows-style paths resolves like its forward-slash
	// form. It applies to the base URL and to every reference resolved
	// under the context. Original text is reported as given.
	FlattenBackslashes bool
}

// Context is an immutable bundle of base URL and resolution settings.
// Build one and share it across every Value that should be interpreted
// the same way; Value equality is scoped to a single Context.
type Context struct {
	placeholder string
	registry    *scheme.Registry
	flatten     bool

	// base holds the split of the already-resolved base URL text, nil
	// when the context has none.
	base *urlParts
}

// NewContext builds a Context. The base URL, when given, is resolved and
// decomposed once up front; a base whose scheme is unknown or whose text
// cannot be decomposed is an error, because such a base cannot lend
// structure to the references resolved under it.
func NewContext(opts Options) (*Context, error) {
	ctx := &Context{
		placeholder: opts.PlaceholderAuthority,
		registry:    opts.Schemes,
		flatten:     opts.FlattenBackslashes,
	}
	if ctx.placeholder == "" {
		ctx.placeholder = PlaceholderAuthority
	}
	if ctx.registry == nil {
		ctx.registry = scheme.DefaultRegistry()
	}
	if opts.BaseURL == "" {
		return ctx, nil
	}

	baseText := opts.BaseURL
	if ctx.flatten {
		baseText = strings.ReplaceAll(baseText, `\`, "/")
	}
	res := absolutize(ctx, baseText)
	if !res.scheme.Known() {
		return nil, fmt.Errorf("urlvalue: base URL %q has an unknown scheme", opts.BaseURL)
	}
	if !res.ranges.Decomposed() {
		return nil, fmt.Errorf("urlvalue: base URL %q cannot be decomposed", opts.BaseURL)
	}
	base := splitURL(res.text, ctx.registry)
	ctx.base = &base
	return ctx, nil
}

// BaseText returns the resolved text of the context's base URL, or
// ("", false) when the context has none.
func (c *Context) BaseText() (string, bool) {
	if c.base == nil {
		return "", false
	}
	return c.base.text, true
}

// Placeholder returns the authority substituted for required-but-missing
// authorities under this context.
func (c *Context) Placeholder() string { return c.placeholder }

var defaultContext = &Context{
	placeholder: PlaceholderAuthority,
	registry:    scheme.DefaultRegistry(),
}

// Default returns the shared context with no base URL, the default scheme
// registry, and the standard placeholder authority.
func Default() *Context { return defaultContext }
