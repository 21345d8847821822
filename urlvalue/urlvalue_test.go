package urlvalue

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urlscope/urlscope-core/mediatype"
	"github.com/urlscope/urlscope-core/scheme"
)

func mustContext(t *testing.T, opts Options) *Context {
	t.Helper()
	ctx, err := NewContext(opts)
	require.NoError(t, err)
	return ctx
}

func TestOfNilContext(t *testing.T) {
	v, err := Of(nil, "http://example.com/")
	assert.Nil(t, v)
	assert.ErrorIs(t, err, ErrNilContext)
}

func TestOfDefault(t *testing.T) {
	v := OfDefault("https://example.com/a?b#c")
	assert.Equal(t, "https://example.com/a?b#c", v.Text())
	assert.Equal(t, "https", v.Scheme().Name())
	assert.Same(t, Default(), v.Context())
}

func TestNewContextRejectsBadBase(t *testing.T) {
	_, err := NewContext(Options{BaseURL: "gopher://example.com/"})
	assert.Error(t, err, "unknown base scheme")

	_, err = NewContext(Options{BaseURL: "relative/path"})
	assert.Error(t, err, "schemeless base")
}

func TestContextBaseText(t *testing.T) {
	ctx := mustContext(t, Options{BaseURL: "https://example.com/app/x/../"})
	base, ok := ctx.BaseText()
	assert.True(t, ok)
	assert.Equal(t, "https://example.com/app/", base, "base resolves on construction")

	base, ok = Default().BaseText()
	assert.False(t, ok)
	assert.Empty(t, base)
}

func TestCustomPlaceholder(t *testing.T) {
	ctx := mustContext(t, Options{PlaceholderAuthority: "missing.example"})
	assert.Equal(t, "missing.example", ctx.Placeholder())

	v, err := Of(ctx, "http:/a")
	require.NoError(t, err)
	assert.Equal(t, "http://missing.example/a", v.Text())
	assert.True(t, v.InheritsPlaceholderAuthority())
}

func TestCustomRegistry(t *testing.T) {
	reg := scheme.NewRegistry(scheme.New("gopher", scheme.Opts{
		RequiresAuthority: true,
		DefaultPort:       70,
	}))
	ctx := mustContext(t, Options{Schemes: reg})

	v, err := Of(ctx, "gopher://example.com/1")
	require.NoError(t, err)
	assert.True(t, v.Scheme().Known())
	auth, ok := v.Authority()
	assert.True(t, ok)
	assert.Equal(t, "example.com", auth)

	// The default registry still treats it as opaque text.
	v = OfDefault("gopher://example.com/1")
	assert.False(t, v.Scheme().Known())
	assert.False(t, v.Ranges().Decomposed())
}

func TestFlattenBackslashes(t *testing.T) {
	ctx := mustContext(t, Options{
		BaseURL:            `http://h/a/b/`,
		FlattenBackslashes: true,
	})

	v, err := Of(ctx, `..\c`)
	require.NoError(t, err)
	assert.Equal(t, "http://h/a/c", v.Text())
	assert.Equal(t, `..\c`, v.OriginalText(), "original text keeps the backslashes")

	// Without flattening a backslash is ordinary path material.
	plain := mustContext(t, Options{BaseURL: "http://h/a/b/"})
	v, err = Of(plain, `..\c`)
	require.NoError(t, err)
	assert.Equal(t, `http://h/a/b/..\c`, v.Text())
}

func TestEmptyReferenceIsBase(t *testing.T) {
	ctx := mustContext(t, Options{BaseURL: "https://example.com/a/b?q"})

	v, err := Of(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/a/b?q", v.Text())
	assert.Empty(t, v.OriginalText())
	query, ok := v.Query()
	assert.True(t, ok)
	assert.Equal(t, "?q", query)
	assert.False(t, v.ReachesRootsParent())
}

func TestEmptyReferenceInheritsPlaceholder(t *testing.T) {
	ctx := mustContext(t, Options{BaseURL: "http:/foo"})
	base, ok := ctx.BaseText()
	require.True(t, ok)
	require.Equal(t, "http://placeholder.invalid/foo", base)

	v, err := Of(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "http://placeholder.invalid/foo", v.Text())
	assert.True(t, v.InheritsPlaceholderAuthority())
}

func TestUndecomposableAccessors(t *testing.T) {
	v := OfDefault("gopher://h/p")
	assert.Equal(t, "gopher://h/p", v.Text())
	assert.False(t, v.Scheme().Known())

	_, ok := v.Authority()
	assert.False(t, ok, "authority")
	_, ok = v.Path()
	assert.False(t, ok, "path")
	_, ok = v.Query()
	assert.False(t, ok, "query")
	_, ok = v.Fragment()
	assert.False(t, ok, "fragment")
	_, ok = v.ContentMetadata()
	assert.False(t, ok, "content metadata")
	_, ok = v.ContentMediaType()
	assert.False(t, ok, "content media type")
}

func TestSchemelessWithoutBase(t *testing.T) {
	v := OfDefault("foo/bar")
	assert.Equal(t, "foo/bar", v.Text())
	assert.Equal(t, scheme.Unknown, v.Scheme())
	assert.False(t, v.Ranges().Decomposed())
}

func TestContentMediaType(t *testing.T) {
	v := OfDefault("data:text/plain;charset=utf-8,hello")
	mt, ok := v.ContentMediaType()
	require.True(t, ok)
	assert.Equal(t, "text", mt.Type())
	assert.Equal(t, "plain", mt.Subtype())
	charset, ok := mt.Param("charset")
	assert.True(t, ok)
	assert.Equal(t, "utf-8", charset)
}

func TestContentMediaTypeBase64Marker(t *testing.T) {
	v := OfDefault("data:text/plain;base64,AAAA")
	mt, ok := v.ContentMediaType()
	require.True(t, ok)
	assert.Equal(t, "text/plain", mt.String(), "base64 marker is not a parameter")
	assert.Empty(t, mt.Params())
}

func TestContentMediaTypeAbsent(t *testing.T) {
	// No comma: the metadata cannot be delimited.
	v := OfDefault("data:text/plain")
	_, ok := v.ContentMediaType()
	assert.False(t, ok)

	// Empty metadata is present but does not parse.
	v = OfDefault("data:,x")
	meta, ok := v.ContentMetadata()
	assert.True(t, ok)
	assert.Empty(t, meta)
	_, ok = v.ContentMediaType()
	assert.False(t, ok)

	// Unparseable metadata.
	v = OfDefault("data:text,x")
	_, ok = v.ContentMediaType()
	assert.False(t, ok)

	// Other schemes never have one.
	v = OfDefault("http://h/text/plain,x")
	_, ok = v.ContentMediaType()
	assert.False(t, ok)
}

func TestContentMediaTypeConcurrent(t *testing.T) {
	v := OfDefault("data:application/json;charset=utf-8,{}")

	var wg sync.WaitGroup
	results := make([]mediatype.MediaType, 8)
	for i := range results {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			mt, ok := v.ContentMediaType()
			if ok {
				results[i] = mt
			}
		}()
	}
	wg.Wait()

	want, ok := v.ContentMediaType()
	require.True(t, ok)
	for i, mt := range results {
		assert.Equal(t, want.String(), mt.String(), "goroutine %d", i)
	}
}

func TestEqual(t *testing.T) {
	ctx := mustContext(t, Options{BaseURL: "http://example.com/"})
	other := mustContext(t, Options{BaseURL: "http://example.com/"})

	a, err := Of(ctx, "a/b")
	require.NoError(t, err)
	b, err := Of(ctx, "a/b")
	require.NoError(t, err)
	c, err := Of(ctx, "a/./b")
	require.NoError(t, err)
	d, err := Of(other, "a/b")
	require.NoError(t, err)

	assert.True(t, a.Equal(b), "same text, same context")
	assert.True(t, a.Equal(a), "self")
	assert.False(t, a.Equal(c), "different text, same resolved form")
	assert.Equal(t, b.Text(), c.Text(), "precondition: c resolves like b")
	assert.False(t, a.Equal(d), "equal options are not the same context")
	assert.False(t, a.Equal(nil), "nil")
}

func TestStringMatchesText(t *testing.T) {
	v := OfDefault("https://example.com/x")
	assert.Equal(t, v.Text(), v.String())
}

func TestRangesLocateComponents(t *testing.T) {
	ctx := mustContext(t, Options{BaseURL: "http://a/b/c/d;p?q"})
	v, err := Of(ctx, "g?y#s")
	require.NoError(t, err)

	text := v.Text()
	require.Equal(t, "http://a/b/c/g?y#s", text)

	r := v.Ranges()
	for _, part := range []struct {
		name string
		span scheme.Span
		want string
	}{
		{"authority", r.Authority, "a"},
		{"path", r.Path, "/b/c/g"},
		{"query", r.Query, "?y"},
		{"fragment", r.Fragment, "#s"},
	} {
		got, ok := part.span.Slice(text)
		assert.True(t, ok, part.name)
		assert.Equal(t, part.want, got, part.name)
	}
}
