package render

import (
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hhhapz/formhtml/form"
)

func child(heading string, content ...form.Element) form.Child {
	return form.Child{Heading: heading, Form: &form.Form{Content: content}}
}

func doc(content ...form.Element) *form.Form {
	return &form.Form{Content: content}
}

func mustRender(t *testing.T, f *form.Form, values []form.Value, opts Options) string {
	t.Helper()
	out, err := Render(f, values, opts)
	require.NoError(t, err)
	return out
}

func TestRenderContainer(t *testing.T) {
	cases := []struct {
		name     string
		form     *form.Form
		opts     Options
		expected string
	}{
		{
			name:     "empty legacy",
			form:     doc(),
			expected: `<div class="article"></div>`,
		},
		{
			name:     "empty html5",
			form:     doc(),
			opts:     Options{HTML5: true},
			expected: `<article></article>`,
		},
		{
			name:     "conspicuous root",
			form:     &form.Form{Conspicuous: true},
			expected: `<div class="article conspicuous"></div>`,
		},
		{
			name:     "extra classes sorted",
			form:     doc(),
			opts:     Options{HTML5: true, ClassNames: []string{"zeta", "alpha"}},
			expected: `<article class="alpha zeta"></article>`,
		},
		{
			name:     "title and edition",
			form:     doc(form.Text("x")),
			opts:     Options{Title: "Terms & Conditions", Edition: "1e"},
			expected: `<div class="article"><h1>Terms &amp; Conditions</h1><p class="version">1e</p><p>x</p></div>`,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, mustRender(t, c.form, nil, c.opts))
		})
	}
}

func TestRenderHash(t *testing.T) {
	f := doc(form.Text(`"quoted"`))
	digest, err := form.Hash(f)
	require.NoError(t, err)

	out := mustRender(t, f, nil, Options{Hash: true, Smartify: true})
	assert.Equal(t, `<div class="article"><p class="hash"><code>`+digest+`</code></p><p>“quoted”</p></div>`, out)
}

func TestRenderInline(t *testing.T) {
	f := doc(
		form.Text("a < b "),
		form.Use("Buyer"),
		form.Text(" means "),
		form.Definition("Buyer"),
		form.Text(". See "),
		form.Reference("Payment"),
	)

	legacy := mustRender(t, f, nil, Options{})
	assert.Equal(t, `<div class="article"><p>a &lt; b <span class="term">Buyer</span> means <span class="definition">Buyer</span>. See <span class="reference">Payment</span></p></div>`, legacy)

	html5 := mustRender(t, f, nil, Options{HTML5: true})
	assert.Equal(t, `<article><p>a &lt; b <span class="term">Buyer</span> means <dfn>Buyer</dfn>. See <span class="reference">Payment</span></p></article>`, html5)
}

func TestRenderBlanks(t *testing.T) {
	f := doc(
		form.Text("a"),
		form.Blank{},
		child("", form.Text("c"), form.Blank{}),
		form.Text("d"),
		form.Blank{},
	)

	t.Run("offsets are absolute", func(t *testing.T) {
		values := []form.Value{
			{Blank: form.Path{}.Content(4), Value: "second"},
			{Blank: form.Path{}.Content(1), Value: "first"},
			{Blank: form.Path{}.Content(2).Form().Content(1), Value: "nested"},
		}
		out := mustRender(t, f, values, Options{})
		assert.Equal(t, `<div class="article"><p>a<span class="blank">first</span></p><div class="section"><p>c<span class="blank">nested</span></p></div><p>d<span class="blank">second</span></p></div>`, out)
	})

	t.Run("relative offset does not match", func(t *testing.T) {
		values := []form.Value{{Blank: form.Path{}.Content(1), Value: "x"}}
		out := mustRender(t, f, values, Options{})
		assert.Equal(t, 1, strings.Count(out, `<span class="blank">x</span>`))
		assert.Equal(t, 2, strings.Count(out, `<span class="blank">[•]</span>`))
	})

	t.Run("first match wins", func(t *testing.T) {
		values := []form.Value{
			{Blank: form.Path{}.Content(1), Value: "one"},
			{Blank: form.Path{}.Content(1), Value: "two"},
		}
		out := mustRender(t, f, values, Options{})
		assert.Contains(t, out, `<span class="blank">one</span>`)
		assert.NotContains(t, out, "two")
	})

	t.Run("values are escaped", func(t *testing.T) {
		values := []form.Value{{Blank: form.Path{}.Content(1), Value: `<b>&"`}}
		out := mustRender(t, f, values, Options{})
		assert.Contains(t, out, `<span class="blank">&lt;b&gt;&amp;&#34;</span>`)
	})

	t.Run("complete", func(t *testing.T) {
		values := []form.Value{{Blank: form.Path{}.Content(1), Value: "first"}}
		out, err := Render(f, values, Options{Complete: true})
		assert.ErrorIs(t, err, ErrUnfilledBlank)
		assert.Empty(t, out)

		var unfilled *UnfilledBlankError
		require.ErrorAs(t, err, &unfilled)
		assert.True(t, unfilled.Path.Equal(form.Path{}.Content(2).Form().Content(1)))
	})
}

func TestRenderHeadings(t *testing.T) {
	f := doc(
		form.Text("See "),
		form.Reference("Payment"),
		child("Payment", form.Text("a")),
		child("Payment", form.Text("b")),
		form.Reference("Payment & Fees"),
	)

	t.Run("without ids", func(t *testing.T) {
		out := mustRender(t, f, nil, Options{})
		assert.Equal(t, `<div class="article"><p>See <span class="reference">Payment</span></p><div class="section"><h1>Payment</h1><p>a</p></div><div class="section"><h1>Payment</h1><p>b</p></div><p><span class="reference">Payment &amp; Fees</span></p></div>`, out)
	})

	t.Run("with ids", func(t *testing.T) {
		out := mustRender(t, f, nil, Options{IDs: true})
		assert.Equal(t, `<div class="article"><p>See <a class="reference" href="#payment">Payment</a></p><div class="section"><h1 id="payment">Payment</h1><p>a</p></div><div class="section"><h1 id="payment-1">Payment</h1><p>b</p></div><p><a class="reference" href="#payment--fees">Payment &amp; Fees</a></p></div>`, out)
	})

	t.Run("title shifts depth", func(t *testing.T) {
		out := mustRender(t, doc(child("Scope", form.Text("a"))), nil, Options{Title: "Agreement", HTML5: true})
		assert.Equal(t, `<article><h1>Agreement</h1><section><h2>Scope</h2><p>a</p></section></article>`, out)
	})

	t.Run("base depth", func(t *testing.T) {
		out := mustRender(t, doc(child("Scope", form.Text("a"))), nil, Options{Depth: 2, HTML5: true})
		assert.Equal(t, `<article><section><h3>Scope</h3><p>a</p></section></article>`, out)
	})

	t.Run("deep nesting", func(t *testing.T) {
		inner := child("H7", form.Text("leaf"))
		for i := 6; i >= 1; i-- {
			inner = child("H"+strconv.Itoa(i), inner)
		}
		out := mustRender(t, doc(inner), nil, Options{HTML5: true})
		assert.Contains(t, out, `<h6>H6</h6>`)
		assert.Contains(t, out, `<span class="h7">H7</span>`)
		assert.NotContains(t, out, "<h7")

		out = mustRender(t, doc(inner), nil, Options{HTML5: true, IDs: true})
		assert.Contains(t, out, `<span class="h7" id="h7">H7</span>`)
	})
}

func TestRenderSeriesLayout(t *testing.T) {
	plain := child("", form.Text("a"))
	loud := form.Child{Form: &form.Form{Content: []form.Element{form.Text("b")}, Conspicuous: true}}

	t.Run("sections", func(t *testing.T) {
		out := mustRender(t, doc(plain, loud), nil, Options{})
		assert.Equal(t, `<div class="article"><div class="section"><p>a</p></div><div class="conspicuous section"><p>b</p></div></div>`, out)

		out = mustRender(t, doc(plain, loud), nil, Options{HTML5: true})
		assert.Equal(t, `<article><section><p>a</p></section><section class="conspicuous"><p>b</p></section></article>`, out)
	})

	t.Run("lists", func(t *testing.T) {
		out := mustRender(t, doc(plain, loud), nil, Options{Lists: true})
		assert.Equal(t, `<div class="article"><ol><li><p>a</p></li><li class="conspicuous"><p>b</p></li></ol></div>`, out)
	})

	t.Run("a heading forces sections", func(t *testing.T) {
		headed := child("B", form.Text("b"))
		out := mustRender(t, doc(plain, headed), nil, Options{Lists: true})
		assert.Equal(t, `<div class="article"><div class="section"><p>a</p></div><div class="section"><h1>B</h1><p>b</p></div></div>`, out)
	})

	t.Run("a nested heading forces sections", func(t *testing.T) {
		nested := child("", child("Deep", form.Text("x")))
		out := mustRender(t, doc(plain, nested), nil, Options{Lists: true, HTML5: true})
		assert.Equal(t, `<article><section><p>a</p></section><section><section><h2>Deep</h2><p>x</p></section></section></article>`, out)
	})

	t.Run("nested lists", func(t *testing.T) {
		nested := child("", form.Text("x"), child("", form.Text("y")))
		out := mustRender(t, doc(nested), nil, Options{Lists: true})
		assert.Equal(t, `<div class="article"><ol><li><p>x</p><ol><li><p>y</p></li></ol></li></ol></div>`, out)
	})
}

func TestRenderEmptyHeading(t *testing.T) {
	f, err := form.Parse([]byte(`{"content": [
		{"heading": "", "form": {"content": ["a"]}},
		{"form": {"content": ["b"]}}
	]}`))
	require.NoError(t, err)

	out := mustRender(t, f, nil, Options{HTML5: true, Lists: true})
	assert.Equal(t, `<article><section><h1></h1><p>a</p></section><section><p>b</p></section></article>`, out)
}

func TestRenderAnnotations(t *testing.T) {
	f := doc(
		form.Text("intro"),
		child("Scope", form.Text("x"), form.Blank{}),
	)
	annotations := []form.Annotation{
		{Path: form.Path{}.Content(0), Level: "info", Message: "Root <note>"},
		{Path: form.Path{}.Content(1).Form().Content(1), Level: "warning", Message: "Fill this"},
		{Path: form.Path{}.Content(9).Form().Content(0), Level: "error", Message: "nowhere"},
	}

	out := mustRender(t, f, nil, Options{Annotations: annotations})
	assert.Equal(t, `<div class="article"><div class="annotation info"><p>Root &lt;note&gt;</p></div><p>intro</p><div class="section"><h1>Scope</h1><div class="annotation warning"><p>Fill this</p></div><p>x<span class="blank">[•]</span></p></div></div>`, out)
	assert.NotContains(t, out, "nowhere")

	out = mustRender(t, f, nil, Options{Annotations: annotations, HTML5: true})
	assert.Contains(t, out, `<section><h1>Scope</h1><aside class="annotation warning"><p>Fill this</p></aside><p>x`)

	out = mustRender(t, f, nil, Options{Annotations: []form.Annotation{
		{Path: form.Path{}.Content(0), Level: "a", Message: "sorted"},
	}})
	assert.Contains(t, out, `<div class="a annotation"><p>sorted</p></div>`)
}

func TestRenderStructure(t *testing.T) {
	f := doc(
		form.Text("Preamble "),
		form.Blank{},
		child("Parties", form.Definition("Buyer"), form.Text(" is "), form.Blank{}),
		child("Price", form.Text("The "), form.Use("Buyer"), form.Text(" pays."), child("Late Payment", form.Text("Interest."))),
	)
	values := []form.Value{
		{Blank: form.Path{}.Content(2).Form().Content(2), Value: "Acme"},
	}

	out := mustRender(t, f, values, Options{HTML5: true, IDs: true})
	d, err := goquery.NewDocumentFromReader(strings.NewReader(out))
	require.NoError(t, err)

	var headings []string
	d.Find("article > section > h1").Each(func(_ int, s *goquery.Selection) {
		headings = append(headings, s.Text())
	})
	assert.Equal(t, []string{"Parties", "Price"}, headings)
	assert.Equal(t, "late-payment", d.Find("section section h2").AttrOr("id", ""))

	var blanks []string
	d.Find("span.blank").Each(func(_ int, s *goquery.Selection) {
		blanks = append(blanks, s.Text())
	})
	assert.Equal(t, []string{"[•]", "Acme"}, blanks)
	assert.Equal(t, "Buyer", d.Find("dfn").Text())
}

func TestRenderDeterministic(t *testing.T) {
	f := doc(
		form.Reference("A"),
		child("A", form.Blank{}),
		child("A", form.Text("x")),
		form.Component{
			Reference: form.ComponentReference{
				Component: "c",
				Version:   "1",
				Substitutions: form.Substitutions{
					Terms:    map[string]string{"d": "4", "c": "3", "b": "2", "a": "1"},
					Headings: map[string]string{"z": "y", "x": "w"},
					Blanks:   map[int]string{3: "c", 1: "a", 2: "b"},
				},
			},
		},
	)
	opts := Options{IDs: true, HTML5: true}

	first := mustRender(t, f, nil, opts)

	var wg sync.WaitGroup
	outputs := make([]string, 8)
	for i := range outputs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			outputs[i], _ = Render(f, nil, opts)
		}(i)
	}
	wg.Wait()

	for _, out := range outputs {
		assert.Equal(t, first, out)
	}
}

func TestRenderErrors(t *testing.T) {
	t.Run("nil form", func(t *testing.T) {
		_, err := Render(nil, nil, Options{})
		assert.ErrorIs(t, err, ErrMissingField)
	})

	t.Run("child without form", func(t *testing.T) {
		out, err := Render(doc(form.Text("a"), form.Child{Heading: "Broken"}), nil, Options{})
		assert.ErrorIs(t, err, ErrMissingField)
		assert.Empty(t, out)

		var missing *MissingFieldError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "missing form at [content 1 form]", missing.Error())
	})

	t.Run("unknown component style", func(t *testing.T) {
		_, err := Render(doc(), nil, Options{ComponentStyle: "bogus"})
		assert.ErrorIs(t, err, ErrConfig)
		assert.EqualError(t, err, `unknown component style: "bogus"`)
	})
}
