// Package render converts document Markdown into display HTML. LaTeX math
// delimiters are lifted out before rendering and reinserted as placeholder
// elements a client-side renderer (KaTeX) can hydrate.
package render

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM, extension.Linkify, extension.Typographer),
	goldmark.WithRendererOptions(gmhtml.WithUnsafe()),
)

var (
	blockMathRe = regexp.MustCompile(`(?s)\$\$(.+?)\$\$`)
	newlineRunRe = regexp.MustCompile(`\n+`)
)

type mathSpan struct {
	latex string
	block bool
}

// ToHTML renders Markdown with $...$ and $$...$$ math support.
func ToHTML(markdown string) string {
	// Collapse double-escaped backslashes before anything else, then
	// normalize newlines.
	input := strings.ReplaceAll(markdown, `\\`, `\`)
	input = strings.NewReplacer("\r\n", "\n", "\r", "\n").Replace(input)

	var spans []mathSpan
	token := func(latex string, block bool) string {
		spans = append(spans, mathSpan{latex: latex, block: block})
		return fmt.Sprintf("@@MATH%d@@", len(spans)-1)
	}

	input = blockMathRe.ReplaceAllStringFunc(input, func(match string) string {
		inner := match[2 : len(match)-2]
		return token(inner, true)
	})
	input = extractInlineMath(input, token)

	var buf bytes.Buffer
	if err := md.Convert([]byte(input), &buf); err != nil {
		return "<pre>" + escapeAttr(markdown) + "</pre>"
	}
	out := buf.String()

	for i, span := range spans {
		placeholder := fmt.Sprintf("@@MATH%d@@", i)
		var element string
		if span.block {
			element = fmt.Sprintf(`<div data-type="block-math" data-latex="%s"></div>`, escapeAttr(normalizeLatex(span.latex)))
			// A block placeholder stands alone, so drop the paragraph the
			// renderer wrapped around it.
			out = strings.ReplaceAll(out, "<p>"+placeholder+"</p>", element)
		} else {
			element = fmt.Sprintf(`<span data-type="inline-math" data-latex="%s"></span>`, escapeAttr(normalizeLatex(span.latex)))
		}
		out = strings.ReplaceAll(out, placeholder, element)
	}
	return out
}

// extractInlineMath replaces $...$ runs with tokens. A dollar preceded by an
// odd number of backslashes is escaped and does not delimit math.
func extractInlineMath(s string, token func(string, bool) string) string {
	var b strings.Builder
	i := 0
	for i < len(s) {
		if s[i] != '$' || escapedAt(s, i) {
			b.WriteByte(s[i])
			i++
			continue
		}
		j := i + 1
		for j < len(s) && (s[j] != '$' || escapedAt(s, j)) {
			j++
		}
		if j >= len(s) || j == i+1 {
			// Unterminated or empty pair; leave the dollar alone.
			b.WriteByte(s[i])
			i++
			continue
		}
		b.WriteString(token(s[i+1:j], false))
		i = j + 1
	}
	return b.String()
}

func escapedAt(s string, pos int) bool {
	backslashes := 0
	for k := pos - 1; k >= 0 && s[k] == '\\'; k-- {
		backslashes++
	}
	return backslashes%2 == 1
}

// normalizeLatex collapses double-escaped backslashes, normalizes newlines
// and trims surrounding whitespace.
func normalizeLatex(latex string) string {
	out := strings.ReplaceAll(latex, `\\`, `\`)
	out = strings.NewReplacer("\r\n", "\n", "\r", "\n").Replace(out)
	out = strings.TrimSpace(out)
	return newlineRunRe.ReplaceAllString(out, "\n")
}

// escapeAttr makes LaTeX safe inside an HTML attribute.
func escapeAttr(s string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		`"`, "&quot;",
		"<", "&lt;",
		">", "&gt;",
	)
	return replacer.Replace(s)
}
