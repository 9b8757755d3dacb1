// Package markdown renders the small markdown subset used by agent info
// payloads into HTML.
//
// Render is a fixed chain of substitutions. Later rules assume earlier rules
// already fired, so the order of the chain is part of its contract. Input is
// trusted fixture text and is not escaped.
package markdown

import (
	"regexp"
	"strings"
)

type rule struct {
	pattern *regexp.Regexp
	replace func(string) string
	expand  string
}

func (r rule) apply(s string) string {
	if r.replace != nil {
		return r.pattern.ReplaceAllStringFunc(s, r.replace)
	}
	return r.pattern.ReplaceAllString(s, r.expand)
}

var (
	listItemPattern = regexp.MustCompile(`(?m)^- (.*)$`)
	listRunPattern  = regexp.MustCompile(`(?m)^<li class="ml-4">.*</li>(?:\n<li class="ml-4">.*</li>)*`)
)

var rules = []rule{
	{pattern: regexp.MustCompile(`(?m)^### (.*)$`), expand: `<h3 class="text-lg font-semibold mt-4 mb-2">$1</h3>`},
	{pattern: regexp.MustCompile(`(?m)^## (.*)$`), expand: `<h2 class="text-xl font-semibold mt-5 mb-2">$1</h2>`},
	{pattern: regexp.MustCompile(`(?m)^# (.*)$`), expand: `<h1 class="text-2xl font-bold mt-5 mb-3">$1</h1>`},
	{pattern: regexp.MustCompile(`\*\*(.+?)\*\*`), expand: `<strong>$1</strong>`},
	{pattern: regexp.MustCompile(`\*(.+?)\*`), expand: `<em>$1</em>`},
	{pattern: listItemPattern, expand: `<li class="ml-4">$1</li>`},
	{pattern: listRunPattern, replace: wrapList},
	{pattern: regexp.MustCompile("(?s)```(.*?)```"), expand: `<pre class="code-block"><code>$1</code></pre>`},
	{pattern: regexp.MustCompile("`([^`]*)`"), expand: `<code class="inline-code">$1</code>`},
	{pattern: regexp.MustCompile(`(?m)^> (.*)$`), expand: `<blockquote class="info-quote">$1</blockquote>`},
	{pattern: regexp.MustCompile(`\n`), expand: `<br />`},
}

// wrapList joins a run of adjacent list items into one container. The newlines
// between items are dropped so the line-break rule does not fire inside it.
func wrapList(run string) string {
	return `<ul class="my-2">` + strings.ReplaceAll(run, "\n", "") + `</ul>`
}

// Render converts markdown to HTML. It never fails; unterminated markers are
// left in the output as-is.
func Render(markdown string) string {
	out := markdown
	for _, r := range rules {
		out = r.apply(out)
	}
	return out
}
