package publish

import "github.com/microcosm-cc/bluemonday"

// allowedTags is the fixed tag allow-list for published portfolio HTML:
// common structural and phrasing content, tables, and images. Anything
// else, notably script and event-handler bearing elements, is stripped.
var allowedTags = []string{
	"address", "article", "aside", "footer", "header",
	"h1", "h2", "h3", "h4", "h5", "h6", "hgroup",
	"main", "nav", "section",
	"blockquote", "dd", "div", "dl", "dt", "figcaption", "figure",
	"hr", "li", "ol", "p", "pre", "ul",
	"a", "abbr", "b", "bdi", "bdo", "br", "cite", "code", "data", "dfn",
	"em", "i", "kbd", "mark", "q", "rb", "rp", "rt", "rtc", "ruby",
	"s", "samp", "small", "span", "strong", "sub", "sup", "time", "u",
	"var", "wbr",
	"caption", "col", "colgroup", "table", "tbody", "td", "tfoot", "th",
	"thead", "tr",
	"img",
}

// newPolicy builds the sanitization policy for portfolio HTML. The
// globally-allowed attribute set (href, src, alt, title, style) is
// deliberately permissive; sanitization here reduces the XSS surface, it
// does not eliminate it.
func newPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements(allowedTags...)
	p.AllowAttrs("href", "src", "alt", "title", "style").Globally()
	p.AllowURLSchemes("http", "https", "mailto")
	return p
}
