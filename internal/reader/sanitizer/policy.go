package sanitizer

import (
	"strings"

	"github.com/dsh2dsh/bluemonday/v2"
)

var (
	allowSchemes = []string{
		"apt",
		"bitcoin",
		"callto",
		"ed2k",
		"facetime",
		"feed",
		"ftp",
		"geo",
		"git",
		"gopher",
		"irc",
		"irc6",
		"ircs",
		"itms-apps",
		"itms",
		"magnet",
		"news",
		"nntp",
		"rtmp",
		"sftp",
		"sip",
		"sips",
		"skype",
		"spotify",
		"ssh",
		"steam",
		"svn",
		"svn+ssh",
		"tel",
		"webcal",
		"xmpp",
	}

	contentPolicy = bluemonday.UGCPolicy()
	titlePolicy   = bluemonday.StrictPolicy()
)

func init() {
	p := contentPolicy
	p.AddTargetBlankToFullyQualifiedLinks(true)
	p.AllowDataURIImages()
	p.AllowURLSchemes(allowSchemes...)
	p.RequireNoReferrerOnLinks(true)

	p.AllowAttrs("id").DeleteFromGlobally()

	p.SetAttr("controls", "controls").OnElements("audio", "video").
		SetAttr("loading", "lazy").OnElements("img")

	p.AllowAttrs("hidden").Globally()

	allowMathML(p)

	p.AllowAttrs("decoding").WithValues("sync", "async").OnElements("img").
		AllowAttrs("fetchpriority").WithValues("high", "low").OnElements("img")

	p.AllowAttrs("poster").OnElements("video").
		AllowAttrs("sizes").OnElements("img", "source").
		AllowAttrs("src").OnElements("audio", "source", "video")

	p.AllowElements("picture").
		AllowAttrs("type", "media", "srcset").OnElements("source")

	p.AllowAttrs("height", "width").Matching(bluemonday.Number).
		OnElements("video")
}

// StripTags removes all markup from s. Entities stay escaped.
func StripTags(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	return titlePolicy.Sanitize(s)
}

// SanitizeContent returns s with scripts, styles, external resources and
// everything else unsafe removed.
func SanitizeContent(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	return strings.TrimSpace(contentPolicy.Sanitize(s))
}

func allowMathML(p *bluemonday.Policy) {
	p.AllowAttrs("xmlns").OnElements("math")
	p.AllowNoAttrs().OnElements(
		"annotation", "annotation-xml", "maction", "merror", "mfrac", "mi",
		"mmultiscripts", "mn", "mo", "mover", "mpadded", "mphantom",
		"mprescripts", "mroot", "mrow", "ms", "mspace", "msqrt", "mstyle",
		"msub", "msubsup", "msup", "mtable", "mtd", "mtext", "mtr", "munder",
		"munderover", "semantics",
	)
}
