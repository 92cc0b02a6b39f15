package lint

import (
	"bytes"
	"net/url"
	"strings"

	"mvdan.cc/xurls/v2"

	"github.com/MrSnakeDoc/readinglist/internal/domain"
	"github.com/MrSnakeDoc/readinglist/internal/render"
	"github.com/MrSnakeDoc/readinglist/internal/sources/markdown"
)

// Rule names
const (
	RuleMissingTitle     = "missing-title"
	RuleEntryTitle       = "entry-title"
	RuleEntryURL         = "entry-url"
	RuleEmptySection     = "empty-section"
	RuleConsecutiveBlank = "consecutive-blank"
	RuleRoundTrip        = "round-trip"
	RuleUnparsedItem     = "unparsed-item"
	RuleUnknownKind      = "unknown-kind"
	RuleMarkdownLink     = "markdown-link"
)

type rule struct {
	name     string
	severity Severity
	check    func(c *checker)
}

var rules = []rule{
	{RuleMissingTitle, SeverityWarning, checkMissingTitle},
	{RuleEntryTitle, SeverityError, checkEntryTitle},
	{RuleEntryURL, SeverityError, checkEntryURL},
	{RuleEmptySection, SeverityError, checkEmptySection},
	{RuleConsecutiveBlank, SeverityWarning, checkConsecutiveBlank},
	{RuleRoundTrip, SeverityError, checkRoundTrip},
	{RuleUnparsedItem, SeverityWarning, checkUnparsedItem},
	{RuleUnknownKind, SeverityWarning, checkUnknownKind},
	{RuleMarkdownLink, SeverityError, checkMarkdownLink},
}

// Rules returns the names of all rules in execution order.
func Rules() []string {
	names := make([]string, 0, len(rules))
	for _, r := range rules {
		names = append(names, r.name)
	}
	return names
}

// IsRule reports whether name is a known rule.
func IsRule(name string) bool {
	for _, r := range rules {
		if r.name == name {
			return true
		}
	}
	return false
}

var strictURL = xurls.Strict()

func checkMissingTitle(c *checker) {
	if c.doc.TitleLine == 0 {
		c.addf(0, "document has no level-1 title")
	}
}

func checkEntryTitle(c *checker) {
	for _, e := range c.doc.Entries() {
		if strings.TrimSpace(e.Title) == "" {
			c.addf(e.Line, "entry has an empty title")
		}
	}
}

func checkEntryURL(c *checker) {
	for _, e := range c.doc.Entries() {
		if msg := validateURL(e.URL); msg != "" {
			c.addf(e.Line, "%s: %q", msg, e.URL)
		}
	}
}

// validateURL returns an empty string for a usable absolute URL,
// otherwise a short description of the problem.
func validateURL(raw string) string {
	if raw == "" {
		return "empty url"
	}
	if strings.ContainsAny(raw, " \t") {
		return "url contains whitespace"
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "url does not parse"
	}
	if !u.IsAbs() || u.Host == "" {
		return "url is not absolute"
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "url scheme is not http(s)"
	}
	if match := strictURL.FindString(raw); match == "" || !strings.HasPrefix(raw, match) {
		return "url is not recognizable"
	}
	return ""
}

func checkEmptySection(c *checker) {
	for _, cat := range c.doc.Categories {
		if cat.Empty() {
			c.addf(cat.Line, "section %q has no entries or text", cat.Name)
		}
	}
}

func checkConsecutiveBlank(c *checker) {
	prevBlank := false
	for _, line := range c.doc.Lines {
		blank := line.Kind == domain.LineBlank
		if blank && prevBlank {
			c.addf(line.Num, "consecutive blank lines")
		}
		prevBlank = blank
	}
}

func checkRoundTrip(c *checker) {
	for _, line := range c.doc.Lines {
		if line.Kind != domain.LineEntry {
			continue
		}
		if got := markdown.FormatEntry(line.Entry); got != line.Raw {
			c.addf(line.Num, "entry does not re-serialize identically: %q", got)
		}
	}
	if c.source != nil && !bytes.Equal(markdown.Format(c.doc), c.source) {
		c.addf(0, "document does not re-serialize identically")
	}
}

func checkUnparsedItem(c *checker) {
	for _, line := range c.doc.Lines {
		if line.Kind == domain.LineUnparsedItem {
			c.addf(line.Num, "list item is neither a kinded nor a bare entry")
		}
	}
}

func checkUnknownKind(c *checker) {
	for _, e := range c.doc.Entries() {
		if !e.IsBare() && !c.known[strings.ToLower(e.Kind)] {
			c.addf(e.Line, "unknown kind %q", e.Kind)
		}
	}
}

func checkMarkdownLink(c *checker) {
	if c.source == nil {
		return
	}
	dests := render.LinkDestinations(c.source)
	for _, e := range c.doc.Entries() {
		if e.URL == "" {
			continue
		}
		if !dests[e.URL] {
			c.addf(e.Line, "markdown renderer does not see a link to %q", e.URL)
		}
	}
}
