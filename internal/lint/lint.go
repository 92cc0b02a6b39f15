// Package lint checks the structural well-formedness of a reading list.
package lint

import (
	"fmt"
	"sort"
	"strings"

	"github.com/MrSnakeDoc/readinglist/internal/domain"
)

// Severity of a lint issue
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is one finding reported against a source line.
// Line is 0 for findings that concern the whole document.
type Issue struct {
	Line     int      `json:"line" yaml:"line"`
	Rule     string   `json:"rule" yaml:"rule"`
	Severity Severity `json:"severity" yaml:"severity"`
	Message  string   `json:"message" yaml:"message"`
}

func (i Issue) String() string {
	if i.Line == 0 {
		return fmt.Sprintf("%s [%s] %s", i.Severity, i.Rule, i.Message)
	}
	return fmt.Sprintf("line %d: %s [%s] %s", i.Line, i.Severity, i.Rule, i.Message)
}

// Report is the result of a lint run.
type Report struct {
	Issues     []Issue `json:"issues" yaml:"issues"`
	Errors     int     `json:"errors" yaml:"errors"`
	Warnings   int     `json:"warnings" yaml:"warnings"`
	Entries    int     `json:"entries" yaml:"entries"`
	Categories int     `json:"categories" yaml:"categories"`
}

// HasErrors reports whether any error-level issue was found.
func (r *Report) HasErrors() bool {
	return r.Errors > 0
}

// Lint runs every enabled rule against the document.
// source is the raw text doc was parsed from; rules that compare against
// the text are skipped when it is nil.
func Lint(doc *domain.Document, source []byte, opts Options) *Report {
	known := opts.KnownKinds
	if len(known) == 0 {
		known = domain.KnownKinds
	}

	c := &checker{
		doc:    doc,
		source: source,
		known:  make(map[string]bool, len(known)),
		report: &Report{
			Issues:     []Issue{},
			Entries:    len(doc.Entries()),
			Categories: len(doc.Categories),
		},
	}
	for _, k := range known {
		c.known[strings.ToLower(k)] = true
	}

	for _, r := range rules {
		if opts.disabled(r.name) {
			continue
		}
		c.rule = r
		r.check(c)
	}

	sort.SliceStable(c.report.Issues, func(i, j int) bool {
		return c.report.Issues[i].Line < c.report.Issues[j].Line
	})

	return c.report
}

type checker struct {
	doc    *domain.Document
	source []byte
	known  map[string]bool
	rule   rule
	report *Report
}

func (c *checker) addf(line int, format string, args ...interface{}) {
	issue := Issue{
		Line:     line,
		Rule:     c.rule.name,
		Severity: c.rule.severity,
		Message:  fmt.Sprintf(format, args...),
	}
	switch issue.Severity {
	case SeverityError:
		c.report.Errors++
	case SeverityWarning:
		c.report.Warnings++
	}
	c.report.Issues = append(c.report.Issues, issue)
}
