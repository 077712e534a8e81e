// Package audit flags target values that still look like example or
// placeholder values. It never modifies any file.
package audit

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/CodexForgeBR/henvdall/internal/envfile"
)

// ErrTargetNotFound is returned when the file being audited does not exist.
var ErrTargetNotFound = errors.New("env file not found")

// DefaultPlaceholders are the conventional tokens flagged in every audit.
var DefaultPlaceholders = []string{"changeme", "your_api_key_here", "xxx"}

// Reasons attached to findings.
const (
	ReasonUnchanged   = "unchanged from template"
	ReasonPlaceholder = "placeholder token"
	ReasonEmpty       = "empty value"
)

// Finding is one flagged entry.
type Finding struct {
	Key    string
	Value  string
	Reason string
}

// Report lists findings in target file order.
type Report struct {
	Findings []Finding
	Checked  int
}

// Clean reports whether nothing was flagged.
func (r Report) Clean() bool {
	return len(r.Findings) == 0
}

// Options tune the audit.
type Options struct {
	// ExtraPlaceholders are matched in addition to DefaultPlaceholders.
	ExtraPlaceholders []string
}

// Run checks every target entry against the template and the placeholder
// tokens. Token matching is case-insensitive; template matching is verbatim.
// template may be nil, in which case only tokens and empty values are flagged.
func Run(template, target *envfile.File, opts Options) Report {
	tokens := make(map[string]bool, len(DefaultPlaceholders)+len(opts.ExtraPlaceholders))
	for _, t := range DefaultPlaceholders {
		tokens[strings.ToLower(t)] = true
	}
	for _, t := range opts.ExtraPlaceholders {
		if t = strings.TrimSpace(t); t != "" {
			tokens[strings.ToLower(t)] = true
		}
	}

	report := Report{Checked: target.Len()}
	for _, e := range target.Entries() {
		if reason, ok := check(e, template, tokens); ok {
			report.Findings = append(report.Findings, Finding{Key: e.Key, Value: e.Value, Reason: reason})
		}
	}
	return report
}

func check(e envfile.Entry, template *envfile.File, tokens map[string]bool) (string, bool) {
	if template != nil {
		if t, ok := template.Get(e.Key); ok && t.Value == e.Value {
			return ReasonUnchanged, true
		}
	}
	if tokens[strings.ToLower(e.Value)] {
		return ReasonPlaceholder, true
	}
	if strings.TrimSpace(e.Value) == "" {
		return ReasonEmpty, true
	}
	return "", false
}

// RunFiles parses both files and audits the target. A missing target is an
// error wrapping ErrTargetNotFound.
func RunFiles(templatePath, targetPath string, opts Options) (Report, error) {
	template, err := envfile.ParseFile(templatePath)
	if err != nil {
		return Report{}, fmt.Errorf("parse template: %w", err)
	}

	target, err := envfile.ParseFile(targetPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Report{}, fmt.Errorf("%w: %s", ErrTargetNotFound, targetPath)
		}
		return Report{}, fmt.Errorf("parse target: %w", err)
	}

	return Run(template, target, opts), nil
}
