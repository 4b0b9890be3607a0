package msbuild

import (
	"fmt"
	"regexp"
	"strings"
)

// ErrorFilter reduces raw MSBuild output to the lines matching a
// failure-signal pattern allow-list. The pattern set is configuration
// data, not code; new tool families extend the list, not the filter.
type ErrorFilter struct {
	patterns []*regexp.Regexp
}

// NewErrorFilter compiles the pattern allow-list once
func NewErrorFilter(patterns []string) (*ErrorFilter, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid error filter pattern %q: %w", pattern, err)
		}
		compiled = append(compiled, re)
	}

	return &ErrorFilter{patterns: compiled}, nil
}

// FilterErrors returns the lines of raw that match any allow-list
// pattern, in their original order, without deduplication. Repeated
// identical errors across targets are preserved verbatim since each
// instance may carry distinct project context.
func (f *ErrorFilter) FilterErrors(raw string) []string {
	if raw == "" {
		return nil
	}

	var matched []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimRight(line, "\r")
		for _, pattern := range f.patterns {
			if pattern.MatchString(line) {
				matched = append(matched, line)
				break
			}
		}
	}

	return matched
}
