package msbuild

import (
	"regexp"
	"strings"
)

// maxExpandPasses bounds the iterative %VAR% expansion; registry values
// can reference each other but cycles must not loop forever.
const maxExpandPasses = 3

var envRefPattern = regexp.MustCompile(`%([^%]+)%`)

// expandEnvReferences resolves %VAR% references in every value of env
// against env itself, case-insensitively, in bounded passes. References
// that resolve to nothing are left verbatim. Pure; shared by the
// Windows build-environment reconstruction and its tests.
func expandEnvReferences(env map[string]string) map[string]string {
	result := env

	for pass := 0; pass < maxExpandPasses; pass++ {
		expanded := make(map[string]string, len(result))
		changed := false

		upper := make(map[string]string, len(result))
		for k, v := range result {
			upper[strings.ToUpper(k)] = v
		}

		for k, v := range result {
			ev := envRefPattern.ReplaceAllStringFunc(v, func(ref string) string {
				name := strings.ToUpper(ref[1 : len(ref)-1])
				if replacement, ok := upper[name]; ok {
					return replacement
				}
				return ref
			})
			if ev != v {
				changed = true
			}
			expanded[k] = ev
		}

		result = expanded
		if !changed {
			break
		}
	}

	return result
}

// mergeEnviron overlays overrides onto a KEY=VALUE environment list.
// Override keys win over base keys, compared case-insensitively since
// Windows environment names are case-insensitive.
func mergeEnviron(base []string, overrides map[string]string) []string {
	overridden := make(map[string]bool, len(overrides))
	for k := range overrides {
		overridden[strings.ToUpper(k)] = true
	}

	merged := make([]string, 0, len(base)+len(overrides))
	for _, entry := range base {
		name, _, ok := strings.Cut(entry, "=")
		if ok && overridden[strings.ToUpper(name)] {
			continue
		}
		merged = append(merged, entry)
	}

	for k, v := range overrides {
		merged = append(merged, k+"="+v)
	}

	return merged
}
