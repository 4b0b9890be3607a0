//go:build windows

package msbuild

import (
	"os"
	"strings"

	"github.com/ternarybob/arbor"
	"golang.org/x/sys/windows/registry"
)

// BuildEnvironment reconstructs the full system environment from the
// Windows registry.
//
// MCP stdio clients typically pass only a stripped set of environment
// variables (PATH, TEMP, APPDATA), which makes MSBuild's .NET SDK
// resolution fail or hang. Reading the machine and user environment
// keys restores the variables MSBuild needs to locate SDKs and tools.
//
// Returns nil when nothing could be read, in which case the child
// process inherits the parent environment unchanged.
func BuildEnvironment(logger arbor.ILogger) []string {
	keys := []struct {
		root registry.Key
		path string
	}{
		{registry.LOCAL_MACHINE, `SYSTEM\CurrentControlSet\Control\Session Manager\Environment`},
		{registry.CURRENT_USER, `Environment`},
	}

	env := make(map[string]string)

	for _, k := range keys {
		key, err := registry.OpenKey(k.root, k.path, registry.QUERY_VALUE)
		if err != nil {
			logger.Debug().Err(err).Str("key", k.path).Msg("Skipping unreadable environment registry key")
			continue
		}

		names, err := key.ReadValueNames(0)
		if err != nil {
			key.Close()
			continue
		}

		for _, name := range names {
			value, _, err := key.GetStringValue(name)
			if err != nil {
				continue
			}

			// PATH entries from both keys are concatenated, everything
			// else is last-writer-wins (user overrides machine).
			if strings.EqualFold(name, "PATH") {
				if existing, ok := env["PATH"]; ok && existing != "" {
					env["PATH"] = existing + ";" + value
				} else {
					env["PATH"] = value
				}
			} else {
				env[name] = value
			}
		}

		key.Close()
	}

	if len(env) == 0 {
		return nil
	}

	expanded := expandEnvReferences(env)

	return mergeEnviron(os.Environ(), expanded)
}
