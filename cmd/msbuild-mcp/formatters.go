package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/ternarybob/msbuild-mcp/internal/models"
)

// formatBuildResult formats a build result as markdown. Raw output is
// truncated to its last tailLines lines; the filtered error list is
// always included in full.
func formatBuildResult(result *models.BuildResult, tailLines int) string {
	var sb strings.Builder

	if result.Success {
		sb.WriteString("## Build succeeded\n\n")
	} else {
		sb.WriteString("## Build FAILED\n\n")
	}

	sb.WriteString(fmt.Sprintf("**Project:** %s\n", result.ProjectPath))
	sb.WriteString(fmt.Sprintf("**Build ID:** %s\n", result.BuildID))
	sb.WriteString(fmt.Sprintf("**Exit code:** %d\n", result.ExitCode))
	sb.WriteString(fmt.Sprintf("**Duration:** %s\n\n", result.Duration.Round(time.Millisecond)))

	if !result.Success {
		sb.WriteString(fmt.Sprintf("### Errors (%d)\n\n```\n", len(result.ErrorLines)))
		if len(result.ErrorLines) == 0 {
			sb.WriteString("(no lines matched the error patterns; see output below)\n")
		} else {
			for _, line := range result.ErrorLines {
				sb.WriteString(line)
				sb.WriteString("\n")
			}
		}
		sb.WriteString("```\n\n")
	}

	output, truncated := tail(result.RawOutput, tailLines)
	if truncated {
		sb.WriteString(fmt.Sprintf("### Output (last %d lines)\n\n```\n", tailLines))
	} else {
		sb.WriteString("### Output\n\n```\n")
	}
	sb.WriteString(output)
	if !strings.HasSuffix(output, "\n") {
		sb.WriteString("\n")
	}
	sb.WriteString("```\n")

	return sb.String()
}

// formatInstances formats the vswhere instance list as markdown
func formatInstances(instances []models.VSInstance) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## Visual Studio installations (%d)\n\n", len(instances)))

	if len(instances) == 0 {
		sb.WriteString("No installations with the MSBuild component found.\n")
		return sb.String()
	}

	for i, instance := range instances {
		sb.WriteString(fmt.Sprintf("### %d. %s\n", i+1, instance.DisplayName))
		sb.WriteString(fmt.Sprintf("**Version:** %s\n", instance.InstallationVersion))
		sb.WriteString(fmt.Sprintf("**Path:** %s\n", instance.InstallationPath))
		if !instance.InstallDate.IsZero() {
			sb.WriteString(fmt.Sprintf("**Installed:** %s\n", instance.InstallDate.Format(time.RFC3339)))
		}
		if instance.IsPrerelease {
			sb.WriteString("**Prerelease:** yes\n")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// tail returns the last n lines of s and whether anything was dropped
func tail(s string, n int) (string, bool) {
	if n <= 0 {
		return s, false
	}

	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) <= n {
		return s, false
	}

	return strings.Join(lines[len(lines)-n:], "\n"), true
}
