package main

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/msbuild-mcp/internal/common"
	"github.com/ternarybob/msbuild-mcp/internal/interfaces"
	"github.com/ternarybob/msbuild-mcp/internal/models"
)

// handleBuildProject implements the build_project tool
func handleBuildProject(buildService interfaces.BuildService, config *common.Config, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		// Parse project_path parameter (required)
		projectPath, err := request.RequireString("project_path")
		if err != nil || projectPath == "" {
			return &mcp.CallToolResult{
				Content: []mcp.Content{
					mcp.NewTextContent("Error: project_path parameter is required"),
				},
			}, nil
		}

		// Unset options fall back to the configured defaults
		verbosity, err := models.ParseVerbosity(request.GetString("verbosity", config.MSBuild.DefaultVerbosity))
		if err != nil {
			return &mcp.CallToolResult{
				Content: []mcp.Content{
					mcp.NewTextContent(fmt.Sprintf("Error: %v", err)),
				},
			}, nil
		}

		opts := models.BuildOptions{
			Configuration:  request.GetString("configuration", config.MSBuild.DefaultConfiguration),
			Platform:       request.GetString("platform", config.MSBuild.DefaultPlatform),
			Verbosity:      verbosity,
			MaxCPUCount:    request.GetInt("max_cpu_count", 0),
			Restore:        request.GetBool("restore", false),
			AdditionalArgs: request.GetStringSlice("additional_args", nil),
		}

		// Execute build; a failing compile is a normal result here
		result, err := buildService.Build(ctx, projectPath, opts)
		if err != nil {
			logger.Error().Err(err).Str("project", projectPath).Msg("Build could not run")
			return &mcp.CallToolResult{
				Content: []mcp.Content{
					mcp.NewTextContent(fmt.Sprintf("Build error: %v", err)),
				},
			}, nil
		}

		markdown := formatBuildResult(result, config.MSBuild.OutputTailLines)
		return &mcp.CallToolResult{
			Content: []mcp.Content{
				mcp.NewTextContent(markdown),
			},
		}, nil
	}
}

// handleCancelBuild implements the cancel_build tool
func handleCancelBuild(buildService interfaces.BuildService, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		buildID, err := request.RequireString("build_id")
		if err != nil || buildID == "" {
			return &mcp.CallToolResult{
				Content: []mcp.Content{
					mcp.NewTextContent("Error: build_id parameter is required"),
				},
			}, nil
		}

		if err := buildService.Cancel(buildID); err != nil {
			logger.Error().Err(err).Str("build_id", buildID).Msg("Cancel failed")
			return &mcp.CallToolResult{
				Content: []mcp.Content{
					mcp.NewTextContent(fmt.Sprintf("Cancel error: %v", err)),
				},
			}, nil
		}

		return &mcp.CallToolResult{
			Content: []mcp.Content{
				mcp.NewTextContent(fmt.Sprintf("Build %s cancelled.", buildID)),
			},
		}, nil
	}
}

// handleLocateMSBuild implements the locate_msbuild tool
func handleLocateMSBuild(locatorService interfaces.LocatorService, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path, err := locatorService.Locate(ctx)
		if err != nil {
			logger.Error().Err(err).Msg("Locate failed")
			return &mcp.CallToolResult{
				Content: []mcp.Content{
					mcp.NewTextContent(fmt.Sprintf("Locate error: %v", err)),
				},
			}, nil
		}

		return &mcp.CallToolResult{
			Content: []mcp.Content{
				mcp.NewTextContent(fmt.Sprintf("MSBuild executable: %s", path)),
			},
		}, nil
	}
}

// handleListInstances implements the list_msbuild_instances tool
func handleListInstances(locatorService interfaces.LocatorService, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		instances, err := locatorService.Instances(ctx)
		if err != nil {
			logger.Error().Err(err).Msg("Instance listing failed")
			return &mcp.CallToolResult{
				Content: []mcp.Content{
					mcp.NewTextContent(fmt.Sprintf("List error: %v", err)),
				},
			}, nil
		}

		markdown := formatInstances(instances)
		return &mcp.CallToolResult{
			Content: []mcp.Content{
				mcp.NewTextContent(markdown),
			},
		}, nil
	}
}
