package main

import (
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/ternarybob/msbuild-mcp/internal/common"
	"github.com/ternarybob/msbuild-mcp/internal/exec"
	"github.com/ternarybob/msbuild-mcp/internal/services/locator"
	"github.com/ternarybob/msbuild-mcp/internal/services/msbuild"
)

func main() {
	// Load configuration; the file is optional when not explicitly set
	configPath := os.Getenv("MSBUILD_MCP_CONFIG")
	if configPath == "" {
		if _, err := os.Stat("msbuild-mcp.toml"); err == nil {
			configPath = "msbuild-mcp.toml"
		}
	}

	config, err := common.LoadFromFile(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Minimal console logger; warn-level keeps the MCP stdio stream clean
	logger := common.NewStdioLogger()

	runner := exec.NewLocalRunner()

	// Locator is shared so its cached MSBuild path serves every tool call
	locatorService := locator.NewService(config, runner, logger)

	buildService, err := msbuild.NewService(config, locatorService, runner, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize build service")
	}

	// Create MCP server
	mcpServer := server.NewMCPServer(
		"msbuild-mcp",
		common.GetVersion(),
		server.WithToolCapabilities(true),
	)

	// Register build tools
	mcpServer.AddTool(createBuildProjectTool(), handleBuildProject(buildService, config, logger))
	mcpServer.AddTool(createCancelBuildTool(), handleCancelBuild(buildService, logger))

	// Register toolchain discovery tools
	mcpServer.AddTool(createLocateMSBuildTool(), handleLocateMSBuild(locatorService, logger))
	mcpServer.AddTool(createListInstancesTool(), handleListInstances(locatorService, logger))

	// Start server (blocks on stdio)
	if err := server.ServeStdio(mcpServer); err != nil {
		logger.Fatal().Err(err).Msg("MCP server failed")
	}
}
