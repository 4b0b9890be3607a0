package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ternarybob/msbuild-mcp/internal/common"
	"github.com/ternarybob/msbuild-mcp/internal/exec"
	"github.com/ternarybob/msbuild-mcp/internal/services/locator"
)

var (
	configPath   = flag.String("config", "", "Configuration file path")
	configPathC  = flag.String("c", "", "Configuration file path (shorthand)")
	showVersion  = flag.Bool("version", false, "Print version information")
	showVersionV = flag.Bool("v", false, "Print version information (shorthand)")
)

func main() {
	flag.Parse()

	if *showVersion || *showVersionV {
		fmt.Printf("msbuild-doctor version %s\n", common.GetFullVersion())
		os.Exit(0)
	}

	// Startup sequence: config -> logger -> banner
	path := *configPath
	if path == "" {
		path = *configPathC
	}
	if path == "" {
		if _, err := os.Stat("msbuild-mcp.toml"); err == nil {
			path = "msbuild-mcp.toml"
		}
	}

	config, err := common.LoadFromFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := common.InitLogger(config)
	common.PrintBanner(common.GetVersion())

	runner := exec.NewLocalRunner()
	locatorService := locator.NewService(config, runner, logger)

	ctx := context.Background()

	// Toolchain discovery
	msbuildPath, err := locatorService.Locate(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("MSBuild could not be located")
		os.Exit(1)
	}
	fmt.Printf("MSBuild executable: %s\n", msbuildPath)

	// Installed instances
	instances, err := locatorService.Instances(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Instance listing failed")
		os.Exit(1)
	}

	fmt.Printf("\nVisual Studio installations with MSBuild (%d):\n", len(instances))
	for _, instance := range instances {
		marker := " "
		if instance.IsPrerelease {
			marker = "*"
		}
		fmt.Printf("  %s %-40s %-18s %s\n", marker, instance.DisplayName, instance.InstallationVersion, instance.InstallationPath)
	}

	logger.Info().
		Str("msbuild", msbuildPath).
		Int("instances", len(instances)).
		Msg("Toolchain check complete")
}
