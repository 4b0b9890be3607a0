package main

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// createBuildProjectTool returns the build_project tool definition
func createBuildProjectTool() mcp.Tool {
	return mcp.NewTool("build_project",
		mcp.WithDescription("Build an MSBuild project or solution (.sln, .csproj, .vcxproj) using the locally installed Visual Studio toolchain"),
		mcp.WithString("project_path",
			mcp.Required(),
			mcp.Description("Path to the project or solution file to build"),
		),
		mcp.WithString("configuration",
			mcp.Description("Build configuration, e.g. Debug or Release (default: Debug)"),
		),
		mcp.WithString("platform",
			mcp.Description("Target platform, e.g. x86, x64, ARM64 (default: x64)"),
		),
		mcp.WithString("verbosity",
			mcp.Description("MSBuild output verbosity: quiet, minimal, normal, detailed, diagnostic (default: minimal)"),
		),
		mcp.WithNumber("max_cpu_count",
			mcp.Description("Maximum parallel build processes (default: MSBuild decides)"),
		),
		mcp.WithBoolean("restore",
			mcp.Description("Run NuGet restore before building"),
		),
		mcp.WithArray("additional_args",
			mcp.WithStringItems(),
			mcp.Description("Extra MSBuild command-line arguments, appended verbatim"),
		),
	)
}

// createCancelBuildTool returns the cancel_build tool definition
func createCancelBuildTool() mcp.Tool {
	return mcp.NewTool("cancel_build",
		mcp.WithDescription("Kill an in-flight build started by build_project"),
		mcp.WithString("build_id",
			mcp.Required(),
			mcp.Description("Build ID (format: build_{uuid}) reported by build_project"),
		),
	)
}

// createLocateMSBuildTool returns the locate_msbuild tool definition
func createLocateMSBuildTool() mcp.Tool {
	return mcp.NewTool("locate_msbuild",
		mcp.WithDescription("Resolve the path of the MSBuild executable that build_project will use"),
	)
}

// createListInstancesTool returns the list_msbuild_instances tool definition
func createListInstancesTool() mcp.Tool {
	return mcp.NewTool("list_msbuild_instances",
		mcp.WithDescription("List the Visual Studio installations that include the MSBuild component"),
	)
}
