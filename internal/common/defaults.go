package common

// DefaultProjectExtensions returns the file extensions accepted as
// MSBuild project or solution inputs. Anything else is rejected before
// a build process is spawned.
func DefaultProjectExtensions() []string {
	return []string{
		".sln",
		".slnx",
		".csproj",
		".vbproj",
		".fsproj",
		".vcxproj",
		".proj",
		".msbuildproj",
	}
}

// DefaultErrorPatterns returns the failure-signal regular expressions
// used to reduce raw MSBuild output to actionable error lines.
//
// The code-pattern match (`error CS0103:` etc.) deliberately excludes
// prose lines that merely contain the word "error", such as
// "See documentation for errors and warnings".
func DefaultErrorPatterns() []string {
	return []string{
		// Compiler/toolchain diagnostics: error <FAMILY><digits>
		// Families: C# (CS), MSBuild (MSB), MSVC (C), linker (LNK),
		// NuGet (NU), .NET SDK (NETSDK), VB (BC), F# (FS), analyzers (CA).
		`(?i)\berror\s+(CS|MSB|LNK|NU|NETSDK|BC|FS|CA|C)\d+\s*:`,
		// Summary line emitted by MSBuild when any target fails.
		`^Build FAILED`,
	}
}
