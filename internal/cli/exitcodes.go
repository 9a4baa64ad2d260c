package cli

// Exit codes for gotsdoc.
const (
	// ExitSuccess indicates successful execution with no diagnostics.
	ExitSuccess = 0

	// ExitDiagnostics indicates parsing completed but reported diagnostics.
	ExitDiagnostics = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates tsdoc.json configuration errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)
