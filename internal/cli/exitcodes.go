package cli

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	// Use for: Normal, successful command execution.
	ExitSuccess = 0

	// ExitFailure indicates a general error occurred.
	// Use for: Store errors, network errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitFailure = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, invalid flag combinations,
	// or when the user needs to provide different arguments.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: Task not found, user not found, company not found,
	// or any case where a resource ID doesn't exist on the store.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: Username or email already registered, or data the store
	// refuses because it conflicts with existing records.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Empty titles, invalid status values, malformed e-mails,
	// or any case where input fails validation rules.
	ExitValidation = 5

	// ExitPermissionDenied indicates the signed-in role lacks the capability.
	// Use for: Any write the role's flags do not allow.
	ExitPermissionDenied = 6
)
