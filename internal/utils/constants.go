package utils

// File name constants used across the project.
const (
	// IgnoreFileName is the primary ignore file read from the target directory.
	IgnoreFileName = ".repotxtignore"
	// LocalIgnoreFileName is the secondary ignore file extending the primary one.
	LocalIgnoreFileName = ".repotxtignore.local"
	// GitDirectoryName is the name of the Git repository directory.
	GitDirectoryName = ".git"
	// ReadmeFileName is the repository README rendered at the top of the document.
	ReadmeFileName = "README.md"
	// ConfigFileName is the JSON configuration file read from the working directory.
	ConfigFileName = ".repotxt.json"
)

// LoggerInitializationFailedMessageFormat reports a failure to construct the application logger.
const LoggerInitializationFailedMessageFormat = "failed to initialize logger: %w"

// ApplicationExecutionFailedMessage prefixes fatal application errors.
const ApplicationExecutionFailedMessage = "application execution failed"
