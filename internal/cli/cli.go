// Package cli provides the command line interface.
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/temirov/repotxt/internal/commands"
	"github.com/temirov/repotxt/internal/config"
	"github.com/temirov/repotxt/internal/output"
	"github.com/temirov/repotxt/internal/services/clipboard"
	"github.com/temirov/repotxt/internal/services/github"
	"github.com/temirov/repotxt/internal/tokenizer"
	"github.com/temirov/repotxt/internal/types"
	"github.com/temirov/repotxt/internal/utils"
)

const (
	outputDirectoryFlagName  = "output-dir"
	saveFlagName             = "save"
	clipboardFlagName        = "clipboard"
	timestampFlagName        = "timestamp"
	skipInstructionsFlagName = "skip-instructions"
	tokenFlagName            = "token"
	configFlagName           = "config"
	tokensFlagName           = "tokens"
	modelFlagName            = "model"
	versionFlagName          = "version"
	versionTemplate          = "repotxt version: %s\n"

	rootUse              = "repotxt <path|github-url>"
	rootShortDescription = "repotxt concatenates a repository into one text document"
	rootLongDescription  = `repotxt walks a local directory or a GitHub repository and concatenates
its file tree and file contents into a single text document for pasting
into a prompt. The document is saved to a file, copied to the clipboard,
or both.`
	rootUsageExample = `  # Convert the current directory and save next to it
  repotxt .

  # Convert a GitHub repository to the clipboard only
  repotxt https://github.com/spf13/cobra --clipboard --save=false

  # Timestamped output file in a chosen directory
  repotxt ./project --output-dir ~/prompts --timestamp`

	outputDirectoryFlagDescription  = "directory to save the text output"
	saveFlagDescription             = "save the document to a file"
	clipboardFlagDescription        = "copy the document to the clipboard"
	timestampFlagDescription        = "append a timestamp to the output file name"
	skipInstructionsFlagDescription = "omit the instructions block"
	tokenFlagDescription            = "GitHub access token for remote repositories"
	configFlagDescription           = "path to a JSON configuration file"
	tokensFlagDescription           = "report the token count of the document"
	modelFlagDescription            = "tokenizer model to use for token counting"
	versionFlagDescription          = "display application version"
	defaultTokenizerModelName       = "gpt-4o"

	outputDirectoryEnvironmentVariable = "REPOTXT_OUTPUT_DIR"
	tokenEnvironmentVariable           = "GITHUB_TOKEN"

	clipboardConfirmationMessage = "Text copied to clipboard!"
	savedConfirmationFormat      = "Text saved to file: %s\n"
	tokenCountFormat             = "Document tokens: %d (%s)\n"

	errorSinksDisabledMessage   = "both output sinks are disabled, enable file saving or the clipboard and try again"
	errorInvalidInputFormat     = "invalid input '%s': provide a local directory path or a full GitHub repository URL"
	errorMissingTokenMessage    = "a GitHub access token is required for remote repositories; pass --token or set " + tokenEnvironmentVariable
	workingDirectoryErrorFormat = "unable to determine working directory: %w"
)

// runOptions stores flag values for the root command.
type runOptions struct {
	outputDirectory   string
	saveToFile        bool
	copyToClipboard   bool
	includeTimestamp  bool
	skipInstructions  bool
	accessToken       string
	configurationPath string
	countTokens       bool
	tokenizerModel    string
}

// Execute runs the repotxt application.
func Execute() error {
	rootCommand := createRootCommand()
	return rootCommand.Execute()
}

// createRootCommand builds the root Cobra command.
func createRootCommand() *cobra.Command {
	var showVersion bool
	var options runOptions

	rootCommand := &cobra.Command{
		Use:          rootUse,
		Short:        rootShortDescription,
		Long:         rootLongDescription,
		Example:      rootUsageExample,
		SilenceUsage: true,
		Args:         cobra.MaximumNArgs(1),
		PersistentPreRun: func(command *cobra.Command, arguments []string) {
			if showVersion {
				fmt.Printf(versionTemplate, utils.GetApplicationVersion())
				os.Exit(0)
			}
		},
		RunE: func(command *cobra.Command, arguments []string) error {
			if len(arguments) == 0 {
				return command.Help()
			}
			return runTool(command, arguments[0], options)
		},
	}

	rootCommand.PersistentFlags().BoolVar(&showVersion, versionFlagName, false, versionFlagDescription)
	rootCommand.Flags().StringVar(&options.outputDirectory, outputDirectoryFlagName, "", outputDirectoryFlagDescription)
	rootCommand.Flags().BoolVar(&options.saveToFile, saveFlagName, true, saveFlagDescription)
	rootCommand.Flags().BoolVar(&options.copyToClipboard, clipboardFlagName, false, clipboardFlagDescription)
	rootCommand.Flags().BoolVar(&options.includeTimestamp, timestampFlagName, false, timestampFlagDescription)
	rootCommand.Flags().BoolVar(&options.skipInstructions, skipInstructionsFlagName, false, skipInstructionsFlagDescription)
	rootCommand.Flags().StringVar(&options.accessToken, tokenFlagName, "", tokenFlagDescription)
	rootCommand.Flags().StringVar(&options.configurationPath, configFlagName, "", configFlagDescription)
	rootCommand.Flags().BoolVar(&options.countTokens, tokensFlagName, false, tokensFlagDescription)
	rootCommand.Flags().StringVar(&options.tokenizerModel, modelFlagName, defaultTokenizerModelName, modelFlagDescription)
	return rootCommand
}

// runTool resolves configuration, builds the snapshot, assembles the document,
// and dispatches it to the enabled sinks.
func runTool(command *cobra.Command, inputPath string, options runOptions) error {
	workingDirectory, workingDirectoryError := os.Getwd()
	if workingDirectoryError != nil {
		return fmt.Errorf(workingDirectoryErrorFormat, workingDirectoryError)
	}

	applicationConfiguration, configurationError := config.LoadApplicationConfiguration(config.LoadOptions{
		WorkingDirectory: workingDirectory,
		ExplicitFilePath: options.configurationPath,
	})
	if configurationError != nil {
		return configurationError
	}

	resolved := resolveRunOptions(command, options, applicationConfiguration)

	if !resolved.saveToFile && !resolved.copyToClipboard {
		return fmt.Errorf(errorSinksDisabledMessage)
	}

	snapshot, snapshotError := buildSnapshot(inputPath, resolved.accessToken)
	if snapshotError != nil {
		return snapshotError
	}

	document := output.BuildDocument(snapshot, output.BuildOptions{
		SkipInstructions: resolved.skipInstructions,
		WorkingDirectory: workingDirectory,
	})

	if resolved.countTokens {
		tokenCounter, resolvedModel, counterError := tokenizer.NewCounter(tokenizer.Config{Model: resolved.tokenizerModel})
		if counterError != nil {
			return counterError
		}
		tokenCount, countError := tokenCounter.CountString(document)
		if countError != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to count tokens: %v\n", countError)
		} else {
			fmt.Printf(tokenCountFormat, tokenCount, resolvedModel)
		}
	}

	if resolved.copyToClipboard {
		if clipboardError := clipboard.NewService().Copy(document); clipboardError != nil {
			return fmt.Errorf("copying to clipboard: %w", clipboardError)
		}
		fmt.Println(clipboardConfirmationMessage)
	}

	if resolved.saveToFile {
		savedPath, saveError := output.SaveDocument(document, snapshot.Name, resolved.outputDirectory, resolved.includeTimestamp, time.Now)
		if saveError != nil {
			return saveError
		}
		fmt.Printf(savedConfirmationFormat, savedPath)
	}

	return nil
}

// buildSnapshot selects the local or remote pipeline based on the input.
func buildSnapshot(inputPath string, accessToken string) (types.RepoSnapshot, error) {
	if github.IsRepositoryURL(inputPath) {
		if accessToken == "" {
			return types.RepoSnapshot{}, fmt.Errorf(errorMissingTokenMessage)
		}
		owner, repositoryName, parseError := github.ParseRepositoryURL(inputPath)
		if parseError != nil {
			return types.RepoSnapshot{}, parseError
		}
		return github.NewClient(accessToken).Snapshot(context.Background(), owner, repositoryName)
	}

	absolutePath, absolutePathError := filepath.Abs(inputPath)
	if absolutePathError != nil {
		return types.RepoSnapshot{}, fmt.Errorf("abs failed for '%s': %w", inputPath, absolutePathError)
	}
	cleanPath := filepath.Clean(absolutePath)
	pathInformation, statError := os.Stat(cleanPath)
	if statError != nil || !pathInformation.IsDir() {
		return types.RepoSnapshot{}, fmt.Errorf(errorInvalidInputFormat, inputPath)
	}
	return commands.GetLocalSnapshot(cleanPath)
}

// resolveRunOptions overlays configuration file defaults and environment
// variables under explicitly set flags. A flag the user set always wins; a
// configuration value beats the flag's built-in default.
func resolveRunOptions(command *cobra.Command, options runOptions, configuration config.ApplicationConfiguration) runOptions {
	resolved := options
	flagSet := command.Flags()

	if !flagSet.Changed(saveFlagName) {
		resolved.saveToFile = config.BoolOrDefault(configuration.SaveToFile, resolved.saveToFile)
	}
	if !flagSet.Changed(clipboardFlagName) {
		resolved.copyToClipboard = config.BoolOrDefault(configuration.Clipboard, resolved.copyToClipboard)
	}
	if !flagSet.Changed(timestampFlagName) {
		resolved.includeTimestamp = config.BoolOrDefault(configuration.Timestamp, resolved.includeTimestamp)
	}
	if !flagSet.Changed(skipInstructionsFlagName) {
		resolved.skipInstructions = config.BoolOrDefault(configuration.SkipInstructions, resolved.skipInstructions)
	}
	if !flagSet.Changed(tokensFlagName) {
		resolved.countTokens = config.BoolOrDefault(configuration.Tokens.Enabled, resolved.countTokens)
	}
	if !flagSet.Changed(modelFlagName) && configuration.Tokens.Model != "" {
		resolved.tokenizerModel = configuration.Tokens.Model
	}

	if resolved.outputDirectory == "" {
		resolved.outputDirectory = configuration.OutputDirectory
	}
	if resolved.outputDirectory == "" {
		resolved.outputDirectory = os.Getenv(outputDirectoryEnvironmentVariable)
	}
	if resolved.outputDirectory == "" {
		resolved.outputDirectory = "."
	}

	if resolved.accessToken == "" {
		resolved.accessToken = configuration.Token
	}
	if resolved.accessToken == "" {
		resolved.accessToken = os.Getenv(tokenEnvironmentVariable)
	}

	return resolved
}
