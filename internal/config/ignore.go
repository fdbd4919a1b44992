// Package config loads application configuration and ignore patterns.
package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/temirov/repotxt/internal/utils"
)

// defaultIgnorePatterns applies when neither ignore file yields a pattern.
var defaultIgnorePatterns = []string{
	"node_modules/",
	"vendor/",
	"dist/",
}

// LoadIgnoreFilePatterns reads a single ignore file and returns its patterns.
// A missing file is not an error and yields no patterns. Blank lines and lines
// starting with '#' are discarded.
//
// #nosec G304
func LoadIgnoreFilePatterns(ignoreFilePath string) ([]string, error) {
	fileHandle, openFileError := os.Open(ignoreFilePath)
	if openFileError != nil {
		if os.IsNotExist(openFileError) {
			return nil, nil
		}
		return nil, openFileError
	}
	defer func() {
		closeError := fileHandle.Close()
		if closeError != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to close %s: %v\n", ignoreFilePath, closeError)
		}
	}()

	var ignorePatterns []string
	scanner := bufio.NewScanner(fileHandle)
	for scanner.Scan() {
		trimmedLine := strings.TrimSpace(scanner.Text())
		if trimmedLine == "" || strings.HasPrefix(trimmedLine, "#") {
			continue
		}
		ignorePatterns = append(ignorePatterns, trimmedLine)
	}
	if scanError := scanner.Err(); scanError != nil {
		return nil, scanError
	}
	return ignorePatterns, nil
}

// LoadCombinedIgnorePatterns aggregates patterns from the primary and
// secondary ignore files within a directory. The secondary file's patterns
// extend the primary's; the merged set is deduplicated and order-independent.
// When neither file yields a pattern, the default set applies.
func LoadCombinedIgnorePatterns(absoluteDirectoryPath string) ([]string, error) {
	var combinedPatterns []string

	primaryFilePath := filepath.Join(absoluteDirectoryPath, utils.IgnoreFileName)
	primaryPatterns, primaryLoadError := LoadIgnoreFilePatterns(primaryFilePath)
	if primaryLoadError != nil {
		return nil, fmt.Errorf("loading %s from %s: %w", utils.IgnoreFileName, absoluteDirectoryPath, primaryLoadError)
	}
	combinedPatterns = append(combinedPatterns, primaryPatterns...)

	secondaryFilePath := filepath.Join(absoluteDirectoryPath, utils.LocalIgnoreFileName)
	secondaryPatterns, secondaryLoadError := LoadIgnoreFilePatterns(secondaryFilePath)
	if secondaryLoadError != nil {
		return nil, fmt.Errorf("loading %s from %s: %w", utils.LocalIgnoreFileName, absoluteDirectoryPath, secondaryLoadError)
	}
	combinedPatterns = append(combinedPatterns, secondaryPatterns...)

	if len(combinedPatterns) == 0 {
		return append([]string{}, defaultIgnorePatterns...), nil
	}

	return utils.DeduplicatePatterns(combinedPatterns), nil
}
