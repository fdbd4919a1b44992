package config

import (
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"testing"

	"github.com/temirov/repotxt/internal/utils"
)

// writeTestFile creates a file with the specified content, failing the test on error.
func writeTestFile(testingHandle *testing.T, filePath string, content string) {
	testingHandle.Helper()
	if writeError := os.WriteFile(filePath, []byte(content), 0o644); writeError != nil {
		testingHandle.Fatalf("failed to write %s: %v", filePath, writeError)
	}
}

// TestLoadCombinedIgnorePatternsUnion verifies that patterns from both ignore files merge into a deduplicated union.
func TestLoadCombinedIgnorePatternsUnion(testingHandle *testing.T) {
	rootDirectory := testingHandle.TempDir()
	writeTestFile(testingHandle, filepath.Join(rootDirectory, utils.IgnoreFileName), "build/\n*.tmp\nshared.txt\n")
	writeTestFile(testingHandle, filepath.Join(rootDirectory, utils.LocalIgnoreFileName), "shared.txt\nsecrets/\n")

	patternList, loadError := LoadCombinedIgnorePatterns(rootDirectory)
	if loadError != nil {
		testingHandle.Fatalf("LoadCombinedIgnorePatterns failed: %v", loadError)
	}

	sort.Strings(patternList)
	expectedPatterns := []string{"*.tmp", "build/", "secrets/", "shared.txt"}
	if !reflect.DeepEqual(patternList, expectedPatterns) {
		testingHandle.Fatalf("unexpected patterns: got %v want %v", patternList, expectedPatterns)
	}
}

// TestLoadCombinedIgnorePatternsDefaults verifies the fixed default set applies when neither file yields a pattern.
func TestLoadCombinedIgnorePatternsDefaults(testingHandle *testing.T) {
	rootDirectory := testingHandle.TempDir()

	patternList, loadError := LoadCombinedIgnorePatterns(rootDirectory)
	if loadError != nil {
		testingHandle.Fatalf("LoadCombinedIgnorePatterns failed: %v", loadError)
	}

	if !reflect.DeepEqual(patternList, defaultIgnorePatterns) {
		testingHandle.Fatalf("expected default patterns %v, got %v", defaultIgnorePatterns, patternList)
	}
}

// TestLoadCombinedIgnorePatternsCommentOnlyFilesFallBack verifies files holding only comments and blank lines count as empty.
func TestLoadCombinedIgnorePatternsCommentOnlyFilesFallBack(testingHandle *testing.T) {
	rootDirectory := testingHandle.TempDir()
	writeTestFile(testingHandle, filepath.Join(rootDirectory, utils.IgnoreFileName), "# commentary only\n\n   \n")

	patternList, loadError := LoadCombinedIgnorePatterns(rootDirectory)
	if loadError != nil {
		testingHandle.Fatalf("LoadCombinedIgnorePatterns failed: %v", loadError)
	}

	if !reflect.DeepEqual(patternList, defaultIgnorePatterns) {
		testingHandle.Fatalf("expected default patterns %v, got %v", defaultIgnorePatterns, patternList)
	}
}

// TestLoadIgnoreFilePatternsSkipsCommentsAndBlankLines verifies line filtering within a single ignore file.
func TestLoadIgnoreFilePatternsSkipsCommentsAndBlankLines(testingHandle *testing.T) {
	rootDirectory := testingHandle.TempDir()
	ignoreFilePath := filepath.Join(rootDirectory, utils.IgnoreFileName)
	writeTestFile(testingHandle, ignoreFilePath, "# header\n\nnode_modules/\n  spaced.txt  \n#tail\n")

	patternList, loadError := LoadIgnoreFilePatterns(ignoreFilePath)
	if loadError != nil {
		testingHandle.Fatalf("LoadIgnoreFilePatterns failed: %v", loadError)
	}

	expectedPatterns := []string{"node_modules/", "spaced.txt"}
	if !reflect.DeepEqual(patternList, expectedPatterns) {
		testingHandle.Fatalf("unexpected patterns: got %v want %v", patternList, expectedPatterns)
	}
}

// TestLoadIgnoreFilePatternsMissingFile verifies a missing ignore file is silently treated as empty.
func TestLoadIgnoreFilePatternsMissingFile(testingHandle *testing.T) {
	missingPath := filepath.Join(testingHandle.TempDir(), utils.IgnoreFileName)

	patternList, loadError := LoadIgnoreFilePatterns(missingPath)
	if loadError != nil {
		testingHandle.Fatalf("expected no error for missing file, got %v", loadError)
	}
	if len(patternList) != 0 {
		testingHandle.Fatalf("expected no patterns, got %v", patternList)
	}
}
