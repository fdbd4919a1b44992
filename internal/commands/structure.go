// Package commands gathers repository data from the local filesystem.
package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/temirov/repotxt/internal/types"
	"github.com/temirov/repotxt/internal/utils"
)

// GetStructureData walks the directory and returns the non-ignored entries in
// walk order. Directories matching an ignore glob, and the .git directory,
// are pruned before descent so their subtrees are never read.
func GetStructureData(rootPath string, ignorePatterns []string) ([]types.RepoEntry, error) {
	absoluteRootPath, absolutePathError := filepath.Abs(rootPath)
	if absolutePathError != nil {
		return nil, fmt.Errorf("failed to get absolute path for %s: %w", rootPath, absolutePathError)
	}
	cleanedRootPath := filepath.Clean(absoluteRootPath)

	var repositoryEntries []types.RepoEntry

	directoryWalkError := filepath.WalkDir(cleanedRootPath, func(walkedPath string, directoryEntry os.DirEntry, accessError error) error {
		if accessError != nil {
			fmt.Fprintf(os.Stderr, "Warning: error accessing path %s: %v\n", walkedPath, accessError)
			if directoryEntry != nil && directoryEntry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		relativePath := utils.RelativePathOrSelf(walkedPath, cleanedRootPath)
		if relativePath == "." {
			return nil
		}
		if directoryEntry.IsDir() && directoryEntry.Name() == utils.GitDirectoryName {
			return filepath.SkipDir
		}
		if utils.ShouldIgnoreByPath(relativePath, ignorePatterns) {
			if directoryEntry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		entryKind := types.EntryKindFile
		if directoryEntry.IsDir() {
			entryKind = types.EntryKindDirectory
		}
		repositoryEntries = append(repositoryEntries, types.RepoEntry{
			RelativePath: relativePath,
			Kind:         entryKind,
		})
		return nil
	})
	if directoryWalkError != nil {
		return nil, directoryWalkError
	}

	return repositoryEntries, nil
}
