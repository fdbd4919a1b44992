package commands

import (
	"path/filepath"

	"github.com/temirov/repotxt/internal/config"
	"github.com/temirov/repotxt/internal/types"
)

// GetLocalSnapshot runs the full local pipeline for one directory: ignore
// resolution, README lookup, structure walk, and content pass.
func GetLocalSnapshot(absoluteDirectoryPath string) (types.RepoSnapshot, error) {
	ignorePatterns, ignoreLoadError := config.LoadCombinedIgnorePatterns(absoluteDirectoryPath)
	if ignoreLoadError != nil {
		return types.RepoSnapshot{}, ignoreLoadError
	}

	repositoryEntries, structureError := GetStructureData(absoluteDirectoryPath, ignorePatterns)
	if structureError != nil {
		return types.RepoSnapshot{}, structureError
	}

	fileRecords, contentError := GetContentData(absoluteDirectoryPath, ignorePatterns)
	if contentError != nil {
		return types.RepoSnapshot{}, contentError
	}

	return types.RepoSnapshot{
		Name:    filepath.Base(absoluteDirectoryPath),
		Readme:  GetReadmeContent(absoluteDirectoryPath),
		Entries: repositoryEntries,
		Files:   fileRecords,
	}, nil
}
