package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/temirov/repotxt/internal/types"
	"github.com/temirov/repotxt/internal/utils"
)

// GetContentData returns FileRecord slices for every non-ignored, non-README
// file under the directory. Files with a binary extension are marked skipped
// without being read; unreadable files become inline skip markers instead of
// aborting the walk.
func GetContentData(rootPath string, ignorePatterns []string) ([]types.FileRecord, error) {
	absoluteRootPath, absolutePathError := filepath.Abs(rootPath)
	if absolutePathError != nil {
		return nil, fmt.Errorf("failed to get absolute path for %s: %w", rootPath, absolutePathError)
	}
	cleanedRootPath := filepath.Clean(absoluteRootPath)

	var fileRecords []types.FileRecord

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
		if directoryEntry.IsDir() {
			return nil
		}
		// The README is rendered in its own section, not in the content pass.
		if strings.EqualFold(directoryEntry.Name(), utils.ReadmeFileName) {
			return nil
		}

		fileRecords = append(fileRecords, ReadFileRecord(walkedPath, relativePath))
		return nil
	})
	if directoryWalkError != nil {
		return nil, directoryWalkError
	}

	return fileRecords, nil
}

// ReadFileRecord classifies and reads a single file into a FileRecord.
func ReadFileRecord(absoluteFilePath string, relativePath string) types.FileRecord {
	record := types.FileRecord{RelativePath: relativePath}

	if utils.HasBinaryExtension(filepath.Base(absoluteFilePath)) {
		record.Skip = types.SkipBinaryMarker
		return record
	}

	fileBytes, fileReadError := os.ReadFile(absoluteFilePath)
	if fileReadError != nil {
		record.Skip = fmt.Sprintf(types.SkipErrorMarkerFormat, fileReadError)
		return record
	}

	decodedText, usedLatin1, decodeError := utils.DecodeText(fileBytes)
	if decodeError != nil {
		record.Skip = types.SkipUnsupportedEncodingMarker
		return record
	}

	record.Text = decodedText
	record.Encoding = types.EncodingUTF8
	if usedLatin1 {
		record.Encoding = types.EncodingLatin1
	}
	return record
}
