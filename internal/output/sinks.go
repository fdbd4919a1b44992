package output

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/temirov/repotxt/internal/utils"
)

const (
	outputFileExtension = ".txt"
	outputFileMode      = 0o644
)

// SaveDocument writes the document to <name>.txt in the output directory,
// appending a timestamp to the file name when requested. The clock is
// injectable so tests stay deterministic. Returns the written path.
func SaveDocument(document string, repositoryName string, outputDirectory string, includeTimestamp bool, clock func() time.Time) (string, error) {
	outputFileName := repositoryName
	if includeTimestamp {
		if clock == nil {
			clock = time.Now
		}
		outputFileName = repositoryName + "_" + utils.FormatOutputTimestamp(clock())
	}
	outputFilePath := filepath.Join(outputDirectory, outputFileName+outputFileExtension)

	if writeError := os.WriteFile(outputFilePath, []byte(document), outputFileMode); writeError != nil {
		return "", fmt.Errorf("saving document to %s: %w", outputFilePath, writeError)
	}
	return outputFilePath, nil
}
