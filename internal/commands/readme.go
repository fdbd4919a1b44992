package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/temirov/repotxt/internal/utils"
)

const (
	readmeMissingMessage  = "README not found."
	readmeReadErrorFormat = "Error reading README file: %v"
)

// GetReadmeContent retrieves the README text from a local directory. A missing
// or unreadable README is reported inline, never as an error.
func GetReadmeContent(directoryPath string) string {
	readmePath := filepath.Join(directoryPath, utils.ReadmeFileName)
	readmeBytes, readError := os.ReadFile(readmePath)
	if readError != nil {
		if os.IsNotExist(readError) {
			return readmeMissingMessage
		}
		return fmt.Sprintf(readmeReadErrorFormat, readError)
	}
	readmeText, _, decodeError := utils.DecodeText(readmeBytes)
	if decodeError != nil {
		return fmt.Sprintf(readmeReadErrorFormat, decodeError)
	}
	return readmeText
}
