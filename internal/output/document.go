// Package output assembles the final document and delivers it to the
// configured sinks.
package output

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/temirov/repotxt/internal/types"
)

const (
	// InstructionsFileName is an optional template read from the working directory.
	InstructionsFileName = "instructions-prompt.txt"
	// repoNamePlaceholder is substituted with the repository name in the instructions template.
	repoNamePlaceholder = "##REPO_NAME##"

	readmeSectionHeader    = "README:"
	structureSectionFormat = "Repository Structure: %s"
	fileHeaderPrefix       = "File: "
	contentHeader          = "Content:"
	contentLatin1Header    = "Content (Latin-1 Decoded):"
	directorySuffix        = "/"
	sectionSeparator       = "\n\n"
)

//go:embed instructions_default.txt
var defaultInstructionsTemplate string

// BuildOptions controls document assembly.
type BuildOptions struct {
	// SkipInstructions omits the instructions block entirely.
	SkipInstructions bool
	// WorkingDirectory is searched for an instructions template override.
	WorkingDirectory string
}

// BuildDocument concatenates the instructions block, readme, structure listing,
// and per-file contents into one document. Running it twice over the same
// snapshot produces byte-identical output.
func BuildDocument(snapshot types.RepoSnapshot, options BuildOptions) string {
	var documentBuilder strings.Builder

	if !options.SkipInstructions {
		documentBuilder.WriteString(loadInstructions(options.WorkingDirectory, snapshot.Name))
		documentBuilder.WriteString(sectionSeparator)
	}

	documentBuilder.WriteString(readmeSectionHeader)
	documentBuilder.WriteString("\n")
	documentBuilder.WriteString(snapshot.Readme)
	documentBuilder.WriteString(sectionSeparator)

	documentBuilder.WriteString(renderStructure(snapshot))
	documentBuilder.WriteString(sectionSeparator)

	for _, fileRecord := range snapshot.Files {
		writeFileBlock(&documentBuilder, fileRecord)
	}

	return documentBuilder.String()
}

// renderStructure produces the structure section, directories suffixed with a
// trailing separator.
func renderStructure(snapshot types.RepoSnapshot) string {
	var structureBuilder strings.Builder
	structureBuilder.WriteString(fmt.Sprintf(structureSectionFormat, snapshot.Name))
	structureBuilder.WriteString("\n")
	for _, repositoryEntry := range snapshot.Entries {
		structureBuilder.WriteString(repositoryEntry.RelativePath)
		if repositoryEntry.Kind == types.EntryKindDirectory {
			structureBuilder.WriteString(directorySuffix)
		}
		structureBuilder.WriteString("\n")
	}
	return structureBuilder.String()
}

// writeFileBlock renders one File/Content block.
func writeFileBlock(documentBuilder *strings.Builder, fileRecord types.FileRecord) {
	documentBuilder.WriteString(fileHeaderPrefix)
	documentBuilder.WriteString(fileRecord.RelativePath)
	documentBuilder.WriteString("\n")

	if fileRecord.Skip != "" {
		documentBuilder.WriteString(contentHeader)
		documentBuilder.WriteString(" ")
		documentBuilder.WriteString(fileRecord.Skip)
		documentBuilder.WriteString(sectionSeparator)
		return
	}

	if fileRecord.Encoding == types.EncodingLatin1 {
		documentBuilder.WriteString(contentLatin1Header)
	} else {
		documentBuilder.WriteString(contentHeader)
	}
	documentBuilder.WriteString("\n")
	documentBuilder.WriteString(fileRecord.Text)
	documentBuilder.WriteString(sectionSeparator)
}

// loadInstructions reads the instructions template from the working directory
// when present, falling back to the embedded default, and substitutes the
// repository name placeholder.
func loadInstructions(workingDirectory string, repositoryName string) string {
	template := defaultInstructionsTemplate
	if workingDirectory != "" {
		templatePath := filepath.Join(workingDirectory, InstructionsFileName)
		if templateBytes, readError := os.ReadFile(templatePath); readError == nil {
			template = string(templateBytes)
		}
	}
	return strings.TrimRight(strings.ReplaceAll(template, repoNamePlaceholder, repositoryName), "\n")
}
