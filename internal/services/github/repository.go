// Package github traverses remote repositories through the GitHub API.
package github

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	gogithub "github.com/google/go-github/v57/github"

	"github.com/temirov/repotxt/internal/types"
	"github.com/temirov/repotxt/internal/utils"
)

const (
	repositoryURLPrefix  = "https://github.com/"
	contentTypeDirectory = "dir"
	contentTypeFile      = "file"

	readmeMissingMessage = "README not found."

	readmeStatusFormat   = "Fetching README for: %s\n"
	contentsStatusFormat = "Fetching repository structure and contents for: %s\n"

	errorInvalidRepositoryURLFormat = "invalid GitHub repository URL '%s'"
	errorListContentsFormat         = "listing %s: %w"
)

// IsRepositoryURL reports whether the input designates a remote GitHub repository.
func IsRepositoryURL(input string) bool {
	return strings.HasPrefix(input, repositoryURLPrefix)
}

// ParseRepositoryURL extracts the owner and repository name from a GitHub URL.
func ParseRepositoryURL(repositoryURL string) (string, string, error) {
	trimmed := strings.TrimPrefix(repositoryURL, repositoryURLPrefix)
	trimmed = strings.Trim(trimmed, "/")
	segments := strings.Split(trimmed, "/")
	if len(segments) < 2 || segments[0] == "" || segments[1] == "" {
		return "", "", fmt.Errorf(errorInvalidRepositoryURLFormat, repositoryURL)
	}
	repositoryName := strings.TrimSuffix(segments[1], ".git")
	return segments[0], repositoryName, nil
}

// Client reads repository structure and content through the GitHub API.
// Phase status lines go to statusWriter so long remote runs show progress.
type Client struct {
	api          *gogithub.Client
	statusWriter io.Writer
}

// NewClient constructs a Client authenticated with the provided token.
func NewClient(accessToken string) *Client {
	apiClient := gogithub.NewClient(nil)
	if accessToken != "" {
		apiClient = apiClient.WithAuthToken(accessToken)
	}
	return &Client{api: apiClient, statusWriter: os.Stderr}
}

// Snapshot traverses the remote repository and produces the same structure
// listing and file records as the local walker. Per-file failures become
// inline skip markers; only traversal-level API failures abort the run.
func (client *Client) Snapshot(ctx context.Context, owner string, repositoryName string) (types.RepoSnapshot, error) {
	snapshot := types.RepoSnapshot{
		Name:   repositoryName,
		Readme: client.readmeContent(ctx, owner, repositoryName),
	}

	fmt.Fprintf(client.statusWriter, contentsStatusFormat, repositoryName)
	directoriesToVisit := []string{""}
	for len(directoriesToVisit) > 0 {
		currentDirectory := directoriesToVisit[len(directoriesToVisit)-1]
		directoriesToVisit = directoriesToVisit[:len(directoriesToVisit)-1]

		_, directoryContents, _, listError := client.api.Repositories.GetContents(ctx, owner, repositoryName, currentDirectory, nil)
		if listError != nil {
			return types.RepoSnapshot{}, fmt.Errorf(errorListContentsFormat, displayDirectory(currentDirectory), listError)
		}

		for _, contentEntry := range directoryContents {
			entryPath := contentEntry.GetPath()
			switch contentEntry.GetType() {
			case contentTypeDirectory:
				snapshot.Entries = append(snapshot.Entries, types.RepoEntry{
					RelativePath: entryPath,
					Kind:         types.EntryKindDirectory,
				})
				directoriesToVisit = append(directoriesToVisit, entryPath)
			case contentTypeFile:
				snapshot.Entries = append(snapshot.Entries, types.RepoEntry{
					RelativePath: entryPath,
					Kind:         types.EntryKindFile,
				})
				if strings.EqualFold(contentEntry.GetName(), utils.ReadmeFileName) {
					continue
				}
				snapshot.Files = append(snapshot.Files, client.fileRecord(ctx, owner, repositoryName, contentEntry))
			}
		}
	}

	return snapshot, nil
}

// readmeContent retrieves the repository README, reporting absence inline.
func (client *Client) readmeContent(ctx context.Context, owner string, repositoryName string) string {
	fmt.Fprintf(client.statusWriter, readmeStatusFormat, repositoryName)
	readme, _, readmeError := client.api.Repositories.GetReadme(ctx, owner, repositoryName, nil)
	if readmeError != nil {
		return readmeMissingMessage
	}
	readmeText, decodeError := readme.GetContent()
	if decodeError != nil {
		return readmeMissingMessage
	}
	return readmeText
}

// fileRecord classifies and fetches a single remote file.
func (client *Client) fileRecord(ctx context.Context, owner string, repositoryName string, contentEntry *gogithub.RepositoryContent) types.FileRecord {
	record := types.FileRecord{RelativePath: contentEntry.GetPath()}

	if utils.HasBinaryExtension(contentEntry.GetName()) {
		record.Skip = types.SkipBinaryMarker
		return record
	}

	fileContent, _, _, fetchError := client.api.Repositories.GetContents(ctx, owner, repositoryName, contentEntry.GetPath(), nil)
	if fetchError != nil {
		record.Skip = fmt.Sprintf(types.SkipErrorMarkerFormat, fetchError)
		return record
	}
	if fileContent == nil {
		record.Skip = types.SkipMissingEncodingMarker
		return record
	}

	rawContent, contentError := fileContent.GetContent()
	if contentError != nil {
		// Payloads above the API size limit arrive with encoding "none".
		if strings.Contains(contentError.Error(), "encoding") {
			record.Skip = types.SkipMissingEncodingMarker
		} else {
			record.Skip = types.SkipUnsupportedEncodingMarker
		}
		return record
	}

	if utf8.ValidString(rawContent) {
		record.Text = rawContent
		record.Encoding = types.EncodingUTF8
		return record
	}

	decodedText, usedLatin1, decodeError := utils.DecodeText([]byte(rawContent))
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

func displayDirectory(directoryPath string) string {
	if directoryPath == "" {
		return "/"
	}
	return directoryPath
}
