package github

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	gogithub "github.com/google/go-github/v57/github"

	"github.com/temirov/repotxt/internal/types"
)

// TestIsRepositoryURL verifies GitHub URL detection.
func TestIsRepositoryURL(testingHandle *testing.T) {
	if !IsRepositoryURL("https://github.com/owner/project") {
		testingHandle.Error("expected GitHub URL to be detected")
	}
	if IsRepositoryURL("/home/user/project") {
		testingHandle.Error("expected local path to be rejected")
	}
	if IsRepositoryURL("https://gitlab.com/owner/project") {
		testingHandle.Error("expected non-GitHub host to be rejected")
	}
}

// TestParseRepositoryURL verifies owner and repository extraction.
func TestParseRepositoryURL(testingHandle *testing.T) {
	testCases := []struct {
		name          string
		repositoryURL string
		expectedOwner string
		expectedName  string
		expectError   bool
	}{
		{"plain URL", "https://github.com/owner/project", "owner", "project", false},
		{"trailing slash", "https://github.com/owner/project/", "owner", "project", false},
		{"dot git suffix", "https://github.com/owner/project.git", "owner", "project", false},
		{"extra path segments keep first two", "https://github.com/owner/project/tree/main", "owner", "project", false},
		{"missing repository", "https://github.com/owner", "", "", true},
		{"empty path", "https://github.com/", "", "", true},
	}

	for _, testCase := range testCases {
		testingHandle.Run(testCase.name, func(subTest *testing.T) {
			owner, repositoryName, parseError := ParseRepositoryURL(testCase.repositoryURL)
			if testCase.expectError {
				if parseError == nil {
					subTest.Fatalf("expected an error for %s", testCase.repositoryURL)
				}
				return
			}
			if parseError != nil {
				subTest.Fatalf("ParseRepositoryURL failed: %v", parseError)
			}
			if owner != testCase.expectedOwner || repositoryName != testCase.expectedName {
				subTest.Fatalf("got %s/%s, want %s/%s", owner, repositoryName, testCase.expectedOwner, testCase.expectedName)
			}
		})
	}
}

// base64FileJSON renders an API content payload carrying base64-encoded bytes.
func base64FileJSON(fileName string, filePath string, rawBytes []byte) string {
	return fmt.Sprintf(`{"type":"file","name":%q,"path":%q,"encoding":"base64","content":%q}`,
		fileName, filePath, base64.StdEncoding.EncodeToString(rawBytes))
}

// newTestClient points a Client at a stub API server and captures status output.
func newTestClient(testingHandle *testing.T, handler http.Handler) (*Client, *bytes.Buffer) {
	testingHandle.Helper()
	server := httptest.NewServer(handler)
	testingHandle.Cleanup(server.Close)

	apiClient := gogithub.NewClient(nil)
	baseURL, parseError := url.Parse(server.URL + "/")
	if parseError != nil {
		testingHandle.Fatalf("failed to parse server URL: %v", parseError)
	}
	apiClient.BaseURL = baseURL

	statusBuffer := &bytes.Buffer{}
	return &Client{api: apiClient, statusWriter: statusBuffer}, statusBuffer
}

// TestSnapshotRemoteRepository walks a stubbed repository and verifies the
// structure listing, README extraction, and every file record variant.
func TestSnapshotRemoteRepository(testingHandle *testing.T) {
	handler := http.HandlerFunc(func(responseWriter http.ResponseWriter, request *http.Request) {
		var body string
		switch request.URL.Path {
		case "/repos/acme/widget/readme":
			body = base64FileJSON("README.md", "README.md", []byte("Widget usage notes.\n"))
		case "/repos/acme/widget/contents/":
			body = `[
				{"type":"file","name":"README.md","path":"README.md"},
				{"type":"file","name":"caf.txt","path":"caf.txt"},
				{"type":"file","name":"huge.txt","path":"huge.txt"},
				{"type":"file","name":"logo.png","path":"logo.png"},
				{"type":"file","name":"notes.txt","path":"notes.txt"},
				{"type":"dir","name":"src","path":"src"}
			]`
		case "/repos/acme/widget/contents/src":
			body = `[{"type":"file","name":"main.go","path":"src/main.go"}]`
		case "/repos/acme/widget/contents/notes.txt":
			body = base64FileJSON("notes.txt", "notes.txt", []byte("hello notes\n"))
		case "/repos/acme/widget/contents/caf.txt":
			body = base64FileJSON("caf.txt", "caf.txt", []byte{0x63, 0x61, 0x66, 0xE9})
		case "/repos/acme/widget/contents/huge.txt":
			body = `{"type":"file","name":"huge.txt","path":"huge.txt","encoding":"none","content":null}`
		case "/repos/acme/widget/contents/src/main.go":
			body = base64FileJSON("main.go", "src/main.go", []byte("package main\n"))
		default:
			responseWriter.WriteHeader(http.StatusNotFound)
			return
		}
		responseWriter.Header().Set("Content-Type", "application/json")
		fmt.Fprint(responseWriter, body)
	})

	client, statusBuffer := newTestClient(testingHandle, handler)
	snapshot, snapshotError := client.Snapshot(context.Background(), "acme", "widget")
	if snapshotError != nil {
		testingHandle.Fatalf("Snapshot failed: %v", snapshotError)
	}

	if snapshot.Name != "widget" {
		testingHandle.Errorf("unexpected repository name: %s", snapshot.Name)
	}
	if snapshot.Readme != "Widget usage notes.\n" {
		testingHandle.Errorf("unexpected README content: %q", snapshot.Readme)
	}

	entryKinds := map[string]string{}
	for _, repositoryEntry := range snapshot.Entries {
		entryKinds[repositoryEntry.RelativePath] = repositoryEntry.Kind
	}
	if entryKinds["src"] != types.EntryKindDirectory {
		testingHandle.Errorf("expected src to be listed as a directory: %v", entryKinds)
	}
	for _, expectedFile := range []string{"README.md", "logo.png", "notes.txt", "src/main.go"} {
		if entryKinds[expectedFile] != types.EntryKindFile {
			testingHandle.Errorf("expected %s to be listed as a file: %v", expectedFile, entryKinds)
		}
	}

	fileRecords := map[string]types.FileRecord{}
	for _, record := range snapshot.Files {
		fileRecords[record.RelativePath] = record
	}
	if _, readmeIncluded := fileRecords["README.md"]; readmeIncluded {
		testingHandle.Error("expected README.md to be excluded from file records")
	}
	if record := fileRecords["logo.png"]; record.Skip != types.SkipBinaryMarker {
		testingHandle.Errorf("expected binary skip for logo.png, got %+v", record)
	}
	if record := fileRecords["huge.txt"]; record.Skip != types.SkipMissingEncodingMarker {
		testingHandle.Errorf("expected missing-encoding skip for huge.txt, got %+v", record)
	}
	if record := fileRecords["notes.txt"]; record.Text != "hello notes\n" || record.Encoding != types.EncodingUTF8 {
		testingHandle.Errorf("unexpected notes.txt record: %+v", record)
	}
	if record := fileRecords["caf.txt"]; record.Text != "café" || record.Encoding != types.EncodingLatin1 {
		testingHandle.Errorf("expected Latin-1 fallback for caf.txt, got %+v", record)
	}
	if record := fileRecords["src/main.go"]; record.Text != "package main\n" {
		testingHandle.Errorf("unexpected src/main.go record: %+v", record)
	}

	statusOutput := statusBuffer.String()
	if !strings.Contains(statusOutput, "Fetching README for: widget") {
		testingHandle.Errorf("missing README status line: %q", statusOutput)
	}
	if !strings.Contains(statusOutput, "Fetching repository structure and contents for: widget") {
		testingHandle.Errorf("missing contents status line: %q", statusOutput)
	}
}

// TestSnapshotMissingReadme verifies README absence is reported inline rather than failing the run.
func TestSnapshotMissingReadme(testingHandle *testing.T) {
	handler := http.HandlerFunc(func(responseWriter http.ResponseWriter, request *http.Request) {
		if request.URL.Path == "/repos/acme/widget/contents/" {
			responseWriter.Header().Set("Content-Type", "application/json")
			fmt.Fprint(responseWriter, `[]`)
			return
		}
		responseWriter.WriteHeader(http.StatusNotFound)
	})

	client, _ := newTestClient(testingHandle, handler)
	snapshot, snapshotError := client.Snapshot(context.Background(), "acme", "widget")
	if snapshotError != nil {
		testingHandle.Fatalf("Snapshot failed: %v", snapshotError)
	}
	if snapshot.Readme != readmeMissingMessage {
		testingHandle.Errorf("unexpected README placeholder: %q", snapshot.Readme)
	}
	if len(snapshot.Entries) != 0 || len(snapshot.Files) != 0 {
		testingHandle.Errorf("expected an empty snapshot, got %+v", snapshot)
	}
}
