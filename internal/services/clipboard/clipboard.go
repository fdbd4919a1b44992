// Package clipboard implements the clipboard sink for assembled documents.
package clipboard

import (
	"github.com/atotto/clipboard"
)

// Copier places an assembled repository document on the system clipboard.
type Copier interface {
	Copy(text string) error
}

// Service is the production Copier backed by github.com/atotto/clipboard.
type Service struct{}

// NewService constructs the clipboard sink.
func NewService() *Service {
	return &Service{}
}

// Copy replaces the clipboard contents with the document text.
func (service *Service) Copy(text string) error {
	return clipboard.WriteAll(text)
}

var _ Copier = (*Service)(nil)
