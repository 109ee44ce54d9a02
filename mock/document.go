package mock

import (
	"context"

	"github.com/fwojciec/politext"
)

var _ politext.DocumentService = (*DocumentService)(nil)

// DocumentService is a mock implementation of politext.DocumentService.
type DocumentService struct {
	CreateDocumentFn   func(ctx context.Context, doc *politext.Document) error
	FindDocumentByIDFn func(ctx context.Context, id string) (*politext.Document, error)
	FindDocumentsFn    func(ctx context.Context, filter politext.DocumentFilter) ([]*politext.Document, error)
	DeleteDocumentFn   func(ctx context.Context, id string) error
}

func (s *DocumentService) CreateDocument(ctx context.Context, doc *politext.Document) error {
	return s.CreateDocumentFn(ctx, doc)
}

func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*politext.Document, error) {
	return s.FindDocumentByIDFn(ctx, id)
}

func (s *DocumentService) FindDocuments(ctx context.Context, filter politext.DocumentFilter) ([]*politext.Document, error) {
	return s.FindDocumentsFn(ctx, filter)
}

func (s *DocumentService) DeleteDocument(ctx context.Context, id string) error {
	return s.DeleteDocumentFn(ctx, id)
}
