package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/politext"
	"github.com/google/uuid"
)

// Ensure DocumentService implements politext.DocumentService at compile time.
var _ politext.DocumentService = (*DocumentService)(nil)

// DocumentService persists parsed documents in SQLite.
type DocumentService struct {
	db *DB
}

// NewDocumentService creates a new DocumentService backed by db.
func NewDocumentService(db *DB) *DocumentService {
	return &DocumentService{db: db}
}

// CreateDocument stores a document. The ID, content hash, and parse
// time are assigned here if unset.
func (s *DocumentService) CreateDocument(ctx context.Context, doc *politext.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	if doc.ID == "" {
		doc.ID = uuid.New().String()
	}
	if doc.ContentHash == "" {
		doc.ContentHash = hashContent(doc.Content)
	}
	if doc.ParsedAt.IsZero() {
		doc.ParsedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO documents (id, source_url, title, content, content_hash, position, parsed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, doc.ID, doc.SourceURL, doc.Title, doc.Content, doc.ContentHash, doc.Position, doc.ParsedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("inserting document: %w", err)
	}

	return nil
}

// FindDocumentByID returns the document with the given ID, or an
// ENOTFOUND error if it does not exist.
func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*politext.Document, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, source_url, title, content, content_hash, position, parsed_at
		FROM documents
		WHERE id = ?
	`, id)

	doc, err := scanDocument(row)
	if err == sql.ErrNoRows {
		return nil, politext.Errorf(politext.ENOTFOUND, "document not found: %s", id)
	} else if err != nil {
		return nil, err
	}

	return doc, nil
}

// FindDocuments returns documents matching the filter.
func (s *DocumentService) FindDocuments(ctx context.Context, filter politext.DocumentFilter) ([]*politext.Document, error) {
	var where []string
	var args []any

	if filter.ID != nil {
		where = append(where, "id = ?")
		args = append(args, *filter.ID)
	}
	if filter.SourceURL != nil {
		where = append(where, "source_url = ?")
		args = append(args, *filter.SourceURL)
	}

	var query strings.Builder
	query.WriteString(`
		SELECT id, source_url, title, content, content_hash, position, parsed_at
		FROM documents
	`)
	if len(where) > 0 {
		query.WriteString(" WHERE " + strings.Join(where, " AND "))
	}

	switch filter.SortBy {
	case politext.SortByPosition:
		query.WriteString(" ORDER BY position ASC, parsed_at ASC")
	default:
		query.WriteString(" ORDER BY parsed_at DESC, position ASC")
	}

	// SQLite requires LIMIT when OFFSET is present; -1 means no limit.
	if filter.Limit > 0 {
		query.WriteString(fmt.Sprintf(" LIMIT %d", filter.Limit))
	} else if filter.Offset > 0 {
		query.WriteString(" LIMIT -1")
	}
	if filter.Offset > 0 {
		query.WriteString(fmt.Sprintf(" OFFSET %d", filter.Offset))
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying documents: %w", err)
	}
	defer rows.Close()

	var docs []*politext.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning document: %w", err)
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return docs, nil
}

// DeleteDocument removes the document with the given ID. Returns an
// ENOTFOUND error if it does not exist.
func (s *DocumentService) DeleteDocument(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM documents WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting document: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return politext.Errorf(politext.ENOTFOUND, "document not found: %s", id)
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanDocument(row scanner) (*politext.Document, error) {
	var doc politext.Document
	var parsedAt string
	if err := row.Scan(&doc.ID, &doc.SourceURL, &doc.Title, &doc.Content, &doc.ContentHash, &doc.Position, &parsedAt); err != nil {
		return nil, err
	}
	var err error
	doc.ParsedAt, err = time.Parse(time.RFC3339, parsedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing timestamp: %w", err)
	}
	return &doc, nil
}

// hashContent returns a hex-encoded xxhash of the content, used for
// duplicate detection across ingestion runs.
func hashContent(content string) string {
	sum := xxhash.Sum64String(content)
	var b [8]byte
	for i := 0; i < 8; i++ {
		b[i] = byte(sum >> (56 - 8*i))
	}
	return hex.EncodeToString(b[:])
}
