// ABOUTME: Postgres-backed catalog repository for books
// ABOUTME: Implements BookStorage search and upsert over a pgx pool

package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"chapterone-api/core/domain"
	coreerrors "chapterone-api/core/errors"
)

const bookColumns = `id, title, author, isbn, external_id, description, pace,
	tone, themes, best_for, categories, rating, cover_url, page_count,
	published_year, added_at`

// BookRepository implements BookStorage backed by Postgres
type BookRepository struct {
	pool *pgxpool.Pool
}

// NewBookRepository creates a new book repository
func NewBookRepository(pool *pgxpool.Pool) *BookRepository {
	return &BookRepository{pool: pool}
}

// GetByID retrieves a book by its catalog id
func (r *BookRepository) GetByID(ctx context.Context, id string) (*domain.Book, error) {
	row := r.pool.QueryRow(ctx,
		"SELECT "+bookColumns+" FROM books WHERE id = $1", id)

	book, err := scanBook(row)
	if err == pgx.ErrNoRows {
		return nil, &coreerrors.NotFoundError{Resource: "book", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get book: %w", err)
	}

	return book, nil
}

// Search finds catalog books matching the query for the given search type
func (r *BookRepository) Search(ctx context.Context, query string, searchType domain.SearchType, limit int) ([]domain.Book, error) {
	pattern := "%" + query + "%"

	var where string
	switch searchType {
	case domain.SearchTypeTitle:
		where = "title ILIKE $1"
	case domain.SearchTypeAuthor:
		where = "author ILIKE $1"
	case domain.SearchTypeCategory:
		where = "EXISTS (SELECT 1 FROM unnest(categories) c WHERE c ILIKE $1)"
	default:
		where = `title ILIKE $1 OR author ILIKE $1 OR
			EXISTS (SELECT 1 FROM unnest(categories) c WHERE c ILIKE $1)`
	}

	sql := fmt.Sprintf(
		"SELECT %s FROM books WHERE %s ORDER BY rating DESC, title LIMIT $2",
		bookColumns, where)

	rows, err := r.pool.Query(ctx, sql, pattern, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search books: %w", err)
	}
	defer rows.Close()

	return collectBooks(rows)
}

// SearchByCategories finds books tagged with any of the given categories
func (r *BookRepository) SearchByCategories(ctx context.Context, categories []string, limit int) ([]domain.Book, error) {
	if len(categories) == 0 {
		return nil, nil
	}

	rows, err := r.pool.Query(ctx,
		"SELECT "+bookColumns+" FROM books WHERE categories && $1 ORDER BY rating DESC LIMIT $2",
		categories, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search books by categories: %w", err)
	}
	defer rows.Close()

	return collectBooks(rows)
}

// Upsert inserts or updates a book keyed by its id
func (r *BookRepository) Upsert(ctx context.Context, book *domain.Book) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO books (id, title, author, isbn, external_id, description,
			pace, tone, themes, best_for, categories, rating, cover_url,
			page_count, published_year, added_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			author = EXCLUDED.author,
			isbn = EXCLUDED.isbn,
			external_id = EXCLUDED.external_id,
			description = EXCLUDED.description,
			pace = EXCLUDED.pace,
			tone = EXCLUDED.tone,
			themes = EXCLUDED.themes,
			best_for = EXCLUDED.best_for,
			categories = EXCLUDED.categories,
			rating = EXCLUDED.rating,
			cover_url = EXCLUDED.cover_url,
			page_count = EXCLUDED.page_count,
			published_year = EXCLUDED.published_year`,
		book.ID, book.Title, book.Author, book.ISBN, book.ExternalID,
		book.Description, book.Pace, book.Tone, book.Themes, book.BestFor,
		book.Categories, book.Rating, book.CoverURL, book.PageCount,
		book.PublishedYear, book.AddedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert book: %w", err)
	}

	return nil
}

func scanBook(row pgx.Row) (*domain.Book, error) {
	var book domain.Book
	err := row.Scan(&book.ID, &book.Title, &book.Author, &book.ISBN,
		&book.ExternalID, &book.Description, &book.Pace, &book.Tone,
		&book.Themes, &book.BestFor, &book.Categories, &book.Rating,
		&book.CoverURL, &book.PageCount, &book.PublishedYear, &book.AddedAt)
	if err != nil {
		return nil, err
	}
	return &book, nil
}

func collectBooks(rows pgx.Rows) ([]domain.Book, error) {
	var books []domain.Book
	for rows.Next() {
		book, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, *book)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return books, nil
}
