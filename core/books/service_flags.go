// ABOUTME: Flag-aware wrapper around book search
// ABOUTME: Lets operators switch off external provider lookups without a redeploy

package books

import (
	"context"

	"chapterone-api/core/domain"
	"chapterone-api/pkg/featureflags"
)

// SearchBooksWithFlags runs SearchBooks, first consulting the feature flag
// manager carried in ctx. When external search is disabled the request
// degrades to a catalog-only search; catalog behavior is never gated.
func (s *BookService) SearchBooksWithFlags(ctx context.Context, query string, searchType domain.SearchType, includeExternal bool) ([]domain.Book, error) {
	if includeExternal && !featureflags.IsEnabled(ctx, featureflags.ExternalSearchEnabled) {
		includeExternal = false
	}
	return s.SearchBooks(ctx, query, searchType, includeExternal)
}
