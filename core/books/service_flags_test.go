package books

import (
	"context"
	"testing"

	"chapterone-api/core/domain"
	"chapterone-api/core/interfaces"
	"chapterone-api/pkg/featureflags"
)

func flagCtx(enabled bool) context.Context {
	manager := featureflags.NewStaticManager(map[featureflags.FeatureFlag]bool{
		featureflags.ExternalSearchEnabled: enabled,
	})
	return featureflags.WithManager(context.Background(), manager)
}

func newFlagTestService(httpCalled *bool) *BookService {
	storage := &mockBookStorage{
		searchFunc: func(ctx context.Context, query string, searchType domain.SearchType, limit int) ([]domain.Book, error) {
			return []domain.Book{{ID: "b1", Title: "Dune"}}, nil
		},
	}
	cache := &mockCache{
		getFunc: func(ctx context.Context, key string) ([]byte, error) {
			return nil, nil
		},
	}
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			*httpCalled = true
			return &mockResponse{statusCode: 200, body: `{"items":[]}`}, nil
		},
	}
	return NewBookService(interfaces.Dependencies{Cache: cache, HTTPClient: client}, storage)
}

func TestSearchBooksWithFlags_DisabledSkipsExternal(t *testing.T) {
	httpCalled := false
	service := newFlagTestService(&httpCalled)

	books, err := service.SearchBooksWithFlags(flagCtx(false), "dune", domain.SearchTypeTitle, true)

	if err != nil {
		t.Fatalf("SearchBooksWithFlags returned error: %v", err)
	}
	if len(books) != 1 {
		t.Errorf("SearchBooksWithFlags returned %d books, want 1 catalog result", len(books))
	}
	if httpCalled {
		t.Error("external provider must not be called when the flag is disabled")
	}
}

func TestSearchBooksWithFlags_EnabledCallsExternal(t *testing.T) {
	httpCalled := false
	service := newFlagTestService(&httpCalled)

	_, err := service.SearchBooksWithFlags(flagCtx(true), "dune", domain.SearchTypeTitle, true)

	if err != nil {
		t.Fatalf("SearchBooksWithFlags returned error: %v", err)
	}
	if !httpCalled {
		t.Error("external provider should be called when the flag is enabled")
	}
}

func TestSearchBooksWithFlags_NoManagerDefaultsToCatalogOnly(t *testing.T) {
	httpCalled := false
	service := newFlagTestService(&httpCalled)

	_, err := service.SearchBooksWithFlags(context.Background(), "dune", domain.SearchTypeTitle, true)

	if err != nil {
		t.Fatalf("SearchBooksWithFlags returned error: %v", err)
	}
	if httpCalled {
		t.Error("a context without a flag manager must not reach the external provider")
	}
}
