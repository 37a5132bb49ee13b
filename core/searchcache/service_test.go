package searchcache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"chapterone-api/core/domain"
)

func testParams(userID string) domain.SearchParams {
	return domain.SearchParams{
		Query:           "dune",
		SearchType:      domain.SearchTypeTitle,
		IncludeExternal: true,
		UserID:          userID,
	}
}

func TestService_MissThenHit(t *testing.T) {
	service := NewService(time.Second, nil)
	books := []domain.Book{{ID: "b1", Title: "Dune"}}

	var calls atomic.Int32
	fetch := func(ctx context.Context) ([]domain.Book, error) {
		calls.Add(1)
		return books, nil
	}

	ctx := context.Background()
	first, err := service.Search(ctx, testParams("42"), fetch)
	if err != nil {
		t.Fatalf("first Search returned error: %v", err)
	}
	if first.Cached {
		t.Error("first Search should be a miss")
	}

	second, err := service.Search(ctx, testParams("42"), fetch)
	if err != nil {
		t.Fatalf("second Search returned error: %v", err)
	}
	if !second.Cached {
		t.Error("second Search should be served from cache")
	}
	if len(second.Books) != 1 || second.Books[0].ID != "b1" {
		t.Errorf("cached Search returned %v, want the fetched books", second.Books)
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("fetch invoked %d times, want 1", got)
	}
}

func TestService_ConcurrentSearchesShareOneFetch(t *testing.T) {
	service := NewService(time.Second, nil)

	var calls atomic.Int32
	release := make(chan struct{})
	fetch := func(ctx context.Context) ([]domain.Book, error) {
		calls.Add(1)
		<-release
		return []domain.Book{{ID: "b1"}}, nil
	}

	const callers = 5
	results := make([]*Result, callers)
	errs := make([]error, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx], errs[idx] = service.Search(context.Background(), testParams("42"), fetch)
		}(i)
	}

	// Give the goroutines time to pile onto the same key before the
	// fetch resolves.
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	if got := calls.Load(); got != 1 {
		t.Errorf("fetch invoked %d times, want 1", got)
	}
	for i := 0; i < callers; i++ {
		if errs[i] != nil {
			t.Fatalf("caller %d got error: %v", i, errs[i])
		}
		if len(results[i].Books) != 1 || results[i].Books[0].ID != "b1" {
			t.Errorf("caller %d got %v, want shared result", i, results[i].Books)
		}
	}
}

func TestService_FailedFetchNotCached(t *testing.T) {
	service := NewService(time.Second, nil)

	var calls atomic.Int32
	fetch := func(ctx context.Context) ([]domain.Book, error) {
		calls.Add(1)
		return nil, errors.New("backend error")
	}

	ctx := context.Background()
	if _, err := service.Search(ctx, testParams("42"), fetch); err == nil {
		t.Fatal("Search should propagate the fetch error")
	}
	if _, err := service.Search(ctx, testParams("42"), fetch); err == nil {
		t.Fatal("a failed fetch must not be cached; the retry should fetch again and fail")
	}

	if got := calls.Load(); got != 2 {
		t.Errorf("fetch invoked %d times, want 2 (failure never suppressed)", got)
	}
}

func TestService_UserPartitionsAreIndependent(t *testing.T) {
	service := NewService(time.Second, nil)

	var calls atomic.Int32
	fetch := func(ctx context.Context) ([]domain.Book, error) {
		calls.Add(1)
		return []domain.Book{{ID: "b1"}}, nil
	}

	ctx := context.Background()
	service.Search(ctx, testParams("42"), fetch)
	service.Search(ctx, testParams(""), fetch)

	if got := calls.Load(); got != 2 {
		t.Errorf("fetch invoked %d times, want 2 (distinct user partitions)", got)
	}
}

func TestService_InvalidateUserForcesRefetch(t *testing.T) {
	service := NewService(time.Second, nil)

	var calls atomic.Int32
	fetch := func(ctx context.Context) ([]domain.Book, error) {
		calls.Add(1)
		return []domain.Book{{ID: "b1"}}, nil
	}

	ctx := context.Background()
	service.Search(ctx, testParams("42"), fetch)
	service.Search(ctx, testParams("7"), fetch)

	service.InvalidateUser("42")

	result, err := service.Search(ctx, testParams("42"), fetch)
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if result.Cached {
		t.Error("user 42 should refetch after invalidation")
	}

	other, err := service.Search(ctx, testParams("7"), fetch)
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if !other.Cached {
		t.Error("user 7 entries should survive user 42's invalidation")
	}
}

func TestService_HitReportsNearZeroLatency(t *testing.T) {
	service := NewService(time.Second, nil)

	fetch := func(ctx context.Context) ([]domain.Book, error) {
		time.Sleep(30 * time.Millisecond)
		return []domain.Book{{ID: "b1"}}, nil
	}

	ctx := context.Background()
	miss, _ := service.Search(ctx, testParams("42"), fetch)
	hit, _ := service.Search(ctx, testParams("42"), fetch)

	if miss.ResponseTime < 30*time.Millisecond {
		t.Errorf("miss ResponseTime = %v, want at least the fetch duration", miss.ResponseTime)
	}
	if hit.ResponseTime > 10*time.Millisecond {
		t.Errorf("hit ResponseTime = %v, want near zero", hit.ResponseTime)
	}
}

func TestService_StatsAccumulate(t *testing.T) {
	service := NewService(time.Second, nil)

	fetch := func(ctx context.Context) ([]domain.Book, error) {
		return []domain.Book{{ID: "b1"}}, nil
	}

	ctx := context.Background()
	service.Search(ctx, testParams("42"), fetch) // miss
	service.Search(ctx, testParams("42"), fetch) // hit

	stats := service.Stats()
	if stats.Misses != 1 || stats.Hits != 1 {
		t.Errorf("Stats = %+v, want 1 hit and 1 miss", stats)
	}
}
