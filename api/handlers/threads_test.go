package handlers

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"

	"chapterone-api/core/domain"
	"chapterone-api/core/errors"
)

// mockThreadService is a mock implementation of the thread service
type mockThreadService struct {
	createFunc   func(ctx context.Context, userID, bookID, title, body string) (*domain.Thread, error)
	getFunc      func(ctx context.Context, id string) (*domain.Thread, error)
	listFunc     func(ctx context.Context, bookID string, limit int) ([]domain.Thread, error)
	addReplyFunc func(ctx context.Context, threadID, userID, body string) (*domain.ThreadReply, error)
	deleteFunc   func(ctx context.Context, id, userID string) error
}

func (m *mockThreadService) Create(ctx context.Context, userID, bookID, title, body string) (*domain.Thread, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, userID, bookID, title, body)
	}
	return &domain.Thread{ID: "t1", UserID: userID, BookID: bookID, Title: title, Body: body, CreatedAt: time.Now()}, nil
}

func (m *mockThreadService) Get(ctx context.Context, id string) (*domain.Thread, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, &errors.NotFoundError{Resource: "thread", ID: id}
}

func (m *mockThreadService) List(ctx context.Context, bookID string, limit int) ([]domain.Thread, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, bookID, limit)
	}
	return nil, nil
}

func (m *mockThreadService) AddReply(ctx context.Context, threadID, userID, body string) (*domain.ThreadReply, error) {
	if m.addReplyFunc != nil {
		return m.addReplyFunc(ctx, threadID, userID, body)
	}
	return &domain.ThreadReply{ID: "r1", UserID: userID, Body: body, CreatedAt: time.Now()}, nil
}

func (m *mockThreadService) Delete(ctx context.Context, id, userID string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id, userID)
	}
	return nil
}

func newThreadTestAPI(t *testing.T, service *mockThreadService) humatest.TestAPI {
	_, api := humatest.New(t)
	NewThreadHandler(service).RegisterRoutes(api)
	return api
}

func TestCreateThread(t *testing.T) {
	api := newThreadTestAPI(t, &mockThreadService{})

	resp := api.Post("/api/threads", map[string]any{
		"user_id": "42",
		"book_id": "b1",
		"title":   "Did anyone else love the ending?",
		"body":    "No spoilers please.",
	})

	assert.Equal(t, 200, resp.Code)
	assert.Contains(t, resp.Body.String(), "ending")
	assert.Contains(t, resp.Body.String(), `"replies":[]`)
}

func TestCreateThread_OmittedTitleReturns422(t *testing.T) {
	api := newThreadTestAPI(t, &mockThreadService{})

	// A missing required property never reaches the handler; the schema
	// rejects it first.
	resp := api.Post("/api/threads", map[string]any{
		"user_id": "42",
		"body":    "text",
	})

	assert.Equal(t, 422, resp.Code)
	assert.Contains(t, resp.Body.String(), "title")
}

func TestCreateThread_EmptyTitleReturns400(t *testing.T) {
	api := newThreadTestAPI(t, &mockThreadService{})

	resp := api.Post("/api/threads", map[string]any{
		"user_id": "42",
		"title":   "",
		"body":    "text",
	})

	assert.Equal(t, 400, resp.Code)
	assert.Contains(t, resp.Body.String(), "title must not be empty")
}

func TestCreateThread_OverlongTitleReturns400(t *testing.T) {
	api := newThreadTestAPI(t, &mockThreadService{})

	resp := api.Post("/api/threads", map[string]any{
		"user_id": "42",
		"title":   strings.Repeat("a", 201),
		"body":    "text",
	})

	assert.Equal(t, 400, resp.Code)
	assert.Contains(t, resp.Body.String(), "at most 200 characters")
}

func TestGetThread_NotFoundReturns404(t *testing.T) {
	api := newThreadTestAPI(t, &mockThreadService{})

	resp := api.Get("/api/threads/missing")

	assert.Equal(t, 404, resp.Code)
}

func TestListThreads_FiltersByBook(t *testing.T) {
	service := &mockThreadService{
		listFunc: func(ctx context.Context, bookID string, limit int) ([]domain.Thread, error) {
			assert.Equal(t, "b1", bookID)
			return []domain.Thread{{ID: "t1", UserID: "42", BookID: "b1", Title: "A", Body: "a", CreatedAt: time.Now()}}, nil
		},
	}
	api := newThreadTestAPI(t, service)

	resp := api.Get("/api/threads?book_id=b1")

	assert.Equal(t, 200, resp.Code)
	assert.Contains(t, resp.Body.String(), `"count":1`)
}

func TestAddReply(t *testing.T) {
	service := &mockThreadService{
		addReplyFunc: func(ctx context.Context, threadID, userID, body string) (*domain.ThreadReply, error) {
			assert.Equal(t, "t1", threadID)
			return &domain.ThreadReply{ID: "r1", UserID: userID, Body: body, CreatedAt: time.Now()}, nil
		},
	}
	api := newThreadTestAPI(t, service)

	resp := api.Post("/api/threads/t1/replies", map[string]any{
		"user_id": "99",
		"body":    "Completely agree.",
	})

	assert.Equal(t, 200, resp.Code)
	assert.Contains(t, resp.Body.String(), "agree")
}

func TestDeleteThread_RequiresUserID(t *testing.T) {
	api := newThreadTestAPI(t, &mockThreadService{})

	resp := api.Delete("/api/threads/t1")

	assert.Equal(t, 400, resp.Code)
}

func TestDeleteThread(t *testing.T) {
	service := &mockThreadService{
		deleteFunc: func(ctx context.Context, id, userID string) error {
			assert.Equal(t, "t1", id)
			assert.Equal(t, "42", userID)
			return nil
		},
	}
	api := newThreadTestAPI(t, service)

	resp := api.Delete("/api/threads/t1?user_id=42")

	assert.Equal(t, 200, resp.Code)
	assert.Contains(t, resp.Body.String(), `"deleted":true`)
}
