package threads

import (
	"context"
	"testing"

	"chapterone-api/core/domain"
	"chapterone-api/core/errors"
	"chapterone-api/core/interfaces"
)

// mockThreadStorage is a mock implementation of the ThreadStorage interface
type mockThreadStorage struct {
	saveFunc     func(ctx context.Context, thread *domain.Thread) error
	getFunc      func(ctx context.Context, id string) (*domain.Thread, error)
	listFunc     func(ctx context.Context, bookID string, limit int) ([]domain.Thread, error)
	addReplyFunc func(ctx context.Context, threadID string, reply *domain.ThreadReply) error
	deleteFunc   func(ctx context.Context, id string) error
}

func (m *mockThreadStorage) Save(ctx context.Context, thread *domain.Thread) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, thread)
	}
	return nil
}

func (m *mockThreadStorage) Get(ctx context.Context, id string) (*domain.Thread, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockThreadStorage) List(ctx context.Context, bookID string, limit int) ([]domain.Thread, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, bookID, limit)
	}
	return nil, nil
}

func (m *mockThreadStorage) AddReply(ctx context.Context, threadID string, reply *domain.ThreadReply) error {
	if m.addReplyFunc != nil {
		return m.addReplyFunc(ctx, threadID, reply)
	}
	return nil
}

func (m *mockThreadStorage) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func TestCreate_PersistsThread(t *testing.T) {
	var saved *domain.Thread
	storage := &mockThreadStorage{
		saveFunc: func(ctx context.Context, thread *domain.Thread) error {
			saved = thread
			return nil
		},
	}

	service := NewThreadService(interfaces.Dependencies{}, storage)
	thread, err := service.Create(context.Background(), "42", "b1", "Loved this ending", "Spoilers within...")

	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if thread.ID == "" {
		t.Error("Create should assign a thread id")
	}
	if saved == nil || saved.Title != "Loved this ending" {
		t.Errorf("persisted thread = %+v", saved)
	}
}

func TestCreate_ValidatesFields(t *testing.T) {
	service := NewThreadService(interfaces.Dependencies{}, &mockThreadStorage{})

	cases := []struct {
		name                       string
		userID, title, body string
	}{
		{"missing user", "", "title", "body"},
		{"missing title", "42", "", "body"},
		{"missing body", "42", "title", ""},
	}

	for _, tc := range cases {
		if _, err := service.Create(context.Background(), tc.userID, "", tc.title, tc.body); !errors.IsValidation(err) {
			t.Errorf("%s: Create error = %v, want ValidationError", tc.name, err)
		}
	}
}

func TestList_ClampsLimit(t *testing.T) {
	var gotLimit int
	storage := &mockThreadStorage{
		listFunc: func(ctx context.Context, bookID string, limit int) ([]domain.Thread, error) {
			gotLimit = limit
			return nil, nil
		},
	}

	service := NewThreadService(interfaces.Dependencies{}, storage)
	service.List(context.Background(), "", 0)
	if gotLimit != defaultListLimit {
		t.Errorf("limit = %d, want default %d", gotLimit, defaultListLimit)
	}

	service.List(context.Background(), "", 500)
	if gotLimit != defaultListLimit {
		t.Errorf("limit = %d, oversized limits should clamp to default", gotLimit)
	}
}

func TestAddReply_Validates(t *testing.T) {
	service := NewThreadService(interfaces.Dependencies{}, &mockThreadStorage{})

	if _, err := service.AddReply(context.Background(), "", "42", "body"); !errors.IsValidation(err) {
		t.Error("AddReply should reject an empty thread id")
	}
	if _, err := service.AddReply(context.Background(), "t1", "42", ""); !errors.IsValidation(err) {
		t.Error("AddReply should reject an empty body")
	}
}

func TestAddReply_AppendsToThread(t *testing.T) {
	var gotThreadID string
	storage := &mockThreadStorage{
		addReplyFunc: func(ctx context.Context, threadID string, reply *domain.ThreadReply) error {
			gotThreadID = threadID
			return nil
		},
	}

	service := NewThreadService(interfaces.Dependencies{}, storage)
	reply, err := service.AddReply(context.Background(), "t1", "42", "Completely agree")

	if err != nil {
		t.Fatalf("AddReply returned error: %v", err)
	}
	if gotThreadID != "t1" {
		t.Errorf("AddReply stored against thread %v, want t1", gotThreadID)
	}
	if reply.ID == "" || reply.CreatedAt.IsZero() {
		t.Error("AddReply should assign id and timestamp")
	}
}

func TestDelete_OnlyAuthorMayDelete(t *testing.T) {
	storage := &mockThreadStorage{
		getFunc: func(ctx context.Context, id string) (*domain.Thread, error) {
			return &domain.Thread{ID: id, UserID: "42"}, nil
		},
	}

	service := NewThreadService(interfaces.Dependencies{}, storage)

	if err := service.Delete(context.Background(), "t1", "7"); !errors.IsValidation(err) {
		t.Error("Delete by a non-author should be rejected")
	}
	if err := service.Delete(context.Background(), "t1", "42"); err != nil {
		t.Errorf("Delete by the author returned error: %v", err)
	}
}

func TestDelete_MissingThread(t *testing.T) {
	storage := &mockThreadStorage{
		getFunc: func(ctx context.Context, id string) (*domain.Thread, error) {
			return nil, &errors.NotFoundError{Resource: "thread", ID: id}
		},
	}

	service := NewThreadService(interfaces.Dependencies{}, storage)
	if err := service.Delete(context.Background(), "missing", "42"); !errors.IsNotFound(err) {
		t.Errorf("Delete error = %v, want NotFoundError", err)
	}
}
