// ABOUTME: Discussion thread handlers for the Huma API
// ABOUTME: Thread CRUD, replies and listings scoped by book

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"chapterone-api/api/dto/mappers"
	"chapterone-api/api/dto/requests"
	"chapterone-api/api/dto/responses"
	"chapterone-api/core/domain"
)

// ThreadService defines the methods needed from the thread service
type ThreadService interface {
	Create(ctx context.Context, userID, bookID, title, body string) (*domain.Thread, error)
	Get(ctx context.Context, id string) (*domain.Thread, error)
	List(ctx context.Context, bookID string, limit int) ([]domain.Thread, error)
	AddReply(ctx context.Context, threadID, userID, body string) (*domain.ThreadReply, error)
	Delete(ctx context.Context, id, userID string) error
}

// ThreadHandler handles thread-related HTTP requests
type ThreadHandler struct {
	threadService ThreadService
}

// NewThreadHandler creates a new thread handler
func NewThreadHandler(threadService ThreadService) *ThreadHandler {
	return &ThreadHandler{threadService: threadService}
}

// RegisterRoutes registers all thread-related routes
func (h *ThreadHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "createThread",
		Method:      http.MethodPost,
		Path:        "/api/threads",
		Summary:     "Start a discussion thread",
		Tags:        []string{"Threads"},
	}, h.CreateThread)

	huma.Register(api, huma.Operation{
		OperationID: "getThread",
		Method:      http.MethodGet,
		Path:        "/api/threads/{id}",
		Summary:     "Get a thread with its replies",
		Tags:        []string{"Threads"},
	}, h.GetThread)

	huma.Register(api, huma.Operation{
		OperationID: "listThreads",
		Method:      http.MethodGet,
		Path:        "/api/threads",
		Summary:     "List recent threads",
		Tags:        []string{"Threads"},
	}, h.ListThreads)

	huma.Register(api, huma.Operation{
		OperationID: "addReply",
		Method:      http.MethodPost,
		Path:        "/api/threads/{id}/replies",
		Summary:     "Reply to a thread",
		Tags:        []string{"Threads"},
	}, h.AddReply)

	huma.Register(api, huma.Operation{
		OperationID: "deleteThread",
		Method:      http.MethodDelete,
		Path:        "/api/threads/{id}",
		Summary:     "Delete a thread",
		Description: "Only the thread author may delete it",
		Tags:        []string{"Threads"},
	}, h.DeleteThread)
}

// CreateThreadInput defines the input for the CreateThread operation
type CreateThreadInput struct {
	Body requests.CreateThreadRequest
}

// CreateThreadOutput defines the output for the CreateThread operation
type CreateThreadOutput struct {
	Body responses.ThreadResponse
}

// CreateThread handles the POST /api/threads endpoint
func (h *ThreadHandler) CreateThread(ctx context.Context, input *CreateThreadInput) (*CreateThreadOutput, error) {
	if err := input.Body.Validate(); err != nil {
		return nil, huma.Error400BadRequest(err.Error())
	}

	thread, err := h.threadService.Create(ctx, input.Body.UserID, input.Body.BookID, input.Body.Title, input.Body.Body)
	if err != nil {
		return nil, toHumaError(err)
	}

	output := &CreateThreadOutput{}
	output.Body = mappers.ToThreadResponse(thread)
	return output, nil
}

// GetThreadInput defines the input for the GetThread operation
type GetThreadInput struct {
	ID string `path:"id" doc:"Thread id"`
}

// GetThreadOutput defines the output for the GetThread operation
type GetThreadOutput struct {
	Body responses.ThreadResponse
}

// GetThread handles the GET /api/threads/{id} endpoint
func (h *ThreadHandler) GetThread(ctx context.Context, input *GetThreadInput) (*GetThreadOutput, error) {
	thread, err := h.threadService.Get(ctx, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}

	output := &GetThreadOutput{}
	output.Body = mappers.ToThreadResponse(thread)
	return output, nil
}

// ListThreadsInput defines the input for the ListThreads operation
type ListThreadsInput struct {
	BookID string `query:"book_id" doc:"Only return threads about this book"`
	Limit  int    `query:"limit" default:"25" minimum:"1" maximum:"25" doc:"Maximum threads"`
}

// ListThreadsOutput defines the output for the ListThreads operation
type ListThreadsOutput struct {
	Body responses.ThreadListResponse
}

// ListThreads handles the GET /api/threads endpoint
func (h *ThreadHandler) ListThreads(ctx context.Context, input *ListThreadsInput) (*ListThreadsOutput, error) {
	threads, err := h.threadService.List(ctx, input.BookID, input.Limit)
	if err != nil {
		return nil, toHumaError(err)
	}

	output := &ListThreadsOutput{}
	output.Body = mappers.ToThreadListResponse(threads)
	return output, nil
}

// AddReplyInput defines the input for the AddReply operation
type AddReplyInput struct {
	ID   string `path:"id" doc:"Thread id"`
	Body requests.AddReplyRequest
}

// AddReplyOutput defines the output for the AddReply operation
type AddReplyOutput struct {
	Body responses.ReplyResponse
}

// AddReply handles the POST /api/threads/{id}/replies endpoint
func (h *ThreadHandler) AddReply(ctx context.Context, input *AddReplyInput) (*AddReplyOutput, error) {
	if err := input.Body.Validate(); err != nil {
		return nil, huma.Error400BadRequest(err.Error())
	}

	reply, err := h.threadService.AddReply(ctx, input.ID, input.Body.UserID, input.Body.Body)
	if err != nil {
		return nil, toHumaError(err)
	}

	output := &AddReplyOutput{}
	output.Body = responses.ReplyResponse{
		ID:        reply.ID,
		UserID:    reply.UserID,
		Body:      reply.Body,
		CreatedAt: reply.CreatedAt,
	}
	return output, nil
}

// DeleteThreadInput defines the input for the DeleteThread operation
type DeleteThreadInput struct {
	ID     string `path:"id" doc:"Thread id"`
	UserID string `query:"user_id" doc:"Requesting user; must be the thread author"`
}

// DeleteThreadOutput defines the output for the DeleteThread operation
type DeleteThreadOutput struct {
	Body struct {
		Deleted bool `json:"deleted"`
	}
}

// DeleteThread handles the DELETE /api/threads/{id} endpoint
func (h *ThreadHandler) DeleteThread(ctx context.Context, input *DeleteThreadInput) (*DeleteThreadOutput, error) {
	if input.UserID == "" {
		return nil, huma.Error400BadRequest("user_id is required")
	}

	if err := h.threadService.Delete(ctx, input.ID, input.UserID); err != nil {
		return nil, toHumaError(err)
	}

	output := &DeleteThreadOutput{}
	output.Body.Deleted = true
	return output, nil
}
