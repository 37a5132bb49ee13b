// ABOUTME: Mappers from library and thread domain models to response DTOs
// ABOUTME: Ensures replies and entries always serialize as arrays

package mappers

import (
	"chapterone-api/api/dto/responses"
	"chapterone-api/core/domain"
)

// ToLibraryEntryResponse converts a library entry to its wire representation
func ToLibraryEntryResponse(entry *domain.LibraryEntry) responses.LibraryEntryResponse {
	return responses.LibraryEntryResponse{
		ID:      entry.ID,
		UserID:  entry.UserID,
		BookID:  entry.BookID,
		Shelf:   entry.Shelf,
		SavedAt: entry.SavedAt,
	}
}

// ToLibraryListResponse converts a user's entries
func ToLibraryListResponse(entries []domain.LibraryEntry) responses.LibraryListResponse {
	result := make([]responses.LibraryEntryResponse, len(entries))
	for i := range entries {
		result[i] = ToLibraryEntryResponse(&entries[i])
	}
	return responses.LibraryListResponse{Entries: result, Count: len(result)}
}

// ToThreadResponse converts a thread with its replies
func ToThreadResponse(thread *domain.Thread) responses.ThreadResponse {
	replies := make([]responses.ReplyResponse, len(thread.Replies))
	for i, reply := range thread.Replies {
		replies[i] = responses.ReplyResponse{
			ID:        reply.ID,
			UserID:    reply.UserID,
			Body:      reply.Body,
			CreatedAt: reply.CreatedAt,
		}
	}

	return responses.ThreadResponse{
		ID:        thread.ID,
		UserID:    thread.UserID,
		BookID:    thread.BookID,
		Title:     thread.Title,
		Body:      thread.Body,
		Replies:   replies,
		CreatedAt: thread.CreatedAt,
	}
}

// ToThreadListResponse converts a thread listing
func ToThreadListResponse(threads []domain.Thread) responses.ThreadListResponse {
	result := make([]responses.ThreadResponse, len(threads))
	for i := range threads {
		result[i] = ToThreadResponse(&threads[i])
	}
	return responses.ThreadListResponse{Threads: result, Count: len(result)}
}
