// ABOUTME: Contextual recommendations by metadata overlap with a seed book
// ABOUTME: Category, theme and tone intersection scoring, pace as a tie-breaker

package books

import (
	"context"
	"sort"

	"chapterone-api/core/domain"
	"chapterone-api/core/errors"
)

const (
	// recommendCandidates caps how many catalog rows are scored per request
	recommendCandidates = 50

	categoryWeight = 3
	themeWeight    = 2
	toneWeight     = 1
)

// scoredBook pairs a candidate with its overlap score
type scoredBook struct {
	book  domain.Book
	score int
}

// Recommend returns books similar to the seed book, ranked by shared
// categories, themes and tone. No learned model is involved; the score is
// a weighted intersection count.
func (s *BookService) Recommend(ctx context.Context, bookID string, limit int) ([]domain.Book, error) {
	seed, err := s.storage.GetByID(ctx, bookID)
	if err != nil {
		return nil, err
	}

	if limit <= 0 || limit > defaultSearchLimit {
		limit = 10
	}

	candidates, err := s.storage.SearchByCategories(ctx, seed.Categories, recommendCandidates)
	if err != nil {
		return nil, errors.WrapError(err, "failed to load recommendation candidates")
	}

	scored := make([]scoredBook, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.ID == seed.ID {
			continue
		}
		if score := similarity(seed, &candidate); score > 0 {
			scored = append(scored, scoredBook{book: candidate, score: score})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].book.Rating > scored[j].book.Rating
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}

	books := make([]domain.Book, 0, len(scored))
	for _, sb := range scored {
		books = append(books, sb.book)
	}
	return books, nil
}

// similarity computes the weighted metadata overlap between two books
func similarity(seed, candidate *domain.Book) int {
	score := categoryWeight * overlap(seed.Categories, candidate.Categories)
	score += themeWeight * overlap(seed.Themes, candidate.Themes)
	score += toneWeight * overlap(seed.Tone, candidate.Tone)

	if seed.Pace != "" && seed.Pace == candidate.Pace {
		score++
	}
	return score
}

// overlap counts values present in both slices
func overlap(a, b []string) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	set := make(map[string]struct{}, len(a))
	for _, v := range a {
		set[v] = struct{}{}
	}

	count := 0
	for _, v := range b {
		if _, ok := set[v]; ok {
			count++
		}
	}
	return count
}
