// ABOUTME: Deterministic cache key construction for search parameter tuples
// ABOUTME: Fixed field order so logically identical searches share one slot

package searchcache

import (
	"fmt"

	"chapterone-api/core/domain"
)

// BuildKey serializes search parameters into a stable cache key. The field
// order is fixed; two field-wise equal parameter tuples always produce the
// same string. A missing user id selects the anonymous partition.
func BuildKey(params domain.SearchParams) string {
	return fmt.Sprintf("q=%s|type=%s|ext=%t|user=%s",
		params.Query, params.SearchType, params.IncludeExternal, params.UserID)
}

// userSuffix returns the key fragment that identifies a user's partition.
// The user field is last in the key, so a suffix match is exact: clearing
// user "42" never touches user "421".
func userSuffix(userID string) string {
	return "|user=" + userID
}
