package searchcache

import (
	"testing"

	"chapterone-api/core/domain"
)

func TestBuildKey_Format(t *testing.T) {
	params := domain.SearchParams{
		Query:           "dune",
		SearchType:      domain.SearchTypeTitle,
		IncludeExternal: true,
		UserID:          "42",
	}

	got := BuildKey(params)
	want := "q=dune|type=title|ext=true|user=42"
	if got != want {
		t.Errorf("BuildKey = %v, want %v", got, want)
	}
}

func TestBuildKey_EqualParamsProduceEqualKeys(t *testing.T) {
	a := domain.SearchParams{Query: "dune", SearchType: domain.SearchTypeAll, IncludeExternal: false}
	b := domain.SearchParams{Query: "dune", SearchType: domain.SearchTypeAll, IncludeExternal: false}

	if BuildKey(a) != BuildKey(b) {
		t.Error("field-wise equal params must produce identical keys")
	}
}

func TestBuildKey_DifferingFieldsProduceDifferentKeys(t *testing.T) {
	base := domain.SearchParams{
		Query:           "dune",
		SearchType:      domain.SearchTypeTitle,
		IncludeExternal: true,
		UserID:          "42",
	}

	variants := []domain.SearchParams{
		{Query: "duna", SearchType: base.SearchType, IncludeExternal: base.IncludeExternal, UserID: base.UserID},
		{Query: base.Query, SearchType: domain.SearchTypeAuthor, IncludeExternal: base.IncludeExternal, UserID: base.UserID},
		{Query: base.Query, SearchType: base.SearchType, IncludeExternal: false, UserID: base.UserID},
		{Query: base.Query, SearchType: base.SearchType, IncludeExternal: base.IncludeExternal, UserID: "43"},
		{Query: base.Query, SearchType: base.SearchType, IncludeExternal: base.IncludeExternal, UserID: ""},
	}

	baseKey := BuildKey(base)
	for i, v := range variants {
		if BuildKey(v) == baseKey {
			t.Errorf("variant %d produced the same key as base", i)
		}
	}
}

func TestBuildKey_AnonymousPartition(t *testing.T) {
	params := domain.SearchParams{Query: "dune", SearchType: domain.SearchTypeTitle}

	got := BuildKey(params)
	want := "q=dune|type=title|ext=false|user="
	if got != want {
		t.Errorf("BuildKey = %v, want %v", got, want)
	}
}
