package main

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gurbani-server/internal/services"
	"gurbani-server/internal/types"
)

// fakeSearchSource records calls and answers from fixed data
type fakeSearchSource struct {
	cached *services.SearchResponse
	result LoadResult[services.SearchResponse]

	peeks []string
	loads []string
}

func (s *fakeSearchSource) Peek(ctx context.Context, url string) (*services.SearchResponse, bool) {
	s.peeks = append(s.peeks, url)
	return s.cached, s.cached != nil
}

func (s *fakeSearchSource) Load(ctx context.Context, url string) LoadResult[services.SearchResponse] {
	s.loads = append(s.loads, url)
	return s.result
}

func waheguruResponse() *services.SearchResponse {
	resp := &services.SearchResponse{
		Verses: []types.Verse{{VerseID: 1, ShabadID: 7, Verse: types.LangText{Unicode: "ਵਾਹਿਗੁਰੂ"}}},
	}
	resp.ResultsInfo.TotalResults = 42
	resp.ResultsInfo.PageResults = 10
	resp.ResultsInfo.Pages.TotalPages = "5"
	return resp
}

func TestBuildSearchEmptyQueryTouchesNothing(t *testing.T) {
	src := &fakeSearchSource{}

	view := BuildSearch(context.Background(), SearchQuery{}, "https://api.example.org/v2/", src, true)

	assert.True(t, view.EmptyQuery)
	assert.Empty(t, view.APIURL)
	assert.Empty(t, src.peeks)
	assert.Empty(t, src.loads)
}

func TestBuildSearchResults(t *testing.T) {
	src := &fakeSearchSource{result: LoadResult[services.SearchResponse]{Data: waheguruResponse()}}

	view := BuildSearch(context.Background(), SearchQuery{Q: "waheguru"}, "https://api.example.org/v2/", src, true)

	require.NotNil(t, view.Results)
	assert.Equal(t, []string{"https://api.example.org/v2/search/waheguru"}, src.loads)

	want := SearchResultsPage{
		TotalResults: 42,
		ResultsCount: 10,
		Pages:        []int{1, 2, 3, 4, 5},
		Verses:       waheguruResponse().Verses,
	}
	if diff := cmp.Diff(want, *view.Results); diff != "" {
		t.Errorf("results page mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildSearchMissingCountsBecomeZero(t *testing.T) {
	src := &fakeSearchSource{result: LoadResult[services.SearchResponse]{Data: &services.SearchResponse{}}}

	view := BuildSearch(context.Background(), SearchQuery{Q: "xyz"}, "https://api.example.org/v2/", src, true)

	require.NotNil(t, view.Results)
	assert.Zero(t, view.Results.TotalResults)
	assert.Zero(t, view.Results.ResultsCount)
	assert.Empty(t, view.Results.Pages)
	assert.Empty(t, view.PageLinks())
}

func TestBuildSearchCapsPageCount(t *testing.T) {
	resp := waheguruResponse()
	resp.ResultsInfo.Pages.TotalPages = "1000000000"
	src := &fakeSearchSource{result: LoadResult[services.SearchResponse]{Data: resp}}

	view := BuildSearch(context.Background(), SearchQuery{Q: "waheguru"}, "https://api.example.org/v2/", src, true)

	require.NotNil(t, view.Results)
	require.Len(t, view.Results.Pages, maxSearchPages)
	assert.Equal(t, maxSearchPages, view.Results.Pages[maxSearchPages-1])
	assert.Len(t, view.PageLinks(), maxSearchPages)
}

func TestBuildSearchWithoutWaitingUsesCacheOnly(t *testing.T) {
	t.Run("miss renders the stub", func(t *testing.T) {
		src := &fakeSearchSource{}

		view := BuildSearch(context.Background(), SearchQuery{Q: "waheguru"}, "https://api.example.org/v2/", src, false)

		assert.True(t, view.Loading)
		assert.Equal(t, "/search/results?q=waheguru", view.LazyHref)
		assert.Nil(t, view.Results)
		assert.Len(t, src.peeks, 1)
		assert.Empty(t, src.loads)
	})

	t.Run("hit renders results", func(t *testing.T) {
		src := &fakeSearchSource{cached: waheguruResponse()}

		view := BuildSearch(context.Background(), SearchQuery{Q: "waheguru"}, "https://api.example.org/v2/", src, false)

		assert.False(t, view.Loading)
		require.NotNil(t, view.Results)
		assert.Equal(t, 42, view.Results.TotalResults)
	})
}

func TestBuildSearchLoadStates(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		src := &fakeSearchSource{result: LoadResult[services.SearchResponse]{Err: errors.New("bad gateway")}}

		view := BuildSearch(context.Background(), SearchQuery{Q: "waheguru"}, "https://api.example.org/v2/", src, true)

		assert.EqualError(t, view.Err, "bad gateway")
		assert.Nil(t, view.Results)
	})

	t.Run("still loading", func(t *testing.T) {
		src := &fakeSearchSource{result: LoadResult[services.SearchResponse]{Loading: true}}

		view := BuildSearch(context.Background(), SearchQuery{Q: "waheguru", Offset: 2}, "https://api.example.org/v2/", src, true)

		assert.True(t, view.Loading)
		assert.Equal(t, "/search/results?q=waheguru&offset=2", view.LazyHref)
	})
}

func TestParseSearchQuery(t *testing.T) {
	tests := []struct {
		name   string
		target string
		want   SearchQuery
	}{
		{name: "empty", target: "/search", want: SearchQuery{}},
		{name: "full", target: "/search?q=hhgp&type=1&source=G&offset=3&writer=2", want: SearchQuery{Q: "hhgp", Type: intRef(1), Source: "G", Offset: 3, Writer: "2"}},
		{name: "all sources", target: "/search?q=x&source=all", want: SearchQuery{Q: "x"}},
		{name: "unknown type ignored", target: "/search?q=x&type=42", want: SearchQuery{Q: "x"}},
		{name: "zero type kept", target: "/search?q=x&type=0", want: SearchQuery{Q: "x", Type: intRef(0)}},
		{name: "negative offset", target: "/search?q=x&offset=-4", want: SearchQuery{Q: "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseSearchQuery(httptest.NewRequest("GET", tt.target, nil))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseSearchQuery mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSearchQueryURLs(t *testing.T) {
	q := SearchQuery{Q: "hhgp", Type: intRef(1), Source: "G", Offset: 2}

	assert.Equal(t, "/search?source=G&q=hhgp&type=1&offset=3", q.PageURL(3))
	assert.Equal(t, "/search/results?source=G&q=hhgp&type=1&offset=2", q.ResultsURL())
	assert.Equal(t, 1, q.TypeID())
	assert.Equal(t, -1, SearchQuery{}.TypeID())
}

func TestSearchViewPageLinks(t *testing.T) {
	view := SearchView{
		Query:   SearchQuery{Q: "waheguru"},
		Results: &SearchResultsPage{Pages: []int{1, 2, 3}},
	}

	links := view.PageLinks()
	require.Len(t, links, 3)
	assert.True(t, links[0].Current, "offset 0 is the first page")
	assert.False(t, links[1].Current)
	assert.Equal(t, "/search?q=waheguru&offset=2", links[1].Href)
	assert.Equal(t, "/search?q=waheguru&offset=1", links[0].Href)

	view.Query.Offset = 3
	links = view.PageLinks()
	assert.False(t, links[0].Current)
	assert.True(t, links[2].Current)

	assert.Nil(t, SearchView{}.PageLinks())
}
