package main

import (
	"context"
	"net/http"
	"strconv"

	"gurbani-server/internal/services"
	"gurbani-server/internal/types"
	"gurbani-server/internal/util"
)

// SearchType is a BaniDB search mode
type SearchType struct {
	ID    int
	Title string
}

// SearchTypeAng looks a page up by number instead of searching
const SearchTypeAng = 5

// maxSearchPages bounds the pager regardless of the reported page count
const maxSearchPages = 100

var searchTypes = []SearchType{
	{0, "First Letter Start (Gurmukhi)"},
	{1, "First Letter Anywhere (Gurmukhi)"},
	{2, "Full Word (Gurmukhi)"},
	{3, "Full Word Translation (English)"},
	{4, "Romanized (English)"},
	{5, "Ang"},
	{6, "Main Letters (Gurmukhi)"},
	{7, "Romanized First Letter Anywhere (English)"},
}

// SearchSourceOption is a scripture filter choice
type SearchSourceOption struct {
	ID    string
	Title string
}

var searchSources = []SearchSourceOption{
	{"all", "All Scriptures"},
	{"G", "Guru Granth Sahib"},
	{"D", "Dasam Granth"},
	{"B", "Bhai Gurdas Vaaran"},
	{"N", "Bhai Nand Lal Bani"},
	{"A", "Amrit Keertan"},
	{"S", "Bhai Gurdas Singh Vaaran"},
	{"R", "Rehatnamas & Panthic Sources"},
}

// SearchQuery is the user input of a search
type SearchQuery struct {
	Q      string
	Type   *int
	Source string
	Offset int
	Writer string
}

// ParseSearchQuery reads a search from query parameters. Unknown search
// types are ignored and negative offsets become 0.
func ParseSearchQuery(r *http.Request) SearchQuery {
	v := r.URL.Query()
	q := SearchQuery{
		Q:      v.Get("q"),
		Source: v.Get("source"),
		Writer: v.Get("writer"),
		Offset: util.ParseIntDefault(v.Get("offset"), 0),
	}
	if t, ok := util.ParseOptionalInt(v.Get("type")); ok && t >= 0 && t < len(searchTypes) {
		q.Type = &t
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
	if q.Source == "all" {
		q.Source = ""
	}
	return q
}

// Params converts the query to API parameters against apiBase
func (q SearchQuery) Params(apiBase string) services.SearchParams {
	return services.SearchParams{
		Q:       q.Q,
		Type:    q.Type,
		Source:  q.Source,
		Offset:  q.Offset,
		Writer:  q.Writer,
		APIBase: apiBase,
	}
}

// urlParams returns the query as route parameters, with offset overridden
func (q SearchQuery) urlParams(offset int) map[string]string {
	params := map[string]string{
		"q":      q.Q,
		"source": q.Source,
		"writer": q.Writer,
	}
	if q.Type != nil {
		params["type"] = strconv.Itoa(*q.Type)
	}
	if offset > 0 {
		params["offset"] = strconv.Itoa(offset)
	}
	return params
}

// PageURL links to page n of this search
func (q SearchQuery) PageURL(n int) string {
	return util.BuildURL("/search", q.urlParams(n))
}

// ResultsURL is the fragment URL that loads this search's results
func (q SearchQuery) ResultsURL() string {
	return util.BuildURL("/search/results", q.urlParams(q.Offset))
}

// TypeID returns the selected search type, or -1
func (q SearchQuery) TypeID() int {
	if q.Type == nil {
		return -1
	}
	return *q.Type
}

// SearchResultsPage is the paginated results layout model
type SearchResultsPage struct {
	TotalResults int
	ResultsCount int
	Pages        []int
	Offset       int
	Verses       []types.Verse
}

// NewSearchResultsPage shapes an API response. Missing counts become 0,
// pages are capped at maxSearchPages and verses pass through unmodified.
func NewSearchResultsPage(resp *services.SearchResponse, offset int) SearchResultsPage {
	return SearchResultsPage{
		TotalResults: resp.ResultsInfo.TotalResults,
		ResultsCount: resp.ResultsInfo.PageResults,
		Pages:        util.Sequence(min(resp.ResultsInfo.Pages.TotalPages.Int(), maxSearchPages)),
		Offset:       offset,
		Verses:       resp.Verses,
	}
}

// SearchSource is what the search view loads results through
type SearchSource interface {
	Peek(ctx context.Context, url string) (*services.SearchResponse, bool)
	Load(ctx context.Context, url string) LoadResult[services.SearchResponse]
}

// SearchView is the render model of the search page
type SearchView struct {
	Query      SearchQuery
	APIURL     string
	EmptyQuery bool
	Loading    bool
	LazyHref   string
	Err        error
	Results    *SearchResultsPage
}

// BuildSearch derives the search view. An empty query short-circuits without
// touching src. With wait false only cached results are used and a miss
// renders the loading stub, whose fragment request later calls again with
// wait true.
func BuildSearch(ctx context.Context, q SearchQuery, apiBase string, src SearchSource, wait bool) SearchView {
	view := SearchView{Query: q}
	if q.Q == "" {
		view.EmptyQuery = true
		return view
	}

	view.APIURL = services.BuildAPIURL(q.Params(apiBase))

	var result LoadResult[services.SearchResponse]
	if wait {
		result = src.Load(ctx, view.APIURL)
	} else if data, ok := src.Peek(ctx, view.APIURL); ok {
		result = LoadResult[services.SearchResponse]{Data: data}
	} else {
		result = LoadResult[services.SearchResponse]{Loading: true}
	}

	switch {
	case result.Err != nil:
		view.Err = result.Err
	case result.Loading || result.Data == nil:
		view.Loading = true
		view.LazyHref = q.ResultsURL()
	default:
		page := NewSearchResultsPage(result.Data, q.Offset)
		view.Results = &page
	}
	return view
}

// PageLink is one pagination link
type PageLink struct {
	Number  int
	Href    string
	Current bool
}

// PageLinks builds pagination links. Offset 0 is the first page.
func (v SearchView) PageLinks() []PageLink {
	if v.Results == nil {
		return nil
	}
	current := v.Query.Offset
	if current == 0 {
		current = 1
	}
	links := make([]PageLink, len(v.Results.Pages))
	for i, n := range v.Results.Pages {
		links[i] = PageLink{Number: n, Href: v.Query.PageURL(n), Current: n == current}
	}
	return links
}
