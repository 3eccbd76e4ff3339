package services

import "gurbani-server/internal/types"

// ResultsInfo describes the paging of a search response
type ResultsInfo struct {
	TotalResults int `json:"totalResults"`
	PageResults  int `json:"pageResults"`
	Pages        struct {
		Page           int              `json:"page"`
		ResultsPerPage int              `json:"resultsPerPage"`
		TotalPages     types.FlexString `json:"totalPages"`
	} `json:"pages"`
}

// SearchResponse is the JSON shape of GET /search/{q}
type SearchResponse struct {
	ResultsInfo ResultsInfo   `json:"resultsInfo"`
	Verses      []types.Verse `json:"verses"`
}

// Navigation holds the sibling ids the API reports
type Navigation struct {
	Previous types.FlexString `json:"previous"`
	Next     types.FlexString `json:"next"`
}

// ShabadResponse is the JSON shape of GET /shabads/{id}
type ShabadResponse struct {
	ShabadInfo types.ContentInfo `json:"shabadInfo"`
	Count      int               `json:"count"`
	Navigation Navigation        `json:"navigation"`
	Verses     []types.Verse     `json:"verses"`
}

// AngResponse is the JSON shape of GET /angs/{ang}/{source}
type AngResponse struct {
	Source     types.Source  `json:"source"`
	Count      int           `json:"count"`
	Navigation Navigation    `json:"navigation"`
	Page       []types.Verse `json:"page"`
}

// HukamnamaResponse is the JSON shape of GET /hukamnamas/{date}
type HukamnamaResponse struct {
	Date struct {
		Gregorian struct {
			Month int `json:"month"`
			Date  int `json:"date"`
			Year  int `json:"year"`
		} `json:"gregorian"`
	} `json:"date"`
	ShabadIDs []int            `json:"shabadIds"`
	Shabads   []ShabadResponse `json:"shabads"`
}
