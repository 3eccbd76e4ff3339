package gurbani

import (
	"net/url"
	"strconv"

	"gurbani-server/internal/types"
)

// NavURL returns the route prefix that sibling ids are appended to
func NavURL(contentType types.ContentType, sourceID string) string {
	switch contentType {
	case types.ContentAng:
		if sourceID == "" {
			sourceID = SourceGuruGranthSahib
		}
		return "/ang?source=" + url.QueryEscape(sourceID) + "&ang="
	case types.ContentHukamnama:
		return "/hukamnama?date="
	case types.ContentSync:
		return "/sync?id="
	default:
		return "/shabad?id="
	}
}

// AngURL links to a page of a source
func AngURL(ang int, sourceID string) string {
	return "/ang?ang=" + strconv.Itoa(ang) + "&source=" + url.QueryEscape(sourceID)
}

// ShabadURL links to a shabad by id
func ShabadURL(id int) string {
	return "/shabad?id=" + strconv.Itoa(id)
}
