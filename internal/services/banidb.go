package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"gurbani-server/internal/gurbani"
	"gurbani-server/internal/types"
	"gurbani-server/internal/util"
)

const (
	BaniDBHTTPTimeout = 10 * time.Second
)

// ErrNoAudio is returned when the audio service has no recording for a shabad
var ErrNoAudio = errors.New("no audio available")

// BaniDBClient handles communication with the BaniDB content API and the
// shabad audio service
type BaniDBClient struct {
	apiBase   string
	audioBase string
	client    *http.Client
}

// NewBaniDBClient creates a new content API client.
// Empty bases fall back to the public endpoints.
func NewBaniDBClient(apiBase, audioBase string) *BaniDBClient {
	if apiBase == "" {
		apiBase = util.DefaultAPIURL
	}
	if !strings.HasSuffix(apiBase, "/") {
		apiBase += "/"
	}
	if audioBase == "" {
		audioBase = util.DefaultAudioAPIURL
	}
	return &BaniDBClient{
		apiBase:   apiBase,
		audioBase: strings.TrimSuffix(audioBase, "/"),
		client: &http.Client{
			Timeout: BaniDBHTTPTimeout,
			Transport: &http.Transport{
				MaxIdleConns:          10,
				MaxIdleConnsPerHost:   5,
				IdleConnTimeout:       30 * time.Second,
				TLSHandshakeTimeout:   5 * time.Second,
				ResponseHeaderTimeout: 5 * time.Second,
				DialContext: (&net.Dialer{
					Timeout:   5 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
			},
		},
	}
}

// APIBase returns the content API base URL
func (c *BaniDBClient) APIBase() string {
	return c.apiBase
}

// AudioBase returns the audio service base URL
func (c *BaniDBClient) AudioBase() string {
	return c.audioBase
}

// SearchParams are the inputs of a verse search
type SearchParams struct {
	Q       string
	Type    *int // nil leaves the API default
	Source  string
	Offset  int
	Writer  string
	APIBase string
}

// BuildAPIURL builds the search request URL. The query is path-escaped and
// unset filters are omitted.
func BuildAPIURL(p SearchParams) string {
	base := p.APIBase
	if base == "" {
		base = util.DefaultAPIURL
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}

	params := url.Values{}
	if p.Type != nil {
		params.Set("searchtype", strconv.Itoa(*p.Type))
	}
	if p.Source != "" {
		params.Set("source", p.Source)
	}
	if p.Writer != "" {
		params.Set("writer", p.Writer)
	}
	if p.Offset > 0 {
		params.Set("page", strconv.Itoa(p.Offset))
	}

	u := base + "search/" + url.PathEscape(p.Q)
	if encoded := params.Encode(); encoded != "" {
		u += "?" + encoded
	}
	return u
}

// FetchJSON fetches url and decodes the JSON body into v
func (c *BaniDBClient) FetchJSON(ctx context.Context, rawURL string, v any) error {
	if c == nil {
		return fmt.Errorf("banidb client not initialized")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("banidb request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("banidb returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode banidb response: %w", err)
	}
	return nil
}

// ShabadEndpoint is the content API URL of a shabad
func (c *BaniDBClient) ShabadEndpoint(id int) string {
	return c.apiBase + "shabads/" + strconv.Itoa(id)
}

// AngEndpoint is the content API URL of one page of a source
func (c *BaniDBClient) AngEndpoint(ang int, sourceID string) string {
	if sourceID == "" {
		sourceID = gurbani.SourceGuruGranthSahib
	}
	return c.apiBase + "angs/" + strconv.Itoa(ang) + "/" + url.PathEscape(sourceID)
}

// HukamnamaEndpoint is the content API URL of the hukamnama for a date;
// the zero time means today
func (c *BaniDBClient) HukamnamaEndpoint(date time.Time) string {
	if date.IsZero() {
		return c.apiBase + "hukamnamas/today"
	}
	return c.apiBase + "hukamnamas/" + gurbani.FormatRouteDate(date)
}

// Hukamnama fetches the hukamnama for a date; the zero time means today
func (c *BaniDBClient) Hukamnama(ctx context.Context, date time.Time) (*HukamnamaResponse, error) {
	var resp HukamnamaResponse
	if err := c.FetchJSON(ctx, c.HukamnamaEndpoint(date), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CheckAPIHealth probes the audio service. Any failure counts as unhealthy.
func (c *BaniDBClient) CheckAPIHealth(ctx context.Context) bool {
	var status struct {
		Status string `json:"status"`
	}
	if err := c.FetchJSON(ctx, c.audioBase+"/health", &status); err != nil {
		return false
	}
	return status.Status == "ok"
}

// ShabadAudioURL resolves the recording URL for a shabad
func (c *BaniDBClient) ShabadAudioURL(ctx context.Context, info types.ContentInfo) (string, error) {
	if info.ShabadID <= 0 {
		return "", fmt.Errorf("shabad id required for audio lookup")
	}
	var resp struct {
		URL string `json:"url"`
	}
	u := c.audioBase + "/shabads/" + strconv.Itoa(info.ShabadID) + "/audio"
	if err := c.FetchJSON(ctx, u, &resp); err != nil {
		return "", err
	}
	if resp.URL == "" {
		return "", ErrNoAudio
	}
	return resp.URL, nil
}
