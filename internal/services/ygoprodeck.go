package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"

	"github.com/whdzera/atem/internal/metrics"
	"github.com/whdzera/atem/internal/models"
)

const (
	ygoprodeckBaseURL = "https://db.ygoprodeck.com/api/v7"
	ygoprodeckTimeout = 10 * time.Second

	// ygoprodeck throttles at 20 req/s per IP; stay under it.
	requestsPerSecond = 15
	requestBurst      = 5

	cacheSize = 256
)

// YGOProDeckService wraps the public ygoprodeck card database API.
// Lookups by exact name are cached; every request is paced by a
// client-side rate limiter.
type YGOProDeckService struct {
	client  *http.Client
	baseURL string
	limiter *rate.Limiter
	cache   *lru.Cache[string, models.Card]
}

func NewYGOProDeckService() *YGOProDeckService {
	cache, _ := lru.New[string, models.Card](cacheSize)
	return &YGOProDeckService{
		client:  &http.Client{Timeout: ygoprodeckTimeout},
		baseURL: ygoprodeckBaseURL,
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), requestBurst),
		cache:   cache,
	}
}

// cardInfoResponse is the envelope every cardinfo.php call returns.
// A populated Error field means "no card matched", delivered with a
// 400 status.
type cardInfoResponse struct {
	Data  []models.Card `json:"data"`
	Error string        `json:"error,omitempty"`
}

func (s *YGOProDeckService) get(ctx context.Context, endpoint, path string, params url.Values) ([]byte, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	reqURL := s.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	start := time.Now()
	resp, err := s.client.Do(req)
	metrics.CardAPIRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.CardAPIRequestsTotal.WithLabelValues(endpoint, "error").Inc()
		return nil, fmt.Errorf("failed to reach ygoprodeck: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.CardAPIRequestsTotal.WithLabelValues(endpoint, "error").Inc()
		return nil, fmt.Errorf("failed to read ygoprodeck response: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		metrics.CardAPIRequestsTotal.WithLabelValues(endpoint, "ok").Inc()
		return body, nil
	case http.StatusBadRequest, http.StatusNotFound:
		// ygoprodeck reports "no match" as 400 with an error field.
		metrics.CardAPIRequestsTotal.WithLabelValues(endpoint, "not_found").Inc()
		return nil, nil
	default:
		metrics.CardAPIRequestsTotal.WithLabelValues(endpoint, "error").Inc()
		return nil, fmt.Errorf("ygoprodeck API returned status %d", resp.StatusCode)
	}
}

func decodeCards(body []byte) ([]models.Card, error) {
	if body == nil {
		return nil, nil
	}
	var envelope cardInfoResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode ygoprodeck response: %w", err)
	}
	if envelope.Error != "" {
		return nil, nil
	}
	return envelope.Data, nil
}

// CardByName fetches a card by its exact canonical name.
// Returns nil, nil when no card matches.
func (s *YGOProDeckService) CardByName(ctx context.Context, name string) (*models.Card, error) {
	cacheKey := "name:" + strings.ToLower(name)
	if card, ok := s.cache.Get(cacheKey); ok {
		metrics.CardCacheHits.Inc()
		return &card, nil
	}
	metrics.CardCacheMisses.Inc()

	params := url.Values{}
	params.Set("name", name)
	body, err := s.get(ctx, "name", "/cardinfo.php", params)
	if err != nil {
		return nil, err
	}
	cards, err := decodeCards(body)
	if err != nil || len(cards) == 0 {
		return nil, err
	}

	s.cache.Add(cacheKey, cards[0])
	return &cards[0], nil
}

// SearchByName runs a partial-name search and caps the result list at
// limit entries. TotalCount reports the size before the cap.
func (s *YGOProDeckService) SearchByName(ctx context.Context, partial string, limit int) (*models.CardSearchResult, error) {
	params := url.Values{}
	params.Set("fname", partial)
	body, err := s.get(ctx, "fname", "/cardinfo.php", params)
	if err != nil {
		return nil, err
	}
	cards, err := decodeCards(body)
	if err != nil {
		return nil, err
	}

	total := len(cards)
	if limit > 0 && len(cards) > limit {
		cards = cards[:limit]
	}
	return &models.CardSearchResult{
		Cards:      cards,
		TotalCount: total,
		HasMore:    total > len(cards),
	}, nil
}

// CardByID fetches a card by its numeric passcode.
// Returns nil, nil when no card matches.
func (s *YGOProDeckService) CardByID(ctx context.Context, id string) (*models.Card, error) {
	params := url.Values{}
	params.Set("id", id)
	body, err := s.get(ctx, "id", "/cardinfo.php", params)
	if err != nil {
		return nil, err
	}
	cards, err := decodeCards(body)
	if err != nil || len(cards) == 0 {
		return nil, err
	}
	return &cards[0], nil
}

// RandomCard fetches one random card. The endpoint has served both a
// bare card object and a data envelope, so both shapes decode.
func (s *YGOProDeckService) RandomCard(ctx context.Context) (*models.Card, error) {
	body, err := s.get(ctx, "random", "/randomcard.php", nil)
	if err != nil || body == nil {
		return nil, err
	}

	if cards, err := decodeCards(body); err == nil && len(cards) > 0 {
		return &cards[0], nil
	}

	var card models.Card
	if err := json.Unmarshal(body, &card); err != nil {
		return nil, fmt.Errorf("failed to decode random card: %w", err)
	}
	if card.ID == 0 {
		return nil, nil
	}
	return &card, nil
}
