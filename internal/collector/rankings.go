package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// RankingsClient implements RankingsProvider against a composite-rankings
// API, with a JSON file cache so repeated runs within the TTL hit disk
// instead of the network.
type RankingsClient struct {
	BaseURL   string
	APIKey    string
	CacheFile string
	CacheTTL  time.Duration
	Client    *http.Client
}

// NewRankingsClient creates a new client with optional proxy support.
func NewRankingsClient(baseURL, apiKey, cacheFile string, ttl time.Duration, proxyURL string) *RankingsClient {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &RankingsClient{
		BaseURL:   baseURL,
		APIKey:    apiKey,
		CacheFile: cacheFile,
		CacheTTL:  ttl,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (r *RankingsClient) Name() string { return "rankings" }

// wireRanking is the expected JSON shape from the rankings API.
type wireRanking struct {
	Name      string             `json:"name"`
	Score     float64            `json:"score"`
	CatValues map[string]float64 `json:"cat_values"`
}

type rankingsCache struct {
	FetchedAt time.Time     `json:"fetched_at"`
	Rankings  []wireRanking `json:"rankings"`
}

// FetchRankings returns composite scores keyed by player name, serving
// from the file cache when it is fresh enough.
func (r *RankingsClient) FetchRankings(ctx context.Context) (map[string]Ranking, error) {
	if cached, ok := r.loadCache(); ok {
		log.Printf("[INFO] rankings: serving %d entries from cache", len(cached))
		return cached, nil
	}

	wire, err := r.fetchRemote(ctx)
	if err != nil {
		return nil, err
	}
	r.saveCache(wire)
	return toRankingMap(wire), nil
}

func (r *RankingsClient) fetchRemote(ctx context.Context) ([]wireRanking, error) {
	endpoint := fmt.Sprintf("%s/api/v1/rankings/composite", r.BaseURL)

	var wire []wireRanking
	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		if r.APIKey != "" {
			req.Header.Set("X-Api-Key", r.APIKey)
		}
		resp, err := r.Client.Do(req)
		if err != nil {
			return fmt.Errorf("rankings request: %w", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(resp.Body)
			return fmt.Errorf("rankings request: status %d, body: %s", resp.StatusCode, string(body))
		}
		if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
			return backoff.Permanent(fmt.Errorf("decode rankings: %w", err))
		}
		return nil
	}
	bo := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3), ctx)
	if err := backoff.Retry(op, bo); err != nil {
		return nil, err
	}
	return wire, nil
}

func (r *RankingsClient) loadCache() (map[string]Ranking, bool) {
	if r.CacheFile == "" {
		return nil, false
	}
	data, err := os.ReadFile(r.CacheFile)
	if err != nil {
		return nil, false
	}
	var cache rankingsCache
	if err := json.Unmarshal(data, &cache); err != nil {
		log.Printf("[WARN] rankings cache unreadable: %v, refetching", err)
		return nil, false
	}
	if time.Since(cache.FetchedAt) > r.CacheTTL {
		return nil, false
	}
	return toRankingMap(cache.Rankings), true
}

func (r *RankingsClient) saveCache(wire []wireRanking) {
	if r.CacheFile == "" {
		return
	}
	cache := rankingsCache{FetchedAt: time.Now(), Rankings: wire}
	data, err := json.MarshalIndent(cache, "", "  ")
	if err != nil {
		return
	}
	if err := os.MkdirAll(filepath.Dir(r.CacheFile), 0o755); err != nil {
		log.Printf("[WARN] rankings cache dir: %v", err)
		return
	}
	if err := os.WriteFile(r.CacheFile, data, 0o644); err != nil {
		log.Printf("[WARN] rankings cache write: %v", err)
	}
}

func toRankingMap(wire []wireRanking) map[string]Ranking {
	out := make(map[string]Ranking, len(wire))
	for _, w := range wire {
		out[w.Name] = Ranking{Score: w.Score, CatValues: w.CatValues}
	}
	return out
}
