package recipes

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Recipe is one suggestion from the lookup service.
type Recipe struct {
	ID                    int    `json:"id"`
	Title                 string `json:"title"`
	Image                 string `json:"image"`
	UsedIngredientCount   int    `json:"usedIngredientCount"`
	MissedIngredientCount int    `json:"missedIngredientCount"`
}

// Client calls the recipe-lookup service and keeps an on-disk cache of raw
// responses keyed by the exact ingredient string. A cached file that no
// longer parses is thrown away and refetched.
type Client struct {
	baseURL    string
	apiKey     string
	cacheDir   string
	httpClient *http.Client
}

// NewClient builds a recipe client. cacheDir is created on first use.
func NewClient(baseURL, apiKey, cacheDir string) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		cacheDir:   cacheDir,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// FindByIngredients returns recipes for a lowercase comma-joined ingredient
// list, from cache when possible.
func (c *Client) FindByIngredients(ctx context.Context, ingredients string) ([]Recipe, error) {
	path := c.cachePath(ingredients)

	if data, err := os.ReadFile(path); err == nil {
		var cached []Recipe
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
		// stale or corrupt cache entry
		_ = os.Remove(path)
	}

	body, err := c.fetch(ctx, ingredients)
	if err != nil {
		return nil, err
	}

	var result []Recipe
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("parse recipe response: %w", err)
	}

	if err := os.MkdirAll(c.cacheDir, 0o755); err == nil {
		_ = os.WriteFile(path, body, 0o644)
	}
	return result, nil
}

func (c *Client) fetch(ctx context.Context, ingredients string) ([]byte, error) {
	q := url.Values{}
	q.Set("ingredients", ingredients)
	q.Set("apiKey", c.apiKey)
	q.Set("number", "10")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build recipe request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch recipes: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("recipe service returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read recipe response: %w", err)
	}
	return body, nil
}

// cachePath maps the ingredient key to a filesystem-safe file name while
// staying a pure function of the exact ingredient string.
func (c *Client) cachePath(ingredients string) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == ',', r == '-':
			return r
		default:
			return '_'
		}
	}, ingredients)
	return filepath.Join(c.cacheDir, name+".json")
}
