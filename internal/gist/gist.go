// Package gist fetches random public GitHub gists to use as rounds. A
// batch is fetched at once and served until exhausted.
package gist

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	"guessthelang/internal/lang"
	"guessthelang/internal/snippet"
)

const defaultBaseURL = "https://api.github.com"

// Options configures a Client. Zero values get sensible defaults.
type Options struct {
	Token      string
	BaseURL    string
	UserAgent  string
	HTTPClient *http.Client
	Logger     *log.Logger
}

// Client talks to the GitHub gists API.
type Client struct {
	http      *http.Client
	baseURL   string
	token     string
	userAgent string
	log       *log.Logger

	cache []fileRef
}

// fileRef is one usable gist file from a fetched batch.
type fileRef struct {
	rawURL   string
	language string
}

// Gist API response shapes, trimmed to the fields the game needs.
type apiGist struct {
	Files map[string]apiGistFile `json:"files"`
}

type apiGistFile struct {
	Filename string  `json:"filename"`
	Language *string `json:"language"`
	RawURL   string  `json:"raw_url"`
}

// NewClient creates a gists client.
func NewClient(opts Options) *Client {
	c := &Client{
		http:      opts.HTTPClient,
		baseURL:   opts.BaseURL,
		token:     opts.Token,
		userAgent: opts.UserAgent,
		log:       opts.Logger,
	}
	if c.http == nil {
		c.http = &http.Client{Timeout: 15 * time.Second}
	}
	if c.baseURL == "" {
		c.baseURL = defaultBaseURL
	}
	if c.userAgent == "" {
		c.userAgent = "guessthelang/dev"
	}
	if c.log == nil {
		c.log = log.New(io.Discard)
	}
	return c
}

// Next returns the next snippet, refilling the batch cache when it runs
// out. Fetch failures are fatal to the current round attempt; the caller
// decides whether to keep playing.
func (c *Client) Next(ctx context.Context) (snippet.Snippet, error) {
	if len(c.cache) == 0 {
		if err := c.fetchBatch(ctx); err != nil {
			return snippet.Snippet{}, err
		}
	}

	ref := c.cache[len(c.cache)-1]
	c.cache = c.cache[:len(c.cache)-1]

	raw, err := c.fetchRaw(ctx, ref.rawURL)
	if err != nil {
		return snippet.Snippet{}, err
	}
	return snippet.Snippet{Raw: raw, Language: ref.language}, nil
}

// fetchBatch loads a random page of public gists and caches the files
// whose language the game knows. At least one usable gist per page is
// assumed; an entirely unusable page surfaces as an error on the next
// refill attempt rather than looping here.
func (c *Client) fetchBatch(ctx context.Context) error {
	page := rand.IntN(101)
	url := fmt.Sprintf("%s/gists/public?page=%d&per_page=100", c.baseURL, page)

	var gists []apiGist
	if err := c.getJSON(ctx, url, &gists); err != nil {
		return fmt.Errorf("fetching gists: %w", err)
	}

	refs := make([]fileRef, 0, len(gists))
	for _, g := range gists {
		for _, f := range g.Files {
			if f.Language == nil || !lang.Supported(*f.Language) {
				continue
			}
			refs = append(refs, fileRef{rawURL: f.RawURL, language: *f.Language})
			break
		}
	}

	rand.Shuffle(len(refs), func(i, j int) {
		refs[i], refs[j] = refs[j], refs[i]
	})

	c.log.Info("fetched gist batch", "page", page, "usable", len(refs))
	if len(refs) == 0 {
		return fmt.Errorf("no usable gists on page %d", page)
	}
	c.cache = refs
	return nil
}

func (c *Client) fetchRaw(ctx context.Context, url string) (string, error) {
	req, err := c.newRequest(ctx, url)
	if err != nil {
		return "", err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching gist content: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetching gist content: unexpected status %s", resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading gist content: %w", err)
	}
	return string(body), nil
}

func (c *Client) getJSON(ctx context.Context, url string, v any) error {
	req, err := c.newRequest(ctx, url)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(v)
}

func (c *Client) newRequest(ctx context.Context, url string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	return req, nil
}
