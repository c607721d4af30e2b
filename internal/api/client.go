package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"davar/internal/scripture"
	"davar/internal/store"
)

const defaultTimeout = 10 * time.Second

// CacheInterface is consulted before the network. Any error from it falls
// through to the provider.
type CacheInterface interface {
	GetVerse(ctx context.Context, key scripture.VerseKey) (scripture.VerseRecord, error)
	GetWord(ctx context.Context, word string) (scripture.LexicalEntry, error)
}

// Client talks to a scripture/lexicon provider over HTTP:
//
//	GET {base}/verses/{book}/{chapter}/{verse}
//	GET {base}/verses/{book}/{chapter}
//	GET {base}/lexicon/{word}
//
// Verses travel in pack form (store.PackVerse), entries as scripture.LexicalEntry.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      CacheInterface
}

// NewClient returns a client for the provider at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// SetCache installs a cache consulted before every request.
func (c *Client) SetCache(cache CacheInterface) {
	c.cache = cache
}

// GetVerse implements scripture.VerseRepository.
func (c *Client) GetVerse(ctx context.Context, key scripture.VerseKey) (scripture.VerseRecord, error) {
	if c.cache != nil {
		if rec, err := c.cache.GetVerse(ctx, key); err == nil {
			return rec, nil
		}
	}

	var v store.PackVerse
	u := c.url("verses", key.Book, strconv.Itoa(key.Chapter), strconv.Itoa(key.Verse))
	if err := c.get(ctx, u, &v, scripture.ErrVerseNotFound); err != nil {
		return scripture.VerseRecord{}, err
	}
	return v.Record(), nil
}

// Chapter implements scripture.VerseRepository.
func (c *Client) Chapter(ctx context.Context, book string, chapter int) ([]scripture.KeyedVerse, error) {
	var verses []store.PackVerse
	u := c.url("verses", book, strconv.Itoa(chapter))
	if err := c.get(ctx, u, &verses, scripture.ErrVerseNotFound); err != nil {
		return nil, err
	}

	out := make([]scripture.KeyedVerse, 0, len(verses))
	for _, v := range verses {
		out = append(out, scripture.KeyedVerse{Key: v.Key(), Record: v.Record()})
	}
	return out, nil
}

// GetWord implements scripture.LexiconRepository.
func (c *Client) GetWord(ctx context.Context, word string) (scripture.LexicalEntry, error) {
	if c.cache != nil {
		if e, err := c.cache.GetWord(ctx, word); err == nil {
			return e, nil
		}
	}

	var e scripture.LexicalEntry
	if err := c.get(ctx, c.url("lexicon", word), &e, scripture.ErrWordNotFound); err != nil {
		return scripture.LexicalEntry{}, err
	}
	return e, nil
}

func (c *Client) url(parts ...string) string {
	escaped := make([]string, len(parts))
	for i, p := range parts {
		escaped[i] = url.PathEscape(p)
	}
	return c.baseURL + "/" + strings.Join(escaped, "/")
}

// get decodes a JSON body into out. A 404 maps to notFound.
func (c *Client) get(ctx context.Context, u string, out any, notFound error) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return notFound
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("API returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", u, err)
	}
	return nil
}

var (
	_ scripture.VerseRepository   = (*Client)(nil)
	_ scripture.LexiconRepository = (*Client)(nil)
)
