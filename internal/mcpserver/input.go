package mcpserver

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/erraggy/oasmodel/parser"
)

const (
	defaultCacheSize = 10
	// maxInlineSize bounds inline content; larger documents should be passed by file.
	maxInlineSize = 10 << 20
)

// specInput represents the two ways an OAS document can be provided to a tool.
// Exactly one of File or Content must be set.
type specInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to an OAS file on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline OAS document content (JSON or YAML)"`
	Format  string `json:"format,omitempty"  jsonschema:"Input format (json or yaml). Detected from the file extension or content when omitted."`
}

// cacheEntry holds a cached parse result with LRU ordering.
type cacheEntry struct {
	result *parser.ParseResult
	usedAt uint64
}

// specCacheStore provides a session-scoped cache for parsed specs.
// File inputs are keyed by (absolutePath, modTime). Content inputs are keyed
// by a SHA-256 hash. Parse settings are part of every key.
type specCacheStore struct {
	mu      sync.Mutex
	entries map[string]*cacheEntry
	maxSize int
	clock   uint64 // advances on every get or put
}

func newSpecCache(maxSize int) *specCacheStore {
	return &specCacheStore{entries: make(map[string]*cacheEntry), maxSize: maxSize}
}

// get returns a cached result or nil.
func (c *specCacheStore) get(key string) *parser.ParseResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[key]; ok {
		c.clock++
		e.usedAt = c.clock
		return e.result
	}
	return nil
}

// put stores a result, evicting the least recently used entry if at capacity.
func (c *specCacheStore) put(key string, result *parser.ParseResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; !ok && len(c.entries) >= c.maxSize {
		var oldestKey string
		var oldest uint64
		for k, e := range c.entries {
			if oldestKey == "" || e.usedAt < oldest {
				oldestKey = k
				oldest = e.usedAt
			}
		}
		delete(c.entries, oldestKey)
	}
	c.clock++
	c.entries[key] = &cacheEntry{result: result, usedAt: c.clock}
}

// size returns the number of cached entries.
func (c *specCacheStore) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// makeCacheKey creates a cache key for the given spec input and settings.
// An empty key means the input must not be cached.
func makeCacheKey(s specInput, strict bool, maxDepth int) string {
	settings := fmt.Sprintf("%s:%t:%d", strings.ToLower(s.Format), strict, maxDepth)
	switch {
	case s.File != "":
		absPath, err := filepath.Abs(s.File)
		if err != nil {
			return ""
		}
		info, err := os.Stat(absPath)
		if err != nil {
			return "" // Can't stat, don't cache.
		}
		return fmt.Sprintf("file:%s:%d:%s", absPath, info.ModTime().UnixNano(), settings)
	case s.Content != "":
		h := sha256.Sum256([]byte(s.Content))
		return fmt.Sprintf("content:%s:%s", hex.EncodeToString(h[:]), settings)
	default:
		return ""
	}
}

// resolve parses the document from whichever input was provided, consulting the
// session cache first.
func (ts *toolset) resolve(s specInput, strict bool) (*parser.ParseResult, error) {
	if (s.File == "") == (s.Content == "") {
		return nil, fmt.Errorf("exactly one of file or content must be provided")
	}
	if len(s.Content) > maxInlineSize {
		return nil, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead",
			len(s.Content), maxInlineSize)
	}

	opts := ts.cfg.ParserOptions(ts.logger)
	opts = append(opts, parser.WithStrict(strict))
	if s.Format != "" {
		format, err := parser.ParseSourceFormat(s.Format)
		if err != nil {
			return nil, err
		}
		opts = append(opts, parser.WithFormat(format))
	}

	key := makeCacheKey(s, strict, ts.cfg.MaxDepth)
	if key != "" {
		if cached := ts.cache.get(key); cached != nil {
			return cached, nil
		}
	}

	if s.File != "" {
		opts = append(opts, parser.WithFilePath(s.File))
	} else {
		opts = append(opts, parser.WithBytes([]byte(s.Content)), parser.WithSourceName("content"))
	}
	result, err := parser.ParseWithOptions(opts...)
	if err != nil {
		return nil, err
	}

	if key != "" {
		ts.cache.put(key, result)
	}
	return result, nil
}
