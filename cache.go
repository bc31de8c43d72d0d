package msgfmt

import "sync"

// patternCache memoizes parsed Pattern trees keyed by their source text.
// Unlike the teacher's FormatterRegistry.funcCache, this cache is never
// invalidated: a given pattern string always parses to the same tree, so
// once an entry is filled it stays valid for the cache's lifetime.
type patternCache struct {
	mu      sync.RWMutex
	entries map[string]*Pattern
}

func newPatternCache() *patternCache {
	return &patternCache{entries: make(map[string]*Pattern)}
}

// getOrParse returns the cached Pattern for src, parsing and storing it on
// first use. Concurrent callers racing on the same unseen src each parse
// independently; the first write wins and the rest discard their copy,
// which is cheaper than serializing every miss behind a single lock.
func (c *patternCache) getOrParse(src string) (*Pattern, error) {
	if c == nil {
		return Parse(src)
	}

	c.mu.RLock()
	if p, ok := c.entries[src]; ok {
		c.mu.RUnlock()
		return p, nil
	}
	c.mu.RUnlock()

	p, err := Parse(src)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if existing, ok := c.entries[src]; ok {
		c.mu.Unlock()
		return existing, nil
	}
	c.entries[src] = p
	c.mu.Unlock()

	return p, nil
}
