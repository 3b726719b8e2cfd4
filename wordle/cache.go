package wordle

import (
	lru "github.com/hashicorp/golang-lru"
)

// SearchCache remembers the best guess for candidate sets already searched.
// Games against different secrets often narrow to the same candidates, so a
// cache shared by many solvers skips most full searches. It is safe for
// concurrent use and only serves solvers of the dictionary that created it.
type SearchCache struct {
	dict  *Dictionary
	cache *lru.Cache
}

func (d *Dictionary) NewSearchCache(size int) (*SearchCache, error) {
	cache, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &SearchCache{dict: d, cache: cache}, nil
}

func (c *SearchCache) get(candidates *WordList) (Scored, bool) {
	v, ok := c.cache.Get(candidates.key())
	if !ok {
		return Scored{}, false
	}
	return v.(Scored), true
}

func (c *SearchCache) add(candidates *WordList, best Scored) {
	c.cache.Add(candidates.key(), best)
}

// Len is the number of cached candidate sets.
func (c *SearchCache) Len() int {
	return c.cache.Len()
}
