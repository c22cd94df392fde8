package backend

import (
	"github.com/hackhub/hackhub/pkg/db/models"
	lru "github.com/hashicorp/golang-lru/v2"
)

// cache holds hackathon rows by ID. Hackathons are read on every
// registration and change rarely.
type cache struct {
	b          *Backend
	hackathons *lru.Cache[int64, models.Hackathon]
}

func newCache(b *Backend, size int) *cache {
	if size <= 0 {
		size = 1
	}
	c := &cache{b: b}
	cache, _ := lru.New[int64, models.Hackathon](size)
	c.hackathons = cache
	return c
}

func (c *cache) Get(id int64) (models.Hackathon, bool) {
	return c.hackathons.Get(id)
}

func (c *cache) Set(h models.Hackathon) {
	c.hackathons.Add(h.ID, h)
}

func (c *cache) Delete(id int64) {
	c.hackathons.Remove(id)
}

func (c *cache) Len() int {
	return c.hackathons.Len()
}
