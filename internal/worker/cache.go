package worker

import (
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/singleflight"

	"feedmill.app/internal/model"
)

// feedCache remembers parse results by the hash of the document, so identical
// documents of a batch are parsed once, even when they arrive concurrently.
type feedCache struct {
	mu sync.RWMutex
	sg singleflight.Group

	feeds map[uint64]parsed
	hit   atomic.Uint64
	miss  uint64
}

type parsed struct {
	feed *model.Feed
	err  error
}

func (self *feedCache) Init() *feedCache {
	self.feeds = map[uint64]parsed{}
	return self
}

// Parse returns the result of parse for data. It reports whether the result
// was produced for another document.
func (self *feedCache) Parse(data []byte, parse func() (*model.Feed, error),
) (parsed, bool) {
	sum := xxhash.Sum64(data)
	if p, ok := self.fromMap(sum); ok {
		return p, true
	}

	var leader, cached bool
	v, _, _ := self.sg.Do(strconv.FormatUint(sum, 16), func() (any, error) {
		leader = true
		if p, ok := self.fromMap(sum); ok {
			cached = true
			return p, nil
		}
		feed, err := parse()
		return self.remember(sum, parsed{feed: feed, err: err}), nil
	})

	if !leader {
		self.hit.Add(1)
	}
	return v.(parsed), !leader || cached
}

func (self *feedCache) fromMap(sum uint64) (parsed, bool) {
	self.mu.RLock()
	defer self.mu.RUnlock()
	p, ok := self.feeds[sum]
	if ok {
		self.hit.Add(1)
	}
	return p, ok
}

func (self *feedCache) remember(sum uint64, p parsed) parsed {
	self.mu.Lock()
	self.miss++
	self.feeds[sum] = p
	self.mu.Unlock()
	return p
}

func (self *feedCache) Stats() (hit, miss uint64) {
	self.mu.RLock()
	defer self.mu.RUnlock()
	return self.hit.Load(), self.miss
}
