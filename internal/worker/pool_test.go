package worker

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feedmill.app/internal/model"
	"feedmill.app/internal/reader/parser"
)

func rssDocument(name, title string) Document {
	return Document{
		Name: name,
		Data: fmt.Appendf(nil, `<?xml version="1.0"?>
			<rss version="2.0"><channel><title>%s</title>
			<item><title>Item</title></item>
			</channel></rss>`, title),
	}
}

func TestPool_Parse(t *testing.T) {
	docs := []Document{
		rssDocument("a.xml", "A"),
		{Name: "b.json", Data: []byte(`{"version":"https://jsonfeed.org/version/1","title":"B","items":[]}`)},
		{Name: "c.txt", Data: []byte("not a feed")},
		rssDocument("d.xml", "D"),
	}

	results := NewPool(2).Parse(context.Background(), docs)
	require.Len(t, results, len(docs))

	assert.Equal(t, "a.xml", results[0].Name)
	assert.Equal(t, parser.FormatXML, results[0].Format)
	require.NoError(t, results[0].Err)
	assert.Equal(t, "A", results[0].Feed.Title)

	assert.Equal(t, "b.json", results[1].Name)
	assert.Equal(t, parser.FormatJSON, results[1].Format)
	require.NoError(t, results[1].Err)
	assert.Equal(t, "B", results[1].Feed.Title)

	assert.Equal(t, "c.txt", results[2].Name)
	assert.Equal(t, parser.FormatUnknown, results[2].Format)
	require.ErrorIs(t, results[2].Err, parser.ErrFeedFormatNotDetected)
	assert.Nil(t, results[2].Feed)

	assert.Equal(t, "D", results[3].Feed.Title)
	for _, r := range results {
		assert.False(t, r.Shared)
	}
}

func TestPool_Parse_options(t *testing.T) {
	doc := Document{Name: "a.xml", Data: []byte(`<?xml version="1.0"?>
		<rss version="2.0"><channel><link>/</link></channel></rss>`)}

	results := NewPool(1, parser.WithBaseURL("https://example.org/feed")).
		Parse(context.Background(), []Document{doc})
	require.Len(t, results, 1)
	require.NoError(t, results[0].Err)
	assert.Equal(t, "https://example.org/", results[0].Feed.SiteURL)
}

func TestPool_Parse_duplicates(t *testing.T) {
	var calls atomic.Int32
	pool := NewPool(4)
	pool.parse = func(data []byte, opts ...parser.Option) (*model.Feed, error) {
		calls.Add(1)
		return parser.Parse(data, opts...)
	}

	var docs []Document
	for i := range 20 {
		docs = append(docs, rssDocument(fmt.Sprintf("%d.xml", i),
			fmt.Sprint("Feed ", i%2)))
	}

	results := pool.Parse(context.Background(), docs)
	require.Len(t, results, len(docs))
	assert.Equal(t, int32(2), calls.Load())

	var shared int
	for i, r := range results {
		require.NoError(t, r.Err)
		assert.Equal(t, fmt.Sprintf("%d.xml", i), r.Name)
		assert.Equal(t, fmt.Sprint("Feed ", i%2), r.Feed.Title)
		if r.Shared {
			shared++
		}
	}
	assert.Equal(t, 18, shared)

	for i := 2; i < len(results); i++ {
		assert.NotSame(t, results[i%2].Feed, results[i].Feed)
	}
	results[2].Feed.Title = "changed"
	assert.Equal(t, "Feed 0", results[0].Feed.Title)
	assert.Equal(t, "Feed 0", results[4].Feed.Title)
}

func TestPool_Parse_canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls atomic.Int32
	pool := NewPool(2)
	pool.parse = func(data []byte, opts ...parser.Option) (*model.Feed, error) {
		calls.Add(1)
		return parser.Parse(data, opts...)
	}

	docs := []Document{rssDocument("a.xml", "A"), rssDocument("b.xml", "B")}
	results := pool.Parse(ctx, docs)
	require.Len(t, results, 2)
	for i, r := range results {
		assert.Equal(t, docs[i].Name, r.Name)
		require.ErrorIs(t, r.Err, context.Canceled)
		assert.Nil(t, r.Feed)
	}
	assert.Zero(t, calls.Load())
}

func TestNewPool(t *testing.T) {
	assert.Equal(t, 1, NewPool(0).size)
	assert.Equal(t, 1, NewPool(-3).size)
	assert.Equal(t, 8, NewPool(8).size)
}

func TestFeedCache(t *testing.T) {
	cache := new(feedCache).Init()
	feed := model.NewFeed(model.FeedTypeRSS)

	var calls int
	parse := func() (*model.Feed, error) {
		calls++
		return feed, nil
	}

	p, shared := cache.Parse([]byte("a"), parse)
	assert.Same(t, feed, p.feed)
	assert.False(t, shared)

	p, shared = cache.Parse([]byte("a"), parse)
	assert.Same(t, feed, p.feed)
	assert.True(t, shared)

	_, shared = cache.Parse([]byte("b"), parse)
	assert.False(t, shared)
	assert.Equal(t, 2, calls)

	hit, miss := cache.Stats()
	assert.Equal(t, uint64(1), hit)
	assert.Equal(t, uint64(2), miss)
}
