package cps

import (
	"strconv"
	"sync"

	"github.com/medcore/med/internal/hash"
	"github.com/medcore/med/section"
)

type cacheEntry struct {
	samples []int32
	header  *section.CompressedBlockHeader
}

// DecodeCache memoizes DecodeBlock results keyed by a segment's UID and
// a block's file offset (spec.md §4.4's decode cache), so a slice read
// that revisits the same block — overlapping queries, a hot segment
// read repeatedly — decodes it once. Safe for concurrent use.
type DecodeCache struct {
	mu      sync.RWMutex
	entries map[uint64]cacheEntry
}

// NewDecodeCache creates an empty DecodeCache.
func NewDecodeCache() *DecodeCache {
	return &DecodeCache{entries: make(map[uint64]cacheEntry)}
}

func cacheKey(segmentUID uint64, blockOffset int64) uint64 {
	return hash.ID(strconv.FormatUint(segmentUID, 10) + ":" + strconv.FormatInt(blockOffset, 10))
}

// DecodeBlock returns the cached decode for (segmentUID, blockOffset)
// if present, otherwise decodes data via DecodeBlock and stores the
// result under that key.
func (c *DecodeCache) DecodeBlock(segmentUID uint64, blockOffset int64, data []byte) ([]int32, *section.CompressedBlockHeader, error) {
	key := cacheKey(segmentUID, blockOffset)

	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if ok {
		return e.samples, e.header, nil
	}

	samples, h, err := DecodeBlock(data)
	if err != nil {
		return nil, nil, err
	}

	c.mu.Lock()
	c.entries[key] = cacheEntry{samples: samples, header: h}
	c.mu.Unlock()

	return samples, h, nil
}
