package perft

import (
	"sync"
	"sync/atomic"

	"github.com/hailam/chesscore/internal/board"
)

// Number of shards for table locking (power of 2 for fast modulo)
const (
	shardCount = 256
	shardMask  = shardCount - 1
)

// hashEntry caches the subtree size of one position at one depth.
type hashEntry struct {
	Key   uint64 // full Zobrist hash
	Nodes uint64
	Depth uint8 // 0 marks an empty slot
}

// HashTable caches subtree counts by Zobrist hash and depth. It is safe for
// concurrent use.
type HashTable struct {
	entries []hashEntry
	shards  [shardCount]sync.RWMutex
	mask    uint64

	hits   atomic.Uint64
	probes atomic.Uint64
}

// NewHashTable creates a table of roughly sizeMB megabytes.
func NewHashTable(sizeMB int) *HashTable {
	const entrySize = 24
	n := roundDownToPowerOf2(uint64(sizeMB) * 1024 * 1024 / entrySize)
	if n == 0 {
		n = 1
	}
	return &HashTable{
		entries: make([]hashEntry, n),
		mask:    n - 1,
	}
}

// roundDownToPowerOf2 rounds n down to the nearest power of 2.
func roundDownToPowerOf2(n uint64) uint64 {
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return (n + 1) >> 1
}

// Probe returns the stored count for hash at exactly depth.
func (ht *HashTable) Probe(hash uint64, depth int) (uint64, bool) {
	ht.probes.Add(1)

	idx := hash & ht.mask
	shard := &ht.shards[idx&shardMask]
	shard.RLock()
	e := ht.entries[idx]
	shard.RUnlock()

	if e.Depth != 0 && e.Key == hash && int(e.Depth) == depth {
		ht.hits.Add(1)
		return e.Nodes, true
	}
	return 0, false
}

// Store records nodes for hash at depth. A deeper entry in the slot is not
// replaced by a shallower one.
func (ht *HashTable) Store(hash uint64, depth int, nodes uint64) {
	if depth <= 0 || depth > 255 {
		return
	}
	idx := hash & ht.mask
	shard := &ht.shards[idx&shardMask]
	shard.Lock()
	e := &ht.entries[idx]
	if e.Depth == 0 || depth >= int(e.Depth) {
		*e = hashEntry{Key: hash, Nodes: nodes, Depth: uint8(depth)}
	}
	shard.Unlock()
}

// Clear empties the table and resets the statistics.
func (ht *HashTable) Clear() {
	for i := range ht.entries {
		ht.entries[i] = hashEntry{}
	}
	ht.hits.Store(0)
	ht.probes.Store(0)
}

// HitRate returns the fraction of probes that found an entry.
func (ht *HashTable) HitRate() float64 {
	probes := ht.probes.Load()
	if probes == 0 {
		return 0
	}
	return float64(ht.hits.Load()) / float64(probes)
}

// PerftHashed is Perft with subtree counts cached in ht.
func PerftHashed(p *board.Position, depth int, ht *HashTable) uint64 {
	if depth <= 0 {
		return 1
	}
	if n, ok := ht.Probe(p.Hash, depth); ok {
		return n
	}

	moves := p.GenerateLegalMoves()
	var nodes uint64
	if depth == 1 {
		nodes = uint64(moves.Len())
	} else {
		for _, m := range moves.Slice() {
			p.MakeMove(m)
			nodes += PerftHashed(p, depth-1, ht)
			p.UnmakeMove(m)
		}
	}
	ht.Store(p.Hash, depth, nodes)
	return nodes
}
