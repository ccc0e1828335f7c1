package polyomino

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/quadrille/lattice"
)

// directions are tried in this order from every square of the live net.
var directions = [4]lattice.Point{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}

// cursor remembers where a level left off: the index of the square being
// extended and the last direction tried from it.
type cursor struct {
	square int
	dir    int
}

// Enumerator is the explicit search state of one enumeration run.
//
// Level ℓ (1 ≤ ℓ < size) extends a live net of exactly ℓ squares to ℓ+1.
// Deeper levels always get the first chance to move; a level only
// advances its own cursor once every deeper level is exhausted, which
// makes the whole search a resumable depth-first traversal.
type Enumerator struct {
	size int

	// live search state
	net     lattice.Net
	cursors []cursor // cursors[ℓ] for ℓ in 1..size-1; index 0 unused
	halted  bool

	// discovered shapes
	nets     *lattice.Bucket
	children map[string]map[string]lattice.Net

	// bookkeeping
	start   time.Time
	elapsed time.Duration
	steps   int
	id      string
	opts    Options
	log     *slog.Logger
}

// NewEnumerator prepares a run for polyominoes of the given size.
// Returns ErrInvalidSize if size < 1; no search state is created then.
func NewEnumerator(size int, opts ...Option) (*Enumerator, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	o := buildOptions(opts)
	id := uuid.NewString()
	e := &Enumerator{
		size:     size,
		net:      lattice.Net{{X: 0, Y: 0}},
		cursors:  make([]cursor, size),
		nets:     lattice.NewBucket(),
		children: make(map[string]map[string]lattice.Net),
		start:    time.Now(),
		id:       id,
		opts:     o,
		log:      o.Logger.With("run", id, "size", size),
	}
	for i := range e.cursors {
		e.cursors[i] = cursor{square: 0, dir: -1}
	}

	return e, nil
}

// Size is the target polyomino size.
func (e *Enumerator) Size() int { return e.size }

// ID identifies the run in logs.
func (e *Enumerator) ID() string { return e.id }

// Halted reports whether the search is exhausted.
func (e *Enumerator) Halted() bool { return e.halted }

// Elapsed is the wall-clock time from creation to the latest Step that
// did work, truncated to milliseconds. It stops advancing once halted.
func (e *Enumerator) Elapsed() time.Duration { return e.elapsed }

// Steps counts the Step calls that did work.
func (e *Enumerator) Steps() int { return e.steps }

// Count returns how many distinct shapes of the given size are known.
func (e *Enumerator) Count(size int) int { return e.nets.Count(size) }

// Shapes returns copies of the canonical nets of the target size found so far.
func (e *Enumerator) Shapes() []lattice.Net { return e.nets.Nets(e.size) }

// Parents returns the canonical nets one square smaller from which growth
// into an already-known equivalent of net was observed and skipped,
// ordered by key. The result is empty for shapes only ever reached once.
func (e *Enumerator) Parents(net lattice.Net) []lattice.Net {
	match, ok := lattice.FindEquivalent(net, e.nets)
	if !ok {
		return nil
	}
	set := e.children[match.Key()]
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]lattice.Net, len(keys))
	for i, k := range keys {
		out[i] = set[k].Clone()
	}
	return out
}

// link records that parent grows into the already-known child.
func (e *Enumerator) link(child, parent lattice.Net) {
	ck := child.Key()
	set, ok := e.children[ck]
	if !ok {
		set = make(map[string]lattice.Net)
		e.children[ck] = set
	}
	set[parent.Key()] = parent
}

// Step performs one unit of search and records the resulting live net in
// the bucket unless an equivalent is already there. It returns false,
// doing nothing, once the search has halted.
func (e *Enumerator) Step() bool {
	if e.halted {
		return false
	}
	e.advance()
	e.nets.Insert(e.net)
	e.steps++
	e.elapsed = time.Since(e.start).Truncate(time.Millisecond)

	return !e.halted
}

// advance gives each level a chance to grow the live net, innermost
// first, and reports whether one did. Only the outermost level may halt
// the search. With size 1 there are no levels and the search halts at once.
func (e *Enumerator) advance() bool {
	if e.size == 1 {
		e.halted = true
		return false
	}
	top := len(e.net)
	if top > e.size-1 {
		top = e.size - 1
	}
	for level := top; level >= 1; level-- {
		if e.extend(level, level == 1) {
			return true
		}
	}
	return false
}

// extend tries to grow the live net from level squares to level+1,
// resuming from the level's cursor.
func (e *Enumerator) extend(level int, stop bool) bool {
	c := &e.cursors[level]
	if len(e.net) == level {
		// a shallower level just produced a new net of this size
		c.square, c.dir = 0, -1
	}
	e.net = e.net[:level]

	for {
		c.dir++
		if c.dir == len(directions) {
			c.dir = 0
			c.square++
		}
		if c.square >= level {
			if stop {
				e.halted = true
			}
			return false
		}

		cand := e.net[c.square].Add(directions[c.dir])
		if e.net.Contains(cand) {
			continue
		}
		parent := lattice.Normalize(e.net)
		e.net = append(e.net, cand)
		if known, ok := lattice.FindEquivalent(e.net, e.nets); ok {
			// reached before via a different growth order
			e.link(known, parent)
			e.net = e.net[:level]
			continue
		}
		return true
	}
}
