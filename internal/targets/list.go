package targets

import (
	"iter"

	"github.com/rs/zerolog/log"
)

// List is a sorted, duplicate free chain of targets with an optional upper bound on
// its length. Targets are kept in ascending Compare order at all times.
//
// A List carries a forward cursor (Begin, Iterate, Available) which Get reuses, so
// walking indices in ascending order costs O(1) per step while going backwards
// restarts from the head. All walks the chain without touching the cursor.
//
// A List is not safe for concurrent use.
type List struct {
	head *Target
	tail *Target
	size int
	max  int

	cursor *Target
	pos    int
}

// New returns an empty List holding at most capacity targets. A capacity of zero or
// less means the list is unbounded.
func New(capacity int) *List {
	if capacity < 0 {
		capacity = 0
	}
	return &List{max: capacity}
}

// Push inserts a target at its sorted position. It returns false, leaving the list
// untouched, when the list is full or an equal target is already present.
func (l *List) Push(from, to MAC, ch uint8) bool {
	return l.Add(from, to, ch) == nil
}

// Add works like Push but tells the caller why a target was rejected.
func (l *List) Add(from, to MAC, ch uint8) error {
	if l.Full() {
		log.Debug().Msgf("Rejected %s -> %s ch %d: list is full (%d)", from, to, ch, l.max)
		return ErrFull
	}

	key := Target{from: from, to: to, ch: ch}
	prev, idx, dup := l.locate(&key)
	if dup {
		log.Debug().Msgf("Rejected %s: already in list", &key)
		return ErrDuplicate
	}

	l.link(prev, NewTarget(from, to, ch), idx)
	return nil
}

// locate finds the node the key has to follow (nil for the head) together with the
// position the key would take. dup is set when an equal node exists.
func (l *List) locate(key *Target) (prev *Target, idx int, dup bool) {
	// Both ends are checked first so appending sorted input never scans.
	if l.head == nil || key.Compare(l.head) < 0 {
		return nil, 0, false
	}
	if key.Compare(l.tail) > 0 {
		return l.tail, l.size, false
	}
	for cur := l.head; cur != nil; cur = cur.next {
		c := cur.Compare(key)
		if c == 0 {
			return nil, 0, true
		}
		if c > 0 {
			break
		}
		prev = cur
		idx++
	}
	return prev, idx, false
}

// link splices t in after prev (at the head when prev is nil) and keeps the cursor
// pointing at the node found at its position.
func (l *List) link(prev, t *Target, idx int) {
	if prev == nil {
		t.next = l.head
		l.head = t
	} else {
		t.next = prev.next
		prev.next = t
	}
	if t.next == nil {
		l.tail = t
	}
	l.size++

	switch {
	case idx < l.pos:
		l.pos++
	case idx == l.pos:
		l.cursor = t
	}
}

// MoveFrom relinks targets from the front of src into l until l is full or src is
// exhausted. Nodes are moved, not copied, and land at their sorted position in l.
// A node equal to one already in l cannot be moved and stays in src. Whatever is
// not moved remains a valid sorted chain owned by src. src's cursor is reset when at
// least one node moved and left alone otherwise.
func (l *List) MoveFrom(src *List) {
	if src == nil || src == l || src.head == nil {
		return
	}

	var (
		kept, keptTail *Target
		prev           *Target
		idx, moved     int
	)
	cur := l.head
	node := src.head
	for node != nil && !l.Full() {
		next := node.next
		node.next = nil

		for cur != nil && cur.Compare(node) < 0 {
			prev = cur
			cur = cur.next
			idx++
		}

		if cur != nil && cur.Equal(node) {
			if keptTail == nil {
				kept = node
			} else {
				keptTail.next = node
			}
			keptTail = node
		} else {
			l.link(prev, node, idx)
			prev = node
			idx++
			moved++
		}
		node = next
	}

	// Everything from node onwards was never visited and is still linked up.
	if keptTail != nil {
		keptTail.next = node
		src.head = kept
	} else {
		src.head = node
	}
	if node == nil {
		src.tail = keptTail
	}
	src.size -= moved
	if moved > 0 {
		src.Begin()
	}

	log.Debug().Msgf("Moved %d targets, %d left in source list", moved, src.size)
}

// Begin rewinds the cursor to the head of the list.
func (l *List) Begin() {
	l.cursor = l.head
	l.pos = 0
}

// Iterate returns the target under the cursor and moves the cursor forward.
// It returns nil once the end of the list is reached.
func (l *List) Iterate() *Target {
	t := l.cursor
	if t != nil {
		l.cursor = t.next
		l.pos++
	}
	return t
}

// Available reports whether Iterate would return a target.
func (l *List) Available() bool {
	return l.cursor != nil
}

// Get returns the target at index i, or nil when i is out of range. It moves the
// cursor to i, so a following Iterate returns the same target. Asking for an index
// behind the cursor rescans from the head.
func (l *List) Get(i int) *Target {
	if i < 0 {
		return nil
	}
	if i < l.pos {
		l.Begin()
	}
	for l.cursor != nil && l.pos < i {
		l.Iterate()
	}
	return l.cursor
}

// All yields every target in ascending order without moving the cursor.
func (l *List) All() iter.Seq[*Target] {
	return func(yield func(*Target) bool) {
		for t := l.head; t != nil; t = t.next {
			if !yield(t) {
				return
			}
		}
	}
}

func (l *List) Size() int { return l.size }
func (l *List) Capacity() int { return l.max }

// Full reports whether the list is bounded and holds capacity targets.
func (l *List) Full() bool {
	return l.max > 0 && l.size >= l.max
}

// Clear unlinks every target and empties the list.
func (l *List) Clear() {
	t := l.head
	for t != nil {
		next := t.next
		t.next = nil
		t = next
	}

	l.head = nil
	l.tail = nil
	l.size = 0
	l.cursor = nil
	l.pos = 0
}
