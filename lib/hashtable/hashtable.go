// Package hashtable implements an open-addressing hash table with linear
// probing, tombstone deletion and compaction of tombstones once the table has
// no free slots left.
package hashtable

import "errors"

// ErrFull is returned by Add when a bounded table is at its maximum capacity
// and another entry would push it past the load factor ceiling.
var ErrFull = errors.New("hashtable: table is full")

type State uint8

const (
	Free State = iota
	Active
	Deleted
)

func (s State) String() string {
	switch s {
	case Free:
		return "free"
	case Active:
		return "active"
	case Deleted:
		return "deleted"
	}
	return "unknown"
}

type Entry[V any] struct {
	Key   uint64
	Value V
	State State
}

// Table maps uint64 keys to values of type V. The table never frees or
// otherwise touches the values it stores.
type Table[V any] struct {
	entries []Entry[V]
	maxCap  int
	count   int
	free    int
}

// New creates a table with the given initial capacity. maxCapacity bounds the
// growth of the table; 0 means unbounded.
func New[V any](capacity, maxCapacity int) *Table[V] {
	if maxCapacity < 0 {
		maxCapacity = 0
	}
	if maxCapacity != 0 && capacity > maxCapacity {
		capacity = maxCapacity
	}
	if capacity < 1 {
		capacity = 1
	}
	return &Table[V]{
		entries: make([]Entry[V], capacity),
		maxCap:  maxCapacity,
		free:    capacity,
	}
}

func (t *Table[V]) Len() int       { return t.count }
func (t *Table[V]) Cap() int       { return len(t.entries) }
func (t *Table[V]) MaxCap() int    { return t.maxCap }
func (t *Table[V]) FreeSlots() int { return t.free }

func (t *Table[V]) atMax() bool {
	return t.maxCap != 0 && len(t.entries) >= t.maxCap
}

// Add stores value under key, overwriting any value already stored there.
// The table doubles in size before the load factor would exceed one half.
func (t *Table[V]) Add(key uint64, value V) error {
	if i := t.find(key); i >= 0 {
		t.entries[i].Value = value
		return nil
	}

	for (t.count+1)*2 > len(t.entries) {
		if t.atMax() {
			if t.count*2 >= len(t.entries) {
				return ErrFull
			}
			break
		}
		t.resize()
	}

	t.place(key, value)
	return nil
}

// Remove deletes the entry for key and returns its value. The slot becomes a
// tombstone until the next compaction or resize.
func (t *Table[V]) Remove(key uint64) (V, bool) {
	var zero V
	i := t.Index(key)
	if i == -1 {
		return zero, false
	}
	value := t.entries[i].Value
	t.entries[i].Value = zero
	t.entries[i].State = Deleted
	t.count--
	return value, true
}

func (t *Table[V]) Get(key uint64) (V, bool) {
	i := t.Index(key)
	if i == -1 {
		var zero V
		return zero, false
	}
	return t.entries[i].Value, true
}

// GetAt returns the value in slot index, if that slot holds an active entry.
func (t *Table[V]) GetAt(index int) (V, bool) {
	var zero V
	if index < 0 || index >= len(t.entries) || t.entries[index].State != Active {
		return zero, false
	}
	return t.entries[index].Value, true
}

// Index returns the slot holding key, or -1. When no free slots remain, the
// tombstones are reclaimed first so that probing does not degrade into a full
// scan of the table.
func (t *Table[V]) Index(key uint64) int {
	if t.free <= 0 {
		t.compact()
	}
	return t.find(key)
}

func (t *Table[V]) find(key uint64) int {
	size := len(t.entries)
	index := int(key % uint64(size))
	for n := 0; n < size; n++ {
		e := &t.entries[index]
		if e.State == Free {
			return -1
		}
		if e.State == Active && e.Key == key {
			return index
		}
		index = (index + 1) % size
	}
	return -1
}

// place inserts a key known to be absent. The first tombstone in the probe
// chain is reused; otherwise the entry lands on the first free slot.
func (t *Table[V]) place(key uint64, value V) {
	size := len(t.entries)
	index := int(key % uint64(size))
	target := -1
	for n := 0; n < size; n++ {
		state := t.entries[index].State
		if state == Free {
			if target == -1 {
				target = index
			}
			break
		}
		if state == Deleted && target == -1 {
			target = index
		}
		index = (index + 1) % size
	}

	if t.entries[target].State == Free {
		t.free--
	}
	t.entries[target] = Entry[V]{Key: key, Value: value, State: Active}
	t.count++
}

func (t *Table[V]) active() []Entry[V] {
	live := make([]Entry[V], 0, t.count)
	for _, e := range t.entries {
		if e.State == Active {
			live = append(live, e)
		}
	}
	return live
}

// compact turns every tombstone back into a free slot and rehashes the live
// entries in place to repair the probe chains.
func (t *Table[V]) compact() {
	live := t.active()
	for i := range t.entries {
		t.entries[i] = Entry[V]{}
	}
	t.count = 0
	t.free = len(t.entries)
	for _, e := range live {
		t.place(e.Key, e.Value)
	}
}

func (t *Table[V]) resize() {
	size := len(t.entries) * 2
	if t.maxCap != 0 && size > t.maxCap {
		size = t.maxCap
	}

	live := t.active()
	t.entries = make([]Entry[V], size)
	t.count = 0
	t.free = size
	for _, e := range live {
		t.place(e.Key, e.Value)
	}
}

// HashString is the djb2 string hash: h = h*33 + c, seeded with 5381.
func HashString(s string) uint64 {
	var hash uint64 = 5381
	for i := 0; i < len(s); i++ {
		hash = hash*33 + uint64(s[i])
	}
	return hash
}
