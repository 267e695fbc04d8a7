package tuple

// KeyMap is a hash table keyed by Tuple, used by the hash-based operators
// (HashJoin's build side, HashAggregation's group table, and the
// set-algebra operators' multiplicity tables). It plays the role of the
// source's std::unordered_map<..., RegisterVectorHasher>: Hash buckets
// candidates, and a bucket is scanned with Equals to resolve collisions
// exactly, so a hash collision between two distinct keys never corrupts a
// lookup (spec §9 OQ4 hardens this further than the source needed to,
// since the source never guarded against cross-variant collisions either).
type KeyMap[V any] struct {
	buckets map[uint64][]kmEntry[V]
	order   []Tuple
	size    int
}

type kmEntry[V any] struct {
	key Tuple
	val V
}

// NewKeyMap creates an empty KeyMap.
func NewKeyMap[V any]() *KeyMap[V] {
	return &KeyMap[V]{buckets: make(map[uint64][]kmEntry[V])}
}

// Get returns the value stored under key, if any.
func (m *KeyMap[V]) Get(key Tuple) (V, bool) {
	bucket := m.buckets[uint64(key.Hash())]
	for _, e := range bucket {
		if e.key.Equals(key) {
			return e.val, true
		}
	}
	var zero V
	return zero, false
}

// Set stores val under key, overwriting any existing entry for that exact
// key — this is the primitive HashJoin's build phase uses to get its
// at-most-one-left-tuple-per-key overwrite semantics (spec §4.6).
func (m *KeyMap[V]) Set(key Tuple, val V) {
	h := uint64(key.Hash())
	bucket := m.buckets[h]
	for i, e := range bucket {
		if e.key.Equals(key) {
			bucket[i].val = val
			return
		}
	}
	m.buckets[h] = append(bucket, kmEntry[V]{key: key.Clone(), val: val})
	m.order = append(m.order, key.Clone())
	m.size++
}

// Keys returns every distinct key ever inserted, in insertion order.
func (m *KeyMap[V]) Keys() []Tuple {
	return m.order
}

// Len returns the number of live entries in the map.
func (m *KeyMap[V]) Len() int {
	return m.size
}
