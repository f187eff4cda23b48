package tilemap

// Unknown is the tile id of unobserved or unmapped cells.
const Unknown = -1

// Mapping is a bijection between the distinct values of a sample and the
// ids 0..Len()-1, plus the reserved pair unknown ↔ -1.
type Mapping[T comparable] struct {
	toID    map[T]int
	values  []T
	unknown T
}

// New scans grid in order and assigns ids to values as they first appear.
// Complexity: O(len(grid)).
func New[T comparable](grid []T, unknown T) *Mapping[T] {
	m := &Mapping[T]{
		toID:    make(map[T]int),
		unknown: unknown,
	}
	for _, v := range grid {
		if v == unknown {
			continue
		}
		if _, ok := m.toID[v]; ok {
			continue
		}
		m.toID[v] = len(m.values)
		m.values = append(m.values, v)
	}
	return m
}

// Len returns the number of distinct known values.
func (m *Mapping[T]) Len() int { return len(m.values) }

// Unknown returns the value used for id -1.
func (m *Mapping[T]) Unknown() T { return m.unknown }

// ID returns the id of v, or Unknown for the unknown value and for values
// outside the vocabulary.
func (m *Mapping[T]) ID(v T) int {
	if id, ok := m.toID[v]; ok {
		return id
	}
	return Unknown
}

// Value returns the value of id; ids outside 0..Len()-1 yield the unknown
// value.
func (m *Mapping[T]) Value(id int) T {
	if id < 0 || id >= len(m.values) {
		return m.unknown
	}
	return m.values[id]
}

// ToTileIDs maps every value of data to its id.
func (m *Mapping[T]) ToTileIDs(data []T) []int {
	out := make([]int, len(data))
	for i, v := range data {
		out[i] = m.ID(v)
	}
	return out
}

// ToBase maps every id of data back to its value.
func (m *Mapping[T]) ToBase(data []int) []T {
	out := make([]T, len(data))
	for i, id := range data {
		out[i] = m.Value(id)
	}
	return out
}
