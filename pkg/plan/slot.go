package plan

import "github.com/matzehuels/mealcycle/pkg/meal"

// Slot is one position of the extra region: either empty or holding a meal.
type Slot struct {
	m  meal.Meal
	ok bool
}

// Empty returns an unassigned slot.
func Empty() Slot { return Slot{} }

// Occupied returns a slot holding m.
func Occupied(m meal.Meal) Slot { return Slot{m: m, ok: true} }

// Get returns the slot's meal and whether the slot is occupied.
func (s Slot) Get() (meal.Meal, bool) { return s.m, s.ok }

// IsEmpty reports whether no meal has been assigned to s.
func (s Slot) IsEmpty() bool { return !s.ok }

// freeIndex finds the first empty slot at or after a region index.
// Entry j is j itself while slot j is empty, and otherwise points further
// right; entry len(region) is a sentinel meaning no slot is free.
type freeIndex []int

func newFreeIndex(n int) freeIndex {
	f := make(freeIndex, n+1)
	for j := range f {
		f[j] = j
	}
	return f
}

// next returns the first empty slot at or after from. Chains of occupied
// slots are compressed as they are walked, so a lookup is amortised
// constant time.
func (f freeIndex) next(from int) (int, bool) {
	root := from
	for f[root] != root {
		root = f[root]
	}
	for from != root {
		next := f[from]
		f[from] = root
		from = next
	}
	return root, root < len(f)-1
}

// take marks slot j occupied.
func (f freeIndex) take(j int) { f[j] = j + 1 }
