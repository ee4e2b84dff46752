package traverse

// VisitedSet records items in discovery order and rejects repeats.
type VisitedSet struct {
	index map[CheckItem]int
	order []CheckItem
}

func NewVisitedSet(capacity int) *VisitedSet {
	return &VisitedSet{
		index: make(map[CheckItem]int, capacity),
		order: make([]CheckItem, 0, capacity),
	}
}

// Insert adds item and reports whether it was not present before.
func (v *VisitedSet) Insert(item CheckItem) bool {
	if _, ok := v.index[item]; ok {
		return false
	}
	v.index[item] = len(v.order)
	v.order = append(v.order, item)
	return true
}

func (v *VisitedSet) Contains(item CheckItem) bool {
	_, ok := v.index[item]
	return ok
}

// Index returns the discovery position of item.
func (v *VisitedSet) Index(item CheckItem) (int, bool) {
	i, ok := v.index[item]
	return i, ok
}

func (v *VisitedSet) Len() int { return len(v.order) }

// Items returns the items in discovery order. Do not modify the result.
func (v *VisitedSet) Items() []CheckItem { return v.order }
