package review

import "docspell/internal/check"

// StagingSet collects accepted suggestions in acceptance order. A suggestion
// staged again keeps its first position.
type StagingSet struct {
	index map[check.Key]int
	items []check.Suggestion
}

func NewStagingSet() *StagingSet {
	return &StagingSet{index: make(map[check.Key]int)}
}

// Add stages s and reports whether it was new.
func (s *StagingSet) Add(sugg check.Suggestion) bool {
	k := sugg.Key()
	if _, ok := s.index[k]; ok {
		return false
	}
	s.index[k] = len(s.items)
	s.items = append(s.items, sugg)
	return true
}

func (s *StagingSet) Contains(sugg check.Suggestion) bool {
	_, ok := s.index[sugg.Key()]
	return ok
}

func (s *StagingSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// Items returns the staged suggestions in order. The slice is shared.
func (s *StagingSet) Items() []check.Suggestion {
	if s == nil {
		return nil
	}
	return s.items
}
