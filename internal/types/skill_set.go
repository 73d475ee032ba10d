package types

import "sort"

// SkillSet is a canonicalized, deduplicated, sorted set of skill names.
// The sorted representation keeps JSON output and set operations deterministic.
type SkillSet []string

// NewSkillSet builds a SkillSet from raw items, deduplicating and sorting.
// Empty strings are dropped.
func NewSkillSet(items []string) SkillSet {
	seen := make(map[string]bool, len(items))
	set := make(SkillSet, 0, len(items))
	for _, item := range items {
		if item == "" || seen[item] {
			continue
		}
		seen[item] = true
		set = append(set, item)
	}
	sort.Strings(set)
	return set
}

// Contains reports whether the set includes the given skill.
func (s SkillSet) Contains(skill string) bool {
	for _, item := range s {
		if item == skill {
			return true
		}
	}
	return false
}

// Intersect returns the skills present in both sets.
func (s SkillSet) Intersect(other SkillSet) SkillSet {
	out := make([]string, 0, len(s))
	for _, item := range s {
		if other.Contains(item) {
			out = append(out, item)
		}
	}
	return NewSkillSet(out)
}

// Subtract returns the skills present in s but not in other.
func (s SkillSet) Subtract(other SkillSet) SkillSet {
	out := make([]string, 0, len(s))
	for _, item := range s {
		if !other.Contains(item) {
			out = append(out, item)
		}
	}
	return NewSkillSet(out)
}
