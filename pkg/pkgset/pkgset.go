// Package pkgset holds the canonical representation of a set of package
// names and the pure set operations the reconciliation core is built on.
//
// A Set is always sorted in byte order and free of duplicates. Names are
// opaque: equality is exact string equality, with no case folding or
// whitespace trimming (trimming happens when lists are read).
package pkgset

import (
	"sort"
	"strings"
)

// Set is a sorted, duplicate-free list of package names.
// The zero value is an empty set.
type Set struct {
	names []string
}

// Normalize sorts names and collapses exact duplicates. Empty strings are
// kept; filtering them is the reader's job.
func Normalize(names []string) Set {
	if len(names) == 0 {
		return Set{}
	}

	sorted := make([]string, len(names))
	copy(sorted, names)
	sort.Strings(sorted)

	out := sorted[:1]
	for _, name := range sorted[1:] {
		if name != out[len(out)-1] {
			out = append(out, name)
		}
	}
	return Set{names: out}
}

// Of is shorthand for Normalize over its arguments.
func Of(names ...string) Set {
	return Normalize(names)
}

// Missing returns the members of desired not present in installed, in
// desired's order. The result is always a subset of desired.
func Missing(desired, installed Set) Set {
	if desired.Len() == 0 {
		return Set{}
	}

	var out []string
	for _, name := range desired.names {
		if !installed.Contains(name) {
			out = append(out, name)
		}
	}
	return Set{names: out}
}

// Without returns s minus excluded. It is Missing read the other way round
// and exists so the listing path reads naturally.
func (s Set) Without(excluded Set) Set {
	return Missing(s, excluded)
}

// Contains reports whether name is a member of s.
func (s Set) Contains(name string) bool {
	i := sort.SearchStrings(s.names, name)
	return i < len(s.names) && s.names[i] == name
}

// ContainsAll reports whether every member of other is in s.
func (s Set) ContainsAll(other Set) bool {
	return Missing(other, s).Len() == 0
}

// Len returns the number of names in s.
func (s Set) Len() int {
	return len(s.names)
}

// IsEmpty reports whether s has no members.
func (s Set) IsEmpty() bool {
	return len(s.names) == 0
}

// Equal reports whether s and other contain the same names.
func (s Set) Equal(other Set) bool {
	if len(s.names) != len(other.names) {
		return false
	}
	for i := range s.names {
		if s.names[i] != other.names[i] {
			return false
		}
	}
	return true
}

// Names returns a copy of the members in canonical order.
func (s Set) Names() []string {
	if len(s.names) == 0 {
		return []string{}
	}
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Join returns the members joined by sep.
func (s Set) Join(sep string) string {
	return strings.Join(s.names, sep)
}

// String returns the members as newline-delimited text.
func (s Set) String() string {
	return s.Join("\n")
}
