// Package sparse provides map-backed containers that store only
// values differing from a configurable default, trading lookup cost
// for memory on mostly-empty data.
package sparse

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// List is a sparse slice: indices holding the default value occupy no
// storage. Setting past the end grows the list.
type List[T comparable] struct {
	entries      map[int]T
	size         int
	defaultValue T
}

// NewList returns a list of the given logical size where every index
// initially holds defaultValue.
func NewList[T comparable](size int, defaultValue T) *List[T] {
	return &List[T]{entries: map[int]T{}, size: size, defaultValue: defaultValue}
}

// Get returns the value at index. It panics when index is out of
// range; use Len to guard.
func (l *List[T]) Get(index int) T {
	if index < 0 || index >= l.size {
		panic(fmt.Sprintf("sparse: list index %d out of range [0,%d)", index, l.size))
	}
	if v, ok := l.entries[index]; ok {
		return v
	}
	return l.defaultValue
}

// Set stores value at index, growing the list when index is past the
// end. Storing the default value releases the entry.
func (l *List[T]) Set(index int, value T) {
	if index < 0 {
		panic(fmt.Sprintf("sparse: negative list index %d", index))
	}
	if index >= l.size {
		l.size = index + 1
	}
	if value == l.defaultValue {
		delete(l.entries, index)
	} else {
		l.entries[index] = value
	}
}

// FindByValue returns the first index holding value, or -1. Searching
// for the default value finds the first index with no stored entry.
func (l *List[T]) FindByValue(value T) int {
	if value == l.defaultValue {
		for i := 0; i < l.size; i++ {
			if _, stored := l.entries[i]; !stored {
				return i
			}
		}
		return -1
	}
	for i := 0; i < l.size; i++ {
		if v, stored := l.entries[i]; stored && v == value {
			return i
		}
	}
	return -1
}

// FindFirstBy returns the first index whose value satisfies pred, or -1.
func (l *List[T]) FindFirstBy(pred func(T) bool) int {
	for i := 0; i < l.size; i++ {
		if pred(l.Get(i)) {
			return i
		}
	}
	return -1
}

// Len returns the logical size.
func (l *List[T]) Len() int { return l.size }

// Stored returns the number of non-default entries.
func (l *List[T]) Stored() int { return len(l.entries) }

// Clear removes all entries; the logical size is kept.
func (l *List[T]) Clear() { l.entries = map[int]T{} }

// String renders a summary with up to the first ten values.
func (l *List[T]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "SparseList[size=%d, stored=%d]: [", l.size, len(l.entries))
	shown := l.size
	if shown > 10 {
		shown = 10
	}
	for i := 0; i < shown; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", l.Get(i))
	}
	if l.size > 10 {
		sb.WriteString(", ...")
	}
	sb.WriteString("]")
	return sb.String()
}

type listFile[T comparable] struct {
	Size    int            `json:"size"`
	Default T              `json:"default"`
	Entries []listEntry[T] `json:"entries"`
}

type listEntry[T comparable] struct {
	Index int `json:"index"`
	Value T   `json:"value"`
}

// Save writes the list as JSON, entries in index order.
func (l *List[T]) Save(path string) error {
	file := listFile[T]{Size: l.size, Default: l.defaultValue}
	indices := make([]int, 0, len(l.entries))
	for i := range l.entries {
		indices = append(indices, i)
	}
	sort.Ints(indices)
	for _, i := range indices {
		file.Entries = append(file.Entries, listEntry[T]{Index: i, Value: l.entries[i]})
	}
	b, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode sparse list")
	}
	return errors.Wrapf(os.WriteFile(path, b, 0o644), "save sparse list to %s", path)
}

// LoadList reads a list previously written by Save.
func LoadList[T comparable](path string) (*List[T], error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "load sparse list from %s", path)
	}
	var file listFile[T]
	if err := json.Unmarshal(b, &file); err != nil {
		return nil, errors.Wrapf(err, "decode sparse list from %s", path)
	}
	list := NewList(file.Size, file.Default)
	for _, e := range file.Entries {
		if e.Index < 0 {
			return nil, errors.Errorf("decode sparse list from %s: negative index %d", path, e.Index)
		}
		list.Set(e.Index, e.Value)
	}
	return list, nil
}
