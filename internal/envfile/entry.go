// Package envfile reads, appends to, and backs up dotenv-style KEY=VALUE files.
//
// A File is parsed fresh from disk on every command invocation and is never
// mutated in place: writes go straight to the underlying file through Append,
// and any later read parses it again.
package envfile

import "strings"

// Annotation is the value-shape constraint declared by a trailing
// "# (int)" or "# (url)" comment on a template entry.
type Annotation int

const (
	NoAnnotation Annotation = iota
	IntAnnotation
	URLAnnotation
)

// String returns the annotation name as written inside the parentheses.
func (a Annotation) String() string {
	switch a {
	case IntAnnotation:
		return "int"
	case URLAnnotation:
		return "url"
	default:
		return ""
	}
}

// Entry is a single KEY=value assignment.
type Entry struct {
	Key        string
	Value      string
	Annotation Annotation
	Comment    string // trailing comment text without the leading '#'
	Line       int    // 1-based line of the last occurrence
}

// Pair is a key/value accepted for appending.
type Pair struct {
	Key   string
	Value string
}

// File is an ordered set of entries.
//
// Duplicate keys keep the position of their first occurrence but take the
// value and annotation of their last one.
type File struct {
	Path    string
	Skipped []int // line numbers of malformed lines
	entries []Entry
	index   map[string]int
}

// NewFile returns an empty File for path. A missing target is represented
// this way.
func NewFile(path string) *File {
	return &File{Path: path, index: make(map[string]int)}
}

func (f *File) add(e Entry) {
	if i, ok := f.index[e.Key]; ok {
		f.entries[i] = e
		return
	}
	f.index[e.Key] = len(f.entries)
	f.entries = append(f.entries, e)
}

// Entries returns the entries in file order.
func (f *File) Entries() []Entry {
	out := make([]Entry, len(f.entries))
	copy(out, f.entries)
	return out
}

// Keys returns the keys in file order.
func (f *File) Keys() []string {
	keys := make([]string, len(f.entries))
	for i, e := range f.entries {
		keys[i] = e.Key
	}
	return keys
}

// Has reports whether key appears anywhere in the file.
func (f *File) Has(key string) bool {
	_, ok := f.index[key]
	return ok
}

// Get returns the entry for key.
func (f *File) Get(key string) (Entry, bool) {
	i, ok := f.index[key]
	if !ok {
		return Entry{}, false
	}
	return f.entries[i], true
}

// Len returns the number of distinct keys.
func (f *File) Len() int {
	return len(f.entries)
}

// ValidKey reports whether key is a non-empty run of letters, digits and
// underscores.
func ValidKey(key string) bool {
	if key == "" {
		return false
	}
	return strings.IndexFunc(key, func(r rune) bool {
		return !(r == '_' || (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'))
	}) < 0
}
