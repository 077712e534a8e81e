package envfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

// annotationRe matches the body of a trailing "# (int)" or "# (url)" comment.
var annotationRe = regexp.MustCompile(`(?i)^\(\s*(int|url)\s*\)$`)

const maxLineSize = 1024 * 1024

// ParseFile opens path and parses it as a dotenv file.
//
// A missing file is reported as an error wrapping fs.ErrNotExist; whether that
// is fatal is up to the caller.
func ParseFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open env file: %w", err)
	}
	defer f.Close()

	file, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("read env file %s: %w", path, err)
	}
	file.Path = path
	return file, nil
}

// Parse reads dotenv content from r.
//
// Lines are processed according to these rules:
//   - Blank lines and lines starting with # are skipped.
//   - An optional leading "export " is ignored.
//   - Lines without an = sign, or whose key is not [A-Za-z0-9_]+, are
//     malformed and skipped. Their line numbers are kept in File.Skipped.
//   - Key and value are whitespace-trimmed; surrounding quotes are removed.
//   - A trailing "# (int)" or "# (url)" comment sets the entry's annotation.
func Parse(r io.Reader) (*File, error) {
	file := NewFile("")
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		entry, ok := parseAssignment(line)
		if !ok {
			file.Skipped = append(file.Skipped, lineNo)
			continue
		}
		entry.Line = lineNo
		file.add(entry)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return file, nil
}

// ParseAnnotation maps a trailing comment body to an Annotation. Comments
// that are not exactly "(int)" or "(url)" carry no semantics.
func ParseAnnotation(comment string) Annotation {
	m := annotationRe.FindStringSubmatch(strings.TrimSpace(comment))
	if m == nil {
		return NoAnnotation
	}
	switch strings.ToLower(m[1]) {
	case "int":
		return IntAnnotation
	case "url":
		return URLAnnotation
	}
	return NoAnnotation
}

func parseAssignment(line string) (Entry, bool) {
	if rest, ok := strings.CutPrefix(line, "export "); ok {
		line = strings.TrimSpace(rest)
	}

	key, rest, ok := strings.Cut(line, "=")
	if !ok {
		return Entry{}, false
	}
	key = strings.TrimSpace(key)
	if !ValidKey(key) {
		return Entry{}, false
	}

	value, comment := splitValue(strings.TrimSpace(rest))
	return Entry{
		Key:        key,
		Value:      value,
		Comment:    comment,
		Annotation: ParseAnnotation(comment),
	}, true
}

// splitValue separates a raw value from its trailing comment.
func splitValue(s string) (value, comment string) {
	if s == "" {
		return "", ""
	}

	if q := s[0]; q == '"' || q == '\'' {
		if v, end, ok := unquote(s, q); ok {
			tail := strings.TrimSpace(s[end+1:])
			if strings.HasPrefix(tail, "#") {
				comment = strings.TrimSpace(tail[1:])
			}
			return v, comment
		}
	}

	// In an unquoted value only a '#' at the start or after whitespace
	// opens a comment, so "abc#def" stays intact.
	for i := 0; i < len(s); i++ {
		if s[i] != '#' {
			continue
		}
		if i == 0 || s[i-1] == ' ' || s[i-1] == '\t' {
			return strings.TrimSpace(s[:i]), strings.TrimSpace(s[i+1:])
		}
	}
	return s, ""
}

// unquote reads the quoted value starting at s[0] and returns it with the
// index of the closing quote. Single-quoted values are literal. Inside
// double quotes \" and \\ are unescaped; any other backslash is kept.
func unquote(s string, q byte) (string, int, bool) {
	if q == '\'' {
		end := strings.IndexByte(s[1:], q)
		if end < 0 {
			return "", 0, false
		}
		return s[1 : end+1], end + 1, true
	}

	var b strings.Builder
	for i := 1; i < len(s); i++ {
		switch c := s[i]; {
		case c == '\\' && i+1 < len(s) && (s[i+1] == '"' || s[i+1] == '\\'):
			b.WriteByte(s[i+1])
			i++
		case c == '"':
			return b.String(), i, true
		default:
			b.WriteByte(c)
		}
	}
	return "", 0, false
}
