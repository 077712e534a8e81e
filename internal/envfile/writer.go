package envfile

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// AppendOptions controls how Append writes new entries.
type AppendOptions struct {
	// Header, when non-empty, is written as a comment line before the
	// appended entries. A leading "#" is added if missing.
	Header string
}

// valueEscaper escapes the characters that are special inside a
// double-quoted value.
var valueEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// FormatEntry renders a KEY=value line. Values that would not survive a
// round trip through Parse unquoted are wrapped in quotes: single quotes
// when the value has a double quote but no single quote, otherwise double
// quotes with backslash and double quote escaped.
func FormatEntry(key, value string) string {
	if !strings.ContainsAny(value, " \t#\"'$\\") {
		return key + "=" + value
	}
	if strings.Contains(value, `"`) && !strings.Contains(value, "'") {
		return key + "='" + value + "'"
	}
	return key + `="` + valueEscaper.Replace(value) + `"`
}

// Append adds one line per pair to the end of the file at path, in order.
// Existing content is never rewritten; a newline is inserted first when the
// file does not already end with one. The file is created with mode 0600 if
// it does not exist. With no pairs the file is left untouched.
func Append(path string, pairs []Pair, opts AppendOptions) error {
	if len(pairs) == 0 {
		return nil
	}

	needsNewline, err := missingTrailingNewline(path)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("open env file for append: %w", err)
	}

	w := bufio.NewWriter(f)
	if needsNewline {
		w.WriteString("\n")
	}
	if header := strings.TrimSpace(opts.Header); header != "" {
		if !strings.HasPrefix(header, "#") {
			header = "# " + header
		}
		w.WriteString(header + "\n")
	}
	for _, p := range pairs {
		w.WriteString(FormatEntry(p.Key, p.Value) + "\n")
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("append to %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

func missingTrailingNewline(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("open env file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return false, fmt.Errorf("stat env file: %w", err)
	}
	if info.Size() == 0 {
		return false, nil
	}

	last := make([]byte, 1)
	if _, err := f.ReadAt(last, info.Size()-1); err != nil {
		return false, fmt.Errorf("read env file: %w", err)
	}
	return last[0] != '\n', nil
}
