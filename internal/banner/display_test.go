package banner

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

// capture redirects Out for the duration of fn and returns what was written.
func capture(t *testing.T, fn func()) string {
	t.Helper()

	old := Out
	defer func() { Out = old }()

	var buf bytes.Buffer
	Out = &buf
	fn()
	return buf.String()
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

// assertFramed checks that output starts and ends with a separator line.
func assertFramed(t *testing.T, output string) {
	t.Helper()
	l := lines(output)
	require.GreaterOrEqual(t, len(l), 3)
	want := strings.Repeat("═", sepWidth)
	assert.Equal(t, want, l[0])
	assert.Equal(t, want, l[len(l)-1])
}

func TestPrintLogo(t *testing.T) {
	output := capture(t, PrintLogo)

	assert.Contains(t, output, "|_| |_|")
	assert.Contains(t, output, Tagline)
	assert.True(t, strings.HasSuffix(output, "\n\n"))
}

func TestPrintInSync(t *testing.T) {
	output := capture(t, func() { PrintInSync(".env.example", 12) })

	assertFramed(t, output)
	assert.Contains(t, output, "All environment variables are in sync!")
	assert.Contains(t, output, "Template: .env.example (12 keys)")
}

func TestPrintSyncComplete(t *testing.T) {
	tests := []struct {
		name        string
		added       int
		missing     int
		backup      string
		contains    []string
		notContains []string
	}{
		{
			name:        "all added with backup",
			added:       2,
			missing:     2,
			backup:      ".env.bak",
			contains:    []string{"✓ Added 2 of 2 environment variable(s) to .env", "Backup: .env.bak"},
			notContains: []string{"Run sync again"},
		},
		{
			name:        "partial",
			added:       1,
			missing:     3,
			backup:      ".env.bak",
			contains:    []string{"⚠ Added 1 of 3", "Run sync again to fill the remaining keys"},
			notContains: []string{"✓"},
		},
		{
			name:        "new file without backup",
			added:       1,
			missing:     1,
			contains:    []string{"Added 1 of 1"},
			notContains: []string{"Backup:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := capture(t, func() { PrintSyncComplete(".env", tt.added, tt.missing, tt.backup) })

			assertFramed(t, output)
			for _, s := range tt.contains {
				assert.Contains(t, output, s)
			}
			for _, s := range tt.notContains {
				assert.NotContains(t, output, s)
			}
		})
	}
}

func TestPrintSyncCancelled(t *testing.T) {
	output := capture(t, func() { PrintSyncCancelled("no changes made") })

	assertFramed(t, output)
	assert.Contains(t, output, "Sync cancelled, no changes made")
}

func TestPrintAuditClean(t *testing.T) {
	output := capture(t, func() { PrintAuditClean(".env", 8) })

	assertFramed(t, output)
	assert.Contains(t, output, "No placeholder values detected!")
	assert.Contains(t, output, "Checked: 8 keys in .env")
}

func TestPrintAuditFindings(t *testing.T) {
	output := capture(t, func() { PrintAuditFindings(2) })

	assertFramed(t, output)
	assert.Contains(t, output, "Found 2 potential issue(s)")
}
