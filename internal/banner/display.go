// Package banner provides the logo and the colored summary banners shown at
// the end of sync and audit runs.
package banner

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Out is where banners are written.
var Out io.Writer = os.Stdout

var (
	headerColor  = color.New(color.FgCyan, color.Bold).SprintFunc()
	successColor = color.New(color.FgGreen, color.Bold).SprintFunc()
	warnColor    = color.New(color.FgYellow, color.Bold).SprintFunc()
)

const logo = `
  _                          _       _ _
 | |__   ___ _ ____   ____ _| | __ _| | |
 | '_ \ / _ \ '_ \ \ / / _' | |/ _' | | |
 | | | |  __/ | | \ V / (_| | | (_| | | |
 |_| |_|\___|_| |_|\_/ \__,_|_|\__,_|_|_|
`

// Tagline is printed under the logo.
const Tagline = "The Gatekeeper of Environment Variables"

const sepWidth = 51

func sep(paint func(a ...interface{}) string) string {
	return paint(strings.Repeat("═", sepWidth))
}

// PrintLogo displays the logo and tagline.
func PrintLogo() {
	fmt.Fprint(Out, headerColor(logo))
	fmt.Fprintf(Out, "  %s\n\n", Tagline)
}

// PrintInSync displays the banner for a target that already has every
// template key.
//
// Example output:
//
//	═══════════════════════════════════════════════════
//	  ✓ All environment variables are in sync!
//	  Template: .env.example (12 keys)
//	═══════════════════════════════════════════════════
func PrintInSync(template string, keys int) {
	s := sep(successColor)
	fmt.Fprintln(Out, s)
	fmt.Fprintln(Out, successColor("  ✓ All environment variables are in sync!"))
	fmt.Fprintf(Out, "  Template: %s (%d keys)\n", template, keys)
	fmt.Fprintln(Out, s)
}

// PrintSyncComplete displays the banner after values were appended.
//
// Example output:
//
//	═══════════════════════════════════════════════════
//	  ✓ Added 2 of 3 environment variable(s) to .env
//	  Backup: .env.bak
//	═══════════════════════════════════════════════════
func PrintSyncComplete(target string, added, missing int, backupPath string) {
	paint := successColor
	mark := "✓"
	if added < missing {
		paint = warnColor
		mark = "⚠"
	}
	s := sep(paint)
	fmt.Fprintln(Out, s)
	fmt.Fprintln(Out, paint(fmt.Sprintf("  %s Added %d of %d environment variable(s) to %s", mark, added, missing, target)))
	if backupPath != "" {
		fmt.Fprintf(Out, "  Backup: %s\n", backupPath)
	}
	if added < missing {
		fmt.Fprintln(Out, "  Run sync again to fill the remaining keys")
	}
	fmt.Fprintln(Out, s)
}

// PrintSyncCancelled displays the banner when nothing was written.
func PrintSyncCancelled(reason string) {
	s := sep(warnColor)
	fmt.Fprintln(Out, s)
	fmt.Fprintln(Out, warnColor("  ⚠ Sync cancelled, "+reason))
	fmt.Fprintln(Out, s)
}

// PrintAuditClean displays the banner for an audit with no findings.
//
// Example output:
//
//	═══════════════════════════════════════════════════
//	  ✓ No placeholder values detected!
//	  Checked: 8 keys in .env
//	═══════════════════════════════════════════════════
func PrintAuditClean(target string, checked int) {
	s := sep(successColor)
	fmt.Fprintln(Out, s)
	fmt.Fprintln(Out, successColor("  ✓ No placeholder values detected!"))
	fmt.Fprintf(Out, "  Checked: %d keys in %s\n", checked, target)
	fmt.Fprintln(Out, s)
}

// PrintAuditFindings displays the banner heading a findings table.
func PrintAuditFindings(count int) {
	s := sep(warnColor)
	fmt.Fprintln(Out, s)
	fmt.Fprintln(Out, warnColor(fmt.Sprintf("  ⚠ Found %d potential issue(s)", count)))
	fmt.Fprintln(Out, s)
}
