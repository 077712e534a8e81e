// Package cli provides help text and usage formatting for the henvdall CLI.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

const helpTemplate = `henvdall - The Gatekeeper of Environment Variables

Keeps a local .env file in sync with the keys declared by .env.example.

USAGE
  henvdall <command> [flags]

COMMANDS
  sync                                   Prompt for keys missing from the env file and append them
  audit                                  Report values that still look like placeholders
  version                                Show version, commit, build date

SYNC FLAGS
  -e, --example <path>                   Template file (default: .env.example)
  -f, --env <path>                       Env file (default: .env)
  -b, --backup <path>                    Backup file (default: <env>.bak)
  -y, --yes                              Skip the confirmation prompt

AUDIT FLAGS
  -e, --example <path>                   Template file (default: .env.example)
  -f, --env <path>                       Env file (default: .env)
  --strict                               Exit with code 3 when placeholders are found

GLOBAL FLAGS
  --config <path>                        Additional config file (.toml, .yaml)
  -v, --verbose                          Show debug output
  --no-color                             Disable colored output
  --no-banner                            Do not print the logo
  -h, --help                             Show this help text

TEMPLATE ANNOTATIONS
  PORT=8080            # (int)           Value must be a base-10 integer
  API_URL=https://...  # (url)           Value must be an http:// or https:// URL

CONFIG FILES (lowest to highest precedence)
  ~/.config/henvdall/config.toml         Global settings
  ./.henvdall.toml                       Project settings, first match wins:
  ./.henvdall.yaml                         .toml, then .yaml, then .yml
  ./.henvdall.yml
  --config <path>                        Explicit file
  command-line flags

EXIT CODES
  0   Success              Sync finished (including partial or declined), audit ran
  1   Error                Unreadable template, failed backup, invalid arguments
  3   PlaceholdersFound    audit --strict found placeholder values

EXAMPLES
  # Fill in keys added to .env.example since the last pull
  henvdall sync

  # Sync non-default files without the confirmation prompt
  henvdall sync --example config/.env.sample --env config/.env --yes

  # Fail a CI step when example values are still present
  henvdall audit --strict
`

// SetCustomHelp shows the overview help text for cmd itself. Subcommands
// keep cobra's generated help so that "sync --help" lists sync's own flags.
func SetCustomHelp(cmd *cobra.Command) {
	defaultHelp := cmd.HelpFunc()
	cmd.SetHelpFunc(func(c *cobra.Command, args []string) {
		if c != cmd {
			defaultHelp(c, args)
			return
		}
		fmt.Fprint(c.OutOrStdout(), helpTemplate)
	})
}
