package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/CodexForgeBR/henvdall/internal/audit"
	"github.com/CodexForgeBR/henvdall/internal/banner"
	"github.com/CodexForgeBR/henvdall/internal/cli"
	"github.com/CodexForgeBR/henvdall/internal/config"
	"github.com/CodexForgeBR/henvdall/internal/envsync"
	"github.com/CodexForgeBR/henvdall/internal/exitcode"
	"github.com/CodexForgeBR/henvdall/internal/logging"
	"github.com/CodexForgeBR/henvdall/internal/render"
)

func newSyncCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Prompt for keys missing from the env file and append them",
		Long: "Compares the template with the env file, asks for a value for every missing key " +
			"(validating (int) and (url) annotations), backs the env file up, and appends the new values.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			finalCfg, err := loadConfig(cmd, cfg)
			if err != nil {
				return err
			}
			return runSync(cmd.Context(), finalCfg, os.Stdin, os.Stdout)
		},
	}
	cli.BindSyncFlags(cmd, cfg)
	return cmd
}

func newAuditCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Report values that still look like placeholders",
		Long: "Scans the env file for values that were copied unchanged from the template " +
			"or look like placeholders such as \"changeme\".",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			finalCfg, err := loadConfig(cmd, cfg)
			if err != nil {
				return err
			}
			return runAudit(finalCfg, os.Stdout)
		},
	}
	cli.BindAuditFlags(cmd, cfg)
	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "henvdall version %s\n", versionString())
		},
	}
}

func runSync(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer) error {
	fancy := render.IsTerminal(out)
	if fancy && !cfg.NoBanner {
		banner.PrintLogo()
	}
	logging.Section(fmt.Sprintf("Sync %s -> %s", cfg.ExampleFile, cfg.EnvFile))

	syncer := &envsync.Syncer{
		TemplatePath: cfg.ExampleFile,
		TargetPath:   cfg.EnvFile,
		BackupPath:   cfg.BackupFile,
		Prompter:     envsync.NewLinePrompter(in, out),
		AssumeYes:    cfg.AssumeYes,
		Header:       cfg.AppendHeader,
		FancyTables:  fancy,
	}

	res, err := syncer.Run(ctx)
	if err != nil {
		return err
	}

	switch {
	case res.InSync:
		banner.PrintInSync(cfg.ExampleFile, res.TemplateKeys)
	case res.Declined:
		banner.PrintSyncCancelled("no changes made")
	case len(res.Accepted) == 0:
		banner.PrintSyncCancelled("input ended before any value was accepted")
	default:
		if res.Interrupted {
			logging.Warn(fmt.Sprintf("Input ended early; %d key(s) still missing", len(res.Missing)-len(res.Accepted)))
		}
		banner.PrintSyncComplete(cfg.EnvFile, len(res.Accepted), len(res.Missing), res.BackupPath)
	}
	return nil
}

func runAudit(cfg *config.Config, out io.Writer) error {
	fancy := render.IsTerminal(out)
	if fancy && !cfg.NoBanner {
		banner.PrintLogo()
	}
	logging.Section(fmt.Sprintf("Audit %s", cfg.EnvFile))

	report, err := audit.RunFiles(cfg.ExampleFile, cfg.EnvFile, audit.Options{ExtraPlaceholders: cfg.Placeholders})
	if err != nil {
		return err
	}

	if report.Checked == 0 {
		logging.Warn(fmt.Sprintf("%s has no entries", cfg.EnvFile))
		return nil
	}
	if report.Clean() {
		banner.PrintAuditClean(cfg.EnvFile, report.Checked)
		return nil
	}

	banner.PrintAuditFindings(len(report.Findings))
	rows := make([][]string, 0, len(report.Findings))
	for _, f := range report.Findings {
		value := f.Value
		if value == "" {
			value = "(empty)"
		}
		rows = append(rows, []string{f.Key, value, f.Reason})
	}
	fmt.Fprintln(out, render.Table("Placeholder Values Detected", []string{"Key", "Current Value", "Issue"}, rows, fancy))
	logging.Info("Update these values before running your application.")

	if cfg.Strict {
		return &exitcode.ExitError{Code: exitcode.PlaceholdersFound}
	}
	return nil
}
