package envsync

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/CodexForgeBR/henvdall/internal/envfile"
	"github.com/CodexForgeBR/henvdall/internal/logging"
	"github.com/CodexForgeBR/henvdall/internal/render"
)

var (
	// ErrTemplateNotFound is returned when the template file does not exist.
	ErrTemplateNotFound = errors.New("template file not found")

	// ErrBackupFailed is returned when the target could not be backed up.
	// Nothing is appended in that case.
	ErrBackupFailed = errors.New("backup failed")
)

// Syncer appends values for keys that the template declares but the target
// lacks. It never rewrites existing lines in the target.
type Syncer struct {
	TemplatePath string
	TargetPath   string
	BackupPath   string // defaults to TargetPath + ".bak"
	Prompter     Prompter

	// AssumeYes skips the confirmation prompt.
	AssumeYes bool

	// Header is written as a comment line above appended entries.
	Header string

	// FancyTables selects box-drawing characters for the missing-keys table.
	FancyTables bool
}

// Result summarizes one sync run.
type Result struct {
	TemplateKeys int
	Missing      []envfile.Entry
	Accepted     []envfile.Pair
	BackupPath   string // set only when a backup was written
	InSync       bool
	Declined     bool
	Interrupted  bool
}

// Run performs the sync. Template and target are parsed fresh; a missing
// target is treated as empty. The target is backed up and appended to only
// when at least one value was accepted, and only after every value has been
// validated.
func (s *Syncer) Run(ctx context.Context) (*Result, error) {
	template, err := envfile.ParseFile(s.TemplatePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, s.TemplatePath)
		}
		return nil, fmt.Errorf("parse template: %w", err)
	}
	reportSkipped(template)

	target, err := envfile.ParseFile(s.TargetPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		logging.Debug(fmt.Sprintf("%s does not exist yet; treating it as empty", s.TargetPath))
		target = envfile.NewFile(s.TargetPath)
	case err != nil:
		return nil, fmt.Errorf("parse target: %w", err)
	default:
		reportSkipped(target)
	}

	res := &Result{TemplateKeys: template.Len(), Missing: ComputeMissing(template, target)}
	if len(res.Missing) == 0 {
		res.InSync = true
		return res, nil
	}

	s.Prompter.Notify(s.missingTable(res.Missing))

	if !s.AssumeYes {
		ok, err := s.confirm(ctx)
		if err != nil {
			res.Interrupted = true
			return res, nil
		}
		if !ok {
			res.Declined = true
			return res, nil
		}
	}

	fill := Fill(ctx, s.Prompter, res.Missing)
	res.Accepted = fill.Accepted
	res.Interrupted = fill.Interrupted
	if fill.Interrupted && !isInterruption(fill.Cause) {
		logging.Warn(fmt.Sprintf("Input stopped: %v", fill.Cause))
	}

	if len(res.Accepted) == 0 {
		return res, nil
	}

	backupPath := s.BackupPath
	if backupPath == "" {
		backupPath = envfile.BackupPath(s.TargetPath)
	}
	backedUp, err := envfile.Backup(s.TargetPath, backupPath)
	if err != nil {
		return res, fmt.Errorf("%w: %w", ErrBackupFailed, err)
	}
	if backedUp {
		res.BackupPath = backupPath
		logging.Info(fmt.Sprintf("Created backup at %s", backupPath))
	}

	if err := envfile.Append(s.TargetPath, res.Accepted, envfile.AppendOptions{Header: s.Header}); err != nil {
		if backedUp {
			return res, fmt.Errorf("%w (original content kept in %s)", err, backupPath)
		}
		return res, err
	}
	return res, nil
}

func (s *Syncer) confirm(ctx context.Context) (bool, error) {
	for {
		answer, err := s.Prompter.ReadLine(ctx, "Proceed with sync? [Y/n]: ")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "", "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		s.Prompter.Notify("Please answer y or n.")
	}
}

func (s *Syncer) missingTable(missing []envfile.Entry) string {
	rows := make([][]string, 0, len(missing))
	for _, e := range missing {
		validation := "-"
		if e.Annotation != envfile.NoAnnotation {
			validation = "(" + e.Annotation.String() + ")"
		}
		rows = append(rows, []string{e.Key, e.Value, validation})
	}
	return render.Table("Missing Environment Variables", []string{"Key", "Example Value", "Validation"}, rows, s.FancyTables)
}

func reportSkipped(f *envfile.File) {
	for _, line := range f.Skipped {
		logging.Debug(fmt.Sprintf("%s:%d: skipping malformed line", f.Path, line))
	}
}
