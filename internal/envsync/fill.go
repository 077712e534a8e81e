package envsync

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/CodexForgeBR/henvdall/internal/envfile"
	"github.com/CodexForgeBR/henvdall/internal/validate"
)

var (
	keyColor   = color.New(color.FgCyan).SprintFunc()
	annotColor = color.New(color.FgMagenta).SprintFunc()
	dimColor   = color.New(color.Faint).SprintFunc()
	rejectMark = color.New(color.FgRed).Sprint("✗")
)

// FillResult holds the values accepted by Fill.
type FillResult struct {
	Accepted []envfile.Pair

	// Interrupted is set when input ended or the context was cancelled
	// before every missing key had a value. Cause holds the reason.
	Interrupted bool
	Cause       error
}

// Fill asks for a value for each missing entry, in order. A value is
// accepted only once it passes validation for the entry's annotation; until
// then the same key is asked again. End of input or cancellation stops the
// loop and returns what was accepted so far.
func Fill(ctx context.Context, p Prompter, missing []envfile.Entry) FillResult {
	var res FillResult

	for _, entry := range missing {
		value, err := promptValue(ctx, p, entry)
		if err != nil {
			res.Interrupted = true
			res.Cause = err
			return res
		}
		res.Accepted = append(res.Accepted, envfile.Pair{Key: entry.Key, Value: value})
	}
	return res
}

func promptValue(ctx context.Context, p Prompter, entry envfile.Entry) (string, error) {
	prompt := promptLabel(entry)
	for {
		value, err := p.ReadLine(ctx, prompt)
		if err != nil {
			return "", err
		}

		if err := validate.Value(entry.Annotation, value); err != nil {
			p.Notify(fmt.Sprintf("%s %v", rejectMark, err))
			continue
		}
		return value, nil
	}
}

func promptLabel(entry envfile.Entry) string {
	label := keyColor(entry.Key)
	if entry.Annotation != envfile.NoAnnotation {
		label += " " + annotColor("("+entry.Annotation.String()+")")
	}
	if entry.Value != "" {
		label += " " + dimColor("(example: "+entry.Value+")")
	}
	return label + ": "
}

// isInterruption reports whether err ended input the way a user would:
// end of input or a cancelled context.
func isInterruption(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
