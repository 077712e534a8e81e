// Package exitcode defines named exit codes for the henvdall CLI.
//
// Each code maps a specific termination condition to a numeric value
// recognized by shell scripts and CI pipelines.
package exitcode

const (
	Success           = 0 // Sync finished (fully, partially, or nothing to do); audit ran
	Error             = 1 // Unreadable template, failed backup, bad flags
	PlaceholdersFound = 3 // audit --strict found placeholder values
)

// Name returns the human-readable name for the given exit code.
// Unknown codes return "unknown".
func Name(code int) string {
	switch code {
	case Success:
		return "Success"
	case Error:
		return "Error"
	case PlaceholdersFound:
		return "PlaceholdersFound"
	default:
		return "unknown"
	}
}

// ExitError carries an exit code through cobra's error return.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return Name(e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}
