package cmd

// BSD sysexits codes reported to the shell.
const (
	exitUsage = 64
	exitData  = 65
)

// ExitError carries an exit code for main to report alongside the wrapped
// error's message.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string { return e.Err.Error() }

func (e *ExitError) Unwrap() error { return e.Err }

func usageError(err error) error {
	return &ExitError{Code: exitUsage, Err: err}
}

func dataError(err error) error {
	return &ExitError{Code: exitData, Err: err}
}
