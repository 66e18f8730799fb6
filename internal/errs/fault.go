package errs

import "fmt"

// Fault is a coded verifier error: a Code from the fixed space above, the
// phase the interpreter was executing in, and the underlying error. Grounded
// on kanso/internal/errors.CompilerError, minus the source-position fields —
// a proof checker has no source text to caret-underline, only a phase name
// and whatever detail the underlying error carries.
type Fault struct {
	Code  Code
	Phase string
	Err   error
}

func (f *Fault) Error() string {
	if f.Phase != "" {
		return fmt.Sprintf("[%s] %s: %v", f.Code, f.Phase, f.Err)
	}
	return fmt.Sprintf("[%s] %v", f.Code, f.Err)
}

func (f *Fault) Unwrap() error { return f.Err }

// Wrap attaches code and phase to err, or returns nil if err is nil.
func Wrap(code Code, phase string, err error) error {
	if err == nil {
		return nil
	}
	return &Fault{Code: code, Phase: phase, Err: err}
}
