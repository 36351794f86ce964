package errors

// Code represents an error code
type Code string

// Error codes
const (
	CodeOK              Code = "OK"
	CodeCanceled        Code = "CANCELED"
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeNotFound        Code = "NOT_FOUND"
	CodeInternal        Code = "INTERNAL"
)

// Process exit codes used by the chargen binary
const (
	ExitOK       = 0
	ExitUsage    = 1
	ExitInternal = 2
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// ExitCode returns the process exit code for the code.
// Anything the user can fix by changing the command line exits with ExitUsage.
func (c Code) ExitCode() int {
	switch c {
	case CodeOK:
		return ExitOK
	case CodeInvalidArgument, CodeNotFound:
		return ExitUsage
	case CodeCanceled, CodeInternal:
		return ExitInternal
	default:
		return ExitInternal
	}
}
