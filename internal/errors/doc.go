// Package errors provides coded errors for the character generator.
//
// Every error that leaves a package boundary carries a Code. The CLI maps the
// code to a process exit status with ExitCode, so a malformed argument exits
// with 1 and an internal failure (a broken random source) exits with 2.
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.InvalidArgumentf("level must be between 1 and 20, got %d", lvl)
//
// Wrapping keeps the original code:
//
//	if _, err := roller.Roll(6); err != nil {
//	    return errors.Wrap(err, "failed to roll ability score")
//	}
//
// # Validation Errors
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRange("level", input.Level, 1, 20, vb)
//	errors.ValidateMin("count", input.Count, 1, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Exit Codes
//
//	os.Exit(errors.ExitCode(err))
package errors
