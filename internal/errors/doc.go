// Package apperrors defines the structured error types shared by bigcalc's
// outer layers and the mapping from those errors to process exit codes.
//
// Error Wrapping Guidelines:
// Errors are wrapped with fmt.Errorf and %w. Every type carrying a cause
// implements Unwrap so errors.Is and errors.As see through it, which lets
// ExitCodeFor classify arithmetic failures from the bigint package.
package apperrors
