// Package common defines sentinel errors and small helpers shared by the
// credential tools. Callers should use errors.Is to match the errors.
package common

import "errors"

var (
	// ErrUsage marks a malformed command-line invocation.
	ErrUsage = errors.New("usage error")

	// ErrEmptyUsername is returned when the provisioner gets a blank username.
	ErrEmptyUsername = errors.New("username must not be empty")

	// ErrUnsupportedDialect is returned for store locations no driver can open.
	ErrUnsupportedDialect = errors.New("unsupported database dialect")
)
