// Package cli implements the credential administration commands.
//
// Two commands share one flow: parse arguments, obtain a plaintext password
// (argument or masked prompt), hash it with Argon2id, then either print the
// digest (RunGenPassword) or insert a basic_login_user row and print the
// assigned id (RunAddUser).
//
// Each Run* function takes its arguments and Streams explicitly and returns
// an exit status, so cmd/ mains stay one line and tests drive the commands
// with in-memory buffers. Exit status is 0 on success and 1 on any usage,
// configuration, prompt or store error.
package cli
