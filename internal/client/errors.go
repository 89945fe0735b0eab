package client

import "errors"

var (
	// ErrNoSession is returned when an authenticated command runs before any
	// login or register stored a token locally.
	ErrNoSession = errors.New("no stored session, run `login` first")

	// ErrUnauthorized is returned when the server rejects the stored token.
	ErrUnauthorized = errors.New("server rejected the stored token, run `login` again")

	// ErrUnknownCommand is returned when the first argument names no command.
	ErrUnknownCommand = errors.New("unknown command")
)
