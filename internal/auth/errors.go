package auth

import "errors"

// Rejection reasons produced by codecs and the guard. All are terminal for
// the request that triggered them.
var (
	ErrMissingCredential     = errors.New("auth: missing credential")
	ErrInvalidCredential     = errors.New("auth: invalid credential")
	ErrInsufficientPrivilege = errors.New("auth: insufficient privilege")
)
