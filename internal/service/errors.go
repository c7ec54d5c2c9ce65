package service

import "errors"

var (
	ErrAccessDenied         = errors.New("access denied")
	ErrRecipientUnreachable = errors.New("recipient unreachable")
)
