package binder

import "errors"

var (
	ErrFailedToParsePath = errors.New("binder: failed to parse path parameters")
	// ErrBinderNotApplicable tells Wrap to skip a binder for the current request.
	ErrBinderNotApplicable = errors.New("binder: not applicable")
)
