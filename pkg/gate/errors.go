package gate

import "errors"

var (
	ErrNilContent = errors.New("gate: protected content is nil")
)
