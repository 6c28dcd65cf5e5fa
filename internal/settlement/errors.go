package settlement

import "errors"

var (
	ErrAlreadySettled = errors.New("session already settled")
	ErrInvalidInput   = errors.New("session id, task id and outcome are required")
)
