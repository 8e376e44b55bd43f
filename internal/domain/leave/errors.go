package leave

import "errors"

var (
	ErrNotFound          = errors.New("leave request not found")
	ErrInvalidStatus     = errors.New("status must be approved or rejected")
	ErrInvalidTransition = errors.New("leave request already decided")
	ErrInvalidDates      = errors.New("from_date must be on or before to_date")
)
