package domain

import "errors"

// ErrAlreadySent is returned when a reminder for the same occurrence and
// event date has already been recorded.
var ErrAlreadySent = errors.New("reminder already sent for this occurrence")
