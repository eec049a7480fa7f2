package domain

import "errors"

// ErrEmptyName rejects workout items whose name is empty after trimming.
var ErrEmptyName = errors.New("name must not be empty")
