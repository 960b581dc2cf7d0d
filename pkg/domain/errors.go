package domain

import "errors"

var ErrPromptNotFound = errors.New("prompt not found")
