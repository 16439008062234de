package catalog

import "errors"

var ErrNotFound = errors.New("calculator not found")
