package catalog

import "errors"

var ErrSourceNotFound = errors.New("source not found")
