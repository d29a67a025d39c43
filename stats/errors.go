package stats

import "errors"

var ErrEmptyDataset = errors.New("empty dataset")
