package source

import "errors"

var ErrUnsupportedQuery = errors.New("query not supported by this source")
