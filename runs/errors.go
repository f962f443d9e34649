package runs

import "errors"

var ErrInvalidUTF8 = errors.New("source is not valid utf-8")
