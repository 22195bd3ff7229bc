package async

import "errors"

var ErrNilFunc = errors.New("async: nil function")
