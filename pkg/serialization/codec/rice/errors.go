package rice

import "errors"

// ErrInvalidParameter is returned when a bit count is out of range for the
// symbol width in use, either the codec's k or a mask width.
var ErrInvalidParameter = errors.New("rice: invalid parameter")
