package identification

import "errors"

// ErrInvalidConfig indicates the identification configuration is malformed:
// an empty or badly formed scheme or authority, a locator entry naming an
// unknown model or group, or a configuration file that cannot be read.
var ErrInvalidConfig = errors.New("invalid identification configuration")
