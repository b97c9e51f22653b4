package errors

import "errors"

// ErrTransientStore marks an underlying persistence failure. The services do
// not retry internally; retries, if any, are the caller's responsibility.
var ErrTransientStore = errors.New("transient store failure")
