package types

import (
	"fmt"

	"github.com/m-mizutani/goerr/v2"
)

var (
	ErrInvalidOption     = goerr.New("invalid option")
	ErrValidationFailed  = goerr.New("validation failed")
	ErrMissingCredential = goerr.New("missing credential")
	ErrUpstreamAPI       = goerr.New("upstream API error")
	ErrRegistry          = goerr.New("registry error")
)

// UpstreamError is a non-success response from GitHub or Cloudflare. Message
// is the upstream's own error message, passed through to the caller.
type UpstreamError struct {
	Service    string
	StatusCode int
	Message    string
}

func (x *UpstreamError) Error() string {
	return fmt.Sprintf("%s API returned %d: %s", x.Service, x.StatusCode, x.Message)
}

func (x *UpstreamError) Is(target error) bool {
	return target == ErrUpstreamAPI
}
