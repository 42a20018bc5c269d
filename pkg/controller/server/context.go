package server

import (
	"context"

	"github.com/m-mizutani/sitecloner/pkg/utils/logging"
)

// DetachContext returns a context that is not cancelled with the request but
// keeps its logger, request ID and time function. A clone started by a client
// runs to the end even if the client goes away, so no half-provisioned site is
// left unregistered.
func DetachContext(ctx context.Context) context.Context {
	return logging.InheritContextValues(context.Background(), ctx)
}
