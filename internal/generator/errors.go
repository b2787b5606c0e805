package generator

import "fmt"

// ServiceError wraps any failure of the external generation call: auth,
// quota, network, or a malformed response. The batch layer never catches or
// retries these; they abort the run.
type ServiceError struct {
	Op  string
	Err error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("generation service: %s: %v", e.Op, e.Err)
}

func (e *ServiceError) Unwrap() error { return e.Err }
