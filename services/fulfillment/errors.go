package fulfillment

import "fmt"

// SignatureVerificationError marks a webhook whose signature did not
// check out. The sender gets a 400 so its retry logic redelivers; the
// detail is only ever logged server-side.
type SignatureVerificationError struct {
	Err error
}

func (e *SignatureVerificationError) Error() string {
	return fmt.Sprintf("webhook signature verification failed: %v", e.Err)
}

func (e *SignatureVerificationError) Unwrap() error {
	return e.Err
}
