package invest

import "fmt"

// ResponseFormatError means the investment-analysis reply carried no
// usable fenced JSON block. Unlike the estimate parser, this pipeline
// cannot degrade: without suggestedARV the deal math has nothing to run
// on, so the failure propagates to the caller and is user-visible.
type ResponseFormatError struct {
	Reason string
}

func (e *ResponseFormatError) Error() string {
	return fmt.Sprintf("investment analysis response format invalid: %s", e.Reason)
}
