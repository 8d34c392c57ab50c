package service

// BusinessError marks a business-rule violation (e.g. unknown customer) so
// the HTTP boundary can distinguish it from validation and transport
// failures. The message is meant for the caller.
type BusinessError struct {
	Msg string
}

func (e *BusinessError) Error() string {
	return e.Msg
}
