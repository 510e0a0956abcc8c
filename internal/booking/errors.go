package booking

// RequestError is the one error kind this client produces: the backend
// answered with a non-2xx status. Message carries the backend's "detail"
// text when the response body had one, otherwise a fixed per-operation
// fallback. Transport failures pass through untouched.
type RequestError struct {
	Op         string
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	return e.Message
}
