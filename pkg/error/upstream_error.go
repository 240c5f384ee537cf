package error

import "net/http"

// UpstreamError is raised by the plain proxy routes when the mapping provider
// cannot be reached or answers with a failure. It keeps the generic 500 status.
type UpstreamError string

func (err UpstreamError) Error() string {
	return string(err)
}

func (err UpstreamError) ErrCode() string {
	return "UPSTREAM_ERROR"
}

func (err UpstreamError) StatusCode() int {
	return http.StatusInternalServerError
}
