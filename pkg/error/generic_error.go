package error

// GenericError is implemented by every typed error that knows how it should be
// rendered to an HTTP client.
type GenericError interface {
	Error() string
	ErrCode() string
	StatusCode() int
}
