package utils

type ResponseData struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Results any    `json:"results,omitempty"`
}

// PanicIfNeeded lets handlers bail out and leave the rendering to the recovery middleware.
func PanicIfNeeded(err any) {
	if err != nil {
		panic(err)
	}
}
