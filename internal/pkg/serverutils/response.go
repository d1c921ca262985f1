package serverutils

// DetailResponse is the body of every non-2xx response.
type DetailResponse struct {
	Detail interface{} `json:"detail"`
}

func ErrorResponse(detail interface{}) DetailResponse {
	return DetailResponse{Detail: detail}
}
