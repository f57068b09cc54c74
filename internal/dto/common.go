package dto

// ListParams defines limit/offset query parameters shared by list endpoints.
type ListParams struct {
	Limit  int `form:"limit,default=50" binding:"gte=0,lte=500"`
	Offset int `form:"offset,default=0" binding:"gte=0"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"requestID,omitempty"`
}
