package models

type ApiResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Count   *int        `json:"count,omitempty"`
	Token   string      `json:"token,omitempty"`
}

func SuccessResponse(data interface{}, message string) ApiResponse {
	return ApiResponse{
		Success: true,
		Data:    data,
		Message: message,
	}
}

func ErrorResponse(err string) ApiResponse {
	return ApiResponse{
		Success: false,
		Error:   err,
	}
}

// CountedResponse is the list envelope: {success, count, data}.
func CountedResponse(data interface{}, count int) ApiResponse {
	return ApiResponse{
		Success: true,
		Data:    data,
		Count:   &count,
	}
}

func TokenResponse(token, message string) ApiResponse {
	return ApiResponse{
		Success: true,
		Token:   token,
		Message: message,
	}
}
