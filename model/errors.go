package model

type ErrorResponse struct {
	Errors []ApiError `json:"errors"`
}

type ApiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
