package models

// OTPRequest represents a request to send a verification code
type OTPRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required,max=15,phone"`
}

// LoginRequest represents a request to log in with a verification code
type LoginRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required,max=15,phone"`
	Code        string `json:"code" validate:"required,max=6"`
}

// LoginResponse represents the response after successful verification
type LoginResponse struct {
	Token       string `json:"token"`
	PhoneNumber string `json:"phone_number"`
}

// MessageResponse is a plain informational response body
type MessageResponse struct {
	Message string `json:"message"`
}
