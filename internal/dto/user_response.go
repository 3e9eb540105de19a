package dto

// SignupResponse and LoginResponse carry the bare user identifier only. No
// session token or auth artifact is issued anywhere in this service.
type SignupResponse struct {
	UserID string `json:"userId"`
}

type LoginResponse struct {
	UserID string `json:"userId"`
}

type UserResponse struct {
	ID          string `json:"id"`
	PhoneNumber string `json:"phoneNumber"`
	FullName    string `json:"fullName"`
	City        string `json:"city"`
	Location    string `json:"location"`
}
