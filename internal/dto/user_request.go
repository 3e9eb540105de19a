package dto

type CredentialsRequest struct {
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password"`
}

type ProfileUpdateRequest struct {
	UserID   string
	FullName string `json:"fullName"`
	City     string `json:"city"`
	Location string `json:"location"`
}
