package dto

type LoginRequest struct {
	Password string `json:"password"`
}

type SessionResponse struct {
	Authenticated bool `json:"authenticated"`
}
