package dto

type CreateUserRequest struct {
	Email        string `json:"email"`
	DisplayName  string `json:"displayName"`
	PhotoURL     string `json:"photoURL"`
	Role         string `json:"role"`
	ModeratorFor string `json:"moderatorFor"`
}

type SetRoleRequest struct {
	Role string `json:"role"`
}

type TokenRequest struct {
	Email string `json:"email"`
}

type AuthResponse struct {
	Email  string  `json:"email"`
	Iat    float64 `json:"iat"`
	Expiry float64 `json:"expiry"`
}
