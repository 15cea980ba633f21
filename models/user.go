package models

// Identity is the signed-in user reference carried by the session cookie.
// It is minted by this gateway from the upstream register/login response and
// trusted only for navigation; real authorization lives upstream.
type Identity struct {
	ID   int    `json:"id"`
	Role string `json:"rol"`
}

// Customer is a row from the admin customer list (GET /users).
type Customer struct {
	ID              int     `json:"id"`
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	EmailVerifiedAt *string `json:"email_verified_at"`
	Rol             string  `json:"rol"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

type CustomerList struct {
	Data []Customer `json:"data"`
}

type RegisterRequest struct {
	Name                 string `json:"name" binding:"required"`
	Email                string `json:"email" binding:"required,email"`
	Password             string `json:"password" binding:"required"`
	PasswordConfirmation string `json:"password_confirmation" binding:"required"`
}

type RegisteredUser struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Rol   string `json:"rol"`
}

type RegisterResponse struct {
	AccessToken string         `json:"access_token"`
	TokenType   string         `json:"token_type"`
	ExpiresIn   int            `json:"expires_in"`
	User        RegisteredUser `json:"user"`
}
