package dto

// LoginRequest holds the credentials posted by the login form or API.
type LoginRequest struct {
	Username  string `form:"username" json:"username" validate:"required,max=64"`
	Password  string `form:"password" json:"password" validate:"required,max=256"`
	Role      string `form:"role" json:"role" validate:"required,max=32"`
	IP        string `form:"-" json:"-"`
	UserAgent string `form:"-" json:"-"`
}

// LoginResult reports whether a matching account exists. No token or session
// is issued.
type LoginResult struct {
	Authenticated bool   `json:"authenticated"`
	Username      string `json:"username"`
	Role          string `json:"role"`
}
