package handler

// Form payloads. Field names follow the HTML inputs.

type loginForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// Passwords are capped at 72 bytes, the bcrypt input limit.
type registerForm struct {
	Username string `form:"username" validate:"required,max=64"`
	Password string `form:"password" validate:"required,maxbytes=72"`
	Role     string `form:"role"`
}

// Empty title and body are accepted.
type postForm struct {
	Title   string `form:"postTitle"`
	Content string `form:"postBody"`
}
