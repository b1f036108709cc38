package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/99minutos/blog-system/internal/api/metrics"
	"github.com/99minutos/blog-system/internal/api/middleware"
	"github.com/99minutos/blog-system/internal/core/domain"
	"github.com/99minutos/blog-system/internal/core/ports"
)

const (
	msgInvalidLogin      = "Invalid username or password"
	msgLoginFailed       = "Login failed"
	msgRegisterFailed    = "Registration failed. Username might already exist."
	msgRegisterSucceeded = "User registered successfully! You can now login."
)

type AuthHandler struct {
	authService ports.AuthService
	sessionName string
	metrics     *metrics.Metrics
	log         zerolog.Logger
}

func NewAuthHandler(authService ports.AuthService, sessionName string, m *metrics.Metrics, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		sessionName: sessionName,
		metrics:     m,
		log:         log,
	}
}

// LoginForm renders the login page.
//
// @Summary      Login form
// @Tags         auth
// @Produce      html
// @Success      200
// @Router       /login [get]
func (h *AuthHandler) LoginForm(c echo.Context) error {
	return c.Render(http.StatusOK, "login", newPage(c, "Login"))
}

// Login checks the credentials and starts a session.
//
// @Summary      Login
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      html
// @Param        username  formData  string  true  "Username"
// @Param        password  formData  string  true  "Password"
// @Success      302  "Redirect to /"
// @Success      200  "Login form with an error message"
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	page := newPage(c, "Login")

	var req loginForm
	if err := c.Bind(&req); err != nil {
		h.metrics.Login(metrics.ResultFailure)
		page.Error = msgInvalidLogin
		return c.Render(http.StatusOK, "login", page)
	}
	if err := c.Validate(&req); err != nil {
		h.metrics.Login(metrics.ResultFailure)
		page.Error = msgInvalidLogin
		return c.Render(http.StatusOK, "login", page)
	}

	identity, err := h.authService.Authenticate(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			h.metrics.Login(metrics.ResultFailure)
			page.Error = msgInvalidLogin
			return c.Render(http.StatusOK, "login", page)
		}
		h.log.Error().Err(err).Str("username", req.Username).Msg("login error")
		h.metrics.Login(metrics.ResultError)
		page.Error = msgLoginFailed
		return c.Render(http.StatusOK, "login", page)
	}

	if err := middleware.SaveIdentity(c, h.sessionName, *identity); err != nil {
		h.log.Error().Err(err).Str("username", req.Username).Msg("login error")
		h.metrics.Login(metrics.ResultError)
		page.Error = msgLoginFailed
		return c.Render(http.StatusOK, "login", page)
	}

	h.metrics.Login(metrics.ResultSuccess)
	return c.Redirect(http.StatusFound, "/")
}

// Logout destroys the session.
//
// @Summary      Logout
// @Tags         auth
// @Success      302  "Redirect to /"
// @Router       /logout [get]
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := middleware.ClearIdentity(c, h.sessionName); err != nil {
		h.log.Warn().Err(err).Msg("logout: session not destroyed")
	}
	return c.Redirect(http.StatusFound, "/")
}

// RegisterForm renders the registration page.
//
// @Summary      Registration form
// @Tags         auth
// @Produce      html
// @Success      200
// @Router       /register [get]
func (h *AuthHandler) RegisterForm(c echo.Context) error {
	return c.Render(http.StatusOK, "register", newPage(c, "Register"))
}

// Register creates a new user account and re-renders the form with the outcome.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      html
// @Param        username  formData  string  true   "Username"
// @Param        password  formData  string  true   "Password"
// @Param        role      formData  string  false  "admin or user, defaults to user"
// @Success      200  "Registration form with a success or error message"
// @Router       /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	page := newPage(c, "Register")

	var req registerForm
	if err := c.Bind(&req); err != nil {
		h.metrics.Registration(metrics.ResultFailure)
		page.Error = msgRegisterFailed
		return c.Render(http.StatusOK, "register", page)
	}
	if err := c.Validate(&req); err != nil {
		h.metrics.Registration(metrics.ResultFailure)
		page.Error = err.Error()
		return c.Render(http.StatusOK, "register", page)
	}

	user, err := h.authService.Register(c.Request().Context(), req.Username, req.Password, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateUsername), errors.Is(err, domain.ErrInvalidUser):
			h.metrics.Registration(metrics.ResultFailure)
		default:
			h.log.Error().Err(err).Str("username", req.Username).Msg("registration error")
			h.metrics.Registration(metrics.ResultError)
		}
		page.Error = msgRegisterFailed
		return c.Render(http.StatusOK, "register", page)
	}

	h.log.Debug().Str("user_id", user.ID).Msg("registration form succeeded")
	h.metrics.Registration(metrics.ResultSuccess)
	page.Success = msgRegisterSucceeded
	return c.Render(http.StatusOK, "register", page)
}

// Profile shows the identity held by the session.
//
// @Summary      Profile
// @Tags         auth
// @Produce      html
// @Success      200
// @Success      302  "Redirect to /login when not signed in"
// @Router       /profile [get]
func (h *AuthHandler) Profile(c echo.Context) error {
	return c.Render(http.StatusOK, "profile", newPage(c, "Profile"))
}
