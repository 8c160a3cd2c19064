package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/classroom-availability-api/internal/dto"
	"github.com/noah-isme/classroom-availability-api/internal/view"
	appErrors "github.com/noah-isme/classroom-availability-api/pkg/errors"
	"github.com/noah-isme/classroom-availability-api/pkg/response"
)

const loginFailedMessage = "An error occurred while processing your login request."

type loginChecker interface {
	Check(ctx context.Context, req dto.LoginRequest) (*dto.LoginResult, error)
}

// LoginHandler wires the login forms to the login service.
type LoginHandler struct {
	service loginChecker
}

// NewLoginHandler creates a new handler.
func NewLoginHandler(svc loginChecker) *LoginHandler {
	return &LoginHandler{service: svc}
}

// Login handles the browser form and answers with an HTML page.
func (h *LoginHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		h.failurePage(c, http.StatusBadRequest, "The login request could not be read.")
		return
	}
	req.IP = c.ClientIP()
	req.UserAgent = c.GetHeader("User-Agent")

	res, err := h.service.Check(c.Request.Context(), req)
	if err != nil {
		appErr := appErrors.FromError(err)
		switch appErr.Status {
		case http.StatusBadRequest:
			h.failurePage(c, http.StatusBadRequest, "Username, password and role are all required.")
		case http.StatusTooManyRequests:
			h.failurePage(c, http.StatusTooManyRequests, "Too many failed attempts. Please wait before trying again.")
		default:
			_ = c.Error(err)
			c.String(http.StatusInternalServerError, loginFailedMessage)
		}
		return
	}

	if !res.Authenticated {
		h.failurePage(c, http.StatusOK, "The username, password or role you entered is incorrect.")
		return
	}
	c.HTML(http.StatusOK, view.PageLoginSuccess, view.MessagePage{
		Title:   "Login Successful",
		Heading: "Login Successful",
		Message: "Welcome, " + res.Username + ". You are signed in as " + res.Role + ".",
	})
}

func (h *LoginHandler) failurePage(c *gin.Context, status int, message string) {
	c.HTML(status, view.PageLoginFailure, view.MessagePage{
		Title:   "Login Failed",
		Heading: "Login Failed",
		Message: message,
	})
}

// LoginAPI godoc
// @Summary Check credentials
// @Description Checks a username, password and role. No token or session is issued.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param payload body dto.LoginRequest true "Login payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 429 {object} response.Envelope
// @Router /auth/login [post]
func (h *LoginHandler) LoginAPI(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid login payload"))
		return
	}
	req.IP = c.ClientIP()
	req.UserAgent = c.GetHeader("User-Agent")

	res, err := h.service.Check(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !res.Authenticated {
		response.Error(c, appErrors.ErrInvalidCredentials)
		return
	}

	response.JSON(c, http.StatusOK, res)
}
