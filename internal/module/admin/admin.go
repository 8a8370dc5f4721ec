package admin

import (
	"anvaya-club/internal/global/errs"
	"anvaya-club/internal/global/logger"
	"anvaya-club/internal/global/response"
	"time"

	"github.com/gin-gonic/gin"
)

type LoginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type TokenResp struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Login exchanges the admin credentials for a bearer token.
func Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrValidation.WithOrigin(err))
		return
	}

	l := logger.WithContext(log, c)
	if !deps.Auth.VerifyCredentials(req.Username, req.Password) {
		l.Warn("admin login rejected", "username", req.Username)
		response.Fail(c, errs.New(errs.ErrAuthentication, "Incorrect username or password"))
		return
	}

	token, expiresAt, err := deps.Auth.IssueToken(req.Username)
	if err != nil {
		response.Fail(c, response.ErrInternal.WithOrigin(err))
		return
	}

	l.Info("admin logged in", "username", req.Username)
	response.Success(c, TokenResp{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresAt:   expiresAt,
	})
}
