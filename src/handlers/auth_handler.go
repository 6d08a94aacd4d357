package handlers

import (
	"fmt"
	"net/http"

	"keep-app/src/models"
	"keep-app/src/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler handles board unlock requests
type AuthHandler struct {
	passwordHash []byte // nilならロック無効
	tokens       service.BoardTokenService
	logger       *logrus.Logger
}

// NewAuthHandler creates a new auth handler.
// 設定されたボードパスワードは起動時にbcryptハッシュ化して保持する
func NewAuthHandler(boardPassword string, tokens service.BoardTokenService, logger *logrus.Logger) (*AuthHandler, error) {
	h := &AuthHandler{
		tokens: tokens,
		logger: logger,
	}
	if boardPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(boardPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("ボードパスワードのハッシュ化に失敗: %w", err)
		}
		h.passwordHash = hash
	}
	return h, nil
}

// Enabled reports whether the board lock is active
func (h *AuthHandler) Enabled() bool {
	return h.passwordHash != nil
}

// Unlock checks the password and issues a board token
func (h *AuthHandler) Unlock(c *gin.Context) {
	if !h.Enabled() {
		c.JSON(http.StatusOK, gin.H{"message": "Board lock is disabled"})
		return
	}

	var req models.UnlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}

	if err := bcrypt.CompareHashAndPassword(h.passwordHash, []byte(req.Password)); err != nil {
		h.logger.WithField("client_ip", c.ClientIP()).Warn("ボードの解除に失敗: パスワードが一致しません")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password"})
		return
	}

	token, expiresAt, err := h.tokens.GenerateToken()
	if err != nil {
		h.logger.WithError(err).Error("ボードトークンの生成に失敗")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	h.logger.WithField("client_ip", c.ClientIP()).Info("ボードを解除しました")
	c.JSON(http.StatusOK, models.TokenResponse{Token: token, ExpiresAt: expiresAt})
}
