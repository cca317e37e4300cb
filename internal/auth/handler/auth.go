package handler

import (
	"net/http"
	"strings"

	"ialynk-server/internal/apierrors"
	"ialynk-server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UserIDKey is the gin context key holding the authenticated user id.
const UserIDKey = "User-ID"

type Handler struct {
	authProcessor AuthProcessor
	logger        *observability.Logger
}

type EmailSignupRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
}

type EmailLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func New(authProcessor AuthProcessor, logger *observability.Logger) Handler {
	return Handler{authProcessor: authProcessor, logger: logger}
}

func (h *Handler) HandleEmailLogin(c *gin.Context) {
	var req EmailLoginRequest
	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}
	token, err := h.authProcessor.Login(ctx, req.Email, req.Password)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (h *Handler) HandleEmailSignup(c *gin.Context) {
	var req EmailSignupRequest
	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}
	user, err := h.authProcessor.Signup(ctx, req.FirstName, req.LastName, req.Email, req.Password)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// HandleJWTMiddleware accepts a bearer token, or a token query parameter for websocket
// upgrades where browsers cannot set headers.
func (h *Handler) HandleJWTMiddleware(c *gin.Context) {
	ctx := c.Request.Context()

	tokenString := bearerToken(c.GetHeader("Authorization"))
	if tokenString == "" {
		tokenString = c.Query("token")
	}
	if tokenString == "" {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Authorization token is missing or invalid"))
		return
	}

	claims, err := h.authProcessor.ValidateJWTToken(ctx, tokenString)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Authorization token is missing or invalid"))
		return
	}
	c.Set(UserIDKey, sub)
	c.Next()
}

func (h *Handler) GetUserInfo(c *gin.Context) {
	ctx := c.Request.Context()
	userID, ok := UserID(c)
	if !ok {
		return
	}
	user, err := h.authProcessor.GetUserByID(ctx, userID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// UserID reads the authenticated user id set by HandleJWTMiddleware. On failure the
// response has already been written.
func UserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(UserIDKey)
	if !exists {
		apierrors.RespondWithError(c, apierrors.Unauthorized("User ID not found in context"))
		return uuid.UUID{}, false
	}
	raw, _ := value.(string)
	userID, err := uuid.Parse(raw)
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid user ID format"))
		return uuid.UUID{}, false
	}
	return userID, true
}

func bearerToken(header string) string {
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}
