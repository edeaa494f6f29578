package handlers

import (
	"net/http"
	"time"

	"booking-client/clients"
	"booking-client/domain"
	"booking-client/security"
	"booking-client/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type AuthHandler struct {
	backend    *clients.BackendClient
	store      *security.CredentialStore
	sessionTTL time.Duration
	logger     *logrus.Logger
	Tracer     trace.Tracer
}

func NewAuthHandler(backend *clients.BackendClient, store *security.CredentialStore, sessionTTL time.Duration, logger *logrus.Logger, tr trace.Tracer) AuthHandler {
	return AuthHandler{
		backend:    backend,
		store:      store,
		sessionTTL: sessionTTL,
		logger:     logger,
		Tracer:     tr,
	}
}

func (ah *AuthHandler) Login(ctx *gin.Context) {
	spanCtx, span := ah.Tracer.Start(ctx.Request.Context(), "AuthHandler.Login")
	defer span.End()

	var credentials domain.LoginInput
	if err := ctx.ShouldBindJSON(&credentials); err != nil {
		span.SetStatus(codes.Error, err.Error())
		ctx.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": err.Error()})
		return
	}

	result, err := ah.backend.Login(spanCtx, credentials)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		respondWithError(ctx, err)
		return
	}

	expiresAt := time.Now().Add(ah.sessionTTL)
	if result.ExpiresAt != "" {
		if parsed, err := time.Parse(time.RFC3339, result.ExpiresAt); err == nil {
			expiresAt = parsed
		}
	}

	session := &domain.Session{
		Token:     result.Token,
		Role:      result.Role,
		ExpiresAt: expiresAt,
	}

	sessionID := uuid.NewString()
	if err := ah.store.SetSession(sessionID, session, spanCtx); err != nil {
		span.SetStatus(codes.Error, err.Error())
		ah.logger.WithFields(logrus.Fields{"path": "handlers/auth"}).Error("Failed to persist session: ", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"status": "fail", "message": "Login failed. Try again later."})
		return
	}

	maxAge := int(time.Until(expiresAt).Seconds())
	ctx.SetCookie(security.SessionCookieName, sessionID, maxAge, "/", "", false, true)

	span.SetStatus(codes.Ok, "Logged in")
	ctx.JSON(http.StatusOK, gin.H{"status": "success", "role": session.Role})
}

func (ah *AuthHandler) Register(ctx *gin.Context) {
	spanCtx, span := ah.Tracer.Start(ctx.Request.Context(), "AuthHandler.Register")
	defer span.End()

	var input domain.RegisterInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		span.SetStatus(codes.Error, err.Error())
		ctx.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": err.Error()})
		return
	}

	if !utils.ValidatePassword(input.Password) {
		span.SetStatus(codes.Error, "Invalid password format")
		ctx.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": "Password must be at least 8 characters with upper and lower case letters and a digit"})
		return
	}

	user, err := ah.backend.Register(spanCtx, input)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		respondWithError(ctx, err)
		return
	}

	span.SetStatus(codes.Ok, "Registered")
	ctx.JSON(http.StatusCreated, gin.H{"status": "success", "user": user})
}

// Logout clears the session and drops the cookie. Clearing twice is fine;
// the guard observes the cleared state on the very next navigation.
func (ah *AuthHandler) Logout(ctx *gin.Context) {
	spanCtx, span := ah.Tracer.Start(ctx.Request.Context(), "AuthHandler.Logout")
	defer span.End()

	sessionID := security.SessionID(ctx)
	if sessionID != "" {
		if err := ah.store.Clear(sessionID, spanCtx); err != nil {
			ah.logger.WithFields(logrus.Fields{"path": "handlers/auth"}).Error("Failed to clear session: ", err)
		}
	}
	ctx.SetCookie(security.SessionCookieName, "", -1, "/", "", false, true)

	span.SetStatus(codes.Ok, "Logged out")
	ctx.JSON(http.StatusOK, gin.H{"status": "success", "message": "Logged out"})
}

func (ah *AuthHandler) CurrentUser(ctx *gin.Context) {
	spanCtx, span := ah.Tracer.Start(ctx.Request.Context(), "AuthHandler.CurrentUser")
	defer span.End()

	session := security.CurrentSession(ctx)
	if session == nil {
		span.SetStatus(codes.Error, "You are not logged in")
		ctx.JSON(http.StatusUnauthorized, gin.H{"status": "fail", "message": "You are not logged in"})
		return
	}

	user, err := ah.backend.GetCurrentUserProfile(spanCtx, session.Token)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		respondWithError(ctx, err)
		return
	}

	span.SetStatus(codes.Ok, "Got current user")
	ctx.JSON(http.StatusOK, gin.H{"status": "success", "user": user})
}
