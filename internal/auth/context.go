package auth

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	CtxUID   = "firebase_uid"
	CtxEmail = "email"
)

// UserUID extracts the Firebase UID of the caller from the Gin context.
// This is set by FirebaseAuthMiddleware.
func UserUID(c *gin.Context) string {
	return strings.TrimSpace(c.GetString(CtxUID))
}

// UserEmail extracts the caller's email, if the ID token carried one.
func UserEmail(c *gin.Context) string {
	return strings.TrimSpace(c.GetString(CtxEmail))
}
