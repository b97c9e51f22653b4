package handler

import (
	"github.com/gin-gonic/gin"

	"time4swim/backend/pkg/response"
)

// MustGetUserID extracts user_id from the Gin context. On a missing or empty
// value it writes a 401 and returns false; the caller should return
// immediately.
func MustGetUserID(c *gin.Context) (string, bool) {
	return mustGetString(c, "user_id")
}

// MustGetRole extracts the authenticated role from the Gin context.
func MustGetRole(c *gin.Context) (string, bool) {
	return mustGetString(c, "role")
}

// MustGetClubID extracts the caller's club from the Gin context.
func MustGetClubID(c *gin.Context) (string, bool) {
	v, exists := c.Get("club_id")
	if !exists {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", false
	}
	// Admin accounts may carry an empty club id.
	s, ok := v.(string)
	if !ok {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", false
	}
	return s, true
}

// mustGetCaller extracts the full identity triple injected by the JWT
// middleware.
func mustGetCaller(c *gin.Context) (userID, role, clubID string, ok bool) {
	if userID, ok = MustGetUserID(c); !ok {
		return
	}
	if role, ok = MustGetRole(c); !ok {
		return
	}
	clubID, ok = MustGetClubID(c)
	return
}

func mustGetString(c *gin.Context, key string) (string, bool) {
	v, exists := c.Get(key)
	if !exists {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", false
	}
	return s, true
}
