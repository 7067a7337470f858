package main

import (
	"github.com/gin-gonic/gin"

	"github.com/Zachkp/adi-site/internal/session"
)

const (
	sessionCookie = "adi_session"
	sessionKey    = "session"
)

// sessionMiddleware attaches the visitor's UI state to the request, starting a
// new session when the cookie is missing or expired.
func sessionMiddleware(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var st *session.State
		if id, err := c.Cookie(sessionCookie); err == nil {
			st, _ = store.Get(id)
		}
		if st == nil {
			st = store.Create()
			c.SetCookie(sessionCookie, st.ID, 0, "/", "", false, true)
		}

		c.Set(sessionKey, st)
		c.Next()
	}
}

func currentSession(c *gin.Context) *session.State {
	return c.MustGet(sessionKey).(*session.State)
}
