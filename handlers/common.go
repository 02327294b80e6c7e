package handlers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"sportsbuddy/store"
)

// API carries the operation handlers and their collaborators. The
// store is injected so tests run against store.Memory; production
// wires store.Mongo in main.
type API struct {
	store    store.Store
	verifier CredentialVerifier
}

func New(s store.Store) *API {
	return &API{store: s, verifier: PlaintextVerifier{}}
}

// opContext bounds a single store round-trip to the request lifetime.
func opContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), 10*time.Second)
}

// fail writes the uniform error body. Every failure leaving this
// package goes through here: {success:false, message}.
func fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"message": message,
	})
}
