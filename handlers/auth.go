package handlers

import (
	"errors"
	"log"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"sportsbuddy/models"
	"sportsbuddy/store"
)

// emailRE is the registration email shape check: local@domain with a
// dotted domain, no whitespace or extra @.
var emailRE = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type RegisterRequest struct {
	UserName string `json:"userName"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Mobile   string `json:"mobile"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates an Account after validating the required fields,
// the password length, the email shape and case-insensitive email
// uniqueness. The response echoes only the sanitized account view.
func (a *API) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.UserName == "" || req.Email == "" || req.Password == "" {
		fail(c, http.StatusBadRequest, "Missing required fields. Name, email and password are required.")
		return
	}
	if len(req.Password) < 6 {
		fail(c, http.StatusBadRequest, "Password must be at least 6 characters long")
		return
	}
	if !emailRE.MatchString(req.Email) {
		fail(c, http.StatusBadRequest, "Invalid email format")
		return
	}

	ctx, cancel := opContext(c)
	defer cancel()

	// Uniqueness folds case; a@b.com and A@B.COM are the same account.
	_, err := a.store.FindAccountByEmailFold(ctx, req.Email)
	if err == nil {
		fail(c, http.StatusBadRequest, "Email already exists")
		return
	}
	if !errors.Is(err, store.ErrNotFound) {
		log.Printf("Register lookup error: %v", err)
		fail(c, http.StatusInternalServerError, "Failed to register user")
		return
	}

	acc := models.Account{
		UserName: req.UserName,
		Email:    req.Email,
		Password: req.Password,
		Mobile:   parseMobile(req.Mobile),
	}
	if err := a.store.InsertAccount(ctx, acc); err != nil {
		log.Printf("Register insert error: %v", err)
		fail(c, http.StatusInternalServerError, "Failed to register user")
		return
	}

	log.Printf("User registered: %s", acc.Email)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Registration successful",
		"user":    acc.Summary(),
	})
}

// ListUsers returns every account projected to userName and email.
func (a *API) ListUsers(c *gin.Context) {
	ctx, cancel := opContext(c)
	defer cancel()

	accounts, err := a.store.ListAccounts(ctx)
	if err != nil {
		log.Printf("ListUsers error: %v", err)
		fail(c, http.StatusInternalServerError, "Failed to fetch users")
		return
	}

	users := make([]models.AccountSummary, len(accounts))
	for i, acc := range accounts {
		users[i] = acc.Summary()
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"users":   users,
	})
}

// CheckEmail reports whether any account matches the given email
// exactly. Unlike registration this does not fold case; the two
// predicates are intentionally distinct.
func (a *API) CheckEmail(c *gin.Context) {
	ctx, cancel := opContext(c)
	defer cancel()

	users, err := a.store.FindAccountsByEmail(ctx, c.Param("email"))
	if err != nil {
		log.Printf("CheckEmail error: %v", err)
		fail(c, http.StatusInternalServerError, "Failed to check Email")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"users":   users,
		"exists":  len(users) > 0,
	})
}

// Login verifies the credential and returns the account's contact
// fields. No token or cookie is issued; session continuity is the
// caller's concern.
func (a *API) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Email and password are required")
		return
	}
	if req.Email == "" || req.Password == "" {
		fail(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	ctx, cancel := opContext(c)
	defer cancel()

	acc, err := a.store.FindAccountByEmail(ctx, req.Email)
	if errors.Is(err, store.ErrNotFound) {
		fail(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err != nil {
		log.Printf("Login lookup error: %v", err)
		fail(c, http.StatusInternalServerError, "Server error during login")
		return
	}

	if !a.verifier.Verify(acc.Password, req.Password) {
		fail(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user": gin.H{
			"userName": acc.UserName,
			"email":    acc.Email,
			"mobile":   acc.Mobile,
		},
	})
}

// parseMobile turns the optional form-text mobile into an integer;
// absent or unparsable values store null.
func parseMobile(mobile string) *int64 {
	mobile = strings.TrimSpace(mobile)
	if mobile == "" {
		return nil
	}
	n, err := strconv.ParseInt(mobile, 10, 64)
	if err != nil {
		return nil
	}
	return &n
}
