package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"sportsbuddy/models"
	"sportsbuddy/store"
)

type PostRequest struct {
	Email        string `json:"email"`
	UserName     string `json:"userName"`
	MobileNumber string `json:"mobileNumber"`
	Sport        string `json:"sport"`
	Location     string `json:"location"`
	Date         string `json:"date"`
}

func (r PostRequest) post() models.Post {
	return models.Post{
		Email:        r.Email,
		UserName:     r.UserName,
		MobileNumber: r.MobileNumber,
		Sport:        r.Sport,
		Location:     r.Location,
		Date:         r.Date,
	}
}

// CreatePost inserts a listing exactly as given. No field is required
// here, including the email; the create path is deliberately
// permissive and the client owns any category checks.
func (a *API) CreatePost(c *gin.Context) {
	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := opContext(c)
	defer cancel()

	post := req.post()
	if err := a.store.InsertPost(ctx, post); err != nil {
		log.Printf("CreatePost error: %v", err)
		fail(c, http.StatusInternalServerError, "Failed to create Post")
		return
	}

	log.Printf("Post created: %s", post.Email)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Post created successfully",
		"post":    post,
	})
}

// GetPost returns the listing keyed by the author email.
func (a *API) GetPost(c *gin.Context) {
	ctx, cancel := opContext(c)
	defer cancel()

	post, err := a.store.FindPostByEmail(ctx, c.Param("email"))
	if errors.Is(err, store.ErrNotFound) {
		fail(c, http.StatusNotFound, "Post not found")
		return
	}
	if err != nil {
		log.Printf("GetPost error: %v", err)
		fail(c, http.StatusInternalServerError, "Failed to fetch Post")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"post":    post,
	})
}

// EditPost replaces the listing's fields. The match key is always the
// path parameter; the body's email is one of the written fields. A
// zero modified count reports not-found, which also covers an edit
// that changes nothing on an existing listing.
func (a *API) EditPost(c *gin.Context) {
	emailParam := c.Param("email")

	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.UserName == "" || req.Sport == "" || req.Location == "" {
		fail(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	ctx, cancel := opContext(c)
	defer cancel()

	post := req.post()
	modified, err := a.store.UpdatePostByEmail(ctx, emailParam, post)
	if err != nil {
		log.Printf("EditPost error: %v", err)
		fail(c, http.StatusInternalServerError, "Error updating Post")
		return
	}
	if modified == 0 {
		fail(c, http.StatusNotFound, "Post not found to update")
		return
	}

	post.Email = emailParam
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Post updated successfully",
		"post":    post,
	})
}

// ListPosts returns every listing, wrapped. The legacy bare-array
// shape of this route is gone: one registration, one shape.
func (a *API) ListPosts(c *gin.Context) {
	ctx, cancel := opContext(c)
	defer cancel()

	posts, err := a.store.ListPosts(ctx)
	if err != nil {
		log.Printf("ListPosts error: %v", err)
		fail(c, http.StatusInternalServerError, "Failed to fetch Posts")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"posts":   posts,
	})
}

// PostsByLocation matches listings whose location contains the path
// segment, case-insensitively. Substring containment, not equality;
// the filtered listing below is the exact-match counterpart.
func (a *API) PostsByLocation(c *gin.Context) {
	ctx, cancel := opContext(c)
	defer cancel()

	posts, err := a.store.ListPostsByLocation(ctx, c.Param("location"))
	if err != nil {
		log.Printf("PostsByLocation error: %v", err)
		fail(c, http.StatusInternalServerError, "Failed to fetch Posts by location")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"posts":   posts,
	})
}

// FilteredPosts applies optional exact-match sport and location
// constraints from the query string, ANDed when both are present.
func (a *API) FilteredPosts(c *gin.Context) {
	ctx, cancel := opContext(c)
	defer cancel()

	posts, err := a.store.ListPostsFiltered(ctx, c.Query("sport"), c.Query("location"))
	if err != nil {
		log.Printf("FilteredPosts error: %v", err)
		fail(c, http.StatusInternalServerError, "Failed to fetch filtered Sports")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"sports":  posts,
	})
}
