package routes

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"sportsbuddy/config"
	"sportsbuddy/handlers"
)

// buildDir holds the React production build when the server also
// serves the client, as the deployed original does.
const buildDir = "build"

// SetupRouter assembles the full route table around the injected API.
// An empty origin list falls back to the known client origins.
func SetupRouter(api *handlers.API, origins []string) *gin.Engine {
	router := gin.Default()

	if len(origins) == 0 {
		origins = config.DefaultCORSOrigins()
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Accounts
	router.POST("/register-user", api.Register)
	router.GET("/users", api.ListUsers)
	router.GET("/users/:email", api.CheckEmail)
	router.POST("/api/login", api.Login)

	// Posts
	router.POST("/create-post", api.CreatePost)
	router.GET("/get-post/:email", api.GetPost)
	router.PUT("/edit-post/:email", api.EditPost)
	router.GET("/sportsInfo", api.ListPosts)
	router.GET("/get-posts/:location", api.PostsByLocation)
	router.GET("/get-filtered-providers", api.FilteredPosts)

	router.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	// Root serves the client when a build is present, otherwise a
	// health-style status so probes get a 200.
	index := filepath.Join(buildDir, "index.html")
	router.GET("/", func(c *gin.Context) {
		if _, err := os.Stat(index); err == nil {
			c.File(index)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "Sports Buddy API running",
			"service": "healthy",
		})
	})

	if info, err := os.Stat(filepath.Join(buildDir, "static")); err == nil && info.IsDir() {
		router.Static("/static", filepath.Join(buildDir, "static"))
	}

	// Unknown API paths get a JSON 404; anything else falls back to
	// the client bundle so browser routing keeps working.
	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Endpoint not found",
				"path":    c.Request.URL.Path,
			})
			return
		}
		if c.Request.Method == http.MethodGet {
			if _, err := os.Stat(index); err == nil {
				c.File(index)
				return
			}
		}
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Endpoint not found",
			"path":    c.Request.URL.Path,
		})
	})

	return router
}
