package server

import (
	"fmt"
	"os"
	"time"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func (s *Server) setupRouter() *gin.Engine {
	ginMode := os.Getenv("GIN_MODE")
	if ginMode == "test" {
		r := gin.New()
		s.defineRoutes(r)
		return r
	}

	r := gin.New()
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		return fmt.Sprintf("%s - [%s] \"%s %s %s %d %s \"%s\" %s\"\n",
			param.ClientIP,
			param.TimeStamp.Format(time.RFC1123),
			param.Method,
			param.Path,
			param.Request.Proto,
			param.StatusCode,
			param.Latency,
			param.Request.UserAgent(),
			param.ErrorMessage,
		)
	}))
	r.Use(gin.Recovery())
	r.Use(requestID())

	allowedOrigins := []string{"http://localhost:3000"}
	if s.Config.AccessControlAllowOrigin != "" {
		allowedOrigins = []string{s.Config.AccessControlAllowOrigin}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	s.defineRoutes(r)

	return r
}

func (s *Server) defineRoutes(router *gin.Engine) {
	store := ratelimit.InMemoryStore(&ratelimit.InMemoryOptions{
		Rate:  time.Minute,
		Limit: 10,
	})

	apirouter := router.Group("/api/v1")
	apirouter.POST("/register", s.handleSignup())
	apirouter.POST("/login", limitRateForLogin(store), s.handleLogin())
	apirouter.GET("/destinations", s.handleGetAllDestinations())
	apirouter.GET("/destinations/:id/posts", s.handleGetPostsByDestination())

	authorized := apirouter.Group("/")
	authorized.Use(s.Authorize())
	authorized.GET("/logout", s.handleLogout())

	authorized.GET("/account", s.handleShowAccount())
	authorized.GET("/account/users", s.handleGetAccountData())
	authorized.PATCH("/account", s.handleEditUserProfile())
	authorized.DELETE("/account", s.handleDeleteAccount())

	authorized.POST("/account/users/:userId/follows", s.handleFollowUser())
	authorized.DELETE("/account/users/:userId/follows", s.handleUnfollowUser())
	authorized.GET("/account/follows", s.handleGetFollows())
	authorized.GET("/account/following", s.handleGetFollowing())
	authorized.GET("/account/followedBy", s.handleGetFollowedBy())

	authorized.GET("/account/trips", s.handleGetUserTrips())
	authorized.POST("/account/trips", s.handleCreateTrip())
	authorized.PUT("/account/trips/:id", s.handleUpdateTrip())
	authorized.DELETE("/account/trips/:id", s.handleDeleteTrip())

	authorized.POST("/account/posts", s.handleCreatePost())
	authorized.GET("/account/posts", s.handleGetUserPosts())
	authorized.PATCH("/account/posts/:postId", s.handleUpdatePost())
	authorized.DELETE("/account/posts/:postId", s.handleDeletePost())

	authorized.POST("/account/posts/:postId/comments", s.handleCreateComment())
	authorized.GET("/account/comments", s.handleGetUserComments())
	authorized.PATCH("/account/posts/:postId/comments/:commentId", s.handleUpdateComment())
	authorized.DELETE("/account/posts/:postId/comments/:commentId", s.handleDeleteComment())

	authorized.POST("/account/posts/:postId/likes", s.handleToggleLike())
	authorized.GET("/account/likes", s.handleGetUserLikes())
	authorized.DELETE("/account/posts/:postId/likes/:likeId", s.handleDeleteLike())

	authorized.POST("/account/destinations", s.handleCreateDestination())
	authorized.PATCH("/account/destinations/:id", s.handleUpdateDestination())
	authorized.DELETE("/account/destinations/:id", s.handleDeleteDestination())
}
