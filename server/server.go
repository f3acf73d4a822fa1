package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	englocale "github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/wayfarehq/wayfare/config"
	"github.com/wayfarehq/wayfare/db"
	apiError "github.com/wayfarehq/wayfare/errors"
	"github.com/wayfarehq/wayfare/models"
	"github.com/wayfarehq/wayfare/server/response"
	"github.com/wayfarehq/wayfare/services"
)

// bindingTranslator renders validator tags as readable field messages.
var bindingTranslator ut.Translator

func init() {
	english := englocale.New()
	bindingTranslator, _ = ut.New(english, english).GetTranslator("en")
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = entranslations.RegisterDefaultTranslations(v, bindingTranslator)
	}
}

// Server wires configuration, repositories and services into the HTTP layer.
type Server struct {
	Config             *config.Config
	AuthRepository     db.AuthRepository
	AuthService        services.AuthService
	TripService        services.TripService
	PostService        services.PostService
	CommentService     services.CommentService
	LikeService        services.LikeService
	FollowService      services.FollowService
	DestinationService services.DestinationService
}

// Start runs the router until interrupted, then drains in-flight requests.
func (s *Server) Start() {
	r := s.setupRouter()

	port := s.Config.Port
	if port == 0 {
		port = 8080
	}
	srv := &http.Server{
		Addr:    ":" + strconv.Itoa(port),
		Handler: r,
	}

	go func() {
		log.Printf("listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
}

// decode binds and conform-normalizes a JSON request body. Binding
// failures come back translated, one message per failed field.
func decode(c *gin.Context, v interface{}) error {
	if err := c.ShouldBindJSON(v); err != nil {
		return bindingError(err)
	}
	return models.ConformInput(v)
}

func bindingError(err error) error {
	translated := models.TranslateError(err, bindingTranslator)
	parts := make([]string, 0, len(translated))
	for _, e := range translated {
		parts = append(parts, e.Error())
	}
	return errors.New(strings.Join(parts, "; "))
}

// currentUserID pulls the authenticated user's id set by Authorize.
func currentUserID(c *gin.Context) (uint, bool) {
	userIDCtx, ok := c.Get("userID")
	if !ok {
		return 0, false
	}
	userID, ok := userIDCtx.(uint)
	return userID, ok
}

// uintParam parses a numeric path parameter.
func uintParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", name, raw)
	}
	return uint(id), nil
}

// abortWithAPIError maps a service error onto the response envelope.
func abortWithAPIError(c *gin.Context, err *apiError.Error) {
	response.JSON(c, "", err.Status, nil, err)
}
