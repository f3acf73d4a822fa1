package main

import (
	"log"

	"github.com/wayfarehq/wayfare/config"
	"github.com/wayfarehq/wayfare/db"
	"github.com/wayfarehq/wayfare/server"
	"github.com/wayfarehq/wayfare/services"
)

func main() {
	conf, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	gormDB := db.GetDB(conf)

	authRepo := db.NewAuthRepo(gormDB)
	destinationRepo := db.NewDestinationRepo(gormDB)
	tripRepo := db.NewTripRepo(gormDB)
	postRepo := db.NewPostRepo(gormDB)
	commentRepo := db.NewCommentRepo(gormDB)
	likeRepo := db.NewLikeRepo(gormDB)
	followRepo := db.NewFollowRepo(gormDB)

	authService := services.NewAuthService(authRepo, followRepo, conf)
	destinationService := services.NewDestinationService(destinationRepo, conf)
	tripService := services.NewTripService(tripRepo, destinationRepo, conf)
	postService := services.NewPostService(postRepo, destinationRepo, conf)
	commentService := services.NewCommentService(commentRepo, postRepo, conf)
	likeService := services.NewLikeService(likeRepo, postRepo, conf)
	followService := services.NewFollowService(followRepo, authRepo, conf)

	s := &server.Server{
		Config:             conf,
		AuthRepository:     authRepo,
		AuthService:        authService,
		DestinationService: destinationService,
		TripService:        tripService,
		PostService:        postService,
		CommentService:     commentService,
		LikeService:        likeService,
		FollowService:      followService,
	}

	s.Start()
}
