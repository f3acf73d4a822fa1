package services

import (
	"errors"
	"log"
	"net/http"

	"github.com/wayfarehq/wayfare/config"
	"github.com/wayfarehq/wayfare/db"
	apiError "github.com/wayfarehq/wayfare/errors"
	"github.com/wayfarehq/wayfare/models"
	"gorm.io/gorm"
)

type PostService interface {
	CreatePost(userID uint, post *models.Post) (*models.Post, *apiError.Error)
	GetUserPosts(userID uint) ([]models.Post, *apiError.Error)
	GetPostsByDestination(destinationID uint) ([]models.Post, *apiError.Error)
	UpdatePost(userID, postID uint, patch *models.UpdatePostRequest) (*models.Post, *apiError.Error)
	DeletePost(userID, postID uint) *apiError.Error
}

type postService struct {
	Config          *config.Config
	postRepo        db.PostRepository
	destinationRepo db.DestinationRepository
}

func NewPostService(postRepo db.PostRepository, destinationRepo db.DestinationRepository, conf *config.Config) PostService {
	return &postService{
		Config:          conf,
		postRepo:        postRepo,
		destinationRepo: destinationRepo,
	}
}

func (p *postService) CreatePost(userID uint, post *models.Post) (*models.Post, *apiError.Error) {
	if _, err := p.destinationRepo.FindDestinationByID(post.DestinationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apiError.New("invalid destination", http.StatusBadRequest)
		}
		return nil, apiError.ErrInternalServerError
	}

	post.UserID = userID
	if err := p.postRepo.CreatePost(post); err != nil {
		log.Printf("CreatePost error for user %d: %v", userID, err)
		return nil, apiError.ErrInternalServerError
	}
	return post, nil
}

func (p *postService) GetUserPosts(userID uint) ([]models.Post, *apiError.Error) {
	posts, err := p.postRepo.GetPostsByUserID(userID)
	if err != nil {
		log.Printf("GetUserPosts error for user %d: %v", userID, err)
		return nil, apiError.ErrInternalServerError
	}
	return posts, nil
}

func (p *postService) GetPostsByDestination(destinationID uint) ([]models.Post, *apiError.Error) {
	if _, err := p.destinationRepo.FindDestinationByID(destinationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apiError.New("destination not found", http.StatusNotFound)
		}
		return nil, apiError.ErrInternalServerError
	}

	posts, err := p.postRepo.GetPostsByDestinationID(destinationID)
	if err != nil {
		log.Printf("GetPostsByDestination error for destination %d: %v", destinationID, err)
		return nil, apiError.ErrInternalServerError
	}
	return posts, nil
}

func (p *postService) UpdatePost(userID, postID uint, patch *models.UpdatePostRequest) (*models.Post, *apiError.Error) {
	post, err := p.postRepo.FindPostByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apiError.New("post not found", http.StatusNotFound)
		}
		return nil, apiError.ErrInternalServerError
	}

	if !IsOwner(userID, post.UserID) {
		return nil, apiError.New("unauthorized to update this post", http.StatusForbidden)
	}

	if patch.DestinationID != nil {
		if _, err := p.destinationRepo.FindDestinationByID(*patch.DestinationID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apiError.New("invalid destination", http.StatusBadRequest)
			}
			return nil, apiError.ErrInternalServerError
		}
	}

	changes := patch.Changes()
	if len(changes) == 0 {
		return nil, apiError.New("at least one field is required for an update", http.StatusBadRequest)
	}

	updated, err := p.postRepo.UpdatePost(postID, changes)
	if err != nil {
		log.Printf("UpdatePost error for post %d: %v", postID, err)
		return nil, apiError.ErrInternalServerError
	}
	return updated, nil
}

func (p *postService) DeletePost(userID, postID uint) *apiError.Error {
	post, err := p.postRepo.FindPostByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apiError.New("post not found", http.StatusNotFound)
		}
		return apiError.ErrInternalServerError
	}

	if !IsOwner(userID, post.UserID) {
		return apiError.New("unauthorized to delete this post", http.StatusForbidden)
	}

	if err := p.postRepo.DeletePost(postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apiError.New("post not found", http.StatusNotFound)
		}
		log.Printf("DeletePost error for post %d: %v", postID, err)
		return apiError.ErrInternalServerError
	}
	return nil
}
