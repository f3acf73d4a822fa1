package services

import (
	"errors"
	"log"
	"net/http"

	"github.com/wayfarehq/wayfare/config"
	"github.com/wayfarehq/wayfare/db"
	apiError "github.com/wayfarehq/wayfare/errors"
	"github.com/wayfarehq/wayfare/models"
	"github.com/wayfarehq/wayfare/services/jwt"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService owns registration, login and the authenticated account.
type AuthService interface {
	SignupUser(user *models.User) (*models.UserResponse, *apiError.Error)
	LoginUser(loginRequest *models.LoginRequest) (*models.LoginResponse, *apiError.Error)
	GetUserProfile(userID uint) (*models.UserResponse, *apiError.Error)
	GetAccount(userID uint) (*models.AccountResponse, *apiError.Error)
	EditUserProfile(userID uint, patch *models.UpdateUserRequest) (*models.UserResponse, *apiError.Error)
	DeleteUser(userID uint) *apiError.Error
	LogoutUser(accessToken string) *apiError.Error
}

type authService struct {
	Config     *config.Config
	authRepo   db.AuthRepository
	followRepo db.FollowRepository
}

// NewAuthService instantiates an authService.
func NewAuthService(authRepo db.AuthRepository, followRepo db.FollowRepository, conf *config.Config) AuthService {
	return &authService{
		Config:     conf,
		authRepo:   authRepo,
		followRepo: followRepo,
	}
}

func (a *authService) SignupUser(user *models.User) (*models.UserResponse, *apiError.Error) {
	if err := models.ValidatePassword(user.Password); err != nil {
		return nil, apiError.New(err.Error(), http.StatusBadRequest)
	}

	if err := a.authRepo.IsEmailExist(user.Email, 0); err != nil {
		return nil, apiError.GetUniqueConstraintError(err)
	}
	if err := a.authRepo.IsUserNameExist(user.UserName, 0); err != nil {
		return nil, apiError.GetUniqueConstraintError(err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("SignupUser error hashing password: %v", err)
		return nil, apiError.ErrInternalServerError
	}
	user.HashedPassword = string(hashedPassword)
	user.Password = ""

	created, err := a.authRepo.CreateUser(user)
	if err != nil {
		log.Printf("SignupUser error creating user: %v", err)
		return nil, apiError.ErrInternalServerError
	}

	return models.NewUserResponse(created), nil
}

func (a *authService) LoginUser(loginRequest *models.LoginRequest) (*models.LoginResponse, *apiError.Error) {
	foundUser, err := a.authRepo.FindUserByIdentity(loginRequest.Identity)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apiError.ErrInvalidPassword
		}
		log.Printf("Error finding user by identity: %v", err)
		return nil, apiError.ErrInternalServerError
	}

	if err := foundUser.VerifyPassword(loginRequest.Password); err != nil {
		return nil, apiError.ErrInvalidPassword
	}

	accessToken, err := jwt.GenerateToken(foundUser.ID, a.Config.JWTSecret)
	if err != nil {
		log.Printf("Error generating token for user %d: %v", foundUser.ID, err)
		return nil, apiError.ErrInternalServerError
	}

	return &models.LoginResponse{
		UserResponse: *models.NewUserResponse(foundUser),
		AccessToken:  accessToken,
	}, nil
}

func (a *authService) GetUserProfile(userID uint) (*models.UserResponse, *apiError.Error) {
	user, err := a.authRepo.FindUserByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apiError.ErrNotFound
		}
		return nil, apiError.ErrInternalServerError
	}
	return models.NewUserResponse(user), nil
}

// GetAccount assembles the entirety of the authenticated user's data.
func (a *authService) GetAccount(userID uint) (*models.AccountResponse, *apiError.Error) {
	user, err := a.authRepo.FindUserWithRelations(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apiError.ErrNotFound
		}
		log.Printf("GetAccount error for user %d: %v", userID, err)
		return nil, apiError.ErrInternalServerError
	}

	followedBy, err := a.followRepo.GetFollowedBy(userID)
	if err != nil {
		log.Printf("GetAccount error loading followers for user %d: %v", userID, err)
		return nil, apiError.ErrInternalServerError
	}
	following, err := a.followRepo.GetFollowing(userID)
	if err != nil {
		log.Printf("GetAccount error loading following for user %d: %v", userID, err)
		return nil, apiError.ErrInternalServerError
	}

	return &models.AccountResponse{
		UserResponse: *models.NewUserResponse(user),
		FollowedBy:   followedBy,
		Following:    following,
		Trips:        user.Trips,
		Posts:        user.Posts,
		Comments:     user.Comments,
		Likes:        user.Likes,
	}, nil
}

func (a *authService) EditUserProfile(userID uint, patch *models.UpdateUserRequest) (*models.UserResponse, *apiError.Error) {
	changes := patch.Changes()
	if len(changes) == 0 {
		return nil, apiError.New("at least one field is required for an update", http.StatusBadRequest)
	}

	// The caller's own row is excluded so re-submitting the current email
	// or user name alongside a real change still succeeds.
	if patch.Email != nil {
		if err := a.authRepo.IsEmailExist(*patch.Email, userID); err != nil {
			return nil, apiError.GetUniqueConstraintError(err)
		}
	}
	if patch.UserName != nil {
		if err := a.authRepo.IsUserNameExist(*patch.UserName, userID); err != nil {
			return nil, apiError.GetUniqueConstraintError(err)
		}
	}

	user, err := a.authRepo.UpdateUserProfile(userID, changes)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apiError.ErrNotFound
		}
		log.Printf("EditUserProfile error for user %d: %v", userID, err)
		return nil, apiError.ErrInternalServerError
	}
	return models.NewUserResponse(user), nil
}

func (a *authService) DeleteUser(userID uint) *apiError.Error {
	if err := a.authRepo.DeleteUser(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apiError.ErrNotFound
		}
		log.Printf("DeleteUser error for user %d: %v", userID, err)
		return apiError.ErrInternalServerError
	}
	return nil
}

func (a *authService) LogoutUser(accessToken string) *apiError.Error {
	if err := a.authRepo.AddToBlacklist(accessToken); err != nil {
		log.Printf("LogoutUser error blacklisting token: %v", err)
		return apiError.ErrInternalServerError
	}
	return nil
}
