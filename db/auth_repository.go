package db

import (
	"github.com/pkg/errors"
	"github.com/wayfarehq/wayfare/models"
	"gorm.io/gorm"
)

type AuthRepository interface {
	CreateUser(user *models.User) (*models.User, error)
	IsEmailExist(email string, excludeUserID uint) error
	IsUserNameExist(userName string, excludeUserID uint) error
	FindUserByIdentity(identity string) (*models.User, error)
	FindUserByID(id uint) (*models.User, error)
	FindUserWithRelations(id uint) (*models.User, error)
	UpdateUserProfile(userID uint, changes map[string]interface{}) (*models.User, error)
	DeleteUser(userID uint) error
	AddToBlacklist(token string) error
	IsTokenInBlacklist(token string) bool
}

type authRepo struct {
	DB *gorm.DB
}

func NewAuthRepo(db *GormDB) AuthRepository {
	return &authRepo{db.DB}
}

func (a *authRepo) CreateUser(user *models.User) (*models.User, error) {
	if user == nil {
		return nil, errors.New("user is nil")
	}
	if err := a.DB.Create(user).Error; err != nil {
		return nil, errors.Wrap(err, "could not create user")
	}
	return user, nil
}

// IsEmailExist reports whether another user already holds the email.
// excludeUserID lets a profile update re-submit the caller's own address.
func (a *authRepo) IsEmailExist(email string, excludeUserID uint) error {
	var count int64
	query := a.DB.Model(&models.User{}).Where("email = ?", email)
	if excludeUserID != 0 {
		query = query.Where("id <> ?", excludeUserID)
	}
	if err := query.Count(&count).Error; err != nil {
		return errors.Wrap(err, "gorm count error")
	}
	if count > 0 {
		return errors.New("email already in use")
	}
	return nil
}

func (a *authRepo) IsUserNameExist(userName string, excludeUserID uint) error {
	var count int64
	query := a.DB.Model(&models.User{}).Where("user_name = ?", userName)
	if excludeUserID != 0 {
		query = query.Where("id <> ?", excludeUserID)
	}
	if err := query.Count(&count).Error; err != nil {
		return errors.Wrap(err, "gorm count error")
	}
	if count > 0 {
		return errors.New("user_name already in use")
	}
	return nil
}

// FindUserByIdentity looks a user up by user name or email.
func (a *authRepo) FindUserByIdentity(identity string) (*models.User, error) {
	user := &models.User{}
	err := a.DB.Where("email = ? OR user_name = ?", identity, identity).First(user).Error
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (a *authRepo) FindUserByID(id uint) (*models.User, error) {
	user := &models.User{}
	if err := a.DB.First(user, id).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// FindUserWithRelations loads the user plus everything it owns.
func (a *authRepo) FindUserWithRelations(id uint) (*models.User, error) {
	user := &models.User{}
	err := a.DB.
		Preload("Trips").
		Preload("Posts").
		Preload("Comments").
		Preload("Likes").
		First(user, id).Error
	if err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateUserProfile applies a merge-patch: only the supplied columns change.
func (a *authRepo) UpdateUserProfile(userID uint, changes map[string]interface{}) (*models.User, error) {
	user := &models.User{}
	if err := a.DB.First(user, userID).Error; err != nil {
		return nil, err
	}
	if len(changes) > 0 {
		if err := a.DB.Model(user).Updates(changes).Error; err != nil {
			return nil, err
		}
	}
	return user, nil
}

func (a *authRepo) DeleteUser(userID uint) error {
	result := a.DB.Delete(&models.User{}, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (a *authRepo) AddToBlacklist(token string) error {
	return a.DB.Create(&models.Blacklist{Token: token}).Error
}

func (a *authRepo) IsTokenInBlacklist(token string) bool {
	var count int64
	a.DB.Model(&models.Blacklist{}).Where("token = ?", token).Count(&count)
	return count > 0
}
