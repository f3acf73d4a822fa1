package models

import (
	"errors"
	"fmt"

	goval "github.com/go-passwd/validator"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/leebenson/conform"
	"golang.org/x/crypto/bcrypt"
)

// User represents a registered traveller. A user owns its trips, posts,
// comments and likes; follow edges reference it on either side.
type User struct {
	Model
	UserName       string    `json:"userName" gorm:"uniqueIndex;not null" binding:"required,min=2" conform:"trim"`
	Email          string    `json:"email" gorm:"uniqueIndex;not null" binding:"required,email" conform:"trim,lower"`
	Password       string    `json:"password,omitempty" gorm:"-" binding:"required"`
	HashedPassword string    `json:"-"`
	FirstName      string    `json:"firstName" conform:"trim"`
	LastName       string    `json:"lastName" conform:"trim"`
	Bio            string    `json:"bio" gorm:"type:text"`
	ProfileImg     string    `json:"profileImg"`
	Trips          []Trip    `json:"trips,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	Posts          []Post    `json:"posts,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	Comments       []Comment `json:"comments,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	Likes          []Like    `json:"likes,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}

// VerifyPassword compares the supplied password with the stored hash.
func (u *User) VerifyPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.HashedPassword), []byte(password))
}

func ValidatePassword(password string) error {
	passwordValidator := goval.New(goval.MinLength(6, errors.New("password cant be less than 6 characters")),
		goval.MaxLength(72, errors.New("password cant be more than 72 characters")))
	return passwordValidator.Validate(password)
}

// ConformInput trims and normalizes the whitespace-sensitive string fields
// of a request struct before validation.
func ConformInput(data interface{}) error {
	return conform.Strings(data)
}

func TranslateError(err error, trans ut.Translator) (errs []error) {
	if err == nil {
		return nil
	}
	validatorErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []error{err}
	}
	for _, e := range validatorErrs {
		translatedErr := fmt.Errorf(e.Translate(trans))
		errs = append(errs, translatedErr)
	}
	return errs
}

// UserResponse is the public view of a user. It never carries credentials.
type UserResponse struct {
	ID         uint   `json:"id"`
	UserName   string `json:"userName"`
	Email      string `json:"email"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Bio        string `json:"bio"`
	ProfileImg string `json:"profileImg"`
}

func NewUserResponse(u *User) *UserResponse {
	return &UserResponse{
		ID:         u.ID,
		UserName:   u.UserName,
		Email:      u.Email,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Bio:        u.Bio,
		ProfileImg: u.ProfileImg,
	}
}

// LoginRequest authenticates by user name or email.
type LoginRequest struct {
	Identity string `json:"identity" binding:"required" conform:"trim"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	UserResponse
	AccessToken string `json:"token"`
}

// UpdateUserRequest is the merge-patch for the authenticated account.
// Nil fields are left untouched.
type UpdateUserRequest struct {
	FirstName  *string `json:"firstName" conform:"trim"`
	LastName   *string `json:"lastName" conform:"trim"`
	UserName   *string `json:"userName" conform:"trim"`
	Email      *string `json:"email" conform:"trim,lower"`
	Bio        *string `json:"bio"`
	ProfileImg *string `json:"profileImg"`
}

// Changes returns only the fields present in the patch, keyed by column.
func (r *UpdateUserRequest) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if r.FirstName != nil {
		changes["first_name"] = *r.FirstName
	}
	if r.LastName != nil {
		changes["last_name"] = *r.LastName
	}
	if r.UserName != nil {
		changes["user_name"] = *r.UserName
	}
	if r.Email != nil {
		changes["email"] = *r.Email
	}
	if r.Bio != nil {
		changes["bio"] = *r.Bio
	}
	if r.ProfileImg != nil {
		changes["profile_img"] = *r.ProfileImg
	}
	return changes
}

// AccountResponse is the entirety of the authenticated user's data:
// the profile plus everything it owns and both sides of its follow edges.
type AccountResponse struct {
	UserResponse
	FollowedBy []Follow  `json:"followedBy"`
	Following  []Follow  `json:"following"`
	Trips      []Trip    `json:"trips"`
	Posts      []Post    `json:"posts"`
	Comments   []Comment `json:"comments"`
	Likes      []Like    `json:"likes"`
}

// Blacklist holds access tokens invalidated by logout before their expiry.
type Blacklist struct {
	Model
	Token string `json:"-" gorm:"type:text;not null;index"`
}
