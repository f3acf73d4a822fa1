package services

import (
	"errors"
	"time"

	"github.com/wayfarehq/wayfare/config"
	"github.com/wayfarehq/wayfare/db"
	"github.com/wayfarehq/wayfare/models"
	"gorm.io/gorm"
)

func testConfig() *config.Config {
	return &config.Config{JWTSecret: "test-secret"}
}

// In-memory repository doubles. They honour the same not-found and
// duplicate semantics as the gorm-backed implementations.

type fakeAuthRepo struct {
	users     map[uint]*models.User
	nextID    uint
	blacklist map[string]bool
}

func newFakeAuthRepo() *fakeAuthRepo {
	return &fakeAuthRepo{users: map[uint]*models.User{}, nextID: 1, blacklist: map[string]bool{}}
}

func (f *fakeAuthRepo) CreateUser(user *models.User) (*models.User, error) {
	user.ID = f.nextID
	f.nextID++
	f.users[user.ID] = user
	return user, nil
}

func (f *fakeAuthRepo) IsEmailExist(email string, excludeUserID uint) error {
	for _, u := range f.users {
		if u.Email == email && u.ID != excludeUserID {
			return errors.New("email already in use")
		}
	}
	return nil
}

func (f *fakeAuthRepo) IsUserNameExist(userName string, excludeUserID uint) error {
	for _, u := range f.users {
		if u.UserName == userName && u.ID != excludeUserID {
			return errors.New("user_name already in use")
		}
	}
	return nil
}

func (f *fakeAuthRepo) FindUserByIdentity(identity string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == identity || u.UserName == identity {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAuthRepo) FindUserByID(id uint) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (f *fakeAuthRepo) FindUserWithRelations(id uint) (*models.User, error) {
	return f.FindUserByID(id)
}

func (f *fakeAuthRepo) UpdateUserProfile(userID uint, changes map[string]interface{}) (*models.User, error) {
	u, ok := f.users[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if v, ok := changes["first_name"].(string); ok {
		u.FirstName = v
	}
	if v, ok := changes["last_name"].(string); ok {
		u.LastName = v
	}
	if v, ok := changes["user_name"].(string); ok {
		u.UserName = v
	}
	if v, ok := changes["email"].(string); ok {
		u.Email = v
	}
	if v, ok := changes["bio"].(string); ok {
		u.Bio = v
	}
	if v, ok := changes["profile_img"].(string); ok {
		u.ProfileImg = v
	}
	return u, nil
}

func (f *fakeAuthRepo) DeleteUser(userID uint) error {
	if _, ok := f.users[userID]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.users, userID)
	return nil
}

func (f *fakeAuthRepo) AddToBlacklist(token string) error {
	f.blacklist[token] = true
	return nil
}

func (f *fakeAuthRepo) IsTokenInBlacklist(token string) bool {
	return f.blacklist[token]
}

type fakeDestinationRepo struct {
	destinations map[uint]*models.Destination
	nextID       uint
}

func newFakeDestinationRepo() *fakeDestinationRepo {
	return &fakeDestinationRepo{destinations: map[uint]*models.Destination{}, nextID: 1}
}

func (f *fakeDestinationRepo) CreateDestination(destination *models.Destination) error {
	for _, d := range f.destinations {
		if d.DestinationName == destination.DestinationName {
			return errors.New("duplicate key value violates unique constraint on destination_name")
		}
	}
	destination.ID = f.nextID
	f.nextID++
	f.destinations[destination.ID] = destination
	return nil
}

func (f *fakeDestinationRepo) GetAllDestinations() ([]models.Destination, error) {
	out := []models.Destination{}
	for _, d := range f.destinations {
		out = append(out, *d)
	}
	return out, nil
}

func (f *fakeDestinationRepo) FindDestinationByID(id uint) (*models.Destination, error) {
	d, ok := f.destinations[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return d, nil
}

func (f *fakeDestinationRepo) UpdateDestination(id uint, changes map[string]interface{}) (*models.Destination, error) {
	d, ok := f.destinations[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if v, ok := changes["destination_name"].(string); ok {
		d.DestinationName = v
	}
	return d, nil
}

func (f *fakeDestinationRepo) DeleteDestination(id uint) error {
	if _, ok := f.destinations[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.destinations, id)
	return nil
}

type fakeTripRepo struct {
	trips  map[uint]*models.Trip
	nextID uint
}

func newFakeTripRepo() *fakeTripRepo {
	return &fakeTripRepo{trips: map[uint]*models.Trip{}, nextID: 1}
}

func (f *fakeTripRepo) CreateTrip(trip *models.Trip) error {
	trip.ID = f.nextID
	f.nextID++
	f.trips[trip.ID] = trip
	return nil
}

func (f *fakeTripRepo) GetTripsByUserID(userID uint) ([]models.Trip, error) {
	out := []models.Trip{}
	for _, t := range f.trips {
		if t.UserID == userID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (f *fakeTripRepo) FindTripByID(id uint) (*models.Trip, error) {
	t, ok := f.trips[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return t, nil
}

func (f *fakeTripRepo) UpdateTrip(id uint, changes map[string]interface{}) (*models.Trip, error) {
	t, ok := f.trips[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if v, ok := changes["trip_name"].(string); ok {
		t.TripName = v
	}
	if v, ok := changes["destination_id"].(uint); ok {
		t.DestinationID = v
	}
	if v, ok := changes["start_date"].(time.Time); ok {
		t.StartDate = v
	}
	if v, ok := changes["end_date"].(time.Time); ok {
		t.EndDate = v
	}
	return t, nil
}

func (f *fakeTripRepo) DeleteTrip(id uint) error {
	if _, ok := f.trips[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.trips, id)
	return nil
}

type fakePostRepo struct {
	posts  map[uint]*models.Post
	nextID uint
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: map[uint]*models.Post{}, nextID: 1}
}

func (f *fakePostRepo) CreatePost(post *models.Post) error {
	post.ID = f.nextID
	f.nextID++
	f.posts[post.ID] = post
	return nil
}

func (f *fakePostRepo) GetPostsByUserID(userID uint) ([]models.Post, error) {
	out := []models.Post{}
	for _, p := range f.posts {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePostRepo) GetPostsByDestinationID(destinationID uint) ([]models.Post, error) {
	out := []models.Post{}
	for _, p := range f.posts {
		if p.DestinationID == destinationID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePostRepo) FindPostByID(id uint) (*models.Post, error) {
	p, ok := f.posts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (f *fakePostRepo) UpdatePost(id uint, changes map[string]interface{}) (*models.Post, error) {
	p, ok := f.posts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if v, ok := changes["text"].(string); ok {
		p.Text = v
	}
	if v, ok := changes["post_img"].(string); ok {
		p.PostImg = v
	}
	return p, nil
}

func (f *fakePostRepo) DeletePost(id uint) error {
	if _, ok := f.posts[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.posts, id)
	return nil
}

type fakeCommentRepo struct {
	comments map[uint]*models.Comment
	nextID   uint
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: map[uint]*models.Comment{}, nextID: 1}
}

func (f *fakeCommentRepo) CreateComment(comment *models.Comment) error {
	comment.ID = f.nextID
	f.nextID++
	f.comments[comment.ID] = comment
	return nil
}

func (f *fakeCommentRepo) GetCommentsByUserID(userID uint) ([]models.Comment, error) {
	out := []models.Comment{}
	for _, c := range f.comments {
		if c.UserID == userID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeCommentRepo) GetCommentsByPostID(postID uint) ([]models.Comment, error) {
	out := []models.Comment{}
	for _, c := range f.comments {
		if c.PostID == postID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeCommentRepo) FindCommentByID(id uint) (*models.Comment, error) {
	c, ok := f.comments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (f *fakeCommentRepo) UpdateComment(id uint, changes map[string]interface{}) (*models.Comment, error) {
	c, ok := f.comments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if v, ok := changes["text"].(string); ok {
		c.Text = v
	}
	return c, nil
}

func (f *fakeCommentRepo) DeleteComment(id uint) error {
	if _, ok := f.comments[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.comments, id)
	return nil
}

type fakeLikeRepo struct {
	likes  map[uint]*models.Like
	nextID uint
}

func newFakeLikeRepo() *fakeLikeRepo {
	return &fakeLikeRepo{likes: map[uint]*models.Like{}, nextID: 1}
}

func (f *fakeLikeRepo) ToggleLike(userID, postID uint) (*models.LikeToggleResponse, error) {
	for id, l := range f.likes {
		if l.UserID == userID && l.PostID == postID {
			delete(f.likes, id)
			return &models.LikeToggleResponse{Action: models.LikeActionUnlike}, nil
		}
	}
	like := &models.Like{PostID: postID, UserID: userID}
	like.ID = f.nextID
	f.nextID++
	f.likes[like.ID] = like
	return &models.LikeToggleResponse{Action: models.LikeActionLike, Like: like}, nil
}

func (f *fakeLikeRepo) GetLikesByUserID(userID uint) ([]models.Like, error) {
	out := []models.Like{}
	for _, l := range f.likes {
		if l.UserID == userID {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (f *fakeLikeRepo) GetLikesByPostID(postID uint) ([]models.Like, error) {
	out := []models.Like{}
	for _, l := range f.likes {
		if l.PostID == postID {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (f *fakeLikeRepo) FindLikeByID(id uint) (*models.Like, error) {
	l, ok := f.likes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return l, nil
}

func (f *fakeLikeRepo) DeleteLike(id uint) error {
	if _, ok := f.likes[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.likes, id)
	return nil
}

type fakeFollowRepo struct {
	edges []models.Follow
}

func newFakeFollowRepo() *fakeFollowRepo {
	return &fakeFollowRepo{}
}

func (f *fakeFollowRepo) CreateFollow(followedByID, followingID uint) (*models.Follow, error) {
	for _, e := range f.edges {
		if e.FollowedByID == followedByID && e.FollowingID == followingID {
			return nil, db.ErrDuplicateFollow
		}
	}
	follow := models.Follow{FollowedByID: followedByID, FollowingID: followingID}
	follow.ID = uint(len(f.edges) + 1)
	f.edges = append(f.edges, follow)
	return &follow, nil
}

func (f *fakeFollowRepo) DeleteFollow(followedByID, followingID uint) error {
	for i, e := range f.edges {
		if e.FollowedByID == followedByID && e.FollowingID == followingID {
			f.edges = append(f.edges[:i], f.edges[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeFollowRepo) GetFollowsByUserID(userID uint) ([]models.Follow, error) {
	out := []models.Follow{}
	for _, e := range f.edges {
		if e.FollowedByID == userID || e.FollowingID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeFollowRepo) GetFollowing(userID uint) ([]models.Follow, error) {
	out := []models.Follow{}
	for _, e := range f.edges {
		if e.FollowedByID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeFollowRepo) GetFollowedBy(userID uint) ([]models.Follow, error) {
	out := []models.Follow{}
	for _, e := range f.edges {
		if e.FollowingID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}
