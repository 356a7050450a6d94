package handler

import (
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/aneves/socialnet/internal/domain"
)

// Letters (including accented) and spaces only, as profile names allow.
var nameRe = regexp.MustCompile(`^[A-Za-zÀ-ÖØ-öø-ÿ ]+$`)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r registerRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required,
			validation.Length(2, 100),
			validation.Match(nameRe).Error("Name invalid."),
		),
		validation.Field(&r.Email,
			validation.Required,
			validation.Length(2, 100),
			is.Email,
		),
		validation.Field(&r.Password,
			validation.Required,
			validation.Length(6, 20).Error("Password must be between 6 and 20 characters long."),
		),
	)
}

type updateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

func (r updateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.NilOrNotEmpty,
			validation.Length(2, 100),
			validation.Match(nameRe).Error("Name invalid."),
		),
		validation.Field(&r.Email,
			validation.NilOrNotEmpty,
			validation.Length(2, 100),
			is.Email,
		),
		validation.Field(&r.Password,
			validation.NilOrNotEmpty,
			validation.Length(6, 20).Error("Password must be between 6 and 20 characters long."),
		),
	)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r loginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

type createPostRequest struct {
	Title    string  `json:"title"`
	Content  string  `json:"content"`
	ImageURL *string `json:"image_url"`
}

func (r createPostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("The title field is required. Please provide a title for the post."),
			validation.Length(1, 100).Error("The title cannot be longer than 100 characters."),
		),
		validation.Field(&r.Content,
			validation.Required.Error("The content field is required. Please provide the post content."),
		),
		validation.Field(&r.ImageURL,
			validation.Length(1, 255).Error("The image URL cannot be longer than 255 characters."),
			is.URL.Error("The provided image URL is not valid. Please enter a URL in the correct format (e.g., http://example.com/image.jpg)."),
		),
	)
}

type updatePostRequest struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	ImageURL *string `json:"image_url"`
}

func (r updatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.NilOrNotEmpty.Error("The title cannot be blank."),
			validation.Length(1, 100).Error("The title cannot be longer than 100 characters."),
		),
		validation.Field(&r.Content,
			validation.NilOrNotEmpty.Error("The content cannot be blank."),
		),
		validation.Field(&r.ImageURL,
			validation.Length(1, 255).Error("The image URL cannot be longer than 255 characters."),
			is.URL.Error("The provided image URL is not valid. Please enter a URL in the correct format (e.g., http://example.com/image.jpg)."),
		),
	)
}

type userDTO struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at"`
}

func toUserDTO(u *domain.User) userDTO {
	return userDTO{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
		DeletedAt: u.DeletedAt,
	}
}

type postAuthorDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type postDTO struct {
	ID        int64         `json:"id"`
	Title     string        `json:"title"`
	Content   string        `json:"content"`
	ImageURL  *string       `json:"image_url"`
	User      postAuthorDTO `json:"user"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

func toPostDTO(p *domain.Post) postDTO {
	return postDTO{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		ImageURL:  p.ImageURL,
		User:      postAuthorDTO{ID: p.UserID, Name: p.AuthorName},
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func toPostDTOs(posts []domain.Post) []postDTO {
	out := make([]postDTO, 0, len(posts))
	for i := range posts {
		out = append(out, toPostDTO(&posts[i]))
	}
	return out
}

type followDTO struct {
	ID        int64     `json:"id"`
	Follower  int64     `json:"follower"`
	Following int64     `json:"following"`
	CreatedAt time.Time `json:"created_at"`
}

func toFollowDTO(f *domain.Follow) followDTO {
	return followDTO{
		ID:        f.ID,
		Follower:  f.FollowerID,
		Following: f.FollowingID,
		CreatedAt: f.CreatedAt,
	}
}
