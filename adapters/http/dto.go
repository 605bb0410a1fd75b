package http

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/khoahotran/dev-network/internal/domain/post"
	"github.com/khoahotran/dev-network/internal/domain/profile"
	"github.com/khoahotran/dev-network/internal/domain/user"
)

// Auth DTOs

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type UserDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func ToUserDTO(u *user.User) UserDTO {
	return UserDTO{
		ID:        u.ID.String(),
		Name:      u.Name,
		Email:     u.Email,
		Avatar:    u.Avatar,
		CreatedAt: u.CreatedAt,
	}
}

// Profile DTOs

// UpsertProfileRequest carries the partial field set for a profile upsert.
// Status and the raw skills value are the only required fields; everything
// else is merged only when supplied.
type UpsertProfileRequest struct {
	Company        string `json:"company"`
	Website        string `json:"website"`
	Location       string `json:"location"`
	Bio            string `json:"bio"`
	Status         string `json:"status" binding:"required"`
	GithubUsername string `json:"github_username"`
	Skills         string `json:"skills" binding:"required"`
	Youtube        string `json:"youtube"`
	Twitter        string `json:"twitter"`
	Facebook       string `json:"facebook"`
	Linkedin       string `json:"linkedin"`
	Instagram      string `json:"instagram"`
}

func (r *UpsertProfileRequest) ToUpdateFields() profile.UpdateFields {
	return profile.UpdateFields{
		Company:        r.Company,
		Website:        r.Website,
		Location:       r.Location,
		Bio:            r.Bio,
		Status:         r.Status,
		GithubUsername: r.GithubUsername,
		Skills:         r.Skills,
		Social: map[string]string{
			"youtube":   r.Youtube,
			"twitter":   r.Twitter,
			"facebook":  r.Facebook,
			"linkedin":  r.Linkedin,
			"instagram": r.Instagram,
		},
	}
}

type AddExperienceRequest struct {
	Title       string     `json:"title" binding:"required"`
	Company     string     `json:"company" binding:"required"`
	Location    string     `json:"location"`
	From        time.Time  `json:"from" binding:"required"`
	To          *time.Time `json:"to"`
	Current     bool       `json:"current"`
	Description string     `json:"description"`
}

func (r *AddExperienceRequest) ToDomain() profile.Experience {
	return profile.Experience{
		Title:       r.Title,
		Company:     r.Company,
		Location:    r.Location,
		From:        r.From,
		To:          r.To,
		Current:     r.Current,
		Description: r.Description,
	}
}

type AddEducationRequest struct {
	School       string     `json:"school" binding:"required"`
	Degree       string     `json:"degree" binding:"required"`
	FieldOfStudy string     `json:"field_of_study" binding:"required"`
	From         time.Time  `json:"from" binding:"required"`
	To           *time.Time `json:"to"`
	Current      bool       `json:"current"`
	Description  string     `json:"description"`
}

func (r *AddEducationRequest) ToDomain() profile.Education {
	return profile.Education{
		School:       r.School,
		Degree:       r.Degree,
		FieldOfStudy: r.FieldOfStudy,
		From:         r.From,
		To:           r.To,
		Current:      r.Current,
		Description:  r.Description,
	}
}

type ExperienceDTO struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    string     `json:"location,omitempty"`
	From        time.Time  `json:"from"`
	To          *time.Time `json:"to,omitempty"`
	Current     bool       `json:"current"`
	Description string     `json:"description,omitempty"`
}

type EducationDTO struct {
	ID           string     `json:"id"`
	School       string     `json:"school"`
	Degree       string     `json:"degree"`
	FieldOfStudy string     `json:"field_of_study"`
	From         time.Time  `json:"from"`
	To           *time.Time `json:"to,omitempty"`
	Current      bool       `json:"current"`
	Description  string     `json:"description,omitempty"`
}

type ProfileDTO struct {
	OwnerID        string            `json:"owner_id"`
	Company        string            `json:"company,omitempty"`
	Website        string            `json:"website,omitempty"`
	Location       string            `json:"location,omitempty"`
	Bio            string            `json:"bio,omitempty"`
	Status         string            `json:"status"`
	GithubUsername string            `json:"github_username,omitempty"`
	Skills         []string          `json:"skills"`
	Social         map[string]string `json:"social"`
	Experience     []ExperienceDTO   `json:"experience"`
	Education      []EducationDTO    `json:"education"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

func ToProfileDTO(p *profile.Profile) ProfileDTO {
	dto := ProfileDTO{
		OwnerID:        p.OwnerID.String(),
		Company:        p.Company,
		Website:        p.Website,
		Location:       p.Location,
		Bio:            p.Bio,
		Status:         p.Status,
		GithubUsername: p.GithubUsername,
		Skills:         p.Skills,
		Social:         p.Social,
		UpdatedAt:      p.UpdatedAt,
	}
	dto.Experience = make([]ExperienceDTO, len(p.Experience))
	for i, e := range p.Experience {
		dto.Experience[i] = ExperienceDTO{
			ID:          e.ID.String(),
			Title:       e.Title,
			Company:     e.Company,
			Location:    e.Location,
			From:        e.From,
			To:          e.To,
			Current:     e.Current,
			Description: e.Description,
		}
	}
	dto.Education = make([]EducationDTO, len(p.Education))
	for i, e := range p.Education {
		dto.Education[i] = EducationDTO{
			ID:           e.ID.String(),
			School:       e.School,
			Degree:       e.Degree,
			FieldOfStudy: e.FieldOfStudy,
			From:         e.From,
			To:           e.To,
			Current:      e.Current,
			Description:  e.Description,
		}
	}
	return dto
}

// Post DTOs

type CreatePostRequest struct {
	Text string `json:"text" binding:"required"`
}

type PostDTO struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Text      string    `json:"text"`
	Name      string    `json:"name,omitempty"`
	Avatar    string    `json:"avatar,omitempty"`
	Likes     int       `json:"likes"`
	Comments  int       `json:"comments"`
	CreatedAt time.Time `json:"created_at"`
}

func ToPostDTO(p *post.Post) PostDTO {
	return PostDTO{
		ID:        p.ID.String(),
		OwnerID:   p.OwnerID.String(),
		Text:      p.Text,
		Name:      p.Name,
		Avatar:    p.Avatar,
		Likes:     len(p.Likes),
		Comments:  len(p.Comments),
		CreatedAt: p.CreatedAt,
	}
}

// bindingErrorDetails names the fields a failed binding complained about, so
// validation failures report exactly what the caller must fix.
func bindingErrorDetails(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, len(verrs))
		for i, fe := range verrs {
			fields[i] = fmt.Sprintf("%s is %s", strings.ToLower(fe.Field()), fe.Tag())
		}
		return strings.Join(fields, "; ")
	}
	return err.Error()
}
