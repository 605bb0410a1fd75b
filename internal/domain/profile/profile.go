package profile

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrProfileNotFound = errors.New("profile not found")

// Experience is an embedded work-history record. Records are never edited in
// place: they are added and removed as a whole.
type Experience struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    string     `json:"location,omitempty"`
	From        time.Time  `json:"from"`
	To          *time.Time `json:"to,omitempty"`
	Current     bool       `json:"current"`
	Description string     `json:"description,omitempty"`
}

type Education struct {
	ID           uuid.UUID  `json:"id"`
	School       string     `json:"school"`
	Degree       string     `json:"degree"`
	FieldOfStudy string     `json:"field_of_study"`
	From         time.Time  `json:"from"`
	To           *time.Time `json:"to,omitempty"`
	Current      bool       `json:"current"`
	Description  string     `json:"description,omitempty"`
}

// Profile is the single owned document for a user's professional profile.
// At most one profile exists per owner, and the owner never changes after
// creation. Experience and education are kept newest-first by insertion time.
type Profile struct {
	OwnerID        uuid.UUID         `json:"owner_id"`
	Company        string            `json:"company,omitempty"`
	Website        string            `json:"website,omitempty"`
	Location       string            `json:"location,omitempty"`
	Bio            string            `json:"bio,omitempty"`
	Status         string            `json:"status"`
	GithubUsername string            `json:"github_username,omitempty"`
	Skills         []string          `json:"skills"`
	Social         map[string]string `json:"social"`
	Experience     []Experience      `json:"experience"`
	Education      []Education       `json:"education"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// SocialPlatforms lists the platform keys a profile accepts. Anything else
// supplied by a caller is dropped at the transport layer.
var SocialPlatforms = []string{"youtube", "twitter", "facebook", "linkedin", "instagram"}

// UpdateFields is the partial field set a caller supplies on upsert. Skills is
// the raw comma-delimited value; an empty string means "not supplied" for
// every field, including the social links.
type UpdateFields struct {
	Company        string
	Website        string
	Location       string
	Bio            string
	Status         string
	GithubUsername string
	Skills         string
	Social         map[string]string
}

// ParseSkills splits the raw comma-delimited value and trims each piece. The
// result is stored verbatim: no de-duplication and no empty-token filtering.
func ParseSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	skills := make([]string, len(parts))
	for i, p := range parts {
		skills[i] = strings.TrimSpace(p)
	}
	return skills
}

// New builds a fresh profile for an owner. The owner is fixed here and never
// reassigned.
func New(ownerID uuid.UUID, f UpdateFields) *Profile {
	p := &Profile{
		OwnerID:    ownerID,
		Social:     map[string]string{},
		Experience: []Experience{},
		Education:  []Education{},
	}
	p.ApplyUpdate(f)
	return p
}

// ApplyUpdate merges the supplied fields into the profile. Every field
// independently keeps its previous value unless the caller supplied a
// non-empty replacement; omission never clears anything. Experience and
// education are untouched by upserts.
func (p *Profile) ApplyUpdate(f UpdateFields) {
	if f.Company != "" {
		p.Company = f.Company
	}
	if f.Website != "" {
		p.Website = f.Website
	}
	if f.Location != "" {
		p.Location = f.Location
	}
	if f.Bio != "" {
		p.Bio = f.Bio
	}
	if f.Status != "" {
		p.Status = f.Status
	}
	if f.GithubUsername != "" {
		p.GithubUsername = f.GithubUsername
	}
	if f.Skills != "" {
		p.Skills = ParseSkills(f.Skills)
	}

	if p.Social == nil {
		p.Social = map[string]string{}
	}
	for _, platform := range SocialPlatforms {
		if v := f.Social[platform]; v != "" {
			p.Social[platform] = v
		}
	}
}

// AddExperience assigns a fresh id and prepends the record, so the collection
// stays most-recent-first by insertion regardless of the record's own dates.
func (p *Profile) AddExperience(e Experience) Experience {
	e.ID = uuid.New()
	p.Experience = append([]Experience{e}, p.Experience...)
	return e
}

func (p *Profile) AddEducation(e Education) Education {
	e.ID = uuid.New()
	p.Education = append([]Education{e}, p.Education...)
	return e
}

// RemoveExperience removes the first record whose id matches and reports
// whether anything was removed. A miss leaves the collection unchanged.
func (p *Profile) RemoveExperience(id uuid.UUID) bool {
	for i, e := range p.Experience {
		if e.ID == id {
			p.Experience = append(p.Experience[:i], p.Experience[i+1:]...)
			return true
		}
	}
	return false
}

func (p *Profile) RemoveEducation(id uuid.UUID) bool {
	for i, e := range p.Education {
		if e.ID == id {
			p.Education = append(p.Education[:i], p.Education[i+1:]...)
			return true
		}
	}
	return false
}

type Repository interface {
	GetByOwnerID(ctx context.Context, ownerID uuid.UUID) (*Profile, error)
	ListAll(ctx context.Context) ([]*Profile, error)
	Upsert(ctx context.Context, profile *Profile) error
	DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error
}
