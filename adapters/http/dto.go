package http

import (
	"time"

	"devfolio/internal/domain/certification"
	"devfolio/internal/domain/education"
	"devfolio/internal/domain/experience"
	"devfolio/internal/domain/interest"
	"devfolio/internal/domain/portfolio"
	"devfolio/internal/domain/profile"
	"devfolio/internal/domain/project"
	"devfolio/internal/domain/skill"
	"devfolio/pkg/apperror"
	"devfolio/pkg/commalist"
)

const dateLayout = "2006-01-02"

// parseDate turns an optional "YYYY-MM-DD" field into a *time.Time. The
// empty string means the field was left blank and maps to nil.
func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, apperror.NewInvalidInput("dates must be formatted YYYY-MM-DD", err)
	}
	return &t, nil
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

// Auth DTOs

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"full_name"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Profile DTOs

type ProfileDTO struct {
	FullName    *string   `json:"full_name"`
	Title       *string   `json:"title"`
	Bio         *string   `json:"bio"`
	AvatarURL   *string   `json:"avatar_url"`
	Phone       *string   `json:"phone"`
	Location    *string   `json:"location"`
	GitHubURL   *string   `json:"github_url"`
	LinkedInURL *string   `json:"linkedin_url"`
	Email       *string   `json:"email"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type UpdateProfileRequest struct {
	FullName    *string `json:"full_name"`
	Title       *string `json:"title"`
	Bio         *string `json:"bio"`
	AvatarURL   *string `json:"avatar_url"`
	Phone       *string `json:"phone"`
	Location    *string `json:"location"`
	GitHubURL   *string `json:"github_url"`
	LinkedInURL *string `json:"linkedin_url"`
	Email       *string `json:"email"`
}

func ToProfileDTO(p *profile.Profile) ProfileDTO {
	return ProfileDTO{
		FullName:    p.FullName,
		Title:       p.Title,
		Bio:         p.Bio,
		AvatarURL:   p.AvatarURL,
		Phone:       p.Phone,
		Location:    p.Location,
		GitHubURL:   p.GitHubURL,
		LinkedInURL: p.LinkedInURL,
		Email:       p.Email,
		UpdatedAt:   p.UpdatedAt,
	}
}

// Education DTOs. Achievements travel as a single comma-separated string in
// requests; responses carry both the parsed list and the joined form the
// edit form re-displays.

type EducationRequest struct {
	Degree       string  `json:"degree" binding:"required"`
	Institution  string  `json:"institution" binding:"required"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	Description  *string `json:"description"`
	GPA          *string `json:"gpa"`
	Achievements string  `json:"achievements"`
}

type EducationDTO struct {
	ID               string   `json:"id"`
	Degree           string   `json:"degree"`
	Institution      string   `json:"institution"`
	StartDate        *string  `json:"start_date"`
	EndDate          *string  `json:"end_date"`
	DateRange        string   `json:"date_range"`
	Description      *string  `json:"description"`
	GPA              *string  `json:"gpa"`
	Achievements     []string `json:"achievements"`
	AchievementsText string   `json:"achievements_text"`
}

func ToEducationDTO(e *education.Education) EducationDTO {
	return EducationDTO{
		ID:               e.ID.String(),
		Degree:           e.Degree,
		Institution:      e.Institution,
		StartDate:        formatDate(e.StartDate),
		EndDate:          formatDate(e.EndDate),
		DateRange:        portfolio.FormatDateRange(e.StartDate, e.EndDate),
		Description:      e.Description,
		GPA:              e.GPA,
		Achievements:     e.Achievements,
		AchievementsText: commalist.Join(e.Achievements),
	}
}

// Experience DTOs

type ExperienceRequest struct {
	Title        string  `json:"title" binding:"required"`
	Company      string  `json:"company" binding:"required"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	Description  *string `json:"description"`
	Technologies string  `json:"technologies"`
}

type ExperienceDTO struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Company          string   `json:"company"`
	StartDate        *string  `json:"start_date"`
	EndDate          *string  `json:"end_date"`
	DateRange        string   `json:"date_range"`
	Description      *string  `json:"description"`
	Technologies     []string `json:"technologies"`
	TechnologiesText string   `json:"technologies_text"`
}

func ToExperienceDTO(e *experience.Experience) ExperienceDTO {
	return ExperienceDTO{
		ID:               e.ID.String(),
		Title:            e.Title,
		Company:          e.Company,
		StartDate:        formatDate(e.StartDate),
		EndDate:          formatDate(e.EndDate),
		DateRange:        portfolio.FormatDateRange(e.StartDate, e.EndDate),
		Description:      e.Description,
		Technologies:     e.Technologies,
		TechnologiesText: commalist.Join(e.Technologies),
	}
}

// Project DTOs

type ProjectRequest struct {
	Title        string  `json:"title" binding:"required"`
	Description  *string `json:"description"`
	Technologies string  `json:"technologies"`
	GitHubURL    *string `json:"github_url"`
	DemoURL      *string `json:"demo_url"`
	ImageURL     *string `json:"image_url"`
	Featured     bool    `json:"featured"`
}

type ProjectDTO struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Description      *string  `json:"description"`
	Technologies     []string `json:"technologies"`
	TechnologiesText string   `json:"technologies_text"`
	GitHubURL        *string  `json:"github_url"`
	DemoURL          *string  `json:"demo_url"`
	ImageURL         *string  `json:"image_url"`
	Featured         bool     `json:"featured"`
}

func ToProjectDTO(p *project.Project) ProjectDTO {
	return ProjectDTO{
		ID:               p.ID.String(),
		Title:            p.Title,
		Description:      p.Description,
		Technologies:     p.Technologies,
		TechnologiesText: commalist.Join(p.Technologies),
		GitHubURL:        p.GitHubURL,
		DemoURL:          p.DemoURL,
		ImageURL:         p.ImageURL,
		Featured:         p.Featured,
	}
}

// Skill DTOs

type SkillRequest struct {
	Category string `json:"category" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Level    int    `json:"level"`
}

type SkillDTO struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Name     string `json:"name"`
	Level    int    `json:"level"`
}

func ToSkillDTO(s *skill.Skill) SkillDTO {
	return SkillDTO{
		ID:       s.ID.String(),
		Category: s.Category,
		Name:     s.Name,
		Level:    s.Level,
	}
}

type SkillGroupDTO struct {
	Category string     `json:"category"`
	Skills   []SkillDTO `json:"skills"`
}

func toSkillGroupDTOs(groups []portfolio.SkillGroup) []SkillGroupDTO {
	dtos := make([]SkillGroupDTO, len(groups))
	for i, g := range groups {
		skills := make([]SkillDTO, len(g.Skills))
		for j, s := range g.Skills {
			skills[j] = ToSkillDTO(s)
		}
		dtos[i] = SkillGroupDTO{Category: g.Category, Skills: skills}
	}
	return dtos
}

// Certification DTOs

type CertificationRequest struct {
	Title         string  `json:"title" binding:"required"`
	Issuer        string  `json:"issuer" binding:"required"`
	IssueDate     string  `json:"issue_date"`
	CredentialURL *string `json:"credential_url"`
}

type CertificationDTO struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Issuer        string  `json:"issuer"`
	IssueDate     *string `json:"issue_date"`
	CredentialURL *string `json:"credential_url"`
}

func ToCertificationDTO(c *certification.Certification) CertificationDTO {
	return CertificationDTO{
		ID:            c.ID.String(),
		Title:         c.Title,
		Issuer:        c.Issuer,
		IssueDate:     formatDate(c.IssueDate),
		CredentialURL: c.CredentialURL,
	}
}

// Interest DTOs

type InterestRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
}

type InterestDTO struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
}

func ToInterestDTO(i *interest.Interest) InterestDTO {
	return InterestDTO{
		ID:          i.ID.String(),
		Title:       i.Title,
		Description: i.Description,
		Icon:        i.Icon,
	}
}

// Portfolio view DTO: the whole page in one payload, with skills already
// grouped into display sections and the headline counts precomputed.

type PortfolioViewDTO struct {
	Found          bool               `json:"found"`
	Profile        *ProfileDTO        `json:"profile"`
	Education      []EducationDTO     `json:"education"`
	Experiences    []ExperienceDTO    `json:"experiences"`
	Projects       []ProjectDTO       `json:"projects"`
	SkillGroups    []SkillGroupDTO    `json:"skill_groups"`
	Certifications []CertificationDTO `json:"certifications"`
	Interests      []InterestDTO      `json:"interests"`
	Summary        portfolio.Summary  `json:"summary"`
	Degraded       []string           `json:"degraded,omitempty"`
}

func ToPortfolioViewDTO(v *portfolio.View) PortfolioViewDTO {
	dto := PortfolioViewDTO{
		Found:          v.Found,
		Education:      make([]EducationDTO, len(v.Education)),
		Experiences:    make([]ExperienceDTO, len(v.Experiences)),
		Projects:       make([]ProjectDTO, len(v.Projects)),
		SkillGroups:    toSkillGroupDTOs(portfolio.GroupSkillsByCategory(v.Skills)),
		Certifications: make([]CertificationDTO, len(v.Certifications)),
		Interests:      make([]InterestDTO, len(v.Interests)),
		Summary:        v.SummaryCounts(),
		Degraded:       v.Degraded,
	}
	if v.Profile != nil {
		p := ToProfileDTO(v.Profile)
		dto.Profile = &p
	}
	for i, e := range v.Education {
		dto.Education[i] = ToEducationDTO(e)
	}
	for i, e := range v.Experiences {
		dto.Experiences[i] = ToExperienceDTO(e)
	}
	for i, p := range v.Projects {
		dto.Projects[i] = ToProjectDTO(p)
	}
	for i, c := range v.Certifications {
		dto.Certifications[i] = ToCertificationDTO(c)
	}
	for i, in := range v.Interests {
		dto.Interests[i] = ToInterestDTO(in)
	}
	return dto
}
