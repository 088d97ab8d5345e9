// Package portfolio holds the render-ready aggregate of a profile and its
// six related collections, plus the pure shaping functions both the public
// page and the dashboard consume.
package portfolio

import (
	"time"

	"devfolio/internal/domain/certification"
	"devfolio/internal/domain/education"
	"devfolio/internal/domain/experience"
	"devfolio/internal/domain/interest"
	"devfolio/internal/domain/profile"
	"devfolio/internal/domain/skill"

	projectdom "devfolio/internal/domain/project"
)

// View is the aggregate view model. Every collection is always non-nil:
// an owner with zero rows in a table gets an empty slice, never nil, so
// renderers need no absent-field handling.
type View struct {
	// Found is false when no profile exists at all (the public page's
	// explicit "no portfolio" state).
	Found          bool                           `json:"found"`
	Profile        *profile.Profile               `json:"profile"`
	Education      []*education.Education         `json:"education"`
	Experiences    []*experience.Experience       `json:"experiences"`
	Projects       []*projectdom.Project          `json:"projects"`
	Skills         []*skill.Skill                 `json:"skills"`
	Certifications []*certification.Certification `json:"certifications"`
	Interests      []*interest.Interest           `json:"interests"`
	// Degraded lists the tables whose reads failed and were substituted
	// with empty data. Renderers may surface a non-fatal banner.
	Degraded []string `json:"degraded,omitempty"`
}

// EmptyView is the aggregate for an absent owner: Found=false and every
// collection empty.
func EmptyView() *View {
	return &View{
		Found:          false,
		Education:      []*education.Education{},
		Experiences:    []*experience.Experience{},
		Projects:       []*projectdom.Project{},
		Skills:         []*skill.Skill{},
		Certifications: []*certification.Certification{},
		Interests:      []*interest.Interest{},
	}
}

// SkillGroup is one display section of the skills grid.
type SkillGroup struct {
	Category string         `json:"category"`
	Skills   []*skill.Skill `json:"skills"`
}

// GroupSkillsByCategory reshapes the already category-sorted skill list
// into display groups. Category order is first-seen order from the input;
// skills keep their per-category insertion order. Categories with no
// skills never appear.
func GroupSkillsByCategory(skills []*skill.Skill) []SkillGroup {
	groups := make([]SkillGroup, 0)
	index := make(map[string]int)
	for _, s := range skills {
		i, ok := index[s.Category]
		if !ok {
			i = len(groups)
			index[s.Category] = i
			groups = append(groups, SkillGroup{Category: s.Category, Skills: []*skill.Skill{}})
		}
		groups[i].Skills = append(groups[i].Skills, s)
	}
	return groups
}

// Summary carries the headline counts shown on the dashboard.
type Summary struct {
	ProjectCount       int `json:"project_count"`
	ExperienceCount    int `json:"experience_count"`
	SkillCategoryCount int `json:"skill_category_count"`
	CertificationCount int `json:"certification_count"`
}

func (v *View) SummaryCounts() Summary {
	return Summary{
		ProjectCount:       len(v.Projects),
		ExperienceCount:    len(v.Experiences),
		SkillCategoryCount: len(GroupSkillsByCategory(v.Skills)),
		CertificationCount: len(v.Certifications),
	}
}

// FormatDateRange renders "2020-01 - 2022-06" style ranges. A nil end date
// means the range is ongoing and renders as "Present"; a nil start date
// yields an empty string rather than a dangling separator.
func FormatDateRange(start, end *time.Time) string {
	if start == nil {
		return ""
	}
	from := start.Format("2006-01")
	if end == nil {
		return from + " - Present"
	}
	return from + " - " + end.Format("2006-01")
}
