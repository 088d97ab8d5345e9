package portfolio

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"devfolio/internal/domain/certification"
	"devfolio/internal/domain/experience"
	"devfolio/internal/domain/project"
	"devfolio/internal/domain/skill"
)

func mkSkill(category, name string, level int) *skill.Skill {
	return &skill.Skill{Category: category, Name: name, Level: level}
}

func TestGroupSkillsByCategory(t *testing.T) {
	// Input arrives sorted by category; per-category insertion order must
	// survive the grouping.
	skills := []*skill.Skill{
		mkSkill("Cloud", "AWS", 3),
		mkSkill("Mobile", "Flutter", 5),
		mkSkill("Mobile", "Dart", 4),
	}

	groups := GroupSkillsByCategory(skills)

	assert.Len(t, groups, 2)
	assert.Equal(t, "Cloud", groups[0].Category)
	assert.Equal(t, []*skill.Skill{skills[0]}, groups[0].Skills)
	assert.Equal(t, "Mobile", groups[1].Category)
	assert.Equal(t, "Flutter", groups[1].Skills[0].Name)
	assert.Equal(t, "Dart", groups[1].Skills[1].Name)
}

func TestGroupSkillsByCategory_Empty(t *testing.T) {
	groups := GroupSkillsByCategory(nil)
	assert.NotNil(t, groups)
	assert.Empty(t, groups)
}

func TestSummaryCounts(t *testing.T) {
	v := EmptyView()
	counts := v.SummaryCounts()
	assert.Zero(t, counts.ProjectCount)
	assert.Zero(t, counts.ExperienceCount)
	assert.Zero(t, counts.SkillCategoryCount)
	assert.Zero(t, counts.CertificationCount)

	v.Projects = []*project.Project{{Title: "a"}, {Title: "b"}}
	v.Experiences = []*experience.Experience{{Title: "x"}}
	v.Skills = []*skill.Skill{
		mkSkill("Mobile", "Flutter", 5),
		mkSkill("Mobile", "Dart", 4),
		mkSkill("Cloud", "AWS", 3),
	}
	v.Certifications = []*certification.Certification{{Title: "c"}}

	counts = v.SummaryCounts()
	assert.Equal(t, 2, counts.ProjectCount)
	assert.Equal(t, 1, counts.ExperienceCount)
	assert.Equal(t, 2, counts.SkillCategoryCount)
	assert.Equal(t, 1, counts.CertificationCount)
}

func TestFormatDateRange(t *testing.T) {
	start := time.Date(2020, 1, 15, 0, 0, 0, 0, time.UTC)
	end := time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "2020-01 - 2022-06", FormatDateRange(&start, &end))
	assert.Equal(t, "2020-01 - Present", FormatDateRange(&start, nil))
	assert.Equal(t, "", FormatDateRange(nil, &end))
	assert.Equal(t, "", FormatDateRange(nil, nil))
}

func TestClampLevel(t *testing.T) {
	assert.Equal(t, 1, skill.ClampLevel(0))
	assert.Equal(t, 1, skill.ClampLevel(-3))
	assert.Equal(t, 3, skill.ClampLevel(3))
	assert.Equal(t, 5, skill.ClampLevel(9))
}

func TestEmptyView_AllCollectionsNonNil(t *testing.T) {
	v := EmptyView()
	assert.False(t, v.Found)
	assert.NotNil(t, v.Education)
	assert.NotNil(t, v.Experiences)
	assert.NotNil(t, v.Projects)
	assert.NotNil(t, v.Skills)
	assert.NotNil(t, v.Certifications)
	assert.NotNil(t, v.Interests)
}
