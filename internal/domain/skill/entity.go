package skill

type Category string

const (
	CategoryTechnical Category = "TECHNICAL"
	CategoryCreative  Category = "CREATIVE"
	CategoryBusiness  Category = "BUSINESS"
	CategoryLanguage  Category = "LANGUAGE"
	CategoryOther     Category = "OTHER"
)

var Categories = []Category{CategoryTechnical, CategoryCreative, CategoryBusiness, CategoryLanguage, CategoryOther}

func (c Category) IsValid() bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

type Level string

const (
	LevelBeginner     Level = "BEGINNER"
	LevelIntermediate Level = "INTERMEDIATE"
	LevelAdvanced     Level = "ADVANCED"
	LevelExpert       Level = "EXPERT"
)

var Levels = []Level{LevelBeginner, LevelIntermediate, LevelAdvanced, LevelExpert}

func (l Level) IsValid() bool {
	for _, v := range Levels {
		if v == l {
			return true
		}
	}
	return false
}

type Skill struct {
	ID          string
	Name        string
	Category    Category
	Description *string
}

// AssignmentKey identifies the single assignment a freelancer may hold for a skill.
type AssignmentKey struct {
	FreelanceID string
	SkillID     string
}

type Assignment struct {
	FreelanceID       string
	SkillID           string
	Level             Level
	YearsOfExperience *int
}

func (a Assignment) Key() AssignmentKey {
	return AssignmentKey{FreelanceID: a.FreelanceID, SkillID: a.SkillID}
}

type CreateInput struct {
	Name        string
	Category    Category
	Description *string
}

type AssignInput struct {
	FreelanceID       string
	SkillID           string
	Level             Level
	YearsOfExperience *int
}
