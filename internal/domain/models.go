package domain

// Category is one of the five developmental domains the quiz measures.
// The enumeration is closed: every label/tip table must cover all five.
type Category string

const (
	CategoryGrossMotor      Category = "gross_motor"
	CategoryFineMotor       Category = "fine_motor"
	CategoryLanguage        Category = "language"
	CategoryCognitive       Category = "cognitive"
	CategorySocialEmotional Category = "social_emotional"
)

// Categories returns every category in canonical order.
func Categories() []Category {
	return []Category{
		CategoryGrossMotor,
		CategoryFineMotor,
		CategoryLanguage,
		CategoryCognitive,
		CategorySocialEmotional,
	}
}

// Valid reports whether c is a member of the closed enumeration.
func (c Category) Valid() bool {
	switch c {
	case CategoryGrossMotor, CategoryFineMotor, CategoryLanguage, CategoryCognitive, CategorySocialEmotional:
		return true
	}
	return false
}

// Option is a selectable answer for a question. The score it carries (0-3)
// becomes the Answer score when chosen; the engine never reads options.
type Option struct {
	Label string `json:"label"`
	Score int    `json:"score"`
}

// Question is an immutable catalog entry. AgeMin/AgeMax are inclusive bounds
// in months. Prompt and Options are presentation fields the engine ignores.
type Question struct {
	ID       string   `json:"id"`
	Category Category `json:"category"`
	AgeMin   int      `json:"age_min"`
	AgeMax   int      `json:"age_max"`
	Weight   float64  `json:"weight"`
	Prompt   string   `json:"prompt,omitempty"`
	Options  []Option `json:"options,omitempty"`
}

// Answer is a single user response. Category and Weight are copied from the
// source question so scoring does not need the catalog.
type Answer struct {
	Category Category `json:"category"`
	Score    int      `json:"score"`
	Weight   float64  `json:"weight"`
}

// CategoryScore is the per-category breakdown of a result.
type CategoryScore struct {
	Category      Category `json:"category"`
	CategoryLabel string   `json:"categoryLabel"`
	RawScore      float64  `json:"rawScore"`
	MaxScore      float64  `json:"maxScore"`
	Percentage    int      `json:"percentage"`
}

// Tier is the three-way outcome classification.
type Tier string

const (
	TierOnTrack        Tier = "on-track"
	TierSlightDelay    Tier = "slight-delay"
	TierNeedsAttention Tier = "needs-attention"
)

// QuizResult is the full assessment for one answer set. Field names are part
// of the report contract; external renderers bind to them by name.
type QuizResult struct {
	TotalScore        float64         `json:"totalScore"`
	MaxScore          float64         `json:"maxScore"`
	Percentage        int             `json:"percentage"`
	Status            string          `json:"status"`
	CategoryBreakdown map[string]int  `json:"categoryBreakdown"`
	Tier              Tier            `json:"tier"`
	TierLabel         string          `json:"tierLabel"`
	TierDescription   string          `json:"tierDescription"`
	CategoryScores    []CategoryScore `json:"categoryScores"`
	Highlights        []string        `json:"highlights"`
	Recommendations   []string        `json:"recommendations"`
}
