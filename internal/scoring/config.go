package scoring

import "milestone-quiz-service/internal/domain"

// TierNarrative is the fixed copy attached to one classification tier.
type TierNarrative struct {
	Status      string
	Label       string
	Description string
}

// Config carries every narrative table the calculator reads: category labels,
// per-category tips, backfill tips, the generic highlight, and tier copy.
// It is injected so the engine has no hidden globals and tests can substitute
// their own tables.
type Config struct {
	Labels map[domain.Category]string
	// Tips maps each category to the single canned recommendation surfaced
	// when that category scores below the recommendation threshold.
	Tips map[domain.Category]string
	// EnrichmentTips backfill an empty recommendation list for on-track results.
	EnrichmentTips []string
	// FloorTips top the list up to the two-recommendation minimum.
	FloorTips []string
	// GenericHighlight is emitted when no category scores strong.
	GenericHighlight string

	OnTrack        TierNarrative
	SlightDelay    TierNarrative
	NeedsAttention TierNarrative
	// EmptyDescription replaces the tier description when no answers were recorded.
	EmptyDescription string
}

// Label resolves the human-readable name for a category, falling back to the
// raw key so an incomplete table never produces an empty label.
func (c Config) Label(category domain.Category) string {
	if label, ok := c.Labels[category]; ok {
		return label
	}
	return string(category)
}

// DefaultConfig returns the production narrative tables. Every member of the
// category enumeration must have a label and a tip here.
func DefaultConfig() Config {
	return Config{
		Labels: map[domain.Category]string{
			domain.CategoryGrossMotor:      "Gross Motor",
			domain.CategoryFineMotor:       "Fine Motor",
			domain.CategoryLanguage:        "Language",
			domain.CategoryCognitive:       "Cognitive",
			domain.CategorySocialEmotional: "Social & Emotional",
		},
		Tips: map[domain.Category]string{
			domain.CategoryGrossMotor:      "Give your baby daily floor time and tummy time on a firm mat. Oil massage before bath strengthens muscles and body awareness. Let them roll, crawl, and cruise freely on safe surfaces.",
			domain.CategoryFineMotor:       "Offer safe household objects of different textures - bowls to bang, soft food pieces to pick up, and rattles to grasp. Offering finger foods at meal times is excellent for developing the pincer grip.",
			domain.CategoryLanguage:        "Talk to your baby constantly in your home language - whatever feels most natural to you. Sing nursery rhymes and narrate daily activities out loud. Bilingual and multilingual homes are completely normal; count words across all languages.",
			domain.CategoryCognitive:       "Play peek-a-boo and hide toys under a cloth to build object permanence. Simple cause-and-effect toys (press a button, hear a sound) stimulate thinking. Reading picture books together every day is one of the best things you can do.",
			domain.CategorySocialEmotional: "Respond warmly and consistently to every cry and cue - this builds secure attachment. Include your baby in family gatherings with grandparents and cousins. Consistent daily routines (meals, bath, sleep) help them feel safe and regulate emotions.",
		},
		EnrichmentTips: []string{
			"Keep encouraging active play outdoors - parks, open grounds, or even the terrace are great for gross motor development.",
			"Introduce simple shape-sorters and stacking rings to keep challenging their thinking.",
			"Play dates with cousins or neighbourhood children support social and language development beautifully.",
		},
		FloorTips: []string{
			"Read picture books together every day - even 10 minutes builds vocabulary and bonding.",
			"Daily outdoor time - even a short walk - stimulates curiosity and all areas of development.",
		},
		GenericHighlight: "Every interaction with your baby builds their development - keep it up.",
		OnTrack: TierNarrative{
			Status:      "On Track",
			Label:       "On Track",
			Description: "Your baby is meeting developmental milestones well. Keep up the wonderful play, conversation, and daily interactions - every moment you spend talking, singing, and playing with your baby makes a real difference.",
		},
		SlightDelay: TierNarrative{
			Status:      "Slight Delay",
			Label:       "Slight Delay",
			Description: "Some milestones are still emerging, which is very common at this age. Focused play activities and daily stimulation can help. If you have any concerns, your child's paediatrician is the best person to speak to for reassurance and guidance.",
		},
		NeedsAttention: TierNarrative{
			Status:      "Needs Attention",
			Label:       "Needs Attention",
			Description: "Based on your answers, we recommend speaking with your paediatrician soon. Early support from a specialist can make a significant positive difference - you are doing the right thing by checking. Many children with early intervention catch up fully.",
		},
		EmptyDescription: "No answers recorded.",
	}
}
