package scoring

import (
	"fmt"
	"math"
	"sort"

	"milestone-quiz-service/internal/domain"
)

const (
	// maxAnswerScore is the top of the per-answer score range.
	maxAnswerScore = 3
	// strongThreshold marks a category as a highlight.
	strongThreshold = 70
	// developingThreshold marks a category for a recommendation.
	developingThreshold = 60
	// Tier boundaries on the aggregate percentage, inclusive lower bounds.
	onTrackThreshold     = 70
	slightDelayThreshold = 45

	maxHighlights      = 3
	maxRecommendations = 3
	minRecommendations = 2
)

// Calculator turns an answer set into a QuizResult. It holds only immutable
// narrative configuration, so a single instance is safe for concurrent use.
type Calculator struct {
	cfg Config
}

func NewCalculator(cfg Config) *Calculator {
	return &Calculator{cfg: cfg}
}

// Calculate produces the full assessment for one answer set. It never fails:
// out-of-range scores are clamped, non-positive weights contribute nothing,
// and an empty answer set yields the defined empty result.
func (c *Calculator) Calculate(answers []domain.Answer) domain.QuizResult {
	if len(answers) == 0 {
		return c.emptyResult()
	}

	categoryScores := c.accumulate(answers)

	var totalRaw, totalMax float64
	for _, cs := range categoryScores {
		totalRaw += cs.RawScore
		totalMax += cs.MaxScore
	}
	totalRaw = round2(totalRaw)
	totalMax = round2(totalMax)
	// Overall percentage comes from the summed raw/max, not an average of
	// category percentages; the two differ when category weights are unequal.
	percentage := percent(totalRaw, totalMax)

	tier, narrative := c.classify(percentage)

	breakdown := make(map[string]int, len(categoryScores))
	for _, cs := range categoryScores {
		breakdown[cs.CategoryLabel] = cs.Percentage
	}

	return domain.QuizResult{
		TotalScore:        totalRaw,
		MaxScore:          totalMax,
		Percentage:        percentage,
		Status:            narrative.Status,
		CategoryBreakdown: breakdown,
		Tier:              tier,
		TierLabel:         narrative.Label,
		TierDescription:   narrative.Description,
		CategoryScores:    categoryScores,
		Highlights:        c.highlights(categoryScores),
		Recommendations:   c.recommendations(categoryScores, tier),
	}
}

// accumulate groups answers by category, in first-seen order, summing
// score*weight against 3*weight. Rounding happens once per category, after
// the full sum, so intermediate values carry full precision.
func (c *Calculator) accumulate(answers []domain.Answer) []domain.CategoryScore {
	type bucket struct {
		raw float64
		max float64
	}
	order := make([]domain.Category, 0, len(c.cfg.Labels))
	buckets := make(map[domain.Category]*bucket)

	for _, a := range answers {
		b, ok := buckets[a.Category]
		if !ok {
			b = &bucket{}
			buckets[a.Category] = b
			order = append(order, a.Category)
		}
		if a.Weight <= 0 {
			// A non-positive weight would drag the category negative or blow
			// up the max; the answer is kept out of both sides instead.
			continue
		}
		b.raw += float64(clampScore(a.Score)) * a.Weight
		b.max += maxAnswerScore * a.Weight
	}

	scores := make([]domain.CategoryScore, 0, len(order))
	for _, category := range order {
		b := buckets[category]
		raw := round2(b.raw)
		max := round2(b.max)
		scores = append(scores, domain.CategoryScore{
			Category:      category,
			CategoryLabel: c.cfg.Label(category),
			RawScore:      raw,
			MaxScore:      max,
			Percentage:    percent(raw, max),
		})
	}
	return scores
}

func (c *Calculator) classify(percentage int) (domain.Tier, TierNarrative) {
	switch {
	case percentage >= onTrackThreshold:
		return domain.TierOnTrack, c.cfg.OnTrack
	case percentage >= slightDelayThreshold:
		return domain.TierSlightDelay, c.cfg.SlightDelay
	default:
		return domain.TierNeedsAttention, c.cfg.NeedsAttention
	}
}

// highlights picks the strongest categories (>=70%), best first, capped at
// three. The list is never empty: with no strong category a single generic
// encouragement is returned.
func (c *Calculator) highlights(categoryScores []domain.CategoryScore) []string {
	strong := make([]domain.CategoryScore, 0, len(categoryScores))
	for _, cs := range categoryScores {
		if cs.Percentage >= strongThreshold {
			strong = append(strong, cs)
		}
	}
	if len(strong) == 0 {
		return []string{c.cfg.GenericHighlight}
	}
	sort.SliceStable(strong, func(i, j int) bool {
		return strong[i].Percentage > strong[j].Percentage
	})
	if len(strong) > maxHighlights {
		strong = strong[:maxHighlights]
	}
	highlights := make([]string, 0, len(strong))
	for _, cs := range strong {
		highlights = append(highlights, fmt.Sprintf("Strong %s development (%d%% achieved)", cs.CategoryLabel, cs.Percentage))
	}
	return highlights
}

// recommendations surfaces the weakest categories (<60%) first, one canned
// tip each, then backfills: enrichment tips when an on-track result produced
// none at all, and general tips up to the two-entry floor. At most three
// entries are returned. The backfill order matters: the enrichment set only
// fires on a fully empty list, the floor can still top up a partial one.
func (c *Calculator) recommendations(categoryScores []domain.CategoryScore, tier domain.Tier) []string {
	developing := make([]domain.CategoryScore, 0, len(categoryScores))
	for _, cs := range categoryScores {
		if cs.Percentage < developingThreshold {
			developing = append(developing, cs)
		}
	}
	sort.SliceStable(developing, func(i, j int) bool {
		return developing[i].Percentage < developing[j].Percentage
	})
	if len(developing) > maxRecommendations {
		developing = developing[:maxRecommendations]
	}

	recs := make([]string, 0, maxRecommendations)
	for _, cs := range developing {
		if tip, ok := c.cfg.Tips[cs.Category]; ok {
			recs = append(recs, tip)
		}
	}

	if tier == domain.TierOnTrack && len(recs) == 0 {
		recs = append(recs, c.cfg.EnrichmentTips...)
	}
	for _, tip := range c.cfg.FloorTips {
		if len(recs) >= minRecommendations {
			break
		}
		recs = append(recs, tip)
	}

	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}

func (c *Calculator) emptyResult() domain.QuizResult {
	return domain.QuizResult{
		TotalScore:        0,
		MaxScore:          0,
		Percentage:        0,
		Status:            c.cfg.OnTrack.Status,
		CategoryBreakdown: map[string]int{},
		Tier:              domain.TierOnTrack,
		TierLabel:         c.cfg.OnTrack.Label,
		TierDescription:   c.cfg.EmptyDescription,
		CategoryScores:    []domain.CategoryScore{},
		Highlights:        []string{},
		Recommendations:   []string{},
	}
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > maxAnswerScore {
		return maxAnswerScore
	}
	return score
}

// round2 and percent are the only rounding points in the engine; every
// rounded value in a result goes through one of them. math.Round rounds
// half away from zero, which for these non-negative inputs is half-up.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func percent(raw, max float64) int {
	if max <= 0 {
		return 0
	}
	p := int(math.Round(raw / max * 100))
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
