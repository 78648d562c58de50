package recommendation

import (
	"fmt"
	"math"
	"strings"

	"pesqueriaOutfitters/domain"
)

// SimilarityScore is the outcome of scoring one candidate against an anchor.
// It lives for the duration of a single request.
type SimilarityScore struct {
	SourceID    uint64
	CandidateID uint64
	Score       float64
	Reason      string
}

// Scorer computes a weighted content similarity between two catalog products.
// It holds only immutable configuration, so a single instance is safe for
// concurrent use.
type Scorer struct {
	weights     Weights
	priceCutoff float64
}

func NewScorer(weights Weights, priceCutoff float64) *Scorer {
	if priceCutoff <= 0 {
		priceCutoff = defaultPriceCutoff
	}
	return &Scorer{
		weights:     weights,
		priceCutoff: priceCutoff,
	}
}

// Score is a pure function of its two inputs: no I/O, no randomness. Reasons
// are derived separately from the numeric score and never feed back into it.
func (sc *Scorer) Score(a, b domain.Product) SimilarityScore {
	score := 0.0

	if categoryMatch(a, b) {
		score += sc.weights.Category
	}

	score += sc.weights.Price * sc.priceProximity(a.BasePrice, b.BasePrice)
	score += sc.weights.Attributes * descriptionOverlap(a.Description, b.Description)

	if conservationMatch(a, b) {
		score += sc.weights.Conservation
	}

	return SimilarityScore{
		SourceID:    a.ID,
		CandidateID: b.ID,
		Score:       score,
		Reason:      similarityReason(a, b),
	}
}

func categoryMatch(a, b domain.Product) bool {
	return a.CategoryID != 0 && a.CategoryID == b.CategoryID
}

func conservationMatch(a, b domain.Product) bool {
	return a.ConservationFocus != "" && a.ConservationFocus == b.ConservationFocus
}

// priceProximity maps the relative price difference into [0,1]. Beyond the
// cutoff the sub-signal contributes nothing rather than going negative.
func (sc *Scorer) priceProximity(priceA, priceB float64) float64 {
	avg := (priceA + priceB) / 2
	if avg <= 0 {
		return 0
	}

	ratio := math.Abs(priceA-priceB) / avg
	if ratio >= sc.priceCutoff {
		return 0
	}

	return 1 - ratio
}

// descriptionOverlap is a Jaccard-style word overlap: intersection size over
// the larger of the two word sets. Missing descriptions score zero.
func descriptionOverlap(descA, descB string) float64 {
	if descA == "" || descB == "" {
		return 0
	}

	wordsA := wordSet(descA)
	wordsB := wordSet(descB)
	if len(wordsA) == 0 || len(wordsB) == 0 {
		return 0
	}

	intersection := 0
	for w := range wordsA {
		if _, ok := wordsB[w]; ok {
			intersection++
		}
	}

	larger := len(wordsA)
	if len(wordsB) > larger {
		larger = len(wordsB)
	}

	return float64(intersection) / float64(larger)
}

func wordSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(s)) {
		set[w] = struct{}{}
	}
	return set
}

// similarityReason builds the display copy for a candidate from whichever
// sub-signals fired.
func similarityReason(a, b domain.Product) string {
	var reasons []string

	if categoryMatch(a, b) {
		reasons = append(reasons, "Matches your style")
	}

	if math.Abs(a.BasePrice-b.BasePrice) < 15 {
		reasons = append(reasons, "Similar price range")
	}

	if conservationMatch(a, b) {
		reasons = append(reasons, fmt.Sprintf("Supports %s", a.ConservationFocus))
	}

	if len(reasons) == 0 {
		return "Handpicked for you"
	}

	return strings.Join(reasons, " • ")
}
