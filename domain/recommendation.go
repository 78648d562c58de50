package domain

// Recommendation is one ranked entry served to the storefront. Score is in
// [0,1]; Reason is display copy derived from whichever signals fired.
type Recommendation struct {
	Product Product `json:"product"`
	Score   float64 `json:"score"`
	Reason  string  `json:"reason"`
}
