package dragnet

// Score reports the token-level agreement between extracted and gold text.
type Score struct {
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1        float64 `json:"f1"`
}

// Scorer compares candidate text against gold text.
type Scorer interface {
	Score(candidate, gold string) Score
}

// NewScore builds a Score from an LCS length and the two token counts.
// Two empty sequences agree perfectly; one empty sequence scores zero.
func NewScore(matched, candidate, gold int) Score {
	if candidate == 0 && gold == 0 {
		return Score{Precision: 1, Recall: 1, F1: 1}
	}
	var s Score
	if candidate > 0 {
		s.Precision = float64(matched) / float64(candidate)
	}
	if gold > 0 {
		s.Recall = float64(matched) / float64(gold)
	}
	if s.Precision+s.Recall > 0 {
		s.F1 = 2 * s.Precision * s.Recall / (s.Precision + s.Recall)
	}
	return s
}

// MeanScore returns the macro-average of scores. The mean of no scores is
// a zero Score.
func MeanScore(scores []Score) Score {
	if len(scores) == 0 {
		return Score{}
	}
	var m Score
	for _, s := range scores {
		m.Precision += s.Precision
		m.Recall += s.Recall
		m.F1 += s.F1
	}
	n := float64(len(scores))
	return Score{Precision: m.Precision / n, Recall: m.Recall / n, F1: m.F1 / n}
}
