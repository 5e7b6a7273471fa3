package lcs

import "github.com/fwojciec/dragnet"

// LabelBlocks labels blocks for training by aligning the document's tokens
// against the gold content and, separately, the gold comments. The whole
// document is aligned at once so that a block only matches gold text in
// document order. A block is labeled when the fraction of its tokens in
// the alignment exceeds opts.LabelThreshold. Blocks whose words normalize
// to no tokens get zero fractions.
func LabelBlocks(blocks []dragnet.Block, content, comments string, opts dragnet.Options) []dragnet.Label {
	tokens, owner, counts := blockTokens(blocks)

	contentFrac := matchedFractions(tokens, owner, counts, dragnet.Tokenize(content), opts.TokenBudget)
	commentFrac := matchedFractions(tokens, owner, counts, dragnet.Tokenize(comments), opts.TokenBudget)

	labels := make([]dragnet.Label, len(blocks))
	for i := range labels {
		labels[i] = dragnet.Label{
			ContentFraction: contentFrac[i],
			CommentFraction: commentFrac[i],
			Content:         contentFrac[i] > opts.LabelThreshold,
			Comment:         commentFrac[i] > opts.LabelThreshold,
		}
	}
	return labels
}

// blockTokens flattens the blocks' tokens, recording which block owns each
// token and how many tokens each block has.
func blockTokens(blocks []dragnet.Block) (tokens []dragnet.Token, owner []int, counts []int) {
	counts = make([]int, len(blocks))
	for i := range blocks {
		bt := dragnet.TokenizeWords(blocks[i].Words)
		counts[i] = len(bt)
		tokens = append(tokens, bt...)
		for range bt {
			owner = append(owner, i)
		}
	}
	return tokens, owner, counts
}

func matchedFractions(tokens []dragnet.Token, owner, counts []int, gold []dragnet.Token, budget int) []float64 {
	matched := make([]int, len(counts))
	if len(gold) > 0 {
		al := Align(tokens, gold, budget)
		for i, j := range al.Match {
			if j >= 0 {
				matched[owner[i]]++
			}
		}
	}
	out := make([]float64, len(counts))
	for i, n := range counts {
		if n > 0 {
			out[i] = float64(matched[i]) / float64(n)
		}
	}
	return out
}
