package exprjudge

import (
	"strings"

	"github.com/gradecheck/exprjudge/packages/exprtree"
)

// SimilarityResult is judgeSimilarity's verdict: a score in [0,1] and the
// particular rewriting of the target that achieved it.
type SimilarityResult struct {
	Similarity   float64
	DeriveTarget *exprtree.Node
}

// JudgeSimilarity is a faster "are these the same expression modulo the
// available rewrites, under the same evaluated value?" predicate than
// CompareTrees: it never runs a bounded step search, only recursive
// structural comparison with a handful of one-step rewrites tried at each
// level.
func JudgeSimilarity(target, template *exprtree.Node) SimilarityResult {
	score, tree := judgeSubSimilarity(target, template)
	return SimilarityResult{Similarity: score, DeriveTarget: tree}
}

// judgeSubSimilarity is JudgeSimilarity's recursive core, also used
// directly to compare corresponding children of two operator trees.
func judgeSubSimilarity(target, template *exprtree.Node) (float64, *exprtree.Node) {
	if !JudgeTreeEvalEquals(target, template) {
		return 0, target
	}
	if idContains(target.ID(), template.ID()) {
		return 1, target
	}
	if target.Kind == exprtree.Immediate || template.Kind == exprtree.Immediate {
		return 1, target
	}
	if operatorCount(target) < operatorCount(template) {
		score, _ := judgeSubSimilarity(template, target)
		return score, target
	}

	leftScore, _ := judgeSubSimilarity(target.Left(), template.Left())
	rightScore, _ := judgeSubSimilarity(target.Right(), template.Right())
	best := (leftScore + rightScore) / 2
	bestTree := target
	if best >= 1 {
		return best, bestTree
	}

	consider := func(candidate *exprtree.Node) bool {
		score, _ := judgeSubSimilarity(candidate, template)
		if score > best {
			best = score
			bestTree = candidate
		}
		return best >= 1
	}

	if exprtree.Priority(target.Character) == exprtree.Priority(template.Character) {
		for _, c := range deriveCommutation(target) {
			if consider(c) {
				return best, bestTree
			}
		}
		for _, c := range deriveAssociation(target) {
			if consider(c) {
				return best, bestTree
			}
		}
	} else {
		for _, c := range deriveDistributionForward(target) {
			if consider(c) {
				return best, bestTree
			}
		}
	}
	return best, bestTree
}

func idContains(a, b string) bool {
	return strings.Contains(a, b) || strings.Contains(b, a)
}
