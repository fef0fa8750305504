package dpq_test

import (
	"testing"

	"dpq/internal/dpq"
	"dpq/pkg/domain"

	"github.com/stretchr/testify/require"
)

func uniformResponses(v int) domain.Responses {
	r := make(domain.Responses, domain.QuestionCount)
	for q := 1; q <= domain.QuestionCount; q++ {
		r[q] = v
	}

	return r
}

func TestScoringStructureCoversAllQuestions(t *testing.T) {
	seen := map[int]int{}
	for _, factor := range dpq.Factors {
		for _, facet := range factor.Facets {
			require.Len(t, facet.Items, 3, "facet %s item count", facet.Key)
			for _, item := range facet.Items {
				seen[item]++
			}
			for _, item := range facet.Reverse {
				require.Contains(t, facet.Items, item,
					"reverse item %d of facet %s must be one of its items", item, facet.Key)
			}
		}
	}
	require.Len(t, seen, domain.QuestionCount, "every question must be scored")
	for q := 1; q <= domain.QuestionCount; q++ {
		require.Equal(t, 1, seen[q], "question %d must belong to exactly one facet", q)
	}
	require.Len(t, dpq.Questions, domain.QuestionCount)
}

func TestScoreNeutralResponses(t *testing.T) {
	scores := dpq.Score(uniformResponses(4))

	// 4 is the scale midpoint and is invariant under reverse coding (8-4=4).
	for key, v := range scores.Facets {
		require.InDelta(t, 4.0, v, 1e-9, "facet %s", key)
	}
	for key, v := range scores.Factors {
		require.InDelta(t, 4.0, v, 1e-9, "factor %s", key)
		require.Equal(t, "Low", scores.Profile[key], "factor %s profile", key)
	}
	require.Equal(t, []string{"Balanced"}, scores.DominantTraits)

	require.InDelta(t, 4.0/7.0, scores.Bias["fearfulness_bias"], 1e-9)
	require.InDelta(t, 8.0/14.0, scores.Bias["aggression_bias"], 1e-9)
	require.InDelta(t, 3.0/7.0, scores.Bias["social_confidence"], 1e-9)
	require.InDelta(t, 7.0/14.0, scores.Bias["dog_sociability"], 1e-9)
	require.Len(t, scores.Bias, 14)
}

func TestScoreReverseCoding(t *testing.T) {
	// All 7s: straight items contribute 7, reverse-coded items contribute 1.
	scores := dpq.Score(uniformResponses(7))

	// fear_of_dogs (13, 21, 42) has no reverse items.
	require.InDelta(t, 7.0, scores.Facets["fear_of_dogs"], 1e-9)
	// fear_of_people reverses item 1: (1+7+7)/3 = 5.
	require.InDelta(t, 5.0, scores.Facets["fear_of_people"], 1e-9)
	// nonsocial_fear reverses 11 and 22: (7+1+1)/3 = 3.
	require.InDelta(t, 3.0, scores.Facets["nonsocial_fear"], 1e-9)

	// fearfulness = mean(5, 3, 7, 7) = 5.5.
	require.InDelta(t, 5.5, scores.Factors["fearfulness"], 1e-9)
	require.Equal(t, "High", scores.Profile["fearfulness"])
}

func TestScoreDoesNotMutateInput(t *testing.T) {
	responses := uniformResponses(6)
	_ = dpq.Score(responses)

	for q := 1; q <= domain.QuestionCount; q++ {
		require.Equal(t, 6, responses[q], "question %d", q)
	}
}

func TestDominantTraitsHighEnergy(t *testing.T) {
	responses := uniformResponses(4)
	// Push excitability high: 15 and 31 are straight, 41 is reverse-coded.
	responses[15], responses[31], responses[41] = 7, 7, 1
	// Push playfulness high: 9 is reverse-coded.
	responses[9], responses[17], responses[33] = 1, 7, 7
	// Active engagement: 4 is reverse-coded.
	responses[4], responses[14], responses[24] = 1, 7, 7
	// Companionability: 26 is reverse-coded.
	responses[20], responses[26], responses[37] = 7, 1, 7

	scores := dpq.Score(responses)
	require.InDelta(t, 7.0, scores.Factors["activity_excitability"], 1e-9)
	require.Equal(t, "High", scores.Profile["activity_excitability"])
	require.Equal(t, []string{"Energetic/Excitable"}, scores.DominantTraits)
	require.Equal(t, "Energetic/Excitable", scores.DominantTraitsLine())
	require.InDelta(t, 1.0, scores.Bias["excitability_bias"], 1e-9)
	require.InDelta(t, 1.0, scores.Bias["activity_level"], 1e-9)
}

func TestResponsesValidate(t *testing.T) {
	require.NoError(t, uniformResponses(4).Validate())

	short := uniformResponses(4)
	delete(short, 45)
	require.ErrorIs(t, short.Validate(), domain.ErrResponseCount)

	badQ := uniformResponses(4)
	delete(badQ, 45)
	badQ[46] = 4
	require.ErrorIs(t, badQ.Validate(), domain.ErrInvalidQuestion)

	badV := uniformResponses(4)
	badV[10] = 8
	require.ErrorIs(t, badV.Validate(), domain.ErrInvalidResponse)
}
