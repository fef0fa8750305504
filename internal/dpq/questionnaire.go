// Package dpq implements the Dog Personality Questionnaire short form:
// 45 items scored on a 7-point agreement scale into five personality factors
// (Jones, 2009), plus the derived bias indicators used to calibrate AI
// translation of dog behavior.
package dpq

// Questions holds the 45 questionnaire items keyed by question number.
var Questions = map[int]string{
	1:  "Dog is relaxed when greeting people.",
	2:  "Dog behaves aggressively toward dogs.",
	3:  "Dog is anxious",
	4:  "Dog is lethargic",
	5:  "When off leash, dog comes immediately when called.",
	6:  "Dog is shy.",
	7:  "Dog behaves aggressively towards unfamiliar people.",
	8:  "Dog likes to chase squirrels, birds, or other small animals.",
	9:  "Dog gets bored in play quickly.",
	10: "Dog is quick to sneak out through open doors, gates.",
	11: "Dog is confident.",
	12: "Dog is dominant over other dogs.",
	13: "Dog avoids other dogs.",
	14: "Dog works at tasks (e.g., getting treats out of a Kong, shredding toys) until entirely finished.",
	15: "Dog is boisterous.",
	16: "Dog behaves fearfully during visits to the veterinarian.",
	17: "Dog enjoys playing with toys.",
	18: "Dog is friendly towards unfamiliar people.",
	19: "Dog is playful with other dogs.",
	20: "Dog seeks companionship from people.",
	21: "Dog behaves submissively (e.g., rolls over, avoids eye contact, licks lips) when greeting other dogs.",
	22: "Dog adapts easily to new situations and environments.",
	23: "Dog likes to chase bicycles, joggers, and skateboarders.",
	24: "Dog is curious.",
	25: "Dog behaves aggressively in response to perceived threats from people " +
		"(e.g., being cornered, having collar reached for).",
	26: "Dog is aloof.",
	27: "Dog behaves fearfully towards unfamiliar people.",
	28: "Dog willingly shares toys with other dogs.",
	29: "Dog is slow to respond to corrections.",
	30: "Dog behaves aggressively during visits to the veterinarian.",
	31: "Dog seeks constant activity.",
	32: "Dog leaves food or objects alone when told to do so.",
	33: "Dog retrieves objects (e.g., balls, toys, sticks).",
	34: "Dog is friendly towards other dogs.",
	35: "Dog exhibits fearful behaviors when restrained.",
	36: "Dog aggressively guards coveted items (e.g., stolen item, treats, food bowl).",
	37: "Dog is affectionate.",
	38: "Dog ignores commands.",
	39: "Dog behaves aggressively towards cats.",
	40: "Dog shows aggression when nervous or fearful.",
	41: "Dog tends to be calm.",
	42: "Dog behaves fearfully towards other dogs.",
	43: "Dog is able to focus on a task in a distracting situation (e.g., loud or busy places, around other dogs).",
	44: "Dog behaves fearfully when groomed (e.g., nails trimmed, brushed, bathed, ears cleaned).",
	45: "Dog is assertive or pushy with other dogs (e.g., if in a home with other dogs, when greeting).",
}

// ScaleLabels describes the 7-point agreement scale.
var ScaleLabels = map[int]string{
	1: "Disagree strongly",
	2: "Disagree moderately",
	3: "Disagree slightly",
	4: "Neither agree nor disagree",
	5: "Agree slightly",
	6: "Agree moderately",
	7: "Agree strongly",
}

// Facet is a group of three items contributing to a factor. Items listed in
// Reverse are reverse-coded (v' = 8 - v) before averaging.
type Facet struct {
	Key     string
	Name    string
	Items   []int
	Reverse []int
}

// Factor is one of the five personality factors, an ordered set of facets.
type Factor struct {
	Key    string
	Name   string
	Facets []Facet
}

// Stable snake_case identifiers for factors and facets. These are the map
// keys used in stored results and in the API.
const (
	FactorFearfulness      = "fearfulness"
	FactorAggressionPeople = "aggression_people"
	FactorActivity         = "activity_excitability"
	FactorTraining         = "training_responsiveness"
	FactorAggressionAnimal = "aggression_animals"
)

// Factors is the official DPQ short form scoring structure. Order matters:
// derived output (summaries, reports) iterates factors in this order.
var Factors = []Factor{
	{
		Key:  FactorFearfulness,
		Name: "Fearfulness",
		Facets: []Facet{
			{Key: "fear_of_people", Name: "Fear of People", Items: []int{1, 6, 27}, Reverse: []int{1}},
			{Key: "nonsocial_fear", Name: "Nonsocial Fear", Items: []int{3, 11, 22}, Reverse: []int{11, 22}},
			{Key: "fear_of_dogs", Name: "Fear of Dogs", Items: []int{13, 21, 42}},
			{Key: "fear_of_handling", Name: "Fear of Handling", Items: []int{16, 35, 44}},
		},
	},
	{
		Key:  FactorAggressionPeople,
		Name: "Aggression towards People",
		Facets: []Facet{
			{Key: "general_aggression", Name: "General Aggression", Items: []int{7, 18, 40}, Reverse: []int{18}},
			{Key: "situational_aggression", Name: "Situational Aggression", Items: []int{25, 30, 36}},
		},
	},
	{
		Key:  FactorActivity,
		Name: "Activity/Excitability",
		Facets: []Facet{
			{Key: "excitability", Name: "Excitability", Items: []int{15, 31, 41}, Reverse: []int{41}},
			{Key: "playfulness", Name: "Playfulness", Items: []int{9, 17, 33}, Reverse: []int{9}},
			{Key: "active_engagement", Name: "Active Engagement", Items: []int{4, 14, 24}, Reverse: []int{4}},
			{Key: "companionability", Name: "Companionability", Items: []int{20, 26, 37}, Reverse: []int{26}},
		},
	},
	{
		Key:  FactorTraining,
		Name: "Responsiveness to Training",
		Facets: []Facet{
			{Key: "trainability", Name: "Trainability", Items: []int{29, 38, 43}, Reverse: []int{29, 38}},
			{Key: "controllability", Name: "Controllability", Items: []int{5, 10, 32}, Reverse: []int{10}},
		},
	},
	{
		Key:  FactorAggressionAnimal,
		Name: "Aggression towards Animals",
		Facets: []Facet{
			{Key: "aggression_towards_dogs", Name: "Aggression towards Dogs", Items: []int{2, 19, 34}, Reverse: []int{19, 34}},
			{Key: "prey_drive", Name: "Prey Drive", Items: []int{8, 23, 39}},
			{Key: "dominance_over_other_dogs", Name: "Dominance over Other Dogs", Items: []int{12, 28, 45}, Reverse: []int{28}},
		},
	},
}

// FactorByKey returns the factor definition for a key, or nil when unknown.
func FactorByKey(key string) *Factor {
	for i := range Factors {
		if Factors[i].Key == key {
			return &Factors[i]
		}
	}

	return nil
}
