package model

import (
	"golang.org/x/exp/rand"
)

// randomTimetabler is a baseline that does not learn: every step places an assignment chosen
// uniformly among the available ones
type randomTimetabler struct {
	modelInput ModelInput
	random     *rand.Rand
	codec      stateCodec
	generator  actionGenerator
}

func NewRandomTimetabler(modelInput ModelInput, source rand.Source) Timetabler {
	return &randomTimetabler{
		modelInput: modelInput,
		random:     rand.New(source),
		codec:      newStateCodec(modelInput),
		generator:  newActionGenerator(modelInput, newPredicateEvaluator(modelInput)),
	}
}

// Train does nothing, since there is nothing to learn
func (timetabler *randomTimetabler) Train(episodes int) TrainingStats {
	return TrainingStats{Episodes: episodes}
}

func (timetabler *randomTimetabler) Build(group uint64) (*Schedule, error) {
	if err := checkGroup(group, timetabler.modelInput); err != nil {
		return nil, err
	}
	return rollout(timetabler.random, timetabler.codec, timetabler.generator, func(_ State, actions []Assignment) (Assignment, bool) {
		if len(actions) == 0 {
			return Assignment{}, false
		}
		return actions[timetabler.random.Intn(len(actions))], true
	}), nil
}

func (timetabler *randomTimetabler) Verify(schedule *Schedule) bool {
	return verify(schedule, timetabler.modelInput)
}
