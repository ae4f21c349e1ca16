package model

import (
	"golang.org/x/exp/rand"
)

// scheduleEnvironment is the episode the agent learns from: it starts from an empty schedule
// and every step places the chosen assignment at a random free slot.
type scheduleEnvironment struct {
	codec     stateCodec
	generator actionGenerator
	rewards   *RewardModel
	random    *rand.Rand
	schedule  *Schedule

	// Last decoded state, since the reward and the next legal actions are computed from it
	decodedState State
	decoded      *Schedule
}

func newScheduleEnvironment(codec stateCodec, generator actionGenerator, rewards *RewardModel, random *rand.Rand) *scheduleEnvironment {
	return &scheduleEnvironment{
		codec:     codec,
		generator: generator,
		rewards:   rewards,
		random:    random,
		schedule:  NewSchedule(),
	}
}

func (env *scheduleEnvironment) Reset() State {
	env.schedule = NewSchedule()
	env.decoded = nil
	return env.codec.Encode(env.schedule)
}

func (env *scheduleEnvironment) Actions() []Assignment {
	return env.generator.AvailableActions(env.schedule)
}

func (env *scheduleEnvironment) ActionsFrom(state State) []Assignment {
	return env.generator.AvailableActions(env.decode(state))
}

func (env *scheduleEnvironment) Step(action Assignment) (State, float64, bool) {
	day, period, ok := randomFreeSlot(env.random, env.schedule)
	if !ok {
		return State{}, 0, false
	}

	env.schedule.Place(day, period, action)
	next := env.codec.Encode(env.schedule)
	reward := env.rewards.Reward(env.decode(next))
	return next, float64(reward), true
}

func (env *scheduleEnvironment) decode(state State) *Schedule {
	if env.decoded == nil || env.decodedState != state {
		env.decodedState = state
		env.decoded = env.codec.Decode(state)
	}
	return env.decoded
}
