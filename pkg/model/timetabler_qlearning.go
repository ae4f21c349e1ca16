package model

import (
	"github.com/TerrifyingAnt/Shedulae-AI-RL/pkg/qlearning"

	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

type QLearningConfig struct {
	Alpha         float64 // Learning rate
	Gamma         float64 // Discount
	Epsilon       float64 // Exploration probability of the behaviour policy
	LogEvery      int     // Episodes between progress logs; not positive disables them
	SummaryWindow int     // Last episodes averaged into TrainingStats; not positive averages all of them
}

func DefaultQLearningConfig() QLearningConfig {
	return QLearningConfig{
		Alpha:         0.1,
		Gamma:         0.9,
		Epsilon:       0.1,
		LogEvery:      10000,
		SummaryWindow: 1000,
	}
}

type ValueStore = qlearning.ValueStore[State, Assignment]

type qlearningTimetabler struct {
	modelInput ModelInput
	config     QLearningConfig
	random     *rand.Rand
	logger     *zap.Logger

	codec      stateCodec
	generator  actionGenerator
	store      *ValueStore
	behaviour  *qlearning.EGreedy[State, Assignment]
	target     qlearning.Policy[State, Assignment]
	experiment *qlearning.Online[State, Assignment]
	returns    *qlearning.Return
	lengths    *qlearning.EpisodeLength
}

// NewQLearningTimetabler returns a timetabler that learns its action values into store (a new one
// if nil) while training and reads them back, greedily, to build schedules. Every random choice
// is drawn from source.
func NewQLearningTimetabler(modelInput ModelInput, config QLearningConfig, store *ValueStore, source rand.Source, logger *zap.Logger) Timetabler {
	if store == nil {
		store = qlearning.NewValueStore[State, Assignment]()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	random := rand.New(source)

	//** Initialize dependencies
	codec := newStateCodec(modelInput)
	generator := newActionGenerator(modelInput, newPredicateEvaluator(modelInput))
	env := newScheduleEnvironment(codec, generator, NewRewardModel(modelInput), random)

	//** Initialize agent
	behaviour := qlearning.NewEGreedy(store, config.Epsilon, random)
	learner := qlearning.NewLearner(store, config.Alpha, config.Gamma)
	returns, lengths := qlearning.NewReturn(), qlearning.NewEpisodeLength()

	return &qlearningTimetabler{
		modelInput: modelInput,
		config:     config,
		random:     random,
		logger:     logger,
		codec:      codec,
		generator:  generator,
		store:      store,
		behaviour:  behaviour,
		target:     qlearning.NewGreedy(store),
		experiment: qlearning.NewOnline[State, Assignment](env, behaviour, learner, returns, lengths),
		returns:    returns,
		lengths:    lengths,
	}
}

func (timetabler *qlearningTimetabler) Train(episodes int) TrainingStats {
	start := len(timetabler.returns.Data())

	for episode := 0; episode < episodes; episode++ {
		// The group an episode is run for does not change its dynamics
		group := timetabler.randomGroup()

		steps, episodeReturn := timetabler.experiment.RunEpisode()

		if logEvery := timetabler.config.LogEvery; logEvery > 0 && (episode+1)%logEvery == 0 {
			timetabler.logger.Debug("training progress",
				zap.Int("episode", episode+1),
				zap.Int("total_episodes", timetabler.experiment.Episodes()),
				zap.String("group", group),
				zap.Int("steps", steps),
				zap.Float64("return", episodeReturn),
				zap.Int("entries", timetabler.store.Len()),
			)
		}
	}

	returns, lengths := timetabler.returns.Data()[start:], timetabler.lengths.Data()[start:]
	meanReturn, stdReturn := qlearning.Summary(returns, timetabler.config.SummaryWindow)
	meanLength, _ := qlearning.Summary(lengths, timetabler.config.SummaryWindow)

	stats := TrainingStats{
		Episodes:   episodes,
		MeanReturn: meanReturn,
		StdReturn:  stdReturn,
		MeanLength: meanLength,
		Entries:    timetabler.store.Len(),
		States:     timetabler.store.States(),
	}
	timetabler.logger.Info("training finished",
		zap.Int("episodes", stats.Episodes),
		zap.Float64("epsilon", timetabler.behaviour.Epsilon()),
		zap.Float64("mean_return", stats.MeanReturn),
		zap.Float64("std_return", stats.StdReturn),
		zap.Float64("mean_length", stats.MeanLength),
		zap.Int("entries", stats.Entries),
		zap.Int("states", stats.States),
	)
	return stats
}

func (timetabler *qlearningTimetabler) Build(group uint64) (*Schedule, error) {
	if err := checkGroup(group, timetabler.modelInput); err != nil {
		return nil, err
	}
	return rollout(timetabler.random, timetabler.codec, timetabler.generator, timetabler.target.SelectAction), nil
}

func (timetabler *qlearningTimetabler) Verify(schedule *Schedule) bool {
	return verify(schedule, timetabler.modelInput)
}

func (timetabler *qlearningTimetabler) randomGroup() string {
	if len(timetabler.modelInput.Groups) == 0 {
		return ""
	}
	return timetabler.modelInput.Groups[timetabler.random.Intn(len(timetabler.modelInput.Groups))].Name
}
