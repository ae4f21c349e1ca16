package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/TerrifyingAnt/Shedulae-AI-RL/internal/config"
	"github.com/TerrifyingAnt/Shedulae-AI-RL/internal/logger"
	"github.com/TerrifyingAnt/Shedulae-AI-RL/pkg/model"
	"github.com/TerrifyingAnt/Shedulae-AI-RL/pkg/report"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

var (
	configFile string
	inputFile  string
	outFile    string
	group      uint64
)

var rootCmd = &cobra.Command{
	Use:   "timetable",
	Short: "Build a weekly timetable with a Q-learning agent",
	Long: `Trains a tabular Q-learning agent on a catalogue of subjects and teachers and prints the
schedule a greedy rollout of the learned values produces. Without --file the built-in sample
catalogue is used.`,
	SilenceUsage: true,
	RunE:         run,
}

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Print the built-in sample catalogue as JSON",
	RunE: func(cmd *cobra.Command, _ []string) error {
		bytes, err := json.MarshalIndent(model.SampleRawInput(), "", "  ")
		if err != nil {
			return fmt.Errorf("an error occurred while building sample json: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(bytes))
		return nil
	},
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&configFile, "config", "", "Path to a config file (yaml, json or toml)")
	flags.StringVar(&inputFile, "file", "", "Path to the input catalogue; if empty, the sample catalogue is used")
	flags.StringVar(&outFile, "out", "", "Path to the file where the JSON schedule will be written; if empty, only the text rendering is printed")
	flags.Uint64Var(&group, "group", 0, "Group the schedule is built for")
	flags.Int("episodes", 100000, "Number of training episodes")
	flags.Uint64("seed", 1, "Seed of the random source")
	flags.String("strategy", config.StrategyQLearning, `Strategy to build the timetable: "qlearning" or "random"`)
	flags.Float64("alpha", 0.1, "Learning rate")
	flags.Float64("gamma", 0.9, "Discount")
	flags.Float64("epsilon", 0.1, "Exploration probability while training")

	rootCmd.AddCommand(sampleCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	//** Load configuration
	v, err := config.New(configFile)
	if err != nil {
		return err
	}
	if err := bindFlags(v, cmd); err != nil {
		return err
	}
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("cannot build logger: %w", err)
	}
	defer log.Sync()

	//** Extract input
	input := model.SampleInput()
	if inputFile != "" {
		if input, err = model.InputFromJson(inputFile); err != nil {
			return fmt.Errorf("cannot parse input file: %w", err)
		}
	}

	//** Initialize engine
	source := rand.NewSource(cfg.Seed)
	var timetabler model.Timetabler
	switch cfg.Strategy {
	case config.StrategyRandom:
		timetabler = model.NewRandomTimetabler(input, source)
	default:
		timetabler = model.NewQLearningTimetabler(input, model.QLearningConfig{
			Alpha:         cfg.Alpha,
			Gamma:         cfg.Gamma,
			Epsilon:       cfg.Epsilon,
			LogEvery:      cfg.LogEvery,
			SummaryWindow: cfg.SummaryWindow,
		}, nil, source, log)
	}

	//** Train and build timetable
	log.Info("training started",
		zap.String("strategy", cfg.Strategy),
		zap.Int("episodes", cfg.Episodes),
		zap.Uint64("seed", cfg.Seed),
		zap.Int("subjects", len(input.Subjects)),
		zap.Int("teachers", len(input.Teachers)),
	)
	timetabler.Train(cfg.Episodes)

	schedule, err := timetabler.Build(group)
	if err != nil {
		return fmt.Errorf("an error occurred during timetable construction: %w", err)
	}

	valid := timetabler.Verify(schedule)
	if !valid {
		log.Warn("schedule does not satisfy the catalogue's quotas or qualifications")
	}

	//** Output
	result := report.Build(input, group, schedule, model.NewRewardModel(input).Reward(schedule), valid)
	if err := report.Text(cmd.OutOrStdout(), result); err != nil {
		return err
	}

	if outFile != "" {
		bytes, err := report.JSON(result)
		if err != nil {
			return fmt.Errorf("an error occurred while building output json: %w", err)
		}
		if err := os.WriteFile(outFile, bytes, 0666); err != nil {
			return fmt.Errorf("an error occurred while writing to the output file: %w", err)
		}
	}
	return nil
}

// Flags explicitly set on the command line take precedence over the config file and the environment
func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	for _, name := range []string{"episodes", "seed", "strategy", "alpha", "gamma", "epsilon"} {
		if err := v.BindPFlag(name, cmd.Flags().Lookup(name)); err != nil {
			return fmt.Errorf("cannot bind flag %v: %w", name, err)
		}
	}
	return nil
}
