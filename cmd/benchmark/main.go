package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/TerrifyingAnt/Shedulae-AI-RL/pkg/model"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

type StrategyType int

const (
	qlearning StrategyType = iota
	random
)

var strategyTypes = map[StrategyType]string{
	qlearning: "qlearning",
	random:    "random",
}

type BenchmarkResult struct {
	Strategy  StrategyType
	Episodes  int
	Seed      uint64
	Stats     model.TrainingStats
	Duration  int64 // Milliseconds spent training and building
	Filled    int
	Reward    int
	Breakdown model.RewardBreakdown
	Verified  bool
}

var (
	inputFile string
	outFile   string
	budgets   string
	seeds     int
)

var rootCmd = &cobra.Command{
	Use:          "benchmark",
	Short:        "Compare timetabling strategies over several training budgets and seeds",
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&inputFile, "file", "", "Path to the input catalogue; if empty, the sample catalogue is used")
	flags.StringVar(&outFile, "out", "benchmark_results.csv", "Path to the CSV file where results are written")
	flags.StringVar(&budgets, "episodes", "1000,10000,100000", "Comma separated training budgets")
	flags.IntVar(&seeds, "seeds", 5, "Number of seeds per strategy and budget")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(_ *cobra.Command, _ []string) error {
	log, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	defer log.Sync()

	input := model.SampleInput()
	if inputFile != "" {
		if input, err = model.InputFromJson(inputFile); err != nil {
			return fmt.Errorf("cannot parse input file: %w", err)
		}
	}

	episodeBudgets, err := parseBudgets(budgets)
	if err != nil {
		return err
	}

	results := make([]BenchmarkResult, 0, len(strategyTypes)*len(episodeBudgets)*seeds)
	for _, strategy := range []StrategyType{qlearning, random} {
		for _, episodes := range episodeBudgets {
			for seed := uint64(0); seed < uint64(seeds); seed++ {
				log.Info("benchmarking",
					zap.String("strategy", strategyTypes[strategy]),
					zap.Int("episodes", episodes),
					zap.Uint64("seed", seed),
				)
				result, err := measure(input, strategy, episodes, seed)
				if err != nil {
					return err
				}
				results = append(results, result)
			}
		}
	}

	return toCsv(results, outFile)
}

func measure(input model.ModelInput, strategy StrategyType, episodes int, seed uint64) (BenchmarkResult, error) {
	source := rand.NewSource(seed)
	var timetabler model.Timetabler
	if strategy == random {
		timetabler = model.NewRandomTimetabler(input, source)
	} else {
		config := model.DefaultQLearningConfig()
		config.LogEvery = 0
		timetabler = model.NewQLearningTimetabler(input, config, nil, source, nil)
	}

	start := time.Now()
	stats := timetabler.Train(episodes)
	schedule, err := timetabler.Build(0)
	duration := time.Since(start).Milliseconds()
	if err != nil {
		return BenchmarkResult{}, fmt.Errorf("cannot build schedule with %v strategy: %w", strategyTypes[strategy], err)
	}

	breakdown := model.NewRewardModel(input).Breakdown(schedule)
	return BenchmarkResult{
		Strategy:  strategy,
		Episodes:  episodes,
		Seed:      seed,
		Stats:     stats,
		Duration:  duration,
		Filled:    schedule.Filled(),
		Reward:    breakdown.Total(),
		Breakdown: breakdown,
		Verified:  timetabler.Verify(schedule),
	}, nil
}

func toCsv(results []BenchmarkResult, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"Strategy", "Episodes", "Seed", "Duration(ms)", "Mean Return", "Std Return", "Mean Length", "Entries", "States", "Filled", "Reward", "Gaps", "Qualification", "Coverage", "Verified"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("cannot write CSV header: %w", err)
	}

	for _, result := range results {
		if err := writer.Write(toRecord(result)); err != nil {
			return fmt.Errorf("cannot write CSV record: %w", err)
		}
	}
	return nil
}

func toRecord(result BenchmarkResult) []string {
	return []string{
		strategyTypes[result.Strategy],
		fmt.Sprintf("%d", result.Episodes),
		fmt.Sprintf("%d", result.Seed),
		fmt.Sprintf("%d", result.Duration),
		fmt.Sprintf("%.2f", result.Stats.MeanReturn),
		fmt.Sprintf("%.2f", result.Stats.StdReturn),
		fmt.Sprintf("%.2f", result.Stats.MeanLength),
		fmt.Sprintf("%d", result.Stats.Entries),
		fmt.Sprintf("%d", result.Stats.States),
		fmt.Sprintf("%d", result.Filled),
		fmt.Sprintf("%d", result.Reward),
		fmt.Sprintf("%d", result.Breakdown.Gaps),
		fmt.Sprintf("%d", result.Breakdown.Qualification),
		fmt.Sprintf("%d", result.Breakdown.Coverage),
		fmt.Sprintf("%v", result.Verified),
	}
}

func parseBudgets(budgetsStr string) ([]int, error) {
	parts := lo.Filter(strings.Split(budgetsStr, ","), func(part string, _ int) bool {
		return strings.TrimSpace(part) != ""
	})
	if len(parts) == 0 {
		return nil, fmt.Errorf("at least one training budget must be specified")
	}

	budgets := make([]int, 0, len(parts))
	for _, part := range parts {
		budget, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || budget < 0 {
			return nil, fmt.Errorf("invalid training budget \"%v\"", part)
		}
		budgets = append(budgets, budget)
	}
	return budgets, nil
}
