package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"sudoku_solver_go/internal/puzzle"
	"sudoku_solver_go/internal/solver"
	"sudoku_solver_go/internal/store"
	"sudoku_solver_go/internal/visualizer"
)

var (
	showUnsolved bool
	maxTries     uint
	algorithm    string
	verbosity    int
	upload       bool
	storeURL     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sudoku [flags] INPUT",
		Short: "Solve a 9x9 sudoku read from a text file",
		Long: `Solve a 9x9 sudoku read from a text file.

The input holds one line per grid row; '#' lines are comments, '-' lines
and '|' characters are decoration and 'x' marks an empty cell.

Examples:
  sudoku examples/sudoku1.txt
  sudoku --algorithm montecarlo --max-tries 500000 examples/sudoku1.txt
  sudoku --show-unsolved examples/sudoku1.txt`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	rootCmd.Flags().BoolVar(&showUnsolved, "show-unsolved", false, "Show the unsolved sudoku next to the solution")
	rootCmd.Flags().UintVar(&maxTries, "max-tries", 100000, "Maximum number of tries to iteratively solve the sudoku")
	rootCmd.Flags().StringVar(&algorithm, "algorithm", solver.AlgorithmBacktracing, "Solving algorithm (backtracing|montecarlo)")
	rootCmd.Flags().CountVarP(&verbosity, "verbose", "v", "Increase log verbosity, may be used multiple times")
	rootCmd.Flags().BoolVar(&upload, "upload", false, "Upload the solve result to PocketBase")
	rootCmd.Flags().StringVar(&storeURL, "store-url", "", "PocketBase base URL (defaults to POCKETBASE_URL)")

	if err := rootCmd.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	initLogging(verbosity)

	inputFile := args[0]
	logrus.Infof("Using input file: %s", inputFile)
	logrus.Infof("Using maximum number of tries: %d", maxTries)

	f, err := os.Open(inputFile)
	if err != nil {
		return err
	}
	defer f.Close()

	p := puzzle.New()
	if err := p.Read(f); err != nil {
		return err
	}

	s, err := solver.New(algorithm, maxTries)
	if err != nil {
		return err
	}

	p, err = s.Solve(p)
	if err != nil {
		if errors.Is(err, solver.ErrUnsolvable) {
			return fmt.Errorf("%w (checked %d candidates)", err, s.Tries())
		}
		return err
	}
	if !s.IsSuccess() {
		return fmt.Errorf("could not solve sudoku: exceeded limit of %d tries, retry with a higher --max-tries", maxTries)
	}
	logrus.Infof("Solved. Needed %d tries.", s.Tries())

	visualizer.New(p).Print(cmd.OutOrStdout(), showUnsolved)

	if upload {
		if err := uploadResult(p, s); err != nil {
			return err
		}
	}
	return nil
}

func uploadResult(p *puzzle.Puzzle, s solver.Solver) error {
	st, err := store.New(storeURL)
	if err != nil {
		return err
	}
	created, err := st.Upload(store.SolveRecord{
		Puzzle:    p.Unsolved().Format(),
		Solution:  p.Grid.Format(),
		Algorithm: algorithm,
		Tries:     s.Tries(),
	})
	if err != nil {
		return err
	}
	logrus.Infof("Uploaded solve as record %v", created.ID)
	return nil
}

func initLogging(level int) {
	switch level {
	case 0:
		logrus.SetLevel(logrus.WarnLevel)
	case 1:
		logrus.SetLevel(logrus.InfoLevel)
	default:
		logrus.SetLevel(logrus.TraceLevel)
	}
	logrus.Debugf("Set logging level to: %s", logrus.GetLevel())
}
