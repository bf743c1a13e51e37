package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ZanzyTHEbar/matcache/matcache/cache"
	"github.com/ZanzyTHEbar/matcache/matcache/config"
	"github.com/ZanzyTHEbar/matcache/matcache/matrix"
	"github.com/ZanzyTHEbar/matcache/matcache/solve"
)

// NewInvertCmd creates the invert command.
//
// The input is a JSON 2D number array, validated against a schema before
// decoding. With --repeat the same container is solved multiple times, so the
// cache-hit notification shows up on every run after the first.
func NewInvertCmd(configPath, logLevel *string) *cobra.Command {
	var (
		inputPath string
		repeat    int
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "invert",
		Short: "Invert a matrix read from a JSON file",
		Long: `Reads a matrix from a JSON file (a 2D array of numbers), computes its
inverse through the caching container, and prints the result.

Singular or non-square matrices fail with the collaborator's error.`,
		Example: `  # Invert a matrix stored as a JSON 2D array
  matcache invert --input matrix.json

  # Read the matrix from stdin and print the inverse as JSON
  echo '[[2,0],[0,2]]' | matcache invert --input - --json

  # Solve three times against the same container to see the cache hits
  matcache invert --input matrix.json --repeat 3`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig(*configPath)
			if err != nil {
				return err
			}

			logger, err := newLogger(cfg, *logLevel)
			if err != nil {
				return err
			}

			m, err := readMatrix(inputPath, cmd.InOrStdin())
			if err != nil {
				return err
			}

			container := cache.NewWithMatrix(m)
			solver := solve.NewFactory(cfg, logger).CreateSolver()

			if repeat < 1 {
				repeat = 1
			}
			var inv matrix.Matrix
			for i := 0; i < repeat; i++ {
				inv, err = solver.CacheSolve(container)
				if err != nil {
					return err
				}
			}

			if asJSON {
				out, err := json.Marshal(inv)
				if err != nil {
					return err
				}
				cmd.Println(string(out))
				return nil
			}

			cmd.Print(inv.String())
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Path to JSON matrix file (\"-\" for stdin)")
	cmd.Flags().IntVar(&repeat, "repeat", 1, "Number of solves against the same container")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the inverse as JSON instead of aligned text")
	cobra.CheckErr(cmd.MarkFlagRequired("input"))

	return cmd
}

func readMatrix(path string, stdin io.Reader) (matrix.Matrix, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return matrix.Zero(), fmt.Errorf("read matrix input: %w", err)
	}

	if err := validateMatrixDocument(data); err != nil {
		return matrix.Zero(), err
	}

	var m matrix.Matrix
	if err := json.Unmarshal(data, &m); err != nil {
		return matrix.Zero(), fmt.Errorf("decode matrix input: %w", err)
	}
	return m, nil
}
