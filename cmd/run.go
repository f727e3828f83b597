package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/fuzzyforest/shallot-strings/lisp"
	"github.com/fuzzyforest/shallot-strings/lisp/lisplib"
	"github.com/spf13/cobra"
)

var (
	runExpression bool
	runPrint      bool
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [file ...]",
	Short: "Run lisp code",
	Long:  `Run lisp code provided supplied via the command line or a file.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		exprs, err := runReadExpressions(args)
		if err != nil {
			return err
		}

		env, err := lisplib.NewEnv(envConfig()...)
		if err != nil {
			return err
		}
		for i := range exprs {
			v, err := runSource(env, runSourceName(args, i), exprs[i])
			if err != nil {
				return err
			}
			if runPrint {
				fmt.Fprintln(cmd.OutOrStdout(), v)
			}
		}
		return nil
	},
}

func runSource(env *lisp.Env, name string, src []byte) (lisp.Value, error) {
	return env.Load(name, bytes.NewReader(src))
}

func runSourceName(args []string, i int) string {
	if runExpression {
		return fmt.Sprintf("<expression %d>", i+1)
	}
	return args[i]
}

func runReadExpressions(args []string) ([][]byte, error) {
	exprs := make([][]byte, len(args))
	if runExpression {
		for i := range args {
			exprs[i] = []byte(args[i])
		}
		return exprs, nil
	}
	for i, path := range args {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		exprs[i] = b
	}
	return exprs, nil
}

func init() {
	rootCmd.AddCommand(runCmd)

	// Here flags for the run command are defined
	runCmd.Flags().BoolVarP(&runExpression, "expression", "e", false,
		"Interpret arguments as lisp expressions")
	runCmd.Flags().BoolVarP(&runPrint, "print", "p", false,
		"Print the value of each argument to stdout")
}
