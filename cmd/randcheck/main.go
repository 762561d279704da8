// Command randcheck runs a suite of built-in demonstration properties
// through the random-testing engine, using the reference in-memory
// evaluator. It exists to exercise the library end to end; real
// deployments drive the driver package from their own interpreter.
package main

import (
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/typelab/randcheck/driver"
	"github.com/typelab/randcheck/generator"
	"github.com/typelab/randcheck/rng"
	"github.com/typelab/randcheck/value"
)

var log = logrus.New()

func main() {
	root := &cobra.Command{
		Use:          "randcheck",
		Short:        "type-directed random property testing demo",
		SilenceUsage: true,
		RunE:         run,
	}
	root.Flags().Int("tests", 100, "number of tests per property")
	root.Flags().Int64("seed", 10101, "random seed")
	root.Flags().Bool("verbose", false, "log every test")
	root.Flags().Bool("dump", false, "dump (argument, result) traces instead of judging")

	if err := viper.BindPFlags(root.Flags()); err != nil {
		log.Fatal(err)
	}
	viper.SetEnvPrefix("RANDCHECK")
	viper.AutomaticEnv()

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// property is one built-in demo: a textual rendering, the declared
// function type, and the function value itself.
type property struct {
	text string
	typ  *value.Type
	fn   value.Value
}

func run(_ *cobra.Command, _ []string) error {
	tests := viper.GetInt("tests")
	seed := viper.GetInt64("seed")
	if viper.GetBool("verbose") {
		log.SetLevel(logrus.DebugLevel)
	}

	ev := value.NewInterp()
	st := rng.New(seed)

	if viper.GetBool("dump") {
		return dumpTrace(ev, tests, st)
	}

	props := demoProperties(ev)
	failed := 0
	for _, p := range props {
		var rep driver.Report
		rep, st = runProperty(ev, p, tests, st)
		if rep.Result.Outcome != driver.Pass {
			failed++
		}
		fields := logrus.Fields{
			"property": p.text,
			"outcome":  rep.Result.Outcome.String(),
			"ran":      rep.TestsRun,
		}
		if rep.TestsPossible != nil {
			fields["possible"] = rep.TestsPossible.String()
		}
		log.WithFields(fields).Info("property finished")
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d properties failed", failed, len(props))
	}
	return nil
}

// runProperty tests one property: exhaustively when the whole argument
// domain fits in the test budget, randomly otherwise.
func runProperty(ev value.Evaluator, p property, tests int, st rng.State) (driver.Report, rng.State) {
	reporter := driver.NewLogReporter(log, ev, p.text)

	if total, combos, ok := generator.TestableArgs(p.typ, ev); ok &&
		total.Cmp(big.NewInt(int64(tests))) <= 0 {
		spec := driver.Spec{
			Property: p.text,
			Total:    len(combos),
			Possible: total,
			Step:     driver.ExhaustiveStep(ev, p.fn, combos),
			Reporter: reporter,
		}
		return driver.Run(spec, st)
	}

	gens, ok := driver.ForProperty(p.typ, ev)
	if !ok {
		log.WithFields(logrus.Fields{"property": p.text, "type": p.typ.String()}).
			Warn("property type is not testable")
		return driver.Report{Result: driver.Result{Outcome: driver.Pass}}, st
	}
	spec := driver.Spec{
		Property: p.text,
		Total:    tests,
		Step:     driver.RandomStep(ev, p.fn, gens),
		Reporter: reporter,
	}
	return driver.Run(spec, st)
}

// dumpTrace records (argument, result) pairs for the word successor
// function instead of judging a property.
func dumpTrace(ev value.Evaluator, tests int, st rng.State) error {
	typ := value.FuncType(value.WordType(8), value.WordType(8))
	fn := value.FuncOf(func(x value.Value) (value.Value, error) {
		succ := new(big.Int).Add(x.Bits, big.NewInt(1))
		succ.Mod(succ, new(big.Int).Lsh(big.NewInt(1), 8))
		return ev.Word(8, succ), nil
	})

	args, res := typ.FuncArgs()
	if _, ok := generator.For(res, ev); !ok {
		return fmt.Errorf("dump: result type %s has no generator", res)
	}
	gens := make([]generator.Gen, len(args))
	for i, at := range args {
		g, ok := generator.For(at, ev)
		if !ok {
			return fmt.Errorf("dump: argument type %s has no generator", at)
		}
		gens[i] = g
	}

	pairs, _ := driver.Dump(ev, fn, gens, tests, st)
	for i, pair := range pairs {
		rendered := make([]string, len(pair.Args))
		for j, a := range pair.Args {
			rendered[j] = ev.Render(a)
		}
		fields := logrus.Fields{"index": i, "args": strings.Join(rendered, ", ")}
		if pair.Err != nil {
			fields["error"] = pair.Err.Error()
		} else {
			fields["result"] = ev.Render(pair.Result)
		}
		log.WithFields(fields).Info("trace")
	}
	return nil
}

// demoProperties builds the built-in suite over the reference
// evaluator: two holding properties, one falsified quickly, one that
// raises a runtime fault, and one small enough to test exhaustively.
func demoProperties(ev value.Evaluator) []property {
	wordMod := new(big.Int).Lsh(big.NewInt(1), 8)
	addMod := func(x, y *big.Int) *big.Int {
		s := new(big.Int).Add(x, y)
		return s.Mod(s, wordMod)
	}

	return []property{
		{
			text: "\\(x : [8]) (y : [8]) -> x + y == y + x",
			typ:  value.FuncType(value.WordType(8), value.FuncType(value.WordType(8), value.BitType())),
			fn: value.FuncOf(func(x value.Value) (value.Value, error) {
				return value.FuncOf(func(y value.Value) (value.Value, error) {
					return ev.Bit(addMod(x.Bits, y.Bits).Cmp(addMod(y.Bits, x.Bits)) == 0), nil
				}), nil
			}),
		},
		{
			text: "\\(x : Integer) -> -(-x) == x",
			typ:  value.FuncType(value.IntegerType(), value.BitType()),
			fn: value.FuncOf(func(x value.Value) (value.Value, error) {
				neg2 := new(big.Int).Neg(new(big.Int).Neg(x.Int))
				return ev.Bit(neg2.Cmp(x.Int) == 0), nil
			}),
		},
		{
			text: "\\(x : Integer) -> x >= 0",
			typ:  value.FuncType(value.IntegerType(), value.BitType()),
			fn: value.FuncOf(func(x value.Value) (value.Value, error) {
				return ev.Bit(x.Int.Sign() >= 0), nil
			}),
		},
		{
			text: "\\(x : Z 5) -> 10 / x >= 0",
			typ:  value.FuncType(value.IntModType(big.NewInt(5)), value.BitType()),
			fn: value.FuncOf(func(x value.Value) (value.Value, error) {
				if x.Int.Sign() == 0 {
					return value.Value{}, value.DivByZero("(/)")
				}
				q := new(big.Int).Div(big.NewInt(10), x.Int)
				return ev.Bit(q.Sign() >= 0), nil
			}),
		},
		{
			text: "\\(x : Bit) (y : Bit) -> (x ^ y) == (y ^ x)",
			typ:  value.FuncType(value.BitType(), value.FuncType(value.BitType(), value.BitType())),
			fn: value.FuncOf(func(x value.Value) (value.Value, error) {
				return value.FuncOf(func(y value.Value) (value.Value, error) {
					return ev.Bit((x.Bool != y.Bool) == (y.Bool != x.Bool)), nil
				}), nil
			}),
		},
	}
}
