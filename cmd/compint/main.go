// Command compint is a small REPL/pipeline front end over decint.DecInt,
// demonstrating arithmetic on decimal text exchanged over stdin and the
// command line, for applications that trade decimal strings frequently
// while wanting competitive arithmetic throughput. Logging and CLI
// plumbing live here rather than in the library packages, which stay
// free of output-formatting and operational concerns.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/philippag/compint/decint"
	"github.com/philippag/compint/decint/scheduler"
)

var log zerolog.Logger

func main() {
	log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()

	app := &cli.App{
		Name:  "compint",
		Usage: "arbitrary-precision decimal arithmetic over DecInt",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "log-level", Value: "info", Usage: "debug, info, warn, error"},
		},
		Before: func(c *cli.Context) error {
			level, err := zerolog.ParseLevel(c.String("log-level"))
			if err != nil {
				return errors.Wrap(err, "invalid --log-level")
			}
			log = log.Level(level)
			return nil
		},
		Commands: []*cli.Command{
			addCommand(),
			subCommand(),
			mulCommand(),
			powCommand(),
			replCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Error().Err(err).Msg("compint: command failed")
		os.Exit(1)
	}
}

func addCommand() *cli.Command {
	return &cli.Command{
		Name:      "add",
		Usage:     "print x+y",
		ArgsUsage: "x y",
		Action: func(c *cli.Context) error {
			x, y, err := parsePair(c)
			if err != nil {
				return err
			}
			fmt.Println(decint.Add(x, y).String())
			return nil
		},
	}
}

func subCommand() *cli.Command {
	return &cli.Command{
		Name:      "sub",
		Usage:     "print x-y",
		ArgsUsage: "x y",
		Action: func(c *cli.Context) error {
			x, y, err := parsePair(c)
			if err != nil {
				return err
			}
			fmt.Println(decint.Subtract(x, y).String())
			return nil
		},
	}
}

func mulCommand() *cli.Command {
	return &cli.Command{
		Name:      "mul",
		Usage:     "print x*y, choosing the multiplicative engine via flags",
		ArgsUsage: "x y",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "parallel", Usage: "use the parallel Karatsuba engine"},
			&cli.IntFlag{Name: "threshold", Value: decint.DefaultKaratsubaThreshold, Usage: "Karatsuba schoolbook cutoff"},
			&cli.IntFlag{Name: "depth", Value: decint.DefaultMaxDepth, Usage: "max parallel fork depth"},
			&cli.IntFlag{Name: "workers", Value: 0, Usage: "worker pool size for --parallel (0 = NumCPU)"},
		},
		Action: func(c *cli.Context) error {
			x, y, err := parsePair(c)
			if err != nil {
				return err
			}
			threshold, depth := c.Int("threshold"), c.Int("depth")
			var z *decint.DecInt
			if c.Bool("parallel") {
				pool := scheduler.New(c.Int("workers"))
				log.Debug().Int("workers", pool.Workers()).Int("threshold", threshold).Int("depth", depth).Msg("parallel karatsuba")
				z = decint.ParallelMultiplyKaratsuba(x, y, threshold, depth, pool)
			} else {
				z = decint.MultiplyKaratsuba(x, y, threshold)
			}
			fmt.Println(z.String())
			return nil
		},
	}
}

func powCommand() *cli.Command {
	return &cli.Command{
		Name:      "pow",
		Usage:     "print base^exp",
		ArgsUsage: "base exp",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "parallel", Usage: "square with the parallel Karatsuba engine"},
			&cli.IntFlag{Name: "workers", Value: 0},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return cli.Exit("pow requires exactly 2 arguments: base exp", 1)
			}
			base, err := decint.Parse(c.Args().Get(0))
			if err != nil {
				return err
			}
			var exp int
			if _, err := fmt.Sscanf(c.Args().Get(1), "%d", &exp); err != nil {
				return errors.Wrapf(err, "invalid exponent %q", c.Args().Get(1))
			}
			var z *decint.DecInt
			if c.Bool("parallel") {
				z = decint.ParallelPow(base, exp, scheduler.New(c.Int("workers")))
			} else {
				z = decint.Pow(base, exp)
			}
			fmt.Println(z.String())
			return nil
		},
	}
}

func replCommand() *cli.Command {
	return &cli.Command{
		Name:  "repl",
		Usage: "read 'x <op> y' lines from stdin (op in + - *), one result per line",
		Action: func(c *cli.Context) error {
			return runRepl(os.Stdin, os.Stdout)
		},
	}
}

func runRepl(in *os.File, out *os.File) error {
	scanner := bufio.NewScanner(in)
	writer := bufio.NewWriter(out)
	defer writer.Flush()

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		result, err := evalLine(line)
		if err != nil {
			log.Warn().Err(err).Str("line", line).Msg("repl: skipping malformed line")
			fmt.Fprintf(writer, "error: %v\n", err)
			continue
		}
		fmt.Fprintln(writer, result)
	}
	return scanner.Err()
}

// evalLine parses "x <op> y" where op is +, -, or *; the REPL's grammar
// is intentionally this narrow (no operator precedence, no parentheses):
// it exercises the parser/formatter and arithmetic engines, not a general
// expression language.
func evalLine(line string) (string, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return "", errors.Errorf("expected 'x op y', got %q", line)
	}
	x, err := decint.Parse(fields[0])
	if err != nil {
		return "", err
	}
	y, err := decint.Parse(fields[2])
	if err != nil {
		return "", err
	}
	switch fields[1] {
	case "+":
		return decint.Add(x, y).String(), nil
	case "-":
		return decint.Subtract(x, y).String(), nil
	case "*":
		return decint.Multiply(x, y).String(), nil
	default:
		return "", errors.Errorf("unsupported operator %q", fields[1])
	}
}

func parsePair(c *cli.Context) (*decint.DecInt, *decint.DecInt, error) {
	if c.NArg() != 2 {
		return nil, nil, cli.Exit(fmt.Sprintf("%s requires exactly 2 arguments: x y", c.Command.Name), 1)
	}
	x, err := decint.Parse(c.Args().Get(0))
	if err != nil {
		return nil, nil, err
	}
	y, err := decint.Parse(c.Args().Get(1))
	if err != nil {
		return nil, nil, err
	}
	return x, y, nil
}
