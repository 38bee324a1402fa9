// Command sim runs the analogico control loop on a desktop. Interactively it
// draws the OLED frame in the terminal and maps the keyboard to the stick and
// buttons; with --script it replays a TOML scenario headless and prints the
// final state.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli"

	"github.com/harveysanders/analogico/control"
)

func main() {
	app := cli.NewApp()
	app.Name = "analogico-sim"
	app.Usage = "run the joystick cursor loop without hardware"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.DurationFlag{
			Name:  "tick",
			Usage: "Control loop period",
			Value: control.Period,
		},
		cli.StringFlag{
			Name:  "script",
			Usage: "Replay a TOML scenario headless instead of opening the terminal UI",
		},
		cli.IntFlag{
			Name:  "frames",
			Usage: "Number of ticks to run in headless mode (overrides the scenario's ticks)",
		},
		cli.BoolFlag{
			Name:  "dump",
			Usage: "Print the final frame in headless mode",
		},
		cli.StringFlag{
			Name:  "log-level",
			Usage: "debug, info, warn or error",
			Value: "info",
		},
	}
	app.Action = run

	err := app.Run(os.Args)
	if err != nil {
		slog.Error("Error running simulator", "error", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.String("log-level"))); err != nil {
		return fmt.Errorf("parse --log-level: %w", err)
	}

	period := c.Duration("tick")
	if period <= 0 {
		return errors.New("--tick must be positive")
	}

	if c.String("script") == "" && c.Int("frames") == 0 {
		return runInteractive(period, level)
	}

	sc := &Scenario{}
	if path := c.String("script"); path != "" {
		loaded, err := LoadScenario(path)
		if err != nil {
			return fmt.Errorf("load scenario %s: %w", path, err)
		}
		sc = loaded
	}
	if frames := c.Int("frames"); frames > 0 {
		sc.Ticks = frames
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	res, err := Replay(sc, period, logger)
	if err != nil {
		return err
	}
	logger.Info("replay complete",
		slog.Uint64("ticks", res.Ticks),
		slog.Bool("pwm", res.Flags.PWMActive),
		slog.Bool("border", res.Flags.BorderVisible),
		slog.Int("red", int(res.Red)),
		slog.Int("blue", int(res.Blue)),
		slog.Bool("green", res.Green),
		slog.Uint64("dropped", uint64(res.Dropped)),
	)
	if c.Bool("dump") && res.Frame != nil {
		return dumpFrame(os.Stdout, res.Frame)
	}
	return nil
}
