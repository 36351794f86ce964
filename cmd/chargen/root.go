package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-chargen/internal/config"
	"github.com/KirkDiggler/rpg-chargen/internal/dice"
	"github.com/KirkDiggler/rpg-chargen/internal/engine"
	"github.com/KirkDiggler/rpg-chargen/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/rpg-chargen/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-chargen/internal/errors"
	"github.com/KirkDiggler/rpg-chargen/internal/logger"
	characterOrchestrator "github.com/KirkDiggler/rpg-chargen/internal/orchestrators/character"
	"github.com/KirkDiggler/rpg-chargen/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-chargen/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-chargen/internal/render"
	characterService "github.com/KirkDiggler/rpg-chargen/internal/services/character"
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "3.0"

const (
	flagCount      = "count"
	flagLevel      = "level"
	flagRuleset    = "ruleset"
	flagStatMethod = "stat-method"
	flagSeed       = "seed"
	flagWorkers    = "workers"
	flagOutput     = "output"
	flagLogLevel   = "log-level"

	metaUsage = "usage"
)

// serviceFactory builds the character service from the resolved config
type serviceFactory func(cfg *config.Config) (characterService.Service, error)

type app struct {
	cfg        *config.Config
	newService serviceFactory
	stdout     io.Writer
	stderr     io.Writer

	count int
	level int
}

// execute runs the CLI against args and returns the process exit code.
// Sheets go to stdout only once the whole batch has rendered.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer, newService serviceFactory) int {
	cfg, err := config.Load()
	if err != nil {
		return report(stderr, nil, err)
	}

	cmd := newRootCmd(&app{
		cfg:        cfg,
		newService: newService,
		stdout:     stdout,
		stderr:     stderr,
	})

	normalized, err := normalizeArgs(cmd, args)
	if err != nil {
		return report(stderr, cmd, err)
	}
	cmd.SetArgs(normalized)

	if err := cmd.ExecuteContext(ctx); err != nil {
		return report(stderr, cmd, err)
	}
	return errors.ExitOK
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chargen [-N] [-L]",
		Short: "Roll random D20 characters",
		Long: `Roll random fifth edition characters: race, class, alignment, ability
scores, hit points, languages and proficiencies.

The classic short form still works: chargen -5 -3 rolls five level 3
characters. The first bare number is the count and the second the level.`,
		Example: `  chargen
  chargen -5 -3
  chargen --count 10 --level 20 --ruleset legacy
  chargen -n 3 --seed 42 --output json`,
		Version:       version,
		Args:          noArgs,
		RunE:          a.runGenerate,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)
	cmd.SetVersionTemplate("D20 Character Generator version {{.Version}}\n")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid arguments"))
	})

	flags := cmd.Flags()
	flags.IntVarP(&a.count, flagCount, "n", 1, "number of characters to roll")
	flags.IntVarP(&a.level, flagLevel, "l", 1, fmt.Sprintf("character level (%d-%d)",
		characterService.MinLevel, characterService.MaxLevel))
	flags.StringVar(&a.cfg.Ruleset, flagRuleset, a.cfg.Ruleset, "ruleset: standard or legacy")
	flags.StringVar(&a.cfg.StatMethod, flagStatMethod, a.cfg.StatMethod,
		"override the ruleset stat method: 4d6_drop_lowest, 3d6 or flat")
	flags.Uint64Var(&a.cfg.Seed, flagSeed, a.cfg.Seed, "seed for reproducible output, 0 for random")
	flags.IntVar(&a.cfg.Workers, flagWorkers, a.cfg.Workers, "characters resolved in parallel")
	flags.StringVarP(&a.cfg.Output, flagOutput, "o", a.cfg.Output, "output format: text, json or yaml")
	flags.StringVar(&a.cfg.Log.Level, flagLogLevel, a.cfg.Log.Level, "log level: debug, info, warn or error")

	return cmd
}

func noArgs(_ *cobra.Command, args []string) error {
	if len(args) > 0 {
		return usageError(errors.InvalidArgumentf("unexpected argument: %s", args[0]))
	}
	return nil
}

func (a *app) runGenerate(cmd *cobra.Command, _ []string) error {
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	log, closer, err := logger.New(a.cfg.Logger(), a.stderr)
	if err != nil {
		return err
	}
	defer func() { _ = closer.Close() }()
	slog.SetDefault(log)

	renderer, err := render.New(a.cfg.Output)
	if err != nil {
		return err
	}

	svc, err := a.newService(a.cfg)
	if err != nil {
		return errors.Wrap(err, "failed to create character service")
	}

	out, err := svc.GenerateBatch(cmd.Context(), &characterService.GenerateBatchInput{
		Count: a.count,
		Level: a.level,
	})
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := renderer.Render(&buf, out.Characters); err != nil {
		return err
	}
	if _, err := buf.WriteTo(a.stdout); err != nil {
		return errors.Wrap(err, "failed to write output")
	}
	return nil
}

// newService wires the production character service
func newService(cfg *config.Config) (characterService.Service, error) {
	rs, err := cfg.Rules()
	if err != nil {
		return nil, err
	}

	eng, err := engine.New(&engine.Config{Ruleset: rs})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create engine")
	}

	bus := events.NewBus()
	rpgtoolkit.OnGenerated(bus, func(_ context.Context, c *dnd5e.Character, index int) error {
		slog.Info("Character generated",
			"index", index,
			"id", c.ID,
			"race", c.Race.String(),
			"class", c.Class.String(),
			"level", c.Level)
		return nil
	})

	orch, err := characterOrchestrator.New(&characterOrchestrator.Config{
		Engine:      eng,
		Rollers:     dice.NewFactory(cfg.Seed),
		IDGenerator: idgen.NewCharacterIDs(),
		Clock:       clock.New(),
		EventBus:    bus,
		Workers:     cfg.Workers,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create character orchestrator")
	}
	return orch, nil
}

func usageError(err *errors.Error) error {
	return err.WithMeta(metaUsage, true)
}

func isUsageError(err error) bool {
	v, _ := errors.GetMeta(err)[metaUsage].(bool)
	return v
}

// report prints err, with usage for command line mistakes, and returns the
// exit code for it
func report(w io.Writer, cmd *cobra.Command, err error) int {
	fmt.Fprintf(w, "Error: %v\n", err)
	if cmd != nil && isUsageError(err) {
		fmt.Fprint(w, cmd.UsageString())
	}
	return errors.ExitCode(err)
}
