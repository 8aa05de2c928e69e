// Command graphwalker is the driver CLI described in spec.md §6: it loads
// one or more graph model files, resolves a planner chain, halt condition,
// reporter, and optional actor/debugger from spec strings, and drives a
// walkexec.Executor to completion.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/spotify/go-graphwalker/actor"
	"github.com/spotify/go-graphwalker/codec"
	_ "github.com/spotify/go-graphwalker/codec/dot"
	_ "github.com/spotify/go-graphwalker/codec/gml"
	_ "github.com/spotify/go-graphwalker/codec/graphml"
	_ "github.com/spotify/go-graphwalker/codec/tgf"
	_ "github.com/spotify/go-graphwalker/codec/txt"
	"github.com/spotify/go-graphwalker/config"
	"github.com/spotify/go-graphwalker/debugger"
	"github.com/spotify/go-graphwalker/graph"
	"github.com/spotify/go-graphwalker/halt"
	"github.com/spotify/go-graphwalker/metrics"
	"github.com/spotify/go-graphwalker/plan"
	"github.com/spotify/go-graphwalker/reporter/console"
	"github.com/spotify/go-graphwalker/walkexec"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		cfgPath     string
		planners    []string
		stopcond    string
		reporters   []string
		suiteName   string
		testName    string
		debug       bool
		debuggerSpc string
		dryRun      bool
		metricsAddr string

		listReporters bool
		listPlanners  bool
		listStopconds bool
	)

	cmd := &cobra.Command{
		Use:   "graphwalker [graph-files...] [actor-spec]",
		Short: "Drive a model-based test graph to completion",
		RunE: func(cmd *cobra.Command, args []string) error {
			if listPlanners || listStopconds || listReporters {
				if listPlanners {
					printNames("planners", plan.Registry)
				}
				if listStopconds {
					printNames("stopconds", halt.Registry)
				}
				if listReporters {
					fmt.Println("reporters:\n  console")
				}
				return nil
			}

			flagCfg := &config.DriverConfig{
				Planners:     planners,
				StopCond:     stopcond,
				Reporters:    reporters,
				SuiteName:    suiteName,
				TestName:     testName,
				Debug:        debug,
				DebuggerSpec: debuggerSpc,
				DryRun:       dryRun,
				MetricsAddr:  metricsAddr,
			}

			var base *config.DriverConfig
			if cfgPath != "" {
				loaded, err := config.Load(cfgPath)
				if err != nil {
					return err
				}
				base = loaded
			}

			graphPaths, actorSpec := splitPositionals(args)
			if len(graphPaths) == 0 {
				return fmt.Errorf("graphwalker: at least one graph file is required")
			}
			flagCfg.Graphs = graphPaths
			if actorSpec != "" {
				flagCfg.Actor = actorSpec
			}

			cfg := config.Merge(base, flagCfg)
			if err := config.Validate(cfg); err != nil {
				return err
			}

			return run(cmd.Context(), cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfgPath, "config", "", "optional YAML config file (ambient addition)")
	flags.StringArrayVar(&planners, "planner", nil, "planner spec string (repeatable; default Random)")
	flags.StringVar(&stopcond, "stopcond", "", "halt condition spec string (default Coverage)")
	flags.StringArrayVar(&reporters, "reporter", nil, "reporter spec string (repeatable)")
	flags.StringVar(&suiteName, "suite-name", "", "suite name (default: last graph file basename)")
	flags.StringVar(&testName, "test-name", "", "test name (default: basename + uuid suffix)")
	flags.BoolVar(&debug, "debug", false, "attach the default console debugger")
	flags.StringVar(&debuggerSpc, "debugger", "", "debugger spec string")
	flags.BoolVarP(&dryRun, "dry-run", "n", false, "resolve the plan but do not execute it")
	flags.StringVar(&metricsAddr, "metrics-addr", "", "if set, serve Prometheus metrics at this address")
	flags.BoolVar(&listReporters, "list-reporters", false, "list available reporters and exit")
	flags.BoolVar(&listPlanners, "list-planners", false, "list available planners and exit")
	flags.BoolVar(&listStopconds, "list-stopconds", false, "list available halt conditions and exit")

	return cmd
}

// splitPositionals implements spec.md §6's positional grammar: all but the
// last path are graph files; the last is either another graph file (its
// extension selects a registered codec) or an actor spec string.
func splitPositionals(args []string) (graphs []string, actorSpec string) {
	if len(args) == 0 {
		return nil, ""
	}
	last := args[len(args)-1]
	if _, err := codec.ByPath(last); err == nil {
		return args, ""
	}
	return args[:len(args)-1], last
}

func printNames[V any](label string, registry map[string]V) {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Printf("%s:\n", label)
	for _, n := range names {
		fmt.Println("  " + n)
	}
}

func run(ctx context.Context, cfg *config.DriverConfig) error {
	if cfg.MetricsAddr != "" {
		startMetricsServer(cfg.MetricsAddr)
	}

	g, err := loadGraphs(cfg.Graphs)
	if err != nil {
		return err
	}
	if err := g.SanityCheck(); err != nil {
		return fmt.Errorf("graphwalker: %w", err)
	}

	planner, err := resolvePlanners(cfg.Planners)
	if err != nil {
		return err
	}

	cond, err := resolveHalt(cfg.StopCond)
	if err != nil {
		return err
	}

	rep := resolveReporter(cfg.Reporters)

	act := resolveActor(cfg.Actor)

	var dbg walkexec.Debugger
	if cfg.Debug || cfg.DebuggerSpec != "" {
		dbg = debugger.NewConsole(nil)
	}

	name := testName(cfg)

	if err := cond.Start(ctx, g); err != nil {
		return err
	}

	start, err := g.FindByNameOrID("Start")
	if err != nil {
		verts := g.Vertices()
		if len(verts) == 0 {
			return fmt.Errorf("graphwalker: graph has no vertices")
		}
		start = verts[0]
	}

	p, err := planner.Plan(ctx, g, cond, start.Name, nil)
	if err != nil {
		return err
	}

	if cfg.DryRun {
		logrus.WithField("test", name).Info("graphwalker: dry run, plan resolved, not executing")
		return nil
	}

	ex := walkexec.New(act, rep, dbg)
	return ex.Run(ctx, name, p)
}

func loadGraphs(paths []string) (*graph.Graph, error) {
	var verts []graph.VertexTuple
	var edges []graph.EdgeTuple

	for _, path := range paths {
		c, err := codec.ByPath(path)
		if err != nil {
			return nil, err
		}
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("graphwalker: %w", err)
		}
		vs, es, err := c.Deserialize(raw)
		if err != nil {
			return nil, fmt.Errorf("graphwalker: %s: %w", path, err)
		}
		verts = append(verts, vs...)
		edges = append(edges, es...)
	}

	return graph.Build(verts, edges)
}

func resolvePlanners(specs []string) (plan.Planner, error) {
	if len(specs) == 0 {
		specs = []string{"Random"}
	}

	planners := make([]plan.Planner, 0, len(specs))
	for _, spec := range specs {
		ps := parseSpec(spec)
		ctor, ok := plan.Registry[ps.Name]
		if !ok {
			return nil, fmt.Errorf("graphwalker: unknown planner %q", ps.Name)
		}
		p, err := ctor(ps.Args, ps.Kwargs)
		if err != nil {
			return nil, err
		}
		planners = append(planners, p)
	}

	if len(planners) == 1 {
		return planners[0], nil
	}
	return plan.NewMasterPlan(planners...), nil
}

func resolveHalt(spec string) (halt.Condition, error) {
	if spec == "" {
		spec = "Coverage"
	}
	ps := parseSpec(spec)
	ctor, ok := halt.Registry[ps.Name]
	if !ok {
		return nil, fmt.Errorf("graphwalker: unknown halt condition %q", ps.Name)
	}
	return ctor(ps.Args, ps.Kwargs)
}

func resolveReporter(specs []string) walkexec.Reporter {
	// Only "console" is resolved today (reporter/console.Reporter); spec
	// strings for other names are accepted but fall back to console,
	// since reporting.py's richer html/image plugin chain is out of scope.
	return console.New(nil)
}

func resolveActor(spec string) walkexec.Actor {
	if spec == "" {
		return actor.Silent{}
	}
	ps := parseSpec(spec)
	ctor, ok := actor.Registry[ps.Name]
	if !ok {
		return actor.Silent{}
	}
	return ctor()
}

func testName(cfg *config.DriverConfig) string {
	if cfg.TestName != "" {
		return cfg.TestName
	}
	base := "graphwalker"
	if len(cfg.Graphs) > 0 {
		last := cfg.Graphs[len(cfg.Graphs)-1]
		last = last[strings.LastIndexAny(last, "/"+string(os.PathSeparator))+1:]
		base = strings.TrimSuffix(last, pathExt(last))
	}
	return fmt.Sprintf("%s-%s", base, uuid.New().String()[:8])
}

func pathExt(path string) string {
	if i := strings.LastIndexByte(path, '.'); i >= 0 {
		return path[i:]
	}
	return ""
}

// startMetricsServer serves metrics.Registry's collectors at addr, the
// small net/http + promhttp.Handler wiring SPEC_FULL.md's METRICS section
// describes (the library itself never starts an HTTP server).
func startMetricsServer(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))
	go func() {
		if err := http.ListenAndServe(addr, mux); err != nil {
			logrus.WithError(err).Error("graphwalker: metrics server stopped")
		}
	}()
}
