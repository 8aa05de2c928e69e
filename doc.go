// Package graphwalker is a model-based testing engine: you describe a
// system under test as a directed graph of states and transitions, and
// graphwalker generates and drives a traversal of it against an Actor
// you supply.
//
// What is go-graphwalker?
//
//	A small, composable engine that brings together:
//
//	  • graph    — the model graph: vertices, edges, labels, Eulerize, APSP
//	  • plan     — traversal planners (EvenRandom, Random, Euler, Goto, Interactive)
//	  • halt     — stop conditions (Coverage, CountSteps, Seconds, SeenSteps, Never)
//	  • walkexec — the executor driving a plan's steps against an Actor
//	  • codec    — wire formats for model graphs (DOT, GML, GraphML, TGF, txt)
//
// Under the hood:
//
//	graph/             — the model graph type and its algorithms
//	plan/              — traversal planners
//	halt/              — stop conditions
//	walkexec/          — executor, Actor/Reporter/Debugger contracts, LogTap
//	codec/             — wire format codecs, selected by file extension
//	actor/, debugger/, reporter/console/ — built-in Actor/Debugger/Reporter
//	config/            — DriverConfig, the driver's settings surface
//	metrics/           — Prometheus collectors for step/run counts
//	cmd/graphwalker/   — the driver CLI
//
// A minimal traversal:
//
//	g, err := graph.Build(verts, edges)
//	cond, _ := halt.NewCoverage(halt.CoverageOptions{Edges: 100})
//	err = cond.Start(ctx, g)
//	p, err := plan.NewRandom(0).Plan(ctx, g, cond, "Start", nil)
//	err = walkexec.New(myActor, myReporter, nil).Run(ctx, "suite", p)
package graphwalker
