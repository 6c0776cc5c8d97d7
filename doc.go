// Package gridpath is an in-memory playground for route discovery on
// rectangular boards with painted obstacles.
//
// 🚀 What is gridpath?
//
//	A small, deterministic library plus a browser playground:
//		• Board model: classified cells, single Start/End, paintable obstacles
//		• Traversal: explicit-stack depth-first search with parent-chain paths
//		• Region analysis: detect a walled-off target before running
//		• Live playground: REST API + websocket feed animating every step
//
// ✨ Why choose gridpath?
//
//   - Reproducible – fixed East/West/North/South move order, byte-identical runs
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Observable – OnExplore/OnSolution hooks for custom visualization
//   - Honest – one discovered route, no shortest-path pretense
//
// Everything is organized under three subpackages plus a command:
//
//	board/        — Board, cell Kind, movement rule, region analysis
//	traverse/     — depth-first engine, Result, functional options
//	web/          — embedded browser playground (REST + websocket)
//	cmd/gridpath/ — CLI entry point serving the playground
//
// Quick ASCII example:
//
//	    S++..
//	    .#+#.
//	    ..++E
//
//	'S' start, 'E' end, '#' obstacle, '+' discovered route.
//
// Dive into README.md for full examples and the playground walkthrough.
//
//	go get github.com/katalvlaran/gridpath
package gridpath
