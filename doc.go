// Package fctp finds low-cost shipping plans for the fixed-charge
// transportation problem with a genetic algorithm.
//
// A plan ships integer amounts from S sources to D destinations. Every used
// route pays amount·unitCost plus a one-off fixed charge, which makes the
// cost landscape piecewise and rewards plans that use few routes.
//
// Under the hood, the work is split into small packages:
//
//	matrix/           — row-major Dense tables for the unit and fixed costs
//	transport/        — Problem, Allocation, greedy encoder, cost, repair, instance I/O
//	genetic/          — selection, crossover, mutation and the Solve loop
//	metrics/          — Prometheus collectors fed by Solve's observer
//	internal/config/  — flag, environment and YAML configuration
//	internal/cli/     — the solve and generate subcommands
//	cmd/fctp/         — the command binary
//
// Quick example (the textbook 2×2 instance):
//
//	supply  20 30      unit cost  2 3
//	demand  25 25                 4 1
//
//	greedy plan  20  0     cost 20·2 + 5·4 + 25·1 = 85
//	              5 25
//
// Command line:
//
//	fctp 20,30 25,25 2,3,4,1 0,0,0,0 50 20 0.1
//	fctp solve --instance plant.yaml --repair --selection max-minus --output json
//	fctp generate --sources 10 --destinations 12 --format yaml
//
//	go install github.com/katalvlaran/fctp/cmd/fctp@latest
package fctp
