// Package transport models the fixed-charge transportation problem.
//
// A Problem holds supply capacities, demand requirements and two cost tables:
// a per-unit shipping cost and a fixed charge paid once for every route that
// carries a positive amount. An Allocation is a sources×destinations matrix of
// shipped integer quantities stored in one flat buffer.
//
// The package provides:
//
//   - Greedy: the row-major first-fit encoder that builds a feasible allocation.
//   - Problem.Cost / Fitness: total variable + fixed cost of an allocation.
//   - Problem.Routes: the used routes of an allocation as Route records.
//   - Check: a feasibility report (over-shipped and unmet rows/columns).
//   - Repair: an explicit projection step back onto the feasible region.
//   - ReadText/WriteText, ReadYAML/WriteYAML, ReadFile: instance files.
//   - ParseVector/ParseMatrix: comma-separated token parsing for CLIs.
//   - Generate: random instances with the classic benchmark value ranges.
//
// Malformed data is reported with ErrMalformedInput; check with errors.Is.
package transport
