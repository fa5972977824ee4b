// Package solver runs external reachability solvers as child processes
// and reports each run as a single Outcome value.
//
// The package deliberately knows nothing about solver output formats;
// callers hand Outcome.Stdout to the regions package for parsing. It
// also never decides policy: timeouts come from the caller, runs are
// sequential, and a run that ends badly is data (Kind Failed with the
// cause in Err), not a Go error. The only errors a caller ever handles
// around this package are its own, such as locating the binary before
// calling Run.
package solver
