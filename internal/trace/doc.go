// Package trace records what the pre-lexer driver is doing.
//
// Enable it from the command line:
//
//	prelex scan --trace=- --trace-level=detail notes/
//
// Tracers:
//
//   - Nop: zero-overhead when disabled
//   - StreamTracer: writes text or NDJSON lines immediately
//   - RingTracer: keeps the last N events in memory
//   - MultiTracer: fans out to several tracers
//
// Scopes, coarse to fine: ScopeDriver (one CLI command), ScopePass (one
// scan or analysis pass), ScopeFile (one input file).
//
// Tracers travel through context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "prelex", 0)
//	defer span.End("")
package trace
