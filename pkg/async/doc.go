// Package async provides a minimal future primitive for running independent
// computations in parallel and collecting their results in a fixed order.
//
// The validation engine uses it to evaluate schema fields concurrently:
// one Run call per field, then an ordered sequence of Await calls so the
// merged output is deterministic regardless of which field finished first.
// The same pattern works for any fan-out where result order must follow
// launch order rather than completion order.
//
// # Usage
//
//	futures := make([]*async.Future[int], len(jobs))
//	for i, job := range jobs {
//		futures[i] = async.Run(ctx, job, process)
//	}
//	results, err := async.All(futures...)
//
// Futures are single-shot: each Run produces one result, and Await may be
// called any number of times from any goroutine.
package async
