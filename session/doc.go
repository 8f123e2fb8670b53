// Package session holds the transient state a presentation layer keeps for
// one generator form: the last raw inputs, the current result set and the
// current error list.
//
// A Session wraps the pure pipeline of package lcg with the request/response
// rules of an interactive surface:
//
//   - Generate on valid input replaces the current result entirely.
//   - Generate on invalid input stores the error list and leaves the
//     previously displayed result untouched.
//   - Clear wipes inputs, result and errors.
//   - ExportCSV serializes the current result with its decimal precision.
//
// Recently generated sequences are kept in a small LRU keyed by the
// validated parameters, so toggling back to an earlier request does not
// iterate the recurrence again. Cached rows are copied on the way in and
// out, so callers may edit a returned sequence freely.
//
// Generation is instrumented with monkit: a task per Generate call, the
// number of rows produced, validation failures and cache hits.
//
// Thread safety:
//
//	A Session is NOT safe for concurrent use. Callers serialize requests,
//	as a single interactive form does naturally.
package session
