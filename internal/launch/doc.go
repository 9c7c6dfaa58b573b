// Package launch runs the token creation sequence.
//
// A run is a fixed, ordered list of steps, each of which invokes one of
// the external CLI tools and inspects its output. Steps are strictly
// sequential with no retries and no rollback: a critical step failure
// halts the remainder of the run, while best-effort steps (issuance
// lockout, metadata publication, supply transfer) record a warning and
// let the run continue.
package launch
