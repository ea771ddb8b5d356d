// Package resolver drives the staged threshold relaxation for one query.
//
// Resolution walks the Strict, Medium, and Loose stages in order, re-scanning
// the library at each stage because a looser artist threshold can surface
// directories a stricter pass pruned. The first stage with surviving
// candidates decides the outcome: an unambiguous top candidate is accepted
// automatically, anything else is handed to a Prompter for human
// adjudication. The prompter is an interface so the same controller runs
// behind a terminal prompt or a scripted test harness.
package resolver
