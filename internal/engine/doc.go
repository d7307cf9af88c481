// Package engine implements the opening-hours evaluation engine: a parser
// for a subset of the OSM opening_hours grammar and a time-domain query
// model over the parsed rules.
//
// GRAMMAR SUBSET:
//
// An expression is a sequence of rules separated by ";". Each rule is
// built from:
//   - "24/7" (whole week, whole day)
//   - weekday selectors: "Mo", "Tu-Fr", "Sa,Su" (ranges may wrap, "Fr-Mo")
//   - time spans: "08:00-12:00,13:30-17:00" (a span may wrap midnight;
//     "24:00" is valid only as an end bound)
//   - a modifier: open, closed, off, unknown (default open)
//   - at most one quoted "comment"
//
// Holidays, month/week selectors and fallback groups are out of scope;
// expressions using them fail to parse.
//
// EVALUATION MODEL:
//
// At any instant the evaluated value is the (kind, comments) pair of the
// last rule whose selector matches that instant, or (closed, no comments)
// when no rule matches. A span that wraps midnight belongs to the day it
// starts on.
//
// Because the supported selectors repeat weekly, a value that is constant
// for eight consecutive days from an instant is constant forever after it;
// NextChange and the range iterators rely on this to terminate. NextChange
// reports "no further change" as DateLimit.
//
// A TimeDomain is immutable after Parse and safe to share between any
// number of concurrent readers. A RangeIterator carries its own cursor and
// is single-consumer.
package engine
