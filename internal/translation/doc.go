// Package translation replaces record names using a translation table and
// audits the record set for coverage gaps and names shared by several types.
//
// Names are matched on their canonical form (see Normalize) everywhere: when
// the table is built, when records are indexed and when records are rewritten.
// The engine never mutates its inputs; Translate works on a deep copy.
package translation
