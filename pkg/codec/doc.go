// Package codec implements the delimited line format for student records.
//
// Each record occupies one line of the record file. Encoding and decoding
// round-trip through the derived-field calculator, so values parsed from disk
// never carry stale totals, percentages or grades.
package codec
