// Package inline implements a fixed-capacity UTF-8 string that lives
// entirely inside its own value: a [Capacity]-byte array plus a length,
// with no heap allocation and no growth.
//
// The occupied range is valid UTF-8 at every operation boundary, and every
// mutator either applies fully or leaves the value untouched.
package inline
