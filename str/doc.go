// Package str implements a byte string built on the vec buffer.
//
// A String is a vector of bytes that additionally keeps one zero byte
// in the slot just past its reported length, outside the length
// itself. The same buffer can therefore be consumed both by
// length-aware code (Bytes) and by terminator-scanning code
// (Terminated). Every mutating operation re-establishes the
// terminator as its final step.
//
// On top of the buffer the package provides insertion, splitting,
// prefix/suffix tests, Knuth-Morris-Pratt substring search reporting
// overlapping matches, count-limited in-place replacement, repetition,
// order-independent range extraction and a printf-style Format.
//
// Strings hold pure byte semantics: no Unicode awareness, no locale.
// They are not safe for concurrent use.
package str
