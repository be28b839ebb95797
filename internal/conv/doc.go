// Package conv provides overflow-checked integer conversions.
//
// Snapshot headers read from disk and match offsets heading into
// 32-bit bitmaps carry values the destination type may not hold;
// these helpers surface that as an error instead of silently
// truncating. Conversions that are safe by construction (loop
// indices, bounded counters) should stay plain casts.
package conv
