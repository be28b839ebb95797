// Package codec implements a self-describing binary snapshot format
// for vectors and strings.
//
// A snapshot is a fixed header followed by one payload block. The
// header records magic, format version, compression algorithm, the
// unit size and logical count of the encoded buffer and a CRC32
// checksum of the uncompressed payload. Payload blocks may be stored
// raw or compressed with LZ4 or ZSTD; a block that does not shrink
// under compression is stored raw regardless of the requested
// algorithm.
//
// Snapshots created by older versions of the format are rejected with
// ErrInvalidVersion rather than decoded on a best-effort basis.
package codec
