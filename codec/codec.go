package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"io"

	"github.com/acerv/libvest/internal/conv"
	"github.com/acerv/libvest/str"
	"github.com/acerv/libvest/vec"
)

const (
	// MagicNumber identifies libvest snapshot files (ASCII: "VEST").
	MagicNumber = 0x56455354
	// Version is the current snapshot format version (v1.0.0).
	Version = 0x00010000

	headerSize = 4 + 4 + 1 + 3 + 4 + 8 + 4
)

var (
	ErrInvalidMagic       = errors.New("codec: invalid magic number")
	ErrInvalidVersion     = errors.New("codec: unsupported version")
	ErrInvalidCompression = errors.New("codec: invalid compression type")
	ErrChecksumMismatch   = errors.New("codec: checksum mismatch")
	ErrUnitSizeMismatch   = errors.New("codec: unexpected unit size")
)

// header is the fixed-size preamble of every snapshot.
// Serialized little-endian, field by field, headerSize bytes total.
type header struct {
	Magic       uint32
	Version     uint32
	Compression Compression
	Pad         [3]byte
	UnitSize    uint32
	Count       uint64
	Checksum    uint32 // CRC32 (IEEE) of the uncompressed payload
}

func (h *header) marshal() []byte {
	buf := make([]byte, headerSize)
	binary.LittleEndian.PutUint32(buf[0:], h.Magic)
	binary.LittleEndian.PutUint32(buf[4:], h.Version)
	buf[8] = byte(h.Compression)
	binary.LittleEndian.PutUint32(buf[12:], h.UnitSize)
	binary.LittleEndian.PutUint64(buf[16:], h.Count)
	binary.LittleEndian.PutUint32(buf[24:], h.Checksum)

	return buf
}

func (h *header) unmarshal(buf []byte) {
	h.Magic = binary.LittleEndian.Uint32(buf[0:])
	h.Version = binary.LittleEndian.Uint32(buf[4:])
	h.Compression = Compression(buf[8])
	h.UnitSize = binary.LittleEndian.Uint32(buf[12:])
	h.Count = binary.LittleEndian.Uint64(buf[16:])
	h.Checksum = binary.LittleEndian.Uint32(buf[24:])
}

// Encode writes a snapshot of data to w. unitSize is the byte width
// of one logical item and count the logical item count; data holds
// the raw buffer bytes, count*unitSize long.
func Encode(w io.Writer, unitSize, count int, data []byte, compression Compression) error {
	if count*unitSize != len(data) {
		return fmt.Errorf("codec: data is %d bytes, expected %d (count %d x unit %d)",
			len(data), count*unitSize, count, unitSize)
	}

	unitSizeU32, err := conv.IntToUint32(unitSize)
	if err != nil {
		return fmt.Errorf("codec: invalid unit size: %w", err)
	}

	countU64, err := conv.IntToUint64(count)
	if err != nil {
		return fmt.Errorf("codec: invalid count: %w", err)
	}

	payload, err := compressBlock(data, compression)
	if err != nil {
		return fmt.Errorf("codec: compress payload: %w", err)
	}

	h := header{
		Magic:       MagicNumber,
		Version:     Version,
		Compression: compression,
		UnitSize:    unitSizeU32,
		Count:       countU64,
		Checksum:    crc32.ChecksumIEEE(data),
	}

	if _, err := w.Write(h.marshal()); err != nil {
		return fmt.Errorf("codec: write header: %w", err)
	}

	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("codec: write payload: %w", err)
	}

	return nil
}

// Decode reads a snapshot from r and returns the unit size, logical
// count and raw buffer bytes. The payload checksum is verified
// against the header before anything is returned.
func Decode(r io.Reader) (unitSize, count int, data []byte, err error) {
	buf := make([]byte, headerSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		return 0, 0, nil, fmt.Errorf("codec: read header: %w", err)
	}

	var h header
	h.unmarshal(buf)

	if h.Magic != MagicNumber {
		return 0, 0, nil, ErrInvalidMagic
	}

	if h.Version != Version {
		return 0, 0, nil, ErrInvalidVersion
	}

	if h.Compression > CompressionZSTD {
		return 0, 0, nil, ErrInvalidCompression
	}

	payload, err := io.ReadAll(r)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("codec: read payload: %w", err)
	}

	data, err = decompressBlock(payload, h.Compression)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("codec: decompress payload: %w", err)
	}

	if crc32.ChecksumIEEE(data) != h.Checksum {
		return 0, 0, nil, ErrChecksumMismatch
	}

	count, err = conv.Uint64ToInt(h.Count)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("codec: invalid count: %w", err)
	}

	// Header fields are untrusted: validate the geometry by division,
	// never by multiplying count and unit size, which a crafted header
	// can wrap past the integer range.
	dataLen := uint64(len(data))
	if h.UnitSize == 0 {
		if h.Count != 0 || dataLen != 0 {
			return 0, 0, nil, fmt.Errorf("codec: payload is %d bytes with zero unit size (count %d)",
				dataLen, h.Count)
		}
	} else if dataLen%uint64(h.UnitSize) != 0 || h.Count != dataLen/uint64(h.UnitSize) {
		return 0, 0, nil, fmt.Errorf("codec: payload is %d bytes, expected count %d x unit %d",
			dataLen, h.Count, h.UnitSize)
	}

	unitSize = int(h.UnitSize)

	return unitSize, count, data, nil
}

// EncodeString writes a snapshot of s to w.
func EncodeString(w io.Writer, s *str.String, compression Compression) error {
	return Encode(w, 1, s.Length(), s.Bytes(), compression)
}

// DecodeString reads a snapshot written by EncodeString. Snapshots
// with a unit size other than one byte are rejected with
// ErrUnitSizeMismatch.
func DecodeString(r io.Reader) (*str.String, error) {
	unitSize, _, data, err := Decode(r)
	if err != nil {
		return nil, err
	}

	if unitSize != 1 {
		return nil, ErrUnitSizeMismatch
	}

	return str.FromBytes(data), nil
}

// EncodeVector writes a snapshot of a byte vector to w.
func EncodeVector(w io.Writer, v *vec.Vector[byte], compression Compression) error {
	return Encode(w, v.UnitSize(), v.Count(), v.Items(), compression)
}

// DecodeVector reads a snapshot written by EncodeVector.
func DecodeVector(r io.Reader) (*vec.Vector[byte], error) {
	unitSize, count, data, err := Decode(r)
	if err != nil {
		return nil, err
	}

	if unitSize != 1 {
		return nil, ErrUnitSizeMismatch
	}

	v := vec.NewWithLength[byte](count)
	v.Copy(0, data)

	return v, nil
}
