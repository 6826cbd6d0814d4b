// Package formats provides readers and writers for strip and mesh files.
// TSF (Triangle Strip File) stores one strip array in Length encoding.
package formats

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"os"

	"github.com/pkg/errors"

	"github.com/Faultbox/midgard-strip/pkg/tstrip"
)

const tsfMagic = "TSTR"

// tsfHeaderSize is magic + version + element count.
const tsfHeaderSize = 4 + 2 + 4

// TSF format errors.
var (
	ErrInvalidTSFMagic       = errors.New("invalid TSF magic: expected 'TSTR'")
	ErrUnsupportedTSFVersion = errors.New("unsupported TSF version")
	ErrTruncatedTSFData      = errors.New("truncated TSF data")
)

// TSFVersion represents the TSF file version.
type TSFVersion struct {
	Major uint8
	Minor uint8
}

// CurrentTSFVersion is written by Encode.
var CurrentTSFVersion = TSFVersion{Major: 1, Minor: 0}

// String returns the version as "Major.Minor".
func (v TSFVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// TSF is a parsed strip file.
type TSF struct {
	Version TSFVersion
	Strips  []int // Length encoded
}

// NewTSF wraps a strip array in either encoding. The array is copied and
// stored Length encoded.
func NewTSF(strips []int) (*TSF, error) {
	s := append([]int(nil), strips...)
	if err := tstrip.Convert(s, tstrip.Length); err != nil {
		return nil, err
	}
	return &TSF{Version: CurrentTSFVersion, Strips: s}, nil
}

// ParseTSF parses TSF data from a byte slice.
func ParseTSF(data []byte) (*TSF, error) {
	if len(data) < tsfHeaderSize {
		return nil, ErrTruncatedTSFData
	}

	r := bytes.NewReader(data)

	magic := make([]byte, 4)
	if _, err := r.Read(magic); err != nil {
		return nil, ErrTruncatedTSFData
	}
	if string(magic) != tsfMagic {
		return nil, ErrInvalidTSFMagic
	}

	tsf := &TSF{}
	if err := binary.Read(r, binary.LittleEndian, &tsf.Version); err != nil {
		return nil, errors.Wrap(ErrTruncatedTSFData, "reading version")
	}
	if tsf.Version.Major != 1 {
		return nil, errors.Wrapf(ErrUnsupportedTSFVersion, "%s", tsf.Version)
	}

	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, errors.Wrap(ErrTruncatedTSFData, "reading element count")
	}
	if uint64(r.Len()) < uint64(count)*4 {
		return nil, errors.Wrapf(ErrTruncatedTSFData, "need %d elements, have %d bytes", count, r.Len())
	}

	raw := make([]int32, count)
	if err := binary.Read(r, binary.LittleEndian, raw); err != nil {
		return nil, errors.Wrap(ErrTruncatedTSFData, err.Error())
	}

	tsf.Strips = make([]int, count)
	for i, v := range raw {
		tsf.Strips[i] = int(v)
	}
	if count > 0 && tstrip.Detect(tsf.Strips) != tstrip.Length {
		return nil, errors.Wrap(tstrip.ErrMalformedStrips, "TSF strips are not length encoded")
	}
	if _, err := tstrip.Lengths(tsf.Strips); err != nil {
		return nil, err
	}

	return tsf, nil
}

// LoadTSF reads and parses a TSF file from disk.
func LoadTSF(path string) (*TSF, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading TSF file")
	}
	return ParseTSF(data)
}

// Encode serializes the file. Strips in Term encoding are converted on a copy.
func (t *TSF) Encode() ([]byte, error) {
	s := append([]int(nil), t.Strips...)
	if err := tstrip.Convert(s, tstrip.Length); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.Grow(tsfHeaderSize + 4*len(s))
	buf.WriteString(tsfMagic)
	buf.WriteByte(t.Version.Major)
	buf.WriteByte(t.Version.Minor)
	binary.Write(&buf, binary.LittleEndian, uint32(len(s)))
	for _, v := range s {
		if v > math.MaxInt32 || v < math.MinInt32 {
			return nil, errors.Errorf("strip value %d does not fit in int32", v)
		}
		binary.Write(&buf, binary.LittleEndian, int32(v))
	}
	return buf.Bytes(), nil
}

// Save writes the file to disk.
func (t *TSF) Save(path string) error {
	data, err := t.Encode()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
