package hufftree

import (
	"io"

	"github.com/icza/bitio"
	"github.com/pkg/errors"
)

// BitSink writes individual bits to an underlying io.Writer, most
// significant bit first within each byte.  Call Flush when done; the final
// partial byte is padded with zero bits.
type BitSink struct {
	w *bitio.Writer
	n int64
}

// NewBitSink returns a BitSink that writes to w.
func NewBitSink(w io.Writer) *BitSink {
	return &BitSink{w: bitio.NewWriter(w)}
}

// WriteBit writes a single bit.
func (s *BitSink) WriteBit(bit bool) error {
	if err := s.w.WriteBool(bit); err != nil {
		return errors.Wrap(err, "hufftree: write bit")
	}
	s.n++
	return nil
}

// WriteByte writes 8 bits.
func (s *BitSink) WriteByte(b byte) error {
	if err := s.w.WriteBits(uint64(b), 8); err != nil {
		return errors.Wrap(err, "hufftree: write byte")
	}
	s.n += 8
	return nil
}

// WriteUint32 writes 32 bits, most significant first.
func (s *BitSink) WriteUint32(v uint32) error {
	if err := s.w.WriteBits(uint64(v), 32); err != nil {
		return errors.Wrap(err, "hufftree: write uint32")
	}
	s.n += 32
	return nil
}

// WriteCode writes the bits of hc in order.
func (s *BitSink) WriteCode(hc Code) error {
	for i := 0; i < int(hc.Size); i++ {
		if err := s.WriteBit(hc.Bit(i)); err != nil {
			return err
		}
	}
	return nil
}

// Flush pads the current byte with zero bits and writes out everything
// still buffered.  It does not close the underlying io.Writer.
func (s *BitSink) Flush() error {
	if err := s.w.Close(); err != nil {
		return errors.Wrap(err, "hufftree: flush")
	}
	return nil
}

// BitsWritten returns the number of bits written so far, not counting
// padding.
func (s *BitSink) BitsWritten() int64 {
	return s.n
}

// BitSource reads individual bits from an underlying io.Reader, most
// significant bit first within each byte.  Running out of input is
// reported as a *FormatError wrapping ErrTruncated.
type BitSource struct {
	r *bitio.Reader
	n int64
}

// NewBitSource returns a BitSource that reads from r.
func NewBitSource(r io.Reader) *BitSource {
	return &BitSource{r: bitio.NewReader(r)}
}

// ReadBit reads a single bit.
func (s *BitSource) ReadBit() (bool, error) {
	bit, err := s.r.ReadBool()
	if err != nil {
		return false, s.fail("reading bit", err)
	}
	s.n++
	return bit, nil
}

// ReadByte reads 8 bits.
func (s *BitSource) ReadByte() (byte, error) {
	v, err := s.r.ReadBits(8)
	if err != nil {
		return 0, s.fail("reading byte", err)
	}
	s.n += 8
	return byte(v), nil
}

// ReadUint32 reads 32 bits, most significant first.
func (s *BitSource) ReadUint32() (uint32, error) {
	v, err := s.r.ReadBits(32)
	if err != nil {
		return 0, s.fail("reading uint32", err)
	}
	s.n += 32
	return uint32(v), nil
}

// BitsRead returns the number of bits consumed so far.
func (s *BitSource) BitsRead() int64 {
	return s.n
}

func (s *BitSource) fail(what string, err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return &FormatError{Offset: s.n, Reason: "stream ends while " + what, Err: ErrTruncated}
	}
	return errors.Wrapf(err, "hufftree: %s at bit %d", what, s.n)
}
