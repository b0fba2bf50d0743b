package generator

import (
	"io"
	"math"

	"github.com/pkg/errors"
)

const (
	// maxBufLen is the maximum length of a temporary buffer for random bytes.
	maxBufLen = 2048

	// minRegenDraws is the minimum number of draws to request after the first read
	// didn't produce the full result. Ignored if the initial buffer is smaller.
	minRegenDraws = 16

	// bitsPerByte is used to compute the value space of a draw.
	bitsPerByte = 8
)

// Source is a scoped handle on a secure random reader. It is acquired for a single
// generation and must not be used after Close.
type Source struct {
	r      io.Reader
	buf    []byte // storage for random bytes
	closed bool
}

// acquire returns a Source reading from r.
func acquire(r io.Reader) *Source {
	return &Source{r: r}
}

// withSource runs fn with a freshly acquired Source and releases it on every exit path.
func withSource(r io.Reader, fn func(src *Source) (string, error)) (string, error) {
	src := acquire(r)
	defer func() {
		_ = src.Close()
	}()

	return fn(src)
}

// Close wipes the random byte buffer and disposes the source. Calling Close more
// than once is a no-op.
func (s *Source) Close() error {
	if s.closed {
		return nil
	}

	clear(s.buf)
	s.buf = nil
	s.closed = true

	return nil
}

// Sample returns a string of length runes, each drawn uniformly from cs.
func (s *Source) Sample(cs Charset, length int) (string, error) {
	if s.closed {
		return "", ErrResourceDisposed
	}

	if length < 1 {
		return "", ErrInvalidLength
	}

	clen := len(cs)
	if clen < minCharsetSize {
		return "", ErrInsufficientCharsetSize
	}

	width := drawWidth(clen)
	space := uint64(1) << (bitsPerByte * width)
	// Values at or above limit are skipped to avoid modulo bias.
	limit := space - space%uint64(clen)
	acceptRate := float64(limit) / float64(space)

	bufLen := estimatedBufLen(length, width, acceptRate)
	if cap(s.buf) < bufLen {
		s.buf = make([]byte, bufLen)
	}

	out := make([]rune, length) // storage for result

	var i int // index in out
	for {
		if _, err := io.ReadFull(s.r, s.buf[:bufLen]); err != nil {
			return "", errors.Wrap(err, "failed to read random bytes")
		}

		for off := 0; off+width <= bufLen; off += width {
			v := readUint(s.buf[off : off+width])
			if v >= limit {
				continue
			}

			out[i] = cs[v%uint64(clen)]
			i++

			if i == length {
				return string(out), nil
			}
		}

		// Adjust new requested length, but no smaller than minRegenDraws.
		bufLen = estimatedBufLen(length-i, width, acceptRate)
		if regen := min(minRegenDraws*width, cap(s.buf)); bufLen < regen {
			bufLen = regen
		}
	}
}

// drawWidth returns the number of random bytes consumed per draw for a charset of size n.
func drawWidth(n int) int {
	switch {
	case n <= 1<<8:
		return 1
	case n <= 1<<16:
		return 2
	default:
		return 4
	}
}

// estimatedBufLen returns the estimated number of random bytes to request for draws
// accepted values, given the share of values that survive rejection.
func estimatedBufLen(draws, width int, acceptRate float64) int {
	bufLen := int(math.Ceil(float64(draws)/acceptRate)) * width
	if bufLen > maxBufLen {
		bufLen = maxBufLen
	}

	return bufLen
}

// readUint decodes b as a big-endian unsigned integer.
func readUint(b []byte) uint64 {
	var v uint64
	for _, x := range b {
		v = v<<bitsPerByte | uint64(x)
	}

	return v
}
