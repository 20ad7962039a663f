// Package checksum computes content digests while the content is streamed
// to its destination.
package checksum

import (
	"crypto/sha512"
	"encoding/hex"
	"hash"
	"io"
)

// Reader wraps an io.Reader and hashes every byte read through it.
type Reader struct {
	r io.Reader
	h hash.Hash
	n int64
}

// NewSHA512Reader returns a Reader computing the SHA-512 digest of r.
func NewSHA512Reader(r io.Reader) *Reader {
	return &Reader{r: r, h: sha512.New()}
}

func (c *Reader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	if n > 0 {
		c.h.Write(p[:n])
		c.n += int64(n)
	}
	return n, err
}

// Sum returns the lowercase hex digest of the bytes read so far.
func (c *Reader) Sum() string {
	return hex.EncodeToString(c.h.Sum(nil))
}

// Size returns the number of bytes read so far.
func (c *Reader) Size() int64 {
	return c.n
}
