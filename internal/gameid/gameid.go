// Package gameid produces sortable round identifiers: a 48-bit millisecond
// timestamp followed by 80 random bits, written as 26 characters of
// Crockford base32.
package gameid

import (
	"fmt"
	rand "math/rand/v2"
	"strings"
	"time"

	"github.com/coder/quartz"
)

// Crockford's base32
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Length of an encoded ID
const Length = 26

// Generator stamps IDs with its clock and fills them from its rng. It is
// not safe for concurrent use.
type Generator struct {
	clock quartz.Clock
	rng   *rand.Rand
}

// NewGenerator returns a generator. A nil clock uses the real clock.
func NewGenerator(clock quartz.Clock, rng *rand.Rand) *Generator {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Generator{clock: clock, rng: rng}
}

// Generate returns a new ID
func (g *Generator) Generate() string {
	var raw [16]byte

	ms := g.clock.Now().UnixMilli()
	for i := 0; i < 6; i++ {
		raw[i] = byte(ms >> (40 - 8*i))
	}
	for i := 6; i < 16; i++ {
		raw[i] = byte(g.rng.UintN(256))
	}
	// version 7, variant 10
	raw[6] = (raw[6] & 0x0f) | 0x70
	raw[8] = (raw[8] & 0x3f) | 0x80

	return encode(raw)
}

// encode writes 128 bits as 26 five-bit groups, the final group padded
// with two zero bits.
func encode(data [16]byte) string {
	var b strings.Builder
	b.Grow(Length)
	for i := 0; i < Length; i++ {
		var v uint8
		for bit := 0; bit < 5; bit++ {
			pos := i*5 + bit
			v <<= 1
			if pos < 128 && data[pos/8]&(0x80>>(pos%8)) != 0 {
				v |= 1
			}
		}
		b.WriteByte(alphabet[v])
	}
	return b.String()
}

// Validate checks that id is 26 valid base32 characters
func Validate(id string) error {
	if len(id) != Length {
		return fmt.Errorf("round ID must be exactly %d characters, got %d", Length, len(id))
	}
	for i, c := range id {
		if !strings.ContainsRune(alphabet, c) {
			return fmt.Errorf("invalid character %c at position %d", c, i)
		}
	}
	return nil
}

// Time returns the timestamp encoded in id
func Time(id string) (time.Time, error) {
	if err := Validate(id); err != nil {
		return time.Time{}, err
	}
	// The first ten characters cover 50 bits; the top 48 are the timestamp.
	var v int64
	for i := 0; i < 10; i++ {
		v = v<<5 | int64(strings.IndexByte(alphabet, id[i]))
	}
	return time.UnixMilli(v >> 2), nil
}
