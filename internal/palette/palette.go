// Package palette turns raw RGB palette dumps into C array-initializer text.
package palette

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// TripletSize is the number of bytes per RGB entry.
const TripletSize = 3

// rowTrigger is the modulus applied to the offset just past a triplet.
const rowTrigger = 4

// ErrMalformed reports an input whose length is not a multiple of TripletSize.
var ErrMalformed = errors.New("palette length is not a multiple of 3")

// Triplet is one RGB entry.
type Triplet struct {
	R, G, B uint8
}

// Literal renders the triplet as `{0xRR, 0xGG, 0xBB }, `.
func (t Triplet) Literal() string {
	return fmt.Sprintf("{0x%02x, 0x%02x, 0x%02x }, ", t.R, t.G, t.B)
}

// Validate checks that data splits evenly into triplets.
func Validate(data []byte) error {
	if len(data)%TripletSize != 0 {
		return fmt.Errorf("%w: got %d bytes", ErrMalformed, len(data))
	}
	return nil
}

// Triplets slices data into RGB entries.
func Triplets(data []byte) ([]Triplet, error) {
	if err := Validate(data); err != nil {
		return nil, err
	}
	out := make([]Triplet, 0, len(data)/TripletSize)
	for i := 0; i < len(data); i += TripletSize {
		out = append(out, Triplet{R: data[i], G: data[i+1], B: data[i+2]})
	}
	return out, nil
}

// breaksAfter reports whether a line break follows the triplet at byte offset i.
// The rule is on the byte offset, not on a triplet counter.
func breaksAfter(i int) bool {
	return (i+TripletSize)%rowTrigger == 0
}

// Format writes the literal form of data to w.
// Nothing is written when data is malformed.
func Format(w io.Writer, data []byte) error {
	triplets, err := Triplets(data)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	for k, t := range triplets {
		if _, err := bw.WriteString(t.Literal()); err != nil {
			return err
		}
		if breaksAfter(k * TripletSize) {
			if err := bw.WriteByte('\n'); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// FormatFile reads path and formats its contents to w.
func FormatFile(w io.Writer, path string) error {
	data, err := ReadFile(path)
	if err != nil {
		return err
	}
	return Format(w, data)
}
