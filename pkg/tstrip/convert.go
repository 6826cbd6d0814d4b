package tstrip

import "github.com/pkg/errors"

// Detect reports the encoding of strips. An empty array counts as Term.
func Detect(strips []int) Rep {
	if len(strips) == 0 || strips[len(strips)-1] == Terminator {
		return Term
	}
	return Length
}

// Convert rewrites strips in place into the rep encoding. It does nothing if
// the array is empty or already encoded as rep. A malformed array is
// returned untouched with an error wrapping ErrMalformedStrips.
func Convert(strips []int, rep Rep) error {
	if len(strips) == 0 {
		return nil
	}
	from := Detect(strips)
	if from == rep {
		return nil
	}
	if _, err := Lengths(strips); err != nil {
		return err
	}

	switch rep {
	case Length:
		termToLength(strips)
	case Term:
		lengthToTerm(strips)
	default:
		return errors.Errorf("unknown strip representation %d", int(rep))
	}
	return nil
}

// termToLength walks backwards, shifting each vertex one slot right and
// dropping each strip's count into the slot after its predecessor's
// terminator.
func termToLength(s []int) {
	n := 0
	for i := len(s) - 2; i >= 0; i-- {
		if s[i] == Terminator {
			s[i+1] = n
			n = 0
		} else {
			s[i+1] = s[i]
			n++
		}
	}
	s[0] = n
}

// lengthToTerm walks forwards, shifting each vertex one slot left over its
// count and writing a terminator after each strip.
func lengthToTerm(s []int) {
	n := s[0]
	for i := 1; i < len(s); i++ {
		if n != 0 {
			s[i-1] = s[i]
			n--
		} else {
			s[i-1] = Terminator
			n = s[i]
		}
	}
	s[len(s)-1] = Terminator
}

// Lengths returns the vertex count of every strip in either encoding.
func Lengths(strips []int) ([]int, error) {
	if len(strips) == 0 {
		return nil, nil
	}
	var lens []int
	if Detect(strips) == Term {
		start := 0
		for i, v := range strips {
			switch {
			case v == Terminator:
				n := i - start
				if n < 3 {
					return nil, errors.Wrapf(ErrShortStrip, "strip %d ending at %d has %d vertices", len(lens), i, n)
				}
				lens = append(lens, n)
				start = i + 1
			case v < 0:
				return nil, errors.Wrapf(ErrMalformedStrips, "negative vertex %d at %d", v, i)
			}
		}
		return lens, nil
	}

	for i := 0; i < len(strips); {
		n := strips[i]
		if n < 3 {
			return nil, errors.Wrapf(ErrShortStrip, "strip %d at %d has length %d", len(lens), i, n)
		}
		if n > len(strips)-i-1 {
			return nil, errors.Wrapf(ErrMalformedStrips, "strip %d at %d has length %d, only %d elements left",
				len(lens), i, n, len(strips)-i-1)
		}
		for j := i + 1; j <= i+n; j++ {
			if strips[j] < 0 {
				return nil, errors.Wrapf(ErrMalformedStrips, "negative vertex %d at %d", strips[j], j)
			}
		}
		lens = append(lens, n)
		i += n + 1
	}
	return lens, nil
}

// Count returns the number of strips and triangles encoded in strips.
func Count(strips []int) (Stats, error) {
	lens, err := Lengths(strips)
	if err != nil {
		return Stats{}, err
	}
	st := Stats{Strips: len(lens)}
	for _, n := range lens {
		st.Faces += n - 2
	}
	return st, nil
}
