package tstrip

// Unpack expands strips into a triangle list. strips is first converted to
// Length encoding in place. Every other triangle of a strip has its first two
// vertices swapped, which restores the winding Build emitted.
func Unpack(strips []int) ([]Face, error) {
	st, err := Count(strips)
	if err != nil {
		return nil, err
	}
	if err := Convert(strips, Length); err != nil {
		return nil, err
	}

	faces := make([]Face, 0, st.Faces)
	for i := 0; i < len(strips); {
		n := strips[i]
		v := strips[i+1 : i+1+n]
		flip := false
		for j := 2; j < n; j++ {
			if flip {
				faces = append(faces, Face{v[j-1], v[j-2], v[j]})
			} else {
				faces = append(faces, Face{v[j-2], v[j-1], v[j]})
			}
			flip = !flip
		}
		i += n + 1
	}
	return faces, nil
}
