package printf

// outString copies the string h to the sink and pads it on the right with
// spaces up to the width. Precision and the '-' flag are not implemented.
func (r *renderer) outString(h Handle, d Directive) int32 {
	start := r.size

	var size int32
	for i := uint32(0); ; i++ {
		c := r.f.StringChar(h, i)
		if c == 0 {
			break
		}
		r.put(c)
		size++
	}

	for pad := d.Width - size; pad > 0; pad-- {
		r.put(' ')
	}
	return r.size - start
}
