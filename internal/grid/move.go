package grid

// CompactAndMergeLine slides a line towards index 0 and merges equal
// neighbours. Each tile takes part in at most one merge, so [2,2,2,2]
// becomes [4,4,0,0] and [2,2,2,0] becomes [4,2,0,0].
// Returns the new line and the sum of the merged values.
func CompactAndMergeLine(line Line) (Line, int) {
	dense := make([]uint32, 0, Size)
	for _, v := range line {
		if v != 0 {
			dense = append(dense, v)
		}
	}

	var out Line
	gained := 0
	n := 0
	for i := 0; i < len(dense); i++ {
		if i+1 < len(dense) && dense[i] == dense[i+1] {
			merged := dense[i] * 2
			out[n] = merged
			gained += int(merged)
			i++ // the partner is consumed
		} else {
			out[n] = dense[i]
		}
		n++
	}
	return out, gained
}

// Apply slides the whole grid in direction d.
// Every row or column is read through the direction's coordinate mapping,
// merged as a left slide, and written back through the same mapping.
func Apply(g Grid, d Direction) MoveOutcome {
	at := d.mapper()
	if at == nil {
		return MoveOutcome{Grid: g}
	}

	out := MoveOutcome{Grid: g}
	for k := range Size {
		var line Line
		for i := range Size {
			c := at(k, i)
			line[i] = g[c.Row][c.Col]
		}

		merged, gained := CompactAndMergeLine(line)
		out.ScoreGained += gained
		if merged != line {
			out.Changed = true
		}

		for i := range Size {
			c := at(k, i)
			out.Grid[c.Row][c.Col] = merged[i]
		}
	}
	return out
}
