package glyph

// VertexCount is the number of vertices in every generated outline,
// including the closing vertex.
const VertexCount = 5

const (
	upperThird = 0.333
	lowerThird = 0.666
	middle     = 0.5

	// leftBarWidth narrows the left playing bar so the two bars read as a
	// centered pause glyph.
	leftBarWidth  = 0.47
	rightBarWidth = 1.0
)

// OutlineFor returns the outline for a glyph on half h showing state s,
// scaled to box b. Negative dimensions are treated as zero.
func OutlineFor(h Half, s State, b Box) Outline {
	w, ht := max(b.Width, 0), max(b.Height, 0)

	switch s {
	case PausedRight:
		// The tip vertex is doubled so every shape has the same vertex count.
		return Outline{
			{0, upperThird * ht},
			{0, lowerThird * ht},
			{w, middle * ht},
			{w, middle * ht},
			{0, upperThird * ht},
		}
	case PausedLeft:
		return Outline{
			{0, 0},
			{0, ht},
			{w, lowerThird * ht},
			{w, upperThird * ht},
			{0, 0},
		}
	default:
		bar := rightBarWidth
		if h == Left {
			bar = leftBarWidth
		}
		return Outline{
			{0, 0},
			{0, ht},
			{bar * w, ht},
			{bar * w, 0},
			{0, 0},
		}
	}
}
