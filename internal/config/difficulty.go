package config

// PipeGeometry is the resolved vertical layout of a pipe pair.
type PipeGeometry struct {
	Gap          int
	MinTop       int
	MaxTop       int
	FlightHeight int
}

// PipeGeometry resolves the pipe layout for the selected mode.
// Easy mode widens the gap and narrows the range of top heights so the
// bottom pipe keeps its minimum height.
func (c FlappyConfig) PipeGeometry(easy bool) PipeGeometry {
	gap := c.Pipes.Gap
	if easy {
		gap = c.Pipes.EasyGap
	}
	h := int(c.Layout.FlightArea.Height)
	maxTop := h - gap - c.Pipes.MinHeight
	if maxTop < c.Pipes.MinHeight {
		maxTop = c.Pipes.MinHeight
	}
	return PipeGeometry{
		Gap:          gap,
		MinTop:       c.Pipes.MinHeight,
		MaxTop:       maxTop,
		FlightHeight: h,
	}
}

// Bottom returns the bottom pipe height for a given top height.
func (g PipeGeometry) Bottom(top int) int {
	return g.FlightHeight - g.Gap - top
}
