// SPDX-License-Identifier: MIT

package chart

// Series is one recorded line.
type Series struct {
	X []float64
	Y []float64
}

// Recorder is an in-memory Renderer. It copies every series it receives.
type Recorder struct {
	Title   string
	XLabel  string
	YLabel  string
	Series  []Series
	Renders int
}

var _ Renderer = (*Recorder)(nil)

func (r *Recorder) SetTitle(title string)  { r.Title = title }
func (r *Recorder) SetXLabel(label string) { r.XLabel = label }
func (r *Recorder) SetYLabel(label string) { r.YLabel = label }

func (r *Recorder) Line(xs, ys []float64) error {
	if err := checkSeries(xs, ys); err != nil {
		return err
	}
	r.Series = append(r.Series, Series{
		X: append([]float64(nil), xs...),
		Y: append([]float64(nil), ys...),
	})

	return nil
}

func (r *Recorder) Render() error {
	if len(r.Series) == 0 {
		return ErrNoSeries
	}
	r.Renders++

	return nil
}
