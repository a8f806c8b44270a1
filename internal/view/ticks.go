package view

import "math"

// Tick is one axis mark in view units. For logarithmic axes the value
// is in log10 space and the label is 10 to the value.
type Tick struct {
	Value float64
	Major bool
}

// Ticks generates grid and label positions for a span. Major ticks
// land on round values, minors subdivide them. Logarithmic spans get
// major ticks on decades with minors at the digit positions, unless
// the span covers less than one decade.
func Ticks(s Span, logarithmic bool) []Tick {
	if !(s.Extent() > 0) || math.IsInf(s.Extent(), 0) || math.IsNaN(s.Extent()) {
		return nil
	}
	if logarithmic && s.Extent() >= 1 {
		return logTicks(s)
	}
	return linearTicks(s)
}

func linearTicks(s Span) []Tick {
	raw := s.Extent() / 5
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	var step float64
	switch norm := raw / mag; {
	case norm < 1.5:
		step = mag
	case norm < 3.5:
		step = 2 * mag
	case norm < 7.5:
		step = 5 * mag
	default:
		step = 10 * mag
	}
	minor := step / 5
	if step/mag == 2 {
		minor = step / 4
	}
	ratio := int(math.Round(step / minor))

	var out []Tick
	first := int(math.Ceil(s.Low/minor - 1e-9))
	for i := first; float64(i)*minor <= s.High+minor*1e-9; i++ {
		out = append(out, Tick{Value: float64(i) * minor, Major: i%ratio == 0})
	}
	return out
}

func logTicks(s Span) []Tick {
	var out []Tick
	for d := math.Floor(s.Low); d <= math.Ceil(s.High); d++ {
		for m := 1; m <= 9; m++ {
			v := d + math.Log10(float64(m))
			if v < s.Low || v > s.High {
				continue
			}
			out = append(out, Tick{Value: v, Major: m == 1})
		}
	}
	return out
}
