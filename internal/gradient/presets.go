package gradient

type presetStop struct {
	color  string
	offset float64
}

type preset struct {
	typ      Type
	rotation float64
	stops    []presetStop
}

var presetTable = []preset{
	{TypeLinear, 90, []presetStop{{"#227db2", 0}, {"#54149b", 100}}},
	{TypeRadial, 90, []presetStop{{"#3784c9", 0}, {"#012337", 85}}},
	{TypeLinear, 90, []presetStop{{"#610d95", 0}, {"#c32e2e", 50}, {"#b67a22", 100}}},
	{TypeRadial, 90, []presetStop{{"#dadadb", 0}, {"#B7B7B7", 100}}},
	{TypeLinear, 135, []presetStop{{"#0db0cc", 0}, {"#0990b1", 40}, {"#154f64", 100}}},
	{TypeLinear, 90, []presetStop{{"#2381A6", 0}, {"#57BD81", 50}, {"#F0E159", 100}}},
	{TypeLinear, 55, []presetStop{{"#c892fd", 0}, {"#8757f3", 40}, {"#6063f1", 80}, {"#1d1a4b", 100}}},
	{TypeLinear, 300, []presetStop{{"#0e9bb9", 0}, {"#1138c2", 50}, {"#5c088d", 100}}},
	{TypeLinear, 90, []presetStop{
		{"#0e9bb9", 0}, {"#ff0000", 10}, {"#ff9a00", 20}, {"#d0de21", 30},
		{"#4fdc4a", 40}, {"#3fdad8", 50}, {"#2fc9e2", 60}, {"#1c7fee", 70},
		{"#5f15f2", 80}, {"#ba0cf8", 90}, {"#ff0000", 100},
	}},
}

// Presets returns the built-in gradients. Every call mints fresh stop ids.
func Presets() []Value {
	out := make([]Value, 0, len(presetTable))
	for _, p := range presetTable {
		stops := make([]Stop, 0, len(p.stops))
		for _, s := range p.stops {
			stops = append(stops, NewStop(s.color, s.offset))
		}
		out = append(out, Value{Type: p.typ, Rotation: p.rotation, Stops: stops})
	}
	return out
}

// Default is the gradient a new editor starts from.
func Default() Value {
	return Presets()[0]
}
