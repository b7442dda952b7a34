package trig

// Undefined is the exact tangent on the vertical axis
const Undefined = "undefined"

var specialAngles = []SpecialAngle{
	{0, "0", "0", "1", "0"},
	{30, "π/6", "1/2", "√3/2", "√3/3"},
	{45, "π/4", "√2/2", "√2/2", "1"},
	{60, "π/3", "√3/2", "1/2", "√3"},
	{90, "π/2", "1", "0", Undefined},
	{120, "2π/3", "√3/2", "-1/2", "-√3"},
	{135, "3π/4", "√2/2", "-√2/2", "-1"},
	{150, "5π/6", "1/2", "-√3/2", "-√3/3"},
	{180, "π", "0", "-1", "0"},
	{210, "7π/6", "-1/2", "-√3/2", "√3/3"},
	{225, "5π/4", "-√2/2", "-√2/2", "1"},
	{240, "4π/3", "-√3/2", "-1/2", "√3"},
	{270, "3π/2", "-1", "0", Undefined},
	{300, "5π/3", "-√3/2", "1/2", "-√3"},
	{315, "7π/4", "-√2/2", "√2/2", "-1"},
	{330, "11π/6", "-1/2", "√3/2", "-√3/3"},
}

var specialByDegrees = func() map[int]SpecialAngle {
	m := make(map[int]SpecialAngle, len(specialAngles))
	for _, a := range specialAngles {
		m[a.Degrees] = a
	}
	return m
}()

// SpecialAngles returns the exact-value table in ascending order
func SpecialAngles() []SpecialAngle {
	out := make([]SpecialAngle, len(specialAngles))
	copy(out, specialAngles)
	return out
}

// lookupSpecial matches only angles that are exactly a table key
func lookupSpecial(normalized float64) (SpecialAngle, bool) {
	if normalized != float64(int(normalized)) {
		return SpecialAngle{}, false
	}
	a, ok := specialByDegrees[int(normalized)]
	return a, ok
}
