// Package trig evaluates angles on the unit circle for the Trigonometry page.
//
// Evaluate returns numeric sine, cosine and tangent plus, for the sixteen
// special angles (every multiple of 30° and 45°), the exact symbolic forms
// such as "√2/2". Quadrant, reference angle and the point on the circle are
// computed from the angle normalized into [0, 360); the numeric values use
// the raw angle so periodic identities hold for any real input.
//
// Quadrant convention: an angle on an axis belongs to the quadrant whose
// lower bound it equals (0°→1, 90°→2, 180°→3, 270°→4). OnAxis marks these.
//
// Tangent is sin/cos and is not clamped near 90° and 270°; callers display
// non-finite or huge values as undefined.
package trig
