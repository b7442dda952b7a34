// Package numbers parses free-form numeric text and classifies the value into
// the nested number sets taught on the Numbers page.
//
// Recognized forms, in priority order:
//   - Complex notation: i, -i, 2i, -3.5i, 3+2i, 3 - 2.5i
//   - Infinities: Infinity, -infinity, ∞, -∞
//   - Plain decimals: 42, -0.5, .25, 6.02e23
//
// Parse and Classify are pure and safe for concurrent use. Invalid input is
// reported through Valid/Error on the result.
package numbers
