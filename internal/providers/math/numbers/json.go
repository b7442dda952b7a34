package numbers

import (
	"encoding/json"
	gomath "math"
)

// MarshalJSON writes non-finite parts as the strings "Infinity",
// "-Infinity" and "NaN", which JSON has no literal for.
func (n NumberInput) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Raw       string      `json:"raw"`
		Real      interface{} `json:"parsed_real,omitempty"`
		Imaginary interface{} `json:"parsed_imaginary,omitempty"`
		Valid     bool        `json:"is_valid"`
		Error     string      `json:"error_message,omitempty"`
		ErrorKind ErrorKind   `json:"error_kind,omitempty"`
	}{
		Raw:       n.Raw,
		Real:      jsonFloat(n.Real),
		Imaginary: jsonFloat(n.Imaginary),
		Valid:     n.Valid,
		Error:     n.Error,
		ErrorKind: n.ErrorKind,
	})
}

func jsonFloat(f *float64) interface{} {
	switch {
	case f == nil:
		return nil
	case gomath.IsInf(*f, 1):
		return "Infinity"
	case gomath.IsInf(*f, -1):
		return "-Infinity"
	case gomath.IsNaN(*f):
		return "NaN"
	default:
		return *f
	}
}
