package numbers

// MaxSafeInteger is the largest integer a float64 holds with every smaller
// integer also representable (2^53-1).
const MaxSafeInteger = 1<<53 - 1

// HighPrecisionDigits is the fractional digit count above which a decimal is
// reported as highPrecisionDecimal.
const HighPrecisionDigits = 10

// ErrorKind classifies why an input could not be parsed
type ErrorKind string

const (
	ErrorEmptyInput        ErrorKind = "empty_input"
	ErrorUnparseableFormat ErrorKind = "unparseable_format"
)

// RepresentationKind is the storage type a programmer would reach for
type RepresentationKind string

const (
	KindInt                  RepresentationKind = "int"
	KindFloat                RepresentationKind = "float"
	KindComplex              RepresentationKind = "complex"
	KindHighPrecisionDecimal RepresentationKind = "highPrecisionDecimal"
	KindUnknown              RepresentationKind = "unknown"
)

// Warnings attached to valid classifications
const (
	WarningInfinity      = "infinity is a concept, not a number in the traditional sense"
	WarningUnsafeInteger = "Number exceeds the safe integer range (±9007199254740991); precision may be lost"
	WarningHighPrecision = "Decimal has more than 10 fractional digits; use an arbitrary-precision type (math/big) to keep it exact"
)

// NumberInput is the result of parsing a single raw input
type NumberInput struct {
	Raw       string    `json:"raw"`
	Real      *float64  `json:"parsed_real,omitempty"`
	Imaginary *float64  `json:"parsed_imaginary,omitempty"`
	Valid     bool      `json:"is_valid"`
	Error     string    `json:"error_message,omitempty"`
	ErrorKind ErrorKind `json:"error_kind,omitempty"`

	// realText is the literal real part as typed, kept for exact checks
	realText string
}

// IsComplexForm reports whether the input was written in complex notation
func (n NumberInput) IsComplexForm() bool {
	return n.Imaginary != nil
}

// NumberClassification places a parsed input in the nested number sets
type NumberClassification struct {
	Input          NumberInput        `json:"input"`
	IsNatural      bool               `json:"is_natural"`
	IsInteger      bool               `json:"is_integer"`
	IsRational     bool               `json:"is_rational"`
	IsReal         bool               `json:"is_real"`
	IsComplex      bool               `json:"is_complex"`
	Representation RepresentationKind `json:"representation_kind"`
	Warnings       []string           `json:"warnings"`
	Valid          bool               `json:"is_valid"`
	Error          string             `json:"error_message,omitempty"`
	ErrorKind      ErrorKind          `json:"error_kind,omitempty"`
}

// Sets lists the names of the sets the value belongs to, innermost first
func (c NumberClassification) Sets() []string {
	sets := []string{}
	if c.IsNatural {
		sets = append(sets, "natural")
	}
	if c.IsInteger {
		sets = append(sets, "integer")
	}
	if c.IsRational {
		sets = append(sets, "rational")
	}
	if c.IsReal {
		sets = append(sets, "real")
	}
	if c.IsComplex {
		sets = append(sets, "complex")
	}
	return sets
}
