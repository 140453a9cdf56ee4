package tabular

// A Strand is the relative orientation of a query and its target, as
// written in PAF and GAF records.
type Strand byte

// The strand values. UnknownStrand is written for records without a
// hit.
const (
	Forward       Strand = '+'
	Reverse       Strand = '-'
	UnknownStrand Strand = '*'
)

// ParseStrand parses the mandatory strand field.
func ParseStrand(token string) (Strand, error) {
	c, err := Char(token, "strand", "+-*")
	return Strand(c), err
}

func (s Strand) String() string {
	return string(rune(s))
}
