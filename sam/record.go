package sam

import (
	"strconv"

	"github.com/exascience/alnformats/fields"
	"github.com/exascience/alnformats/internal"
	"github.com/exascience/alnformats/tabular"
)

// FLAG bits.
const (
	Multiple      = 0x1
	Proper        = 0x2
	Unmapped      = 0x4
	NextUnmapped  = 0x8
	Reversed      = 0x10
	NextReversed  = 0x20
	First         = 0x40
	Last          = 0x80
	Secondary     = 0x100
	QCFailed      = 0x200
	Duplicate     = 0x400
	Supplementary = 0x800
)

/*
A Record is a single SAM alignment line.

Absent mandatory string fields are represented by the empty string,
and are written as *. POS and PNEXT are 1-based, 0 meaning absent.
MAPQ 255 means the mapping quality is not available.

Line is the 1-based input line number, or 0 if the record was not
parsed from input.
*/
type Record struct {
	QNAME string
	FLAG  uint16
	RNAME string
	POS   int32
	MAPQ  byte
	CIGAR string
	RNEXT string
	PNEXT int32
	TLEN  int32
	SEQ   string
	QUAL  string
	TAGS  fields.Fields
	Line  int
}

func (rec *Record) IsMultiple() bool      { return (rec.FLAG & Multiple) != 0 }
func (rec *Record) IsProper() bool        { return (rec.FLAG & Proper) != 0 }
func (rec *Record) IsUnmapped() bool      { return (rec.FLAG & Unmapped) != 0 }
func (rec *Record) IsNextUnmapped() bool  { return (rec.FLAG & NextUnmapped) != 0 }
func (rec *Record) IsReversed() bool      { return (rec.FLAG & Reversed) != 0 }
func (rec *Record) IsNextReversed() bool  { return (rec.FLAG & NextReversed) != 0 }
func (rec *Record) IsFirst() bool         { return (rec.FLAG & First) != 0 }
func (rec *Record) IsLast() bool          { return (rec.FLAG & Last) != 0 }
func (rec *Record) IsSecondary() bool     { return (rec.FLAG & Secondary) != 0 }
func (rec *Record) IsQCFailed() bool      { return (rec.FLAG & QCFailed) != 0 }
func (rec *Record) IsDuplicate() bool     { return (rec.FLAG & Duplicate) != 0 }
func (rec *Record) IsSupplementary() bool { return (rec.FLAG & Supplementary) != 0 }

func (rec *Record) FlagEvery(flag uint16) bool    { return (rec.FLAG & flag) == flag }
func (rec *Record) FlagSome(flag uint16) bool     { return (rec.FLAG & flag) != 0 }
func (rec *Record) FlagNotEvery(flag uint16) bool { return (rec.FLAG & flag) != flag }
func (rec *Record) FlagNotAny(flag uint16) bool   { return (rec.FLAG & flag) == 0 }

// Equal reports whether both records have the same mandatory fields
// and the same optional fields, regardless of optional field order.
// Line numbers are ignored.
func (rec *Record) Equal(other *Record) bool {
	return rec.QNAME == other.QNAME &&
		rec.FLAG == other.FLAG &&
		rec.RNAME == other.RNAME &&
		rec.POS == other.POS &&
		rec.MAPQ == other.MAPQ &&
		rec.CIGAR == other.CIGAR &&
		rec.RNEXT == other.RNEXT &&
		rec.PNEXT == other.PNEXT &&
		rec.TLEN == other.TLEN &&
		rec.SEQ == other.SEQ &&
		rec.QUAL == other.QUAL &&
		rec.TAGS.Equal(&other.TAGS)
}

// Hash is consistent with Equal.
func (rec *Record) Hash() uint64 {
	hash := internal.StringHash(rec.QNAME)
	hash = internal.CombineHash(hash, uint64(rec.FLAG))
	hash = internal.CombineHash(hash, internal.StringHash(rec.RNAME))
	hash = internal.CombineHash(hash, uint64(rec.POS))
	hash = internal.CombineHash(hash, uint64(rec.MAPQ))
	hash = internal.CombineHash(hash, internal.StringHash(rec.CIGAR))
	hash = internal.CombineHash(hash, internal.StringHash(rec.RNEXT))
	hash = internal.CombineHash(hash, uint64(rec.PNEXT))
	hash = internal.CombineHash(hash, uint64(rec.TLEN))
	hash = internal.CombineHash(hash, internal.StringHash(rec.SEQ))
	hash = internal.CombineHash(hash, internal.StringHash(rec.QUAL))
	return internal.CombineHash(hash, rec.TAGS.Hash())
}

// Format appends the record as one SAM line, without line
// terminator, to out.
func (rec *Record) Format(out []byte) []byte {
	out = tabular.AppendString(out, rec.QNAME)
	out = append(out, '\t')
	out = strconv.AppendUint(out, uint64(rec.FLAG), 10)
	out = append(out, '\t')
	out = tabular.AppendString(out, rec.RNAME)
	out = append(out, '\t')
	out = strconv.AppendInt(out, int64(rec.POS), 10)
	out = append(out, '\t')
	out = strconv.AppendUint(out, uint64(rec.MAPQ), 10)
	out = append(out, '\t')
	out = tabular.AppendString(out, rec.CIGAR)
	out = append(out, '\t')
	out = tabular.AppendString(out, rec.RNEXT)
	out = append(out, '\t')
	out = strconv.AppendInt(out, int64(rec.PNEXT), 10)
	out = append(out, '\t')
	out = strconv.AppendInt(out, int64(rec.TLEN), 10)
	out = append(out, '\t')
	out = tabular.AppendString(out, rec.SEQ)
	out = append(out, '\t')
	out = tabular.AppendString(out, rec.QUAL)
	return rec.TAGS.Append(out)
}

func (rec *Record) String() string {
	buf := internal.ReserveByteBuffer()
	defer internal.ReleaseByteBuffer(buf)
	*buf = rec.Format(*buf)
	return string(*buf)
}

// Checks selects optional record consistency checks.
type Checks uint8

// The available record checks.
const (
	// CheckQualLength requires QUAL to be absent or as long as SEQ.
	CheckQualLength Checks = 1 << iota
	// CheckCigar requires a well-formed CIGAR whose query length
	// matches SEQ when both are present.
	CheckCigar
	// CheckFlags requires unmapped records to have no CIGAR.
	CheckFlags

	NoChecks  Checks = 0
	AllChecks        = CheckQualLength | CheckCigar | CheckFlags
)

// Validate applies the selected checks to the record.
func (rec *Record) Validate(checks Checks) error {
	if checks&CheckQualLength != 0 && rec.QUAL != "" && rec.SEQ != "" && len(rec.QUAL) != len(rec.SEQ) {
		return &ValidationError{
			Check: CheckQualLength,
			QNAME: rec.QNAME,
			Msg:   "QUAL length " + strconv.Itoa(len(rec.QUAL)) + " differs from SEQ length " + strconv.Itoa(len(rec.SEQ)),
		}
	}
	if checks&CheckCigar != 0 && rec.CIGAR != "" {
		cigars, err := ScanCigarString(rec.CIGAR)
		if err != nil {
			return &ValidationError{Check: CheckCigar, QNAME: rec.QNAME, Msg: err.Error()}
		}
		if rec.SEQ != "" {
			if length := ReadLength(cigars); int(length) != len(rec.SEQ) {
				return &ValidationError{
					Check: CheckCigar,
					QNAME: rec.QNAME,
					Msg:   "CIGAR query length " + strconv.Itoa(int(length)) + " differs from SEQ length " + strconv.Itoa(len(rec.SEQ)),
				}
			}
		}
	}
	if checks&CheckFlags != 0 && rec.IsUnmapped() && rec.CIGAR != "" {
		return &ValidationError{Check: CheckFlags, QNAME: rec.QNAME, Msg: "unmapped record has CIGAR " + rec.CIGAR}
	}
	return nil
}

// End returns the 1-based position of the last reference base covered
// by the record, or POS-1 if the CIGAR is absent or consumes no
// reference bases.
func (rec *Record) End() (int32, error) {
	cigars, err := ScanCigarString(rec.CIGAR)
	if err != nil {
		return 0, err
	}
	return rec.POS + ReferenceLength(cigars) - 1, nil
}
