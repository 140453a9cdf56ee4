package sam

import (
	"fmt"
	"strconv"
	"sync"
)

// CigarOperations lists all valid CIGAR operation letters.
const CigarOperations = "MIDNSHPX="

func isDigit(char byte) bool { return ('0' <= char) && (char <= '9') }

func isCigarOperation(char byte) bool {
	switch char {
	case 'M', 'I', 'D', 'N', 'S', 'H', 'P', 'X', '=':
		return true
	default:
		return false
	}
}

// A CigarOperation is one length/operation pair of a CIGAR string.
type CigarOperation struct {
	Length    int32
	Operation byte
}

func newCigarOperation(cigar string, i int) (op CigarOperation, j int, err error) {
	for j = i; j < len(cigar) && isDigit(cigar[j]); j++ {
	}
	if j == i {
		if j < len(cigar) {
			return op, j, fmt.Errorf("missing length before CIGAR operation %q", cigar[j])
		}
		return op, j, fmt.Errorf("missing CIGAR operation")
	}
	if j == len(cigar) {
		return op, j, fmt.Errorf("missing CIGAR operation after length %v", cigar[i:j])
	}
	length, err := strconv.ParseInt(cigar[i:j], 10, 32)
	if err != nil {
		return op, j, err
	}
	if char := cigar[j]; !isCigarOperation(char) {
		return op, j, fmt.Errorf("invalid CIGAR operation %q", char)
	}
	return CigarOperation{int32(length), cigar[j]}, j + 1, nil
}

// maxCigarCacheEntries bounds the CIGAR cache. Once it is full, new
// CIGAR strings are scanned without being cached.
const maxCigarCacheEntries = 1 << 12

var (
	cigarSliceCache      = map[string][]CigarOperation{"": {}, "*": {}}
	cigarSliceCacheMutex = sync.RWMutex{}
)

func slowScanCigarString(cigar string) (slice []CigarOperation, err error) {
	for i := 0; i < len(cigar); {
		cigarOperation, j, err := newCigarOperation(cigar, i)
		if err != nil {
			return nil, fmt.Errorf("%w, while scanning CIGAR string %v", err, cigar)
		}
		slice = append(slice, cigarOperation)
		i = j
	}
	cigarSliceCacheMutex.Lock()
	if value, found := cigarSliceCache[cigar]; found {
		slice = value
	} else if len(cigarSliceCache) < maxCigarCacheEntries {
		cigarSliceCache[cigar] = slice
	}
	cigarSliceCacheMutex.Unlock()
	return slice, nil
}

// ScanCigarString splits a CIGAR string into its operations. An
// absent CIGAR yields an empty slice. Frequent CIGAR strings are
// cached, so the result must not be modified.
func ScanCigarString(cigar string) ([]CigarOperation, error) {
	cigarSliceCacheMutex.RLock()
	value, found := cigarSliceCache[cigar]
	cigarSliceCacheMutex.RUnlock()
	if found {
		return value, nil
	}
	return slowScanCigarString(cigar)
}

func operatorConsumesReadBases(operator byte) bool {
	switch operator {
	case 'M', 'I', 'S', '=', 'X':
		return true
	default:
		return false
	}
}

func operatorConsumesReferenceBases(operator byte) bool {
	switch operator {
	case 'M', 'D', 'N', '=', 'X':
		return true
	default:
		return false
	}
}

// ReadLength sums the lengths of all CIGAR operations that consume
// read bases.
func ReadLength(cigars []CigarOperation) int32 {
	var length int32
	for _, op := range cigars {
		if operatorConsumesReadBases(op.Operation) {
			length += op.Length
		}
	}
	return length
}

// ReferenceLength sums the lengths of all CIGAR operations that
// consume reference bases.
func ReferenceLength(cigars []CigarOperation) int32 {
	var length int32
	for _, op := range cigars {
		if operatorConsumesReferenceBases(op.Operation) {
			length += op.Length
		}
	}
	return length
}
