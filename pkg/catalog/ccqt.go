package catalog

import "strconv"

// CCQTType enumerates the recognized CCQT certificate sub-types
// (spec §4.5 "CCQT score scale"). Exhaustiveness over this enum is
// runtime-checked in Scale below; an unrecognized sub-type is an
// unscalable row, dropped per spec.
type CCQTType string

const (
	CCQTAct          CCQTType = "ACT"
	CCQTIB           CCQTType = "IB"
	CCQTOSSD         CCQTType = "OSSD"
	CCQTSAT          CCQTType = "SAT"
	CCQTDuolingo     CCQTType = "Duolingo"
	CCQTPTEAcademic  CCQTType = "PTE Academic"
	CCQTALevel       CCQTType = "A-Level"
)

// aLevelScale is the bit-exact A-Level letter-grade -> diem_chuan table.
var aLevelScale = map[string]float64{
	"A*": 1.0,
	"A":  0.9,
	"B":  0.8,
	"C":  0.7,
	"D":  0.6,
	"E":  0.5,
	"F":  0.0,
	"N":  0.0,
	"O":  0.0,
	"U":  0.0,
}

// Scale converts a raw CCQT score string into a diem_chuan value per the
// bit-exact table in spec §4.5. ok is false when the score is out of
// range, malformed, or the sub-type is unrecognized — the caller must
// drop the scenario in that case (spec §4.5 L2 step 2 "ccqt": "drop
// unscalable rows").
func Scale(subType CCQTType, raw string) (diemChuan float64, ok bool) {
	switch subType {
	case CCQTAct:
		return scaleInt(raw, 1, 36)
	case CCQTIB:
		return scaleInt(raw, 0, 45)
	case CCQTOSSD:
		return scaleInt(raw, 0, 100)
	case CCQTSAT:
		return scaleInt(raw, 400, 1600)
	case CCQTDuolingo:
		return scaleInt(raw, 10, 160)
	case CCQTPTEAcademic:
		return scaleInt(raw, 10, 90)
	case CCQTALevel:
		v, present := aLevelScale[raw]
		return v, present
	default:
		return 0, false
	}
}

func scaleInt(raw string, lo, hi int) (float64, bool) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	if n < lo || n > hi {
		return 0, false
	}
	return float64(n), true
}
