package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestScale_BoundaryTable reproduces the CCQT scale boundary cases spec
// §8's seed test 4 calls out by name: ACT 36 kept / 37 dropped, SAT 400
// kept / 399 dropped, A-Level "A*" -> 1.0 / "U" -> 0.0 / "X" omitted.
func TestScale_BoundaryTable(t *testing.T) {
	tests := []struct {
		name          string
		subType       CCQTType
		raw           string
		wantDiemChuan float64
		wantOK        bool
	}{
		{name: "ACT at upper bound is kept", subType: CCQTAct, raw: "36", wantDiemChuan: 36, wantOK: true},
		{name: "ACT one above upper bound is dropped", subType: CCQTAct, raw: "37", wantOK: false},
		{name: "ACT at lower bound is kept", subType: CCQTAct, raw: "1", wantDiemChuan: 1, wantOK: true},
		{name: "ACT below lower bound is dropped", subType: CCQTAct, raw: "0", wantOK: false},

		{name: "SAT at lower bound is kept", subType: CCQTSAT, raw: "400", wantDiemChuan: 400, wantOK: true},
		{name: "SAT one below lower bound is dropped", subType: CCQTSAT, raw: "399", wantOK: false},
		{name: "SAT at upper bound is kept", subType: CCQTSAT, raw: "1600", wantDiemChuan: 1600, wantOK: true},
		{name: "SAT above upper bound is dropped", subType: CCQTSAT, raw: "1601", wantOK: false},

		{name: "A-Level A-star scales to 1.0", subType: CCQTALevel, raw: "A*", wantDiemChuan: 1.0, wantOK: true},
		{name: "A-Level A scales to 0.9", subType: CCQTALevel, raw: "A", wantDiemChuan: 0.9, wantOK: true},
		{name: "A-Level U scales to 0.0", subType: CCQTALevel, raw: "U", wantDiemChuan: 0.0, wantOK: true},
		{name: "A-Level F scales to 0.0", subType: CCQTALevel, raw: "F", wantDiemChuan: 0.0, wantOK: true},
		{name: "A-Level unrecognized letter is omitted", subType: CCQTALevel, raw: "X", wantOK: false},

		{name: "IB within range is kept", subType: CCQTIB, raw: "45", wantDiemChuan: 45, wantOK: true},
		{name: "IB above range is dropped", subType: CCQTIB, raw: "46", wantOK: false},
		{name: "OSSD within range is kept", subType: CCQTOSSD, raw: "100", wantDiemChuan: 100, wantOK: true},
		{name: "OSSD above range is dropped", subType: CCQTOSSD, raw: "101", wantOK: false},
		{name: "Duolingo within range is kept", subType: CCQTDuolingo, raw: "160", wantDiemChuan: 160, wantOK: true},
		{name: "Duolingo below range is dropped", subType: CCQTDuolingo, raw: "9", wantOK: false},
		{name: "PTE Academic within range is kept", subType: CCQTPTEAcademic, raw: "90", wantDiemChuan: 90, wantOK: true},
		{name: "PTE Academic below range is dropped", subType: CCQTPTEAcademic, raw: "9", wantOK: false},

		{name: "malformed integer score is dropped", subType: CCQTAct, raw: "not-a-number", wantOK: false},
		{name: "unrecognized sub-type is dropped", subType: CCQTType("unknown"), raw: "36", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diemChuan, ok := Scale(tt.subType, tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantDiemChuan, diemChuan)
			}
		})
	}
}
