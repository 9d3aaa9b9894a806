package cards

import "strings"

// setCodeAliases maps printed set abbreviations to canonical codes. Codes
// not present here pass through NormalizeSetCode unchanged.
var setCodeAliases = map[string]string{
	"PR-SV":  "SVP",
	"PR-SW":  "SWSHP",
	"SVIEN":  "SVI",
	"ENERGY": "SVE",
}

// NormalizeSetCode maps a printed set abbreviation to the canonical
// internal code. Unknown codes are returned unchanged, never an error.
func NormalizeSetCode(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if canonical, ok := setCodeAliases[code]; ok {
		return canonical
	}
	return code
}

// setMarks maps canonical set codes to regulation marks. SVE (basic energy
// reprints) is intentionally absent: basic energy is always legal and is
// handled before mark lookup.
var setMarks = map[string]Mark{
	// Sword & Shield era
	"SSH": MarkD, "RCL": MarkD, "DAA": MarkD, "VIV": MarkD, "SHF": MarkD,
	"BST": MarkE, "CRE": MarkE, "EVS": MarkE, "FST": MarkE, "CEL": MarkE,
	"BRS": MarkF, "ASR": MarkF, "PGO": MarkF, "LOR": MarkF, "SIT": MarkF, "CRZ": MarkF,

	// Scarlet & Violet era
	"SVI": MarkG, "PAL": MarkG, "OBF": MarkG, "MEW": MarkG, "PAR": MarkG, "PAF": MarkG, "SVP": MarkG,
	"TEF": MarkH, "TWM": MarkH, "SFA": MarkH, "SCR": MarkH, "SSP": MarkH, "PRE": MarkH, "JTG": MarkH,
	"DRI": MarkI, "BLK": MarkI, "WHT": MarkI, "MEG": MarkI,
}

// MarkForSet returns the regulation mark for a canonical set code. The
// second return is false when the set is not in the table; callers must
// surface that as "unknown", not as any default mark.
func MarkForSet(setCode string) (Mark, bool) {
	mark, ok := setMarks[NormalizeSetCode(setCode)]
	return mark, ok
}
