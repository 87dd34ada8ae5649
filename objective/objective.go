// Package objective resolves which validation objectives require the common
// clinical data set (CCDS) checks.
//
// The table is static and enumerable. New objectives are added as entries;
// there is no default outcome other than "not listed".
package objective

import (
	"strings"

	"golang.org/x/exp/slices"
)

// Setting is the care setting an objective targets.
type Setting string

const (
	SettingAmbulatory Setting = "ambulatory"
	SettingInpatient  Setting = "inpatient"
)

// Objective describes one known validation objective.
type Objective struct {
	// Code is the canonical spelling, e.g. "170.315_b1_ToC_Amb"
	Code string
	// Criterion is the certification criterion, e.g. "170.315(b)(1)"
	Criterion string
	// Title is a short description of the criterion
	Title string
	// Setting is ambulatory or inpatient
	Setting Setting
}

// objectives lists every objective that requires the baseline checks.
var objectives = []Objective{
	{"170.315_b1_ToC_Amb", "170.315(b)(1)", "Transitions of Care", SettingAmbulatory},
	{"170.315_b1_ToC_Inp", "170.315(b)(1)", "Transitions of Care", SettingInpatient},
	{"170.315_b4_CCDS_Amb", "170.315(b)(4)", "Common Clinical Data Set Summary Record - Create", SettingAmbulatory},
	{"170.315_b4_CCDS_Inp", "170.315(b)(4)", "Common Clinical Data Set Summary Record - Create", SettingInpatient},
	{"170.315_b6_DE_Amb", "170.315(b)(6)", "Data Export", SettingAmbulatory},
	{"170.315_b6_DE_Inp", "170.315(b)(6)", "Data Export", SettingInpatient},
	{"170.315_e1_VDT_Amb", "170.315(e)(1)", "View, Download, and Transmit to 3rd Party", SettingAmbulatory},
	{"170.315_e1_VDT_Inp", "170.315(e)(1)", "View, Download, and Transmit to 3rd Party", SettingInpatient},
	{"170.315_g9_APIAccess_Amb", "170.315(g)(9)", "Application Access - All Data Request", SettingAmbulatory},
	{"170.315_g9_APIAccess_Inp", "170.315(g)(9)", "Application Access - All Data Request", SettingInpatient},
}

// index maps lower-cased codes to their table entry.
var index = func() map[string]Objective {
	m := make(map[string]Objective, len(objectives))
	for _, o := range objectives {
		m[strings.ToLower(o.Code)] = o
	}
	return m
}()

// RequiresBaselineCheck reports whether the objective requires the baseline
// category checks. Codes are matched case-insensitively; unknown codes return
// false.
func RequiresBaselineCheck(code string) bool {
	_, ok := index[strings.ToLower(code)]
	return ok
}

// Lookup returns the table entry for code.
func Lookup(code string) (Objective, bool) {
	o, ok := index[strings.ToLower(code)]
	return o, ok
}

// Codes returns the canonical codes of every known objective, sorted.
func Codes() []string {
	codes := make([]string, 0, len(objectives))
	for _, o := range objectives {
		codes = append(codes, o.Code)
	}
	slices.Sort(codes)
	return codes
}
