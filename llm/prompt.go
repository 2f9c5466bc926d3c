/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package llm

import (
	"fmt"
	"slices"
	"strings"
)

// DefaultReportLabel is used for report types missing from the label table.
const DefaultReportLabel = "Medical Test"

var reportLabels = map[string]string{
	"cbc":        "Complete Blood Count (CBC)",
	"blood-type": "Blood Typing",
	"iron":       "Iron/Ferritin Test",
	"glucose":    "Glucose Tolerance Test",
	"lipid":      "Lipid Panel",
	"dating":     "Dating Scan",
	"anatomy":    "Anatomy Scan",
	"growth":     "Growth Scan",
	"doppler":    "Doppler Ultrasound",
	"3d-4d":      "3D/4D Ultrasound",
	"hiv":        "HIV Test",
	"hepb":       "Hepatitis B Test",
	"hepc":       "Hepatitis C Test",
	"syphilis":   "Syphilis Test",
	"gonorrhea":  "Gonorrhea Test",
	"chlamydia":  "Chlamydia Test",
	"gbs":        "Group B Streptococcus (GBS)",
	"tsh":        "Thyroid Function Test",
	"nips":       "Non-Invasive Prenatal Screening (NIPS)",
	"nipt":       "Non-Invasive Prenatal Testing (NIPT)",
	"cfdna":      "Cell-Free DNA Screening",
	"carrier":    "Carrier Screening",
	"amnio":      "Amniocentesis Results",
	"cvs":        "Chorionic Villus Sampling (CVS) Results",
	"custom":     DefaultReportLabel,
}

// ReportLabel maps a report type to its display label.
func ReportLabel(reportType string) string {
	if label, ok := reportLabels[strings.ToLower(strings.TrimSpace(reportType))]; ok {
		return label
	}

	return DefaultReportLabel
}

// IsKnownReportType reports whether reportType has its own label.
func IsKnownReportType(reportType string) bool {
	_, ok := reportLabels[strings.ToLower(strings.TrimSpace(reportType))]
	return ok
}

// ReportTypes returns the known report type keys in sorted order.
func ReportTypes() []string {
	types := make([]string, 0, len(reportLabels))
	for k := range reportLabels {
		types = append(types, k)
	}

	slices.Sort(types)

	return types
}

// BuildInstruction creates the extraction instruction for a report type.
// The report text itself is sent alongside it.
func BuildInstruction(reportType string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("You are a medical data extraction AI. Analyze this %s report and extract all test parameters, their values, and reference ranges.\n\n", ReportLabel(reportType)))
	sb.WriteString("Format the results as a JSON array where each item has exactly these fields:\n")
	sb.WriteString("- test_name: The name of the test parameter\n")
	sb.WriteString("- result_value: The numeric value (if available) or text result\n")
	sb.WriteString("- result_unit: The unit of measurement (if available)\n")
	sb.WriteString("- ref_range_low: The lower limit of the reference range (numeric if available)\n")
	sb.WriteString("- ref_range_high: The upper limit of the reference range (numeric if available)\n")
	sb.WriteString("- ref_range_text: Text description of reference range (like \"Negative\", \"Not Detected\", etc.)\n\n")
	sb.WriteString("Keep numeric fields numeric. For qualitative tests or tests without numeric reference ranges, fill in the appropriate fields only.\n")
	sb.WriteString("For test results that use text values like \"Positive\", \"Negative\", \"Normal\", etc., use those in result_value and leave numeric fields empty.\n\n")
	sb.WriteString("The report content is provided in the next message.\n\n")
	sb.WriteString("Return ONLY the JSON array, with no other text.")

	return sb.String()
}
