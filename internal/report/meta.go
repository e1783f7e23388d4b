package report

import (
	"strings"
	"time"
)

// Meta identifies a generated report.
type Meta struct {
	ReportID  string         `json:"report_id"`
	Generated string         `json:"generated"`
	PatientID string         `json:"patient_id"`
	Patient   map[string]any `json:"patient,omitempty"`
}

// NewMeta stamps a report for patientID generated at now.
func NewMeta(patientID string, now time.Time) Meta {
	return Meta{
		ReportID:  ReportID(patientID, now),
		Generated: now.Format(time.DateOnly),
		PatientID: patientID,
	}
}

// ReportID formats "R-YYYYMMDD-<patient number>", where the patient number
// is the id without its leading "P": P001 on 2025-03-04 is R-20250304-001.
func ReportID(patientID string, now time.Time) string {
	return "R-" + now.Format("20060102") + "-" + strings.TrimPrefix(patientID, "P")
}

// FilterPatientMeta keeps only the requested keys. A nil key list keeps
// everything; requested keys that are absent map to nil.
func FilterPatientMeta(meta map[string]any, keys []string) map[string]any {
	if keys == nil {
		out := make(map[string]any, len(meta))
		for k, v := range meta {
			out[k] = v
		}
		return out
	}
	out := make(map[string]any, len(keys))
	for _, k := range keys {
		out[k] = meta[k]
	}
	return out
}
