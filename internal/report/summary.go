package report

// Summary is the cross-instrument series behind the overview chart.
// The three slices are parallel.
type Summary struct {
	Labels  []string  `json:"labels"`
	Values  []float64 `json:"values"`
	Anchors []string  `json:"anchors"`
}

// Summarize collects the standardized score of every record that has one.
func Summarize(records []Record) Summary {
	s := Summary{Labels: []string{}, Values: []float64{}, Anchors: []string{}}
	for _, rec := range records {
		if rec.Standardized == nil {
			continue
		}
		s.Labels = append(s.Labels, rec.InstrumentID)
		s.Values = append(s.Values, *rec.Standardized)
		s.Anchors = append(s.Anchors, CardAnchor(rec.InstrumentID))
	}
	return s
}

// CardAnchor is the element id of an instrument's dashboard card.
func CardAnchor(instrumentID string) string {
	return instrumentID + "-card"
}
