// Package category maps classifier output ids to job category labels.
package category

import "sort"

// Unknown is returned for ids the classifier was never trained on.
const Unknown = "Unknown"

// labels is the id -> label table of the trained classifier.
// The ids are the label encoding used when the model was trained; retraining
// the model with a different encoding requires changing this table together
// with the model file.
var labels = map[int]string{
	0:  "Advocate",
	1:  "Arts",
	2:  "Automation Testing",
	3:  "Blockchain",
	4:  "Business Analyst",
	5:  "Civil Engineer",
	6:  "Data Science",
	7:  "Database",
	8:  "DevOps Engineer",
	9:  "DotNet Developer",
	10: "ETL Developer",
	11: "Electrical Engineering",
	12: "HR",
	13: "Hadoop",
	14: "Health and Fitness",
	15: "Java Developer",
	16: "Mechanical Engineer",
	17: "Network Security Engineer",
	18: "Operations Manager",
	19: "PMO",
	20: "Python Developer",
	21: "SAP Developer",
	22: "Sales",
	23: "Testing",
	24: "Web Designing",
}

// Resolve returns the label for id, or Unknown.
func Resolve(id int) string {
	if l, ok := labels[id]; ok {
		return l
	}
	return Unknown
}

// Known reports whether id is present in the table.
func Known(id int) bool {
	_, ok := labels[id]
	return ok
}

// IDs returns all known ids in ascending order.
func IDs() []int {
	ids := make([]int, 0, len(labels))
	for id := range labels {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Entry is one row of the table.
type Entry struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
}

// All returns the table ordered by id.
func All() []Entry {
	ids := IDs()
	out := make([]Entry, 0, len(ids))
	for _, id := range ids {
		out = append(out, Entry{ID: id, Label: labels[id]})
	}
	return out
}
