package render

import "github.com/kingrea/duty-roster/internal/calendar"

// Labels are the column titles and notes for table-shaped outputs.
type Labels struct {
	Week    string
	From    string
	To      string
	Chore   [4]string
	Note    string
	Holiday string
	Exam    string
	Switch  string
}

var labelsByTag = map[string]Labels{
	"en": {
		Week:    "Week",
		From:    "From",
		To:      "To",
		Chore:   [4]string{"Chore 1", "Chore 2", "Chore 3", "Chore 4"},
		Note:    "Note",
		Holiday: "holiday",
		Exam:    "exams",
		Switch:  "sides swap",
	},
	"nl": {
		Week:    "Week",
		From:    "Van",
		To:      "Tot",
		Chore:   [4]string{"Taak 1", "Taak 2", "Taak 3", "Taak 4"},
		Note:    "Opmerking",
		Holiday: "vakantie",
		Exam:    "tentamens",
		Switch:  "wissel",
	},
}

// LabelsFor returns the labels for loc, defaulting to English.
func LabelsFor(loc calendar.Locale) Labels {
	if l, ok := labelsByTag[loc.Tag]; ok {
		return l
	}
	return labelsByTag["en"]
}

// Header returns the column titles in table order.
func (l Labels) Header() []string {
	return []string{l.Week, l.From, l.To, l.Chore[0], l.Chore[1], l.Chore[2], l.Chore[3], l.Note}
}
