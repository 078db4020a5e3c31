package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/mikhailocampo/rift-rewind-hackathon/internal/errors"
	"github.com/mikhailocampo/rift-rewind-hackathon/internal/models"
)

const (
	challengeKeySample   = 50
	challengeCategoryCap = 15
)

// challengeCategories groups the challenge metrics by keyword match over
// the lowercased key name. A key can appear in more than one category.
var challengeCategories = []struct {
	title    string
	keywords []string
}{
	{"ECONOMY/TEMPO", []string{"gold", "damage", "cs", "farm", "tempo", "advantage"}},
	{"OBJECTIVES/MACRO", []string{"objective", "dragon", "baron", "tower", "turret", "inhibitor", "takedown", "level", "solo"}},
	{"MAP CONTROL/VISION", []string{"vision", "ward", "control", "sweep", "stealth"}},
	{"ERROR RATE/DEATHS", []string{"death", "died", "kill", "survive", "escape", "save"}},
}

// Challenges writes the challenges-field inspection report for the first
// participant of a match document: total metric count, a key sample, and
// keyword-selected metric categories.
func Challenges(w io.Writer, doc models.Document) error {
	challenges, err := firstParticipantChallenges(doc)
	if err != nil {
		return err
	}

	banner(w, "CHALLENGES FIELD - Available Metrics")
	fmt.Fprintf(w, "Total challenge metrics: %d\n", challenges.Len())

	keys := challenges.Keys()
	fmt.Fprintf(w, "\nChallenge keys (first %d):\n", challengeKeySample)
	for i, key := range firstN(keys, challengeKeySample) {
		v, _ := challenges.Get(key)
		fmt.Fprintf(w, "%2d. %-50s = %s\n", i+1, key, formatValue(v))
	}

	fmt.Fprintf(w, "\n\nRELEVANT METRICS BY CATEGORY:\n")
	for i, category := range challengeCategories {
		fmt.Fprintf(w, "\n%d. %s:\n", i+1, category.title)
		printed := 0
		for _, key := range keys {
			if printed >= challengeCategoryCap {
				break
			}
			if !matchesAny(key, category.keywords) {
				continue
			}
			v, _ := challenges.Get(key)
			fmt.Fprintf(w, "  %s: %s\n", key, formatValue(v))
			printed++
		}
	}
	return nil
}

func firstParticipantChallenges(doc models.Document) (*models.JSONObject, error) {
	obj, err := rootObject(doc)
	if err != nil {
		return nil, err
	}
	info, ok := childObject(obj, "info")
	if !ok {
		return nil, errors.NewReportError("document has no info object", errors.ErrMissingField)
	}
	participants, ok := childArray(info, "participants")
	if !ok || len(participants) == 0 {
		return nil, errors.NewReportError("document has no participants", errors.ErrMissingField)
	}
	participant, ok := participants[0].(*models.JSONObject)
	if !ok {
		return nil, errors.NewReportError("first participant is not an object", errors.ErrMissingField)
	}
	challenges, ok := childObject(participant, "challenges")
	if !ok {
		return nil, errors.NewReportError("first participant has no challenges field", errors.ErrMissingField)
	}
	return challenges, nil
}

func matchesAny(key string, keywords []string) bool {
	lower := strings.ToLower(key)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
