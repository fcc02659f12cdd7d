package slots

import (
	"strings"
)

var InterestTemplates = map[string][]string{
	"art":     {"Main museum", "Historic centre", "Local gallery"},
	"food":    {"Food market", "Street food tour", "Traditional trattoria"},
	"outdoor": {"Panoramic park", "Riverside walk", "Belvedere"},
	"kids":    {"Playground", "Aquarium / zoo", "Kids workshop"},
}

var interestAliases = map[string]string{
	"arte":    "art",
	"cibo":    "food",
	"bambini": "kids",
}

// FallbackTemplates are used when none of the interests is known
var FallbackTemplates = []string{
	"Walk through the centre",
	"Coffee in the square",
	"Viewpoint",
}

// Templates flattens the template lists of the known interests, in interest order
func Templates(interests []string) []string {
	var templates []string

	for _, interest := range interests {
		interest = strings.ToLower(strings.TrimSpace(interest))
		if alias, ok := interestAliases[interest]; ok {
			interest = alias
		}

		templates = append(templates, InterestTemplates[interest]...)
	}

	if len(templates) == 0 {
		return append([]string(nil), FallbackTemplates...)
	}

	return templates
}

// ActivitiesPerDay is 2 for a relaxed pace and 3 for anything else
func ActivitiesPerDay(pace string) int {
	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(pace)), "r") {
		return 2
	}

	return 3
}
