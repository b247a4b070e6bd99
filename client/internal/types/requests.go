package types

import "fmt"

// NewActivity is one item of the POST /activities request body. Group is
// optional; an explicit null is equivalent to leaving the activity
// ungrouped.
type NewActivity struct {
	Name  string  `json:"name"`
	Group *string `json:"group,omitempty"`
}

// ValidateNewActivities checks a creation request before it is sent
// upstream. Every item needs a non-empty name.
func ValidateNewActivities(reqs []NewActivity) error {
	if len(reqs) == 0 {
		return fmt.Errorf("activities must contain at least one item")
	}
	for i, a := range reqs {
		if a.Name == "" {
			return fmt.Errorf("activities[%d].name must be a non-empty string", i)
		}
	}
	return nil
}
