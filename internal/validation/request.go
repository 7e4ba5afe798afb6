package validation

import (
	"errors"
	"strings"
)

// SearchRequest is the body of POST /api/search.
type SearchRequest struct {
	Query string `json:"query"`
	Type  string `json:"type"`
}

// AutomationOptions mirrors the options block the demo console sends.
type AutomationOptions struct {
	Type string `json:"type"`
}

// AutomationRequest is the body of POST /api/automation.
type AutomationRequest struct {
	Command string            `json:"command"`
	Options AutomationOptions `json:"options"`
}

var (
	ErrQueryRequired   = errors.New("Query is required")
	ErrCommandRequired = errors.New("Command is required")
)

// ValidateSearch only rejects a missing or empty query. A query made of
// whitespace is accepted and searched as-is.
func ValidateSearch(req *SearchRequest) error {
	if req == nil || req.Query == "" {
		return ErrQueryRequired
	}
	return nil
}

// ValidateAutomation rejects commands that are blank after trimming, since
// the console treats those as "nothing to run".
func ValidateAutomation(req *AutomationRequest) error {
	if req == nil || strings.TrimSpace(req.Command) == "" {
		return ErrCommandRequired
	}
	return nil
}
