package utils

import (
	"log"
	"strings"
)

// LogEvent prints one standardized line per booking-flow event. Messages name
// the entity and outcome only; passenger and payment details never go here.
func LogEvent(requestID, module, action, message string) {
	rid := strings.TrimSpace(requestID)
	if rid == "" {
		rid = "-"
	}
	log.Printf("[%s] action=%s request_id=%s msg=%s", strings.ToUpper(module), action, rid, message)
}
