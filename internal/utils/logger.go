package utils

import (
	"fmt"
	"log"
	"strings"
)

// LogEvent prints one standardized line with module/action/request_id.
// Messages stay summary-level: train ids and seat coordinates are
// fine, request payloads are not.
func LogEvent(requestID, module, action, message string) {
	req := strings.TrimSpace(requestID)
	log.Printf("[%s] action=%s request_id=%s msg=%s", strings.ToUpper(module), action, req, message)
}

// SeatRef formats the train/seat tuple used by booking log lines.
func SeatRef(trainID string, row, col int) string {
	return fmt.Sprintf("train=%s seat=(%d,%d)", trainID, row, col)
}
