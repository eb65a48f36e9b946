package clock

import (
	"fmt"

	"pompano/internal/core/model"
)

// FormatTime renders seconds as zero-padded MM:SS.
func FormatTime(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// FormatTotalTime renders accumulated focus time, e.g. "1hours 30 mins".
func FormatTotalTime(seconds int) string {
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	if hours > 0 {
		return fmt.Sprintf("%dhours %d mins", hours, minutes)
	}
	return fmt.Sprintf("%d mins", minutes)
}

// SessionLabel returns the display name of a session type.
func SessionLabel(sessionType model.SessionType) string {
	switch sessionType {
	case model.SessionWork:
		return "Focus Time"
	case model.SessionBreak:
		return "Break Time"
	}
	return ""
}
