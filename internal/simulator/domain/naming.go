package domain

import (
	"fmt"
	"time"
)

const _nameTimestampLayout = "20060102_150405"

// GenerateSensorName builds the default name {type}_Sensor_{timestamp}_{suffix}.
// The suffix is expected in the 1000..9999 range.
func GenerateSensorName(t SensorType, now time.Time, suffix int) string {
	return fmt.Sprintf("%s_Sensor_%s_%d", t, now.Format(_nameTimestampLayout), suffix)
}
