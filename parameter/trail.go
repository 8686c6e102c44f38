package parameter

// Trail
const (
	// TrailMaxLength is the length past which the newest segment resets the trail
	TrailMaxLength = 300.0

	// TrailWarnRatio marks the newest segment as a warning at this fraction of TrailMaxLength
	TrailWarnRatio = 0.75

	// TrailWarnLength is the warning threshold in distance units
	TrailWarnLength = TrailMaxLength * TrailWarnRatio

	// TrailMaxSegments is the sliding window size; closure is tested once the window is full
	TrailMaxSegments = 4
)
