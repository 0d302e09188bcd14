package enums

import "fmt"

// StageName labels a production stage attached to an order.
type StageName string

const (
	StageNameBaking       StageName = "baking"
	StageNameDecorating   StageName = "decorating"
	StageNameQualityCheck StageName = "quality_check"
	StageNameReady        StageName = "ready"
)

var validStageNames = []StageName{
	StageNameBaking,
	StageNameDecorating,
	StageNameQualityCheck,
	StageNameReady,
}

func (s StageName) String() string {
	return string(s)
}

func (s StageName) IsValid() bool {
	for _, candidate := range validStageNames {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseStageName converts raw input into a StageName.
func ParseStageName(value string) (StageName, error) {
	for _, candidate := range validStageNames {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid stage name %q", value)
}
