package constant

import "strings"

const (
	APITypeAIMLAPI = iota
	APITypeLocalSD
)

// LocalModelPrefix marks models served by the self-hosted generation
// server instead of the aggregation API.
const LocalModelPrefix = "local/"

func ModelName2APIType(modelName string) int {
	if strings.HasPrefix(strings.ToLower(modelName), LocalModelPrefix) {
		return APITypeLocalSD
	}
	return APITypeAIMLAPI
}
