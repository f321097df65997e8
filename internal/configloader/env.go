package configloader

import (
	"fmt"
	"os"
	"strconv"

	"github.com/yaklabco/gohighlight/pkg/config"
)

// Environment variable names recognized by applyEnv.
const (
	envMaxHighlight    = "GOHIGHLIGHT_MAX_HIGHLIGHT"
	envUseQueryAsClass = "GOHIGHLIGHT_USE_QUERY_AS_CLASS"
	envNormalise       = "GOHIGHLIGHT_NORMALISE"
)

// applyEnv overrides cfg from the environment and returns warnings for
// values that could not be parsed.
func applyEnv(cfg *config.Config) []string {
	var warnings []string

	if v, ok := os.LookupEnv(envMaxHighlight); ok {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			warnings = append(warnings, fmt.Sprintf("%s: invalid value %q", envMaxHighlight, v))
		} else {
			cfg.MaxHighlight = n
		}
	}
	if v, ok := os.LookupEnv(envUseQueryAsClass); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("%s: invalid value %q", envUseQueryAsClass, v))
		} else {
			cfg.UseQueryAsClass = b
		}
	}
	if v, ok := os.LookupEnv(envNormalise); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("%s: invalid value %q", envNormalise, v))
		} else {
			cfg.Normalise = b
		}
	}
	return warnings
}
