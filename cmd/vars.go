package cmd

import (
	"fmt"
	"strings"

	"github.com/google/shlex"
)

// parseVars turns --var flags into a map. Each flag may hold several
// shell-quoted key=value pairs, e.g. --var 'env=prod motd="hello world"'.
func parseVars(flags []string) (map[string]string, error) {
	vars := make(map[string]string)
	for _, flag := range flags {
		words, err := shlex.Split(flag)
		if err != nil {
			return nil, fmt.Errorf("failed to split %q: %w", flag, err)
		}
		for _, word := range words {
			key, value, ok := strings.Cut(word, "=")
			if !ok || key == "" {
				return nil, fmt.Errorf("invalid variable %q, expected key=value", word)
			}
			vars[key] = value
		}
	}
	return vars, nil
}
