package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func parseID(name, raw string) (int64, error) {
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		return 0, NewExitError(ExitUsage, fmt.Sprintf("%s must be a positive integer, got %q", name, raw))
	}
	return v, nil
}

// optionalID returns nil when the flag was not given.
func optionalID(cmd *cobra.Command, flag string, v int64) (*int64, error) {
	if !cmd.Flags().Changed(flag) {
		return nil, nil
	}
	if v <= 0 {
		return nil, NewExitError(ExitUsage, fmt.Sprintf("--%s must be a positive integer", flag))
	}
	return &v, nil
}
