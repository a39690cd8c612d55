package merge

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// UpdateSubmodules refreshes the upstream data submodules (SPDX license
// list and choosealicense) by shelling out to git, matching how the
// sources are vendored. A failure aborts the run as SourceUnavailable.
func UpdateSubmodules(ctx context.Context, dir string) error {
	steps := [][]string{
		{"submodule", "update", "--init", "--recursive"},
		{"submodule", "update", "--remote", "--merge"},
	}
	for _, args := range steps {
		cmd := exec.CommandContext(ctx, "git", args...)
		if dir != "" {
			cmd.Dir = dir
		}
		out, err := cmd.CombinedOutput()
		if err != nil {
			return &SourceUnavailableError{
				Source: "git submodules",
				Path:   dir,
				Err:    fmt.Errorf("git %s: %w: %s", strings.Join(args, " "), err, strings.TrimSpace(string(out))),
			}
		}
	}
	return nil
}
