package workspace

import (
	"context"
	"fmt"
	"path"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/hashicorp/go-multierror"
	"github.com/mj1618/spaces-cli/internal/model"
	"github.com/mj1618/spaces-cli/internal/platform"
)

// LaunchResult reports the outcome of launching a workspace.
type LaunchResult struct {
	Workspace string   `yaml:"workspace"        json:"workspace"`
	Launched  []string `yaml:"launched"         json:"launched"`
	Failed    []string `yaml:"failed,omitempty" json:"failed,omitempty"`
}

// Launch opens every app in ws. A failing app does not stop the others; all
// failures are returned together.
func Launch(ctx context.Context, launcher platform.Launcher, ws model.Workspace) (LaunchResult, error) {
	result := LaunchResult{Workspace: ws.Name, Launched: []string{}}
	logger.Debugf(ctx, "launching workspace %q: %d apps", ws.Name, len(ws.Apps))

	var errs *multierror.Error
	for _, app := range ws.Apps {
		logger.Debugf(ctx, "launching %s (saved from space %d)", app.AppPath, app.SpaceNumber)
		p, err := AppPath(app.AppPath)
		if err != nil {
			result.Failed = append(result.Failed, app.AppPath)
			errs = multierror.Append(errs, err)
			continue
		}
		if err := launcher.Launch(ctx, p); err != nil {
			logger.Warnf(ctx, "failed to launch %s: %v", p, err)
			result.Failed = append(result.Failed, path.Base(p))
			errs = multierror.Append(errs, fmt.Errorf("launch %s: %w", path.Base(p), err))
			continue
		}
		result.Launched = append(result.Launched, path.Base(p))
	}
	return result, errs.ErrorOrNil()
}
