//go:build integration

package steps

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"music-extractor/domain/extract"
	"music-extractor/infrastructure/ffmpeg"

	"github.com/cucumber/godog"
)

// locateContext holds test state for tool resolution scenarios
type locateContext struct {
	explicit string
	env      map[string]string
	exeDir   string
	existing map[string]bool
	pathHit  string
	resolved string
	err      error
}

// SharedLocateContext is reset before each scenario via Before hook
var SharedLocateContext *locateContext

func InitializeLocateScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(c context.Context, sc *godog.Scenario) (context.Context, error) {
		SharedLocateContext = &locateContext{
			env:      make(map[string]string),
			exeDir:   filepath.Join("/opt", "music-extractor"),
			existing: make(map[string]bool),
		}
		return c, nil
	})

	ctx.Step(`^an explicit ffmpeg path "([^"]*)"$`, anExplicitFFmpegPath)
	ctx.Step(`^the environment override is "([^"]*)"$`, theEnvironmentOverrideIs)
	ctx.Step(`^a bundled ffmpeg copy exists$`, aBundledFFmpegCopyExists)
	ctx.Step(`^ffmpeg is on the search path at "([^"]*)"$`, ffmpegIsOnTheSearchPathAt)
	ctx.Step(`^I resolve the tool$`, iResolveTheTool)
	ctx.Step(`^the resolved path is "([^"]*)"$`, theResolvedPathIs)
	ctx.Step(`^the resolved path is the bundled copy$`, theResolvedPathIsTheBundledCopy)
	ctx.Step(`^resolution fails with tool-not-found$`, resolutionFailsWithToolNotFound)
}

func bundledCopyPath() string {
	return filepath.Join(SharedLocateContext.exeDir, ffmpeg.ExeName())
}

func anExplicitFFmpegPath(path string) error {
	SharedLocateContext.explicit = path
	return nil
}

func theEnvironmentOverrideIs(path string) error {
	SharedLocateContext.env[ffmpeg.EnvVar] = path
	return nil
}

func aBundledFFmpegCopyExists() error {
	SharedLocateContext.existing[bundledCopyPath()] = true
	return nil
}

func ffmpegIsOnTheSearchPathAt(path string) error {
	SharedLocateContext.pathHit = path
	return nil
}

func iResolveTheTool() error {
	tc := SharedLocateContext
	locator := ffmpeg.NewLocator(
		ffmpeg.WithGetenv(func(key string) string { return tc.env[key] }),
		ffmpeg.WithExecutablePath(func() (string, error) {
			return filepath.Join(tc.exeDir, "music-extractor"), nil
		}),
		ffmpeg.WithExistsCheck(func(path string) bool { return tc.existing[path] }),
		ffmpeg.WithLookPath(func(name string) (string, error) {
			if tc.pathHit != "" {
				return tc.pathHit, nil
			}
			return "", errors.New("executable file not found in $PATH")
		}),
	)
	tc.resolved, tc.err = locator.Locate(tc.explicit)
	return nil
}

func theResolvedPathIs(want string) error {
	tc := SharedLocateContext
	if tc.err != nil {
		return fmt.Errorf("resolution failed: %v", tc.err)
	}
	if tc.resolved != want {
		return fmt.Errorf("resolved %q, want %q", tc.resolved, want)
	}
	return nil
}

func theResolvedPathIsTheBundledCopy() error {
	return theResolvedPathIs(bundledCopyPath())
}

func resolutionFailsWithToolNotFound() error {
	if !errors.Is(SharedLocateContext.err, extract.ErrToolNotFound) {
		return fmt.Errorf("expected ErrToolNotFound, got: %v", SharedLocateContext.err)
	}
	return nil
}
