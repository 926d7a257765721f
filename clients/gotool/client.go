package gotool

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/infra-recipes/gobuilder/api"
	"github.com/rs/zerolog/log"
)

// Client is the interface for the go toolchain: verifying its presence and
// running the build and test commands with the resolved plan's environment
//go:generate mockgen -package=gotool -destination ./mock.go -source=client.go
type Client interface {
	Install(ctx context.Context) error
	Build(ctx context.Context, dir string, buildPlan api.BuildPlan) error
	Test(ctx context.Context, dir string, buildPlan api.BuildPlan) error
}

// NewClient returns a new gotool.Client; gopath becomes the GOPATH for every
// build and test invocation
func NewClient(ctx context.Context, gopath string) (Client, error) {
	return &client{
		gopath: gopath,
	}, nil
}

type client struct {
	gopath string
}

func (c *client) Install(ctx context.Context) error {

	path, err := exec.LookPath("go")
	if err != nil {
		return fmt.Errorf("Go toolchain is not installed: %w", err)
	}

	output, err := exec.CommandContext(ctx, path, "version").Output()
	if err != nil {
		return fmt.Errorf("Failed running go version: %w", err)
	}

	log.Info().Msgf("Using toolchain %v", string(output))

	return nil
}

func (c *client) Build(ctx context.Context, dir string, buildPlan api.BuildPlan) error {
	return c.run(ctx, dir, buildPlan, buildArgs(buildPlan)...)
}

func (c *client) Test(ctx context.Context, dir string, buildPlan api.BuildPlan) error {
	return c.run(ctx, dir, buildPlan, testArgs()...)
}

func buildArgs(buildPlan api.BuildPlan) []string {
	return []string{"build", "-ldflags", buildPlan.Ldflags, "./..."}
}

func testArgs() []string {
	return []string{"test", "-v", "./..."}
}

func (c *client) environment(buildPlan api.BuildPlan) []string {
	return append(os.Environ(),
		fmt.Sprintf("GOPATH=%v", c.gopath),
		fmt.Sprintf("GOOS=%v", buildPlan.GOOS),
		fmt.Sprintf("GOARCH=%v", buildPlan.GOARCH),
	)
}

func (c *client) run(ctx context.Context, dir string, buildPlan api.BuildPlan, args ...string) error {

	log.Info().Msgf("Running command 'go %v' in %v for %v/%v", args, dir, buildPlan.GOOS, buildPlan.GOARCH)

	command := exec.CommandContext(ctx, "go", args...)
	command.Dir = dir
	command.Env = c.environment(buildPlan)

	stdout, err := command.StdoutPipe()
	if err != nil {
		return err
	}
	stderr, err := command.StderrPipe()
	if err != nil {
		return err
	}
	if err := command.Start(); err != nil {
		return err
	}

	in := bufio.NewScanner(io.MultiReader(stdout, stderr))
	for in.Scan() {
		log.Info().Msg(in.Text())
	}
	if err := in.Err(); err != nil {
		log.Warn().Err(err).Msg("Failed tailing go tool output")
	}

	if err := command.Wait(); err != nil {
		return fmt.Errorf("Command 'go %v' failed: %w", args, err)
	}

	return nil
}
