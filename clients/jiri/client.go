package jiri

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os/exec"

	"github.com/rs/zerolog/log"
)

// Client is the interface for driving the jiri dependency manager
//go:generate mockgen -package=jiri -destination ./mock.go -source=client.go
type Client interface {
	Init(ctx context.Context, dir string) error
	Import(ctx context.Context, dir, manifest, remote string) error
	Update(ctx context.Context, dir string, gc bool) error
	Patch(ctx context.Context, dir, ref, host string, deleteBranch, force bool) error
}

// NewClient returns a new jiri.Client shelling out to the given jiri binary
func NewClient(ctx context.Context, jiriPath string) (Client, error) {
	return &client{
		jiriPath: jiriPath,
	}, nil
}

type client struct {
	jiriPath string
}

func (c *client) Init(ctx context.Context, dir string) error {
	return c.run(ctx, dir, initArgs()...)
}

func (c *client) Import(ctx context.Context, dir, manifest, remote string) error {
	return c.run(ctx, dir, importArgs(manifest, remote)...)
}

func (c *client) Update(ctx context.Context, dir string, gc bool) error {
	return c.run(ctx, dir, updateArgs(gc)...)
}

func (c *client) Patch(ctx context.Context, dir, ref, host string, deleteBranch, force bool) error {
	return c.run(ctx, dir, patchArgs(ref, host, deleteBranch, force)...)
}

func initArgs() []string {
	return []string{"init"}
}

func importArgs(manifest, remote string) []string {
	return []string{"import", manifest, remote}
}

func updateArgs(gc bool) []string {
	args := []string{"update"}
	if gc {
		args = append(args, "-gc")
	}
	return args
}

func patchArgs(ref, host string, deleteBranch, force bool) []string {
	args := []string{"patch"}
	if host != "" {
		args = append(args, fmt.Sprintf("-host=%v", host))
	}
	if deleteBranch {
		args = append(args, "-delete")
	}
	if force {
		args = append(args, "-force")
	}
	return append(args, ref)
}

func (c *client) run(ctx context.Context, dir string, args ...string) error {

	log.Info().Msgf("Running command '%v %v' in %v", c.jiriPath, args, dir)

	command := exec.CommandContext(ctx, c.jiriPath, args...)
	command.Dir = dir

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

	// surface tool output line by line
	in := bufio.NewScanner(io.MultiReader(stdout, stderr))
	for in.Scan() {
		log.Info().Msg(in.Text())
	}
	if err := in.Err(); err != nil {
		log.Warn().Err(err).Msgf("Failed tailing output of %v", c.jiriPath)
	}

	if err := command.Wait(); err != nil {
		return fmt.Errorf("Command '%v %v' failed: %w", c.jiriPath, args, err)
	}

	return nil
}
