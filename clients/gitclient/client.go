package gitclient

import (
	"context"
	"fmt"
	"os"
	"strings"

	git "github.com/go-git/go-git/v5"
	gogitcfg "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/rs/zerolog/log"
)

// patchCheckoutRef is the local ref a gerrit change ref gets fetched into
// before checkout.
const patchCheckoutRef = "refs/heads/pending-change"

// Client is the interface for producing a clean working copy of the source
// repository and inspecting it
//go:generate mockgen -package=gitclient -destination ./mock.go -source=client.go
type Client interface {
	CleanWorkspace(dir string) error
	Clone(ctx context.Context, dir, repositoryURL, refspec string) error
	GetCommitHash(ctx context.Context, dir string) (string, error)
}

// NewClient returns a new gitclient.Client
func NewClient(ctx context.Context) (Client, error) {
	return &client{}, nil
}

type client struct {
}

func (c *client) CleanWorkspace(dir string) error {

	log.Info().Msgf("Cleaning workspace at %v", dir)

	err := os.RemoveAll(dir)
	if err != nil {
		return fmt.Errorf("Failed cleaning workspace %v: %w", dir, err)
	}

	return os.MkdirAll(dir, 0755)
}

func (c *client) Clone(ctx context.Context, dir, repositoryURL, refspec string) error {

	log.Info().Msgf("Cloning %v at %v into %v", repositoryURL, refspec, dir)

	// gerrit change refs aren't advertised as branches, so clone the default
	// branch first and fetch the change ref separately
	if isChangeRef(refspec) {
		return c.cloneChangeRef(ctx, dir, repositoryURL, refspec)
	}

	_, err := git.PlainCloneContext(ctx, dir, false, &git.CloneOptions{
		URL:           repositoryURL,
		ReferenceName: plumbing.NewBranchReferenceName(refspec),
		SingleBranch:  true,
	})
	if err != nil {
		return fmt.Errorf("Failed cloning %v at %v: %w", repositoryURL, refspec, err)
	}

	return nil
}

func (c *client) cloneChangeRef(ctx context.Context, dir, repositoryURL, refspec string) error {

	repository, err := git.PlainCloneContext(ctx, dir, false, &git.CloneOptions{
		URL: repositoryURL,
	})
	if err != nil {
		return fmt.Errorf("Failed cloning %v: %w", repositoryURL, err)
	}

	err = repository.FetchContext(ctx, &git.FetchOptions{
		RefSpecs: []gogitcfg.RefSpec{
			gogitcfg.RefSpec(fmt.Sprintf("%v:%v", refspec, patchCheckoutRef)),
		},
	})
	if err != nil {
		return fmt.Errorf("Failed fetching %v: %w", refspec, err)
	}

	reference, err := repository.Reference(plumbing.ReferenceName(patchCheckoutRef), true)
	if err != nil {
		return fmt.Errorf("Failed resolving fetched ref %v: %w", refspec, err)
	}

	worktree, err := repository.Worktree()
	if err != nil {
		return err
	}

	err = worktree.Checkout(&git.CheckoutOptions{
		Hash:  reference.Hash(),
		Force: true,
	})
	if err != nil {
		return fmt.Errorf("Failed checking out %v: %w", refspec, err)
	}

	return nil
}

func (c *client) GetCommitHash(ctx context.Context, dir string) (string, error) {

	repository, err := git.PlainOpen(dir)
	if err != nil {
		return "", fmt.Errorf("Failed opening repository at %v: %w", dir, err)
	}

	head, err := repository.Head()
	if err != nil {
		return "", fmt.Errorf("Failed resolving HEAD of repository at %v: %w", dir, err)
	}

	return head.Hash().String(), nil
}

func isChangeRef(refspec string) bool {
	return strings.HasPrefix(refspec, "refs/")
}
