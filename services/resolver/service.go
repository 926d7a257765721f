package resolver

import (
	"fmt"
	"strings"

	"github.com/infra-recipes/gobuilder/api"
)

const secureScheme = "https://"

// Service resolves the trigger properties for one invocation into a concrete
// build plan; it performs no i/o and holds no state, so it is safe to call
// repeatedly and concurrently
//go:generate mockgen -package=resolver -destination ./mock.go -source=service.go
type Service interface {
	Resolve(triggerContext api.TriggerContext) (api.BuildPlan, error)
}

// NewService returns a new resolver.Service
func NewService() Service {
	return &service{}
}

type service struct {
}

func (s *service) Resolve(triggerContext api.TriggerContext) (buildPlan api.BuildPlan, err error) {

	// a verification run must fetch the pending change from gerrit, any other
	// run checks out the explicitly configured repository and refspec
	if triggerContext.IsVerificationRun() {
		if !strings.HasPrefix(triggerContext.GerritHost, secureScheme) {
			return buildPlan, fmt.Errorf("Gerrit host %q must use scheme %v", triggerContext.GerritHost, secureScheme)
		}
		buildPlan.RepositoryURL = triggerContext.GerritRepositoryURL()
		buildPlan.Refspec = triggerContext.GerritPatchRef
	} else {
		buildPlan.RepositoryURL = triggerContext.RepositoryURL
		buildPlan.Refspec = triggerContext.Refspec
	}

	if buildPlan.RepositoryURL == "" {
		return api.BuildPlan{}, fmt.Errorf("Repository url is empty")
	}
	if buildPlan.Refspec == "" {
		return api.BuildPlan{}, fmt.Errorf("Refspec is empty")
	}
	if !strings.HasPrefix(buildPlan.RepositoryURL, secureScheme) {
		return api.BuildPlan{}, fmt.Errorf("Repository url %q must use scheme %v", buildPlan.RepositoryURL, secureScheme)
	}

	buildPlan.GOOS, buildPlan.GOARCH, err = splitTargetTriple(triggerContext.TargetTriple)
	if err != nil {
		return api.BuildPlan{}, err
	}

	return buildPlan, nil
}

// splitTargetTriple splits a "<goos>-<goarch>" target on the first dash
func splitTargetTriple(target string) (goos, goarch string, err error) {
	parts := strings.SplitN(target, "-", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("Target %q is not of the form <goos>-<goarch>", target)
	}
	return parts[0], parts[1], nil
}
