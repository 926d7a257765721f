package orchestration

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"time"

	"github.com/infra-recipes/gobuilder/api"
	"github.com/infra-recipes/gobuilder/clients/gitclient"
	"github.com/infra-recipes/gobuilder/clients/gotool"
	"github.com/infra-recipes/gobuilder/clients/jiri"
	"github.com/infra-recipes/gobuilder/services/evaluation"
	"github.com/logrusorgru/aurora"
	"github.com/opentracing/opentracing-go"
	"github.com/rs/zerolog/log"
)

// whenAlways is the when clause for unconditional steps.
const whenAlways = "true"

// buildTimeFormat renders the stamp the way the engine always has, date and
// time separated by a space with a numeric utc offset.
const buildTimeFormat = "2006-01-02 15:04:05-07:00"

// Service runs the fixed sequence of build steps for one invocation; any
// step failure aborts the remaining steps
//go:generate mockgen -package=orchestration -destination ./mock.go -source=service.go
type Service interface {
	RunBuild(ctx context.Context) ([]api.StepResult, error)
}

// NewService returns a new orchestration.Service
func NewService(ctx context.Context, triggerContext api.TriggerContext, buildPlan api.BuildPlan, evaluationService evaluation.Service, gitClient gitclient.Client, jiriClient jiri.Client, goClient gotool.Client, workDir, versionPackage string) (Service, error) {
	return &service{
		triggerContext:    triggerContext,
		buildPlan:         buildPlan,
		evaluationService: evaluationService,
		gitClient:         gitClient,
		jiriClient:        jiriClient,
		goClient:          goClient,
		workDir:           workDir,
		versionPackage:    versionPackage,
		now:               time.Now,
	}, nil
}

type service struct {
	triggerContext    api.TriggerContext
	buildPlan         api.BuildPlan
	evaluationService evaluation.Service
	gitClient         gitclient.Client
	jiriClient        jiri.Client
	goClient          gotool.Client
	workDir           string
	versionPackage    string
	now               func() time.Time
}

type buildStep struct {
	name string
	when string
	run  func(ctx context.Context) error
}

func (s *service) RunBuild(ctx context.Context) (results []api.StepResult, err error) {

	checkoutDir := s.checkoutDir()

	steps := []buildStep{
		{
			name: "clean",
			when: whenAlways,
			run: func(ctx context.Context) error {
				return s.gitClient.CleanWorkspace(s.workDir)
			},
		},
		{
			name: "checkout",
			when: whenAlways,
			run: func(ctx context.Context) error {
				return s.gitClient.Clone(ctx, checkoutDir, s.buildPlan.RepositoryURL, s.buildPlan.Refspec)
			},
		},
		{
			name: "deps-init",
			when: whenAlways,
			run: func(ctx context.Context) error {
				return s.jiriClient.Init(ctx, s.workDir)
			},
		},
		{
			name: "deps-import",
			when: whenAlways,
			run: func(ctx context.Context) error {
				return s.jiriClient.Import(ctx, s.workDir, s.triggerContext.Manifest, s.triggerContext.RemoteManifestRepo)
			},
		},
		{
			name: "deps-update",
			when: whenAlways,
			run: func(ctx context.Context) error {
				return s.jiriClient.Update(ctx, s.workDir, true)
			},
		},
		{
			// only pending-change verification runs apply the gerrit patch
			name: "patch",
			when: "category == 'cq'",
			run: func(ctx context.Context) error {
				return s.jiriClient.Patch(ctx, s.workDir, s.triggerContext.GerritPatchRef, s.triggerContext.GerritHost, true, true)
			},
		},
		{
			name: "install-toolchain",
			when: whenAlways,
			run: func(ctx context.Context) error {
				return s.goClient.Install(ctx)
			},
		},
		{
			name: "version-stamp",
			when: whenAlways,
			run: func(ctx context.Context) error {
				return s.captureVersionStamp(ctx, checkoutDir)
			},
		},
		{
			name: "build",
			when: whenAlways,
			run: func(ctx context.Context) error {
				return s.goClient.Build(ctx, checkoutDir, s.buildPlan)
			},
		},
		{
			// cross-compiled binaries can't run their tests on this host
			name: "test",
			when: "goos == hostGoos",
			run: func(ctx context.Context) error {
				return s.goClient.Test(ctx, checkoutDir, s.buildPlan)
			},
		},
	}

	parameters := s.evaluationService.GetParameters(s.triggerContext, s.buildPlan)

	for _, step := range steps {
		result, err := s.runStep(ctx, step, parameters)
		results = append(results, result)
		if err != nil {
			return results, err
		}
	}

	return results, nil
}

func (s *service) runStep(ctx context.Context, step buildStep, parameters map[string]interface{}) (result api.StepResult, err error) {

	span, ctx := opentracing.StartSpanFromContext(ctx, "RunStep")
	defer span.Finish()
	span.SetTag("step", step.name)

	result = api.StepResult{Step: step.name}

	whenMatches, err := s.evaluationService.Evaluate(step.name, step.when, parameters)
	if err != nil {
		result.Status = api.StatusFailed
		return result, fmt.Errorf("Step %v failed: %w", step.name, err)
	}
	if !whenMatches {
		log.Info().Msgf("%v Skipping step", aurora.Yellow(fmt.Sprintf("[%v]", step.name)))
		result.Status = api.StatusSkipped
		return result, nil
	}

	log.Info().Msgf("%v Starting step", aurora.Green(fmt.Sprintf("[%v]", step.name)))

	start := s.now()
	err = step.run(ctx)
	result.Duration = s.now().Sub(start)

	if err != nil {
		log.Warn().Err(err).Msgf("%v Failed step", aurora.Red(fmt.Sprintf("[%v]", step.name)))
		result.Status = api.StatusFailed
		return result, fmt.Errorf("Step %v failed: %w", step.name, err)
	}

	log.Info().Msgf("%v Finished step in %v", aurora.Green(fmt.Sprintf("[%v]", step.name)), result.Duration)
	result.Status = api.StatusSucceeded

	return result, nil
}

// captureVersionStamp resolves the checked out commit hash and the current
// time and embeds both into the plan's ldflags
func (s *service) captureVersionStamp(ctx context.Context, checkoutDir string) error {

	commitHash, err := s.gitClient.GetCommitHash(ctx, checkoutDir)
	if err != nil {
		return err
	}

	stamp := api.VersionStamp{
		GitCommit: commitHash,
		BuildTime: s.now().Format(buildTimeFormat),
	}
	s.buildPlan.EmbedVersionStamp(stamp, s.versionPackage)

	log.Info().Msgf("Stamping build with commit %v at %v", stamp.GitCommit, stamp.BuildTime)

	return nil
}

// checkoutDir is where the tool's own repository ends up inside the workspace
func (s *service) checkoutDir() string {
	return filepath.Join(s.workDir, path.Base(s.buildPlan.RepositoryURL))
}
