package main

import (
	"context"
	"io"

	"github.com/alecthomas/kingpin"
	foundation "github.com/estafette/estafette-foundation"
	"github.com/infra-recipes/gobuilder/api"
	"github.com/infra-recipes/gobuilder/clients/gitclient"
	"github.com/infra-recipes/gobuilder/clients/gotool"
	"github.com/infra-recipes/gobuilder/clients/jiri"
	"github.com/infra-recipes/gobuilder/services/evaluation"
	"github.com/infra-recipes/gobuilder/services/orchestration"
	"github.com/infra-recipes/gobuilder/services/resolver"
	"github.com/opentracing/opentracing-go"
	"github.com/rs/zerolog/log"
	"github.com/uber/jaeger-client-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"
)

var (
	appgroup  string
	app       string
	version   string
	branch    string
	revision  string
	buildDate string
)

var (
	propertiesJSON     = kingpin.Flag("properties", "JSON object with the trigger properties injected by the automation engine.").Envar("BUILDER_PROPERTIES").String()
	propertiesFilePath = kingpin.Flag("properties-file", "Path to a yaml file with the trigger properties.").Envar("BUILDER_PROPERTIES_FILE").String()
	workDir            = kingpin.Flag("work-dir", "Directory the workspace gets created in.").Default("/workspace").Envar("BUILDER_WORK_DIR").String()
	gopathDir          = kingpin.Flag("gopath", "GOPATH used for build and test invocations.").Default("/workspace/go").Envar("BUILDER_GOPATH").String()
	jiriPath           = kingpin.Flag("jiri-path", "Path to the jiri binary.").Default("jiri").Envar("BUILDER_JIRI_PATH").String()
	versionPackage     = kingpin.Flag("version-package", "Import path of the package receiving the GitCommit and BuildTime symbol overrides.").Default(api.DefaultVersionPackage).Envar("BUILDER_VERSION_PACKAGE").String()
)

func main() {

	// parse command line parameters
	kingpin.Parse()

	// init log format from envvar ESTAFETTE_LOG_FORMAT
	applicationInfo := foundation.NewApplicationInfo(appgroup, app, version, branch, revision, buildDate)
	foundation.InitLoggingFromEnv(applicationInfo)

	closer := initJaeger(app)
	defer closer.Close()

	ctx := context.Background()

	rootSpan := opentracing.StartSpan("RunBuildJob")
	defer rootSpan.Finish()

	ctx = opentracing.ContextWithSpan(ctx, rootSpan)

	properties, err := readProperties()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed reading trigger properties")
	}

	triggerContext, err := api.NewTriggerContextFromProperties(properties)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed constructing trigger context from properties")
	}

	resolverService := resolver.NewService()
	buildPlan, err := resolverService.Resolve(triggerContext)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed resolving build plan from trigger context")
	}

	log.Info().Msgf("Building %v at %v for %v/%v", buildPlan.RepositoryURL, buildPlan.Refspec, buildPlan.GOOS, buildPlan.GOARCH)

	gitClient, err := gitclient.NewClient(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed creating gitclient.Client")
	}

	jiriClient, err := jiri.NewClient(ctx, *jiriPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed creating jiri.Client")
	}

	goClient, err := gotool.NewClient(ctx, *gopathDir)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed creating gotool.Client")
	}

	evaluationService, err := evaluation.NewService(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed creating evaluation.Service")
	}

	orchestrationService, err := orchestration.NewService(ctx, triggerContext, buildPlan, evaluationService, gitClient, jiriClient, goClient, *workDir, *versionPackage)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed creating orchestration.Service")
	}

	results, err := orchestrationService.RunBuild(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Build failed")
	}

	orchestration.RenderStats(results)

	rootSpan.Finish()
	closer.Close()

	orchestration.HandleExit(results)
}

func readProperties() (map[string]interface{}, error) {
	if *propertiesFilePath != "" {
		return api.ReadPropertiesFromFile(*propertiesFilePath)
	}
	return api.ReadPropertiesFromJSON(*propertiesJSON)
}

// initJaeger returns an instance of Jaeger Tracer that can be configured with environment variables
// https://github.com/jaegertracing/jaeger-client-go#environment-variables
func initJaeger(service string) io.Closer {

	cfg, err := jaegercfg.FromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("Generating Jaeger config from environment variables failed")
	}

	// disable jaeger if service name is empty
	if cfg.ServiceName == "" {
		cfg.Disabled = true
	}

	closer, err := cfg.InitGlobalTracer(service, jaegercfg.Logger(jaeger.StdLogger))

	if err != nil {
		log.Fatal().Err(err).Msg("Generating Jaeger tracer failed")
	}

	return closer
}
