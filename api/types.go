package api

import (
	"fmt"
	"strings"
)

// TriggerCategoryCQ is the category the automation engine sets on
// pending-change verification runs; any other value (or none) means a
// periodic/branch build.
const TriggerCategoryCQ = "cq"

// DefaultRefspec is checked out when the trigger carries no explicit refspec.
const DefaultRefspec = "master"

// DefaultVersionPackage is the import path of the package whose GitCommit and
// BuildTime symbols get overridden via ldflags.
const DefaultVersionPackage = "fuchsia.googlesource.com/jiri/version"

// TriggerContext holds the properties the automation engine injects for a
// single invocation; it is constructed once and never mutated afterwards
type TriggerContext struct {
	Category           string
	GerritHost         string
	GerritProject      string
	GerritPatchRef     string
	RepositoryURL      string
	Refspec            string
	Manifest           string
	RemoteManifestRepo string
	TargetTriple       string
}

// BuildPlan is the resolved set of build parameters consumed by the step
// orchestrator; apart from the one-time ldflags embedding it is immutable
type BuildPlan struct {
	RepositoryURL string
	Refspec       string
	Ldflags       string
	GOOS          string
	GOARCH        string
}

// EmbedVersionStamp sets the plan's ldflags from the captured version stamp;
// it runs exactly once per build, after checkout
func (p *BuildPlan) EmbedVersionStamp(stamp VersionStamp, versionPackage string) {
	p.Ldflags = stamp.Ldflags(versionPackage)
}

// VersionStamp captures the commit hash of the checked out working copy and
// the time the build started; neither is mutated after capture
type VersionStamp struct {
	GitCommit string
	BuildTime string
}

// Ldflags renders the two linker symbol overrides embedding the stamp into
// the compiled binary, each quoted individually and joined by a single space
func (vs VersionStamp) Ldflags(versionPackage string) string {
	return fmt.Sprintf("-X \"%v.GitCommit=%v\" -X \"%v.BuildTime=%v\"", versionPackage, vs.GitCommit, versionPackage, vs.BuildTime)
}

// IsVerificationRun returns true for pending-change (commit queue) triggers
func (tc TriggerContext) IsVerificationRun() bool {
	return tc.Category == TriggerCategoryCQ
}

// GerritRepositoryURL derives the repository url for a verification run from
// the gerrit host and project, stripping any trailing slash from the host
func (tc TriggerContext) GerritRepositoryURL() string {
	return strings.TrimRight(tc.GerritHost, "/") + "/" + tc.GerritProject
}
