package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLdflags(t *testing.T) {

	t.Run("ReturnsBothSymbolOverridesQuotedAndJoinedBySingleSpace", func(t *testing.T) {

		stamp := VersionStamp{
			GitCommit: "abc123",
			BuildTime: "2016-10-11 14:40:25-07:00",
		}

		// act
		ldflags := stamp.Ldflags(DefaultVersionPackage)

		assert.Equal(t, "-X \"fuchsia.googlesource.com/jiri/version.GitCommit=abc123\" -X \"fuchsia.googlesource.com/jiri/version.BuildTime=2016-10-11 14:40:25-07:00\"", ldflags)
	})

	t.Run("UsesConfiguredVersionPackage", func(t *testing.T) {

		stamp := VersionStamp{
			GitCommit: "deadbeef",
			BuildTime: "2016-10-11 14:40:25-07:00",
		}

		// act
		ldflags := stamp.Ldflags("example.com/tool/version")

		assert.Equal(t, "-X \"example.com/tool/version.GitCommit=deadbeef\" -X \"example.com/tool/version.BuildTime=2016-10-11 14:40:25-07:00\"", ldflags)
	})
}

func TestEmbedVersionStamp(t *testing.T) {

	t.Run("SetsLdflagsOnPlan", func(t *testing.T) {

		plan := BuildPlan{
			RepositoryURL: "https://fuchsia.googlesource.com/jiri",
			Refspec:       "master",
			GOOS:          "linux",
			GOARCH:        "amd64",
		}
		stamp := VersionStamp{GitCommit: "abc123", BuildTime: "2016-10-11 14:40:25-07:00"}

		// act
		plan.EmbedVersionStamp(stamp, DefaultVersionPackage)

		assert.Equal(t, stamp.Ldflags(DefaultVersionPackage), plan.Ldflags)
	})
}

func TestGerritRepositoryURL(t *testing.T) {

	t.Run("JoinsHostAndProjectWithSingleSlash", func(t *testing.T) {

		triggerContext := TriggerContext{
			GerritHost:    "https://fuchsia-review.googlesource.com/",
			GerritProject: "jiri",
		}

		// act
		url := triggerContext.GerritRepositoryURL()

		assert.Equal(t, "https://fuchsia-review.googlesource.com/jiri", url)
	})
}
