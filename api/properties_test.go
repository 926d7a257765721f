package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTriggerContextFromProperties(t *testing.T) {

	t.Run("ReadsAllPropertiesByTheirCurrentNames", func(t *testing.T) {

		properties := map[string]interface{}{
			"category":       "cq",
			"gerritHost":     "https://fuchsia-review.googlesource.com",
			"gerritProject":  "jiri",
			"gerritPatchRef": "refs/changes/12/1234/3",
			"repositoryUrl":  "https://fuchsia.googlesource.com/jiri",
			"refspec":        "release",
			"manifest":       "jiri",
			"remote":         "https://fuchsia.googlesource.com/manifest",
			"target":         "linux-amd64",
		}

		// act
		triggerContext, err := NewTriggerContextFromProperties(properties)

		assert.Nil(t, err)
		assert.Equal(t, "cq", triggerContext.Category)
		assert.Equal(t, "https://fuchsia-review.googlesource.com", triggerContext.GerritHost)
		assert.Equal(t, "jiri", triggerContext.GerritProject)
		assert.Equal(t, "refs/changes/12/1234/3", triggerContext.GerritPatchRef)
		assert.Equal(t, "https://fuchsia.googlesource.com/jiri", triggerContext.RepositoryURL)
		assert.Equal(t, "release", triggerContext.Refspec)
		assert.Equal(t, "jiri", triggerContext.Manifest)
		assert.Equal(t, "https://fuchsia.googlesource.com/manifest", triggerContext.RemoteManifestRepo)
		assert.Equal(t, "linux-amd64", triggerContext.TargetTriple)
	})

	t.Run("AcceptsOlderPatchPropertyNames", func(t *testing.T) {

		properties := map[string]interface{}{
			"patch_gerrit_url":     "https://fuchsia-review.googlesource.com",
			"patch_project":        "jiri",
			"patch_repository_url": "https://fuchsia.googlesource.com/jiri",
			"manifest":             "jiri",
			"remote":               "https://fuchsia.googlesource.com/manifest",
			"target":               "linux-amd64",
		}

		// act
		triggerContext, err := NewTriggerContextFromProperties(properties)

		assert.Nil(t, err)
		assert.Equal(t, "https://fuchsia-review.googlesource.com", triggerContext.GerritHost)
		assert.Equal(t, "jiri", triggerContext.GerritProject)
		assert.Equal(t, "https://fuchsia.googlesource.com/jiri", triggerContext.RepositoryURL)
	})

	t.Run("DefaultsRefspecToMaster", func(t *testing.T) {

		properties := map[string]interface{}{
			"manifest": "jiri",
			"remote":   "https://fuchsia.googlesource.com/manifest",
			"target":   "linux-amd64",
		}

		// act
		triggerContext, err := NewTriggerContextFromProperties(properties)

		assert.Nil(t, err)
		assert.Equal(t, "master", triggerContext.Refspec)
	})

	t.Run("ReturnsErrorWhenManifestIsMissing", func(t *testing.T) {

		properties := map[string]interface{}{
			"remote": "https://fuchsia.googlesource.com/manifest",
			"target": "linux-amd64",
		}

		// act
		_, err := NewTriggerContextFromProperties(properties)

		assert.NotNil(t, err)
	})

	t.Run("ReturnsErrorWhenRemoteIsMissing", func(t *testing.T) {

		properties := map[string]interface{}{
			"manifest": "jiri",
			"target":   "linux-amd64",
		}

		// act
		_, err := NewTriggerContextFromProperties(properties)

		assert.NotNil(t, err)
	})

	t.Run("ReturnsErrorWhenTargetIsMissing", func(t *testing.T) {

		properties := map[string]interface{}{
			"manifest": "jiri",
			"remote":   "https://fuchsia.googlesource.com/manifest",
		}

		// act
		_, err := NewTriggerContextFromProperties(properties)

		assert.NotNil(t, err)
	})

	t.Run("IgnoresNonStringPropertyValues", func(t *testing.T) {

		properties := map[string]interface{}{
			"category": 42,
			"manifest": "jiri",
			"remote":   "https://fuchsia.googlesource.com/manifest",
			"target":   "linux-amd64",
		}

		// act
		triggerContext, err := NewTriggerContextFromProperties(properties)

		assert.Nil(t, err)
		assert.Equal(t, "", triggerContext.Category)
	})
}

func TestReadPropertiesFromJSON(t *testing.T) {

	t.Run("UnmarshalsPropertyBlob", func(t *testing.T) {

		blob := `{"category":"cq","manifest":"jiri","remote":"https://fuchsia.googlesource.com/manifest","target":"linux-amd64"}`

		// act
		properties, err := ReadPropertiesFromJSON(blob)

		assert.Nil(t, err)
		assert.Equal(t, "cq", properties["category"])
	})

	t.Run("ReturnsErrorForInvalidJson", func(t *testing.T) {

		// act
		_, err := ReadPropertiesFromJSON("{")

		assert.NotNil(t, err)
	})
}
