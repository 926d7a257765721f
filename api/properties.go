package api

import (
	"encoding/json"
	"fmt"
	"io/ioutil"

	yaml "gopkg.in/yaml.v2"
)

// The engine has gone through two generations of property names; both are
// accepted, with the older patch_* names as fallback.
var propertyAliases = map[string][]string{
	"gerritHost":    {"gerritHost", "patch_gerrit_url"},
	"gerritProject": {"gerritProject", "patch_project"},
	"repositoryUrl": {"repositoryUrl", "patch_repository_url"},
}

// NewTriggerContextFromProperties builds a TriggerContext from the raw
// property map the automation engine hands over; missing required properties
// fail immediately, the refspec falls back to its default
func NewTriggerContextFromProperties(properties map[string]interface{}) (tc TriggerContext, err error) {

	tc = TriggerContext{
		Category:           stringProperty(properties, "category"),
		GerritHost:         aliasedStringProperty(properties, "gerritHost"),
		GerritProject:      aliasedStringProperty(properties, "gerritProject"),
		GerritPatchRef:     stringProperty(properties, "gerritPatchRef"),
		RepositoryURL:      aliasedStringProperty(properties, "repositoryUrl"),
		Refspec:            stringProperty(properties, "refspec"),
		Manifest:           stringProperty(properties, "manifest"),
		RemoteManifestRepo: stringProperty(properties, "remote"),
		TargetTriple:       stringProperty(properties, "target"),
	}

	if tc.Refspec == "" {
		tc.Refspec = DefaultRefspec
	}

	if tc.Manifest == "" {
		return tc, fmt.Errorf("Property manifest is required")
	}
	if tc.RemoteManifestRepo == "" {
		return tc, fmt.Errorf("Property remote is required")
	}
	if tc.TargetTriple == "" {
		return tc, fmt.Errorf("Property target is required")
	}

	return tc, nil
}

// ReadPropertiesFromJSON parses the property blob passed via flag or envvar
func ReadPropertiesFromJSON(blob string) (properties map[string]interface{}, err error) {
	err = json.Unmarshal([]byte(blob), &properties)
	if err != nil {
		return properties, fmt.Errorf("Failed unmarshalling properties json: %w", err)
	}
	return
}

// ReadPropertiesFromFile parses a yaml properties file written by the engine
func ReadPropertiesFromFile(path string) (properties map[string]interface{}, err error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return properties, err
	}
	err = yaml.Unmarshal(data, &properties)
	if err != nil {
		return properties, fmt.Errorf("Failed unmarshalling properties file %v: %w", path, err)
	}
	return
}

func stringProperty(properties map[string]interface{}, name string) string {
	if value, ok := properties[name]; ok {
		if s, ok := value.(string); ok {
			return s
		}
	}
	return ""
}

func aliasedStringProperty(properties map[string]interface{}, name string) string {
	for _, alias := range propertyAliases[name] {
		if value := stringProperty(properties, alias); value != "" {
			return value
		}
	}
	return ""
}
