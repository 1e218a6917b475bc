package api

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadConfigFromFile(t *testing.T) {

	t.Run("ReturnsConfigWithoutErrors", func(t *testing.T) {

		configReader := NewConfigReader()

		// act
		_, err := configReader.ReadConfigFromFile("testdata/config.yaml")

		assert.Nil(t, err)
	})

	t.Run("ReturnsDatabaseConfig", func(t *testing.T) {

		configReader := NewConfigReader()

		// act
		config, err := configReader.ReadConfigFromFile("testdata/config.yaml")

		assert.Nil(t, err)
		databaseConfig := config.Database
		assert.Equal(t, "engioscope", databaseConfig.DatabaseName)
		assert.Equal(t, "engioscope-db.engioscope.svc.cluster.local", databaseConfig.Host)
		assert.False(t, databaseConfig.Insecure)
		assert.Equal(t, 26257, databaseConfig.Port)
		assert.Equal(t, "engioscope", databaseConfig.User)
		assert.Equal(t, "changeme", databaseConfig.Password)
	})

	t.Run("ReturnsAzureDevopsConfig", func(t *testing.T) {

		configReader := NewConfigReader()

		// act
		config, err := configReader.ReadConfigFromFile("testdata/config.yaml")

		assert.Nil(t, err)
		azureDevopsConfig := config.AzureDevops
		assert.Equal(t, "https://azure.example.com/tfs", azureDevopsConfig.URL)
		assert.Equal(t, "this-is-a-personal-access-token", azureDevopsConfig.AccessToken)
		assert.Equal(t, 2, len(azureDevopsConfig.Collections))
		assert.Equal(t, "DefaultCollection", azureDevopsConfig.Collections[0].Name)
		assert.Equal(t, []string{"User Story", "Bug"}, azureDevopsConfig.Collections[0].WorkItemTypes)
		assert.Equal(t, 2, len(azureDevopsConfig.Collections[0].Projects))
		assert.Equal(t, "com.example:checkout-frontend", azureDevopsConfig.Collections[0].Projects[0].SonarProjectKeys["checkout-frontend"])
	})

	t.Run("SetsDefaultWorkItemTypesForCollectionWithoutAny", func(t *testing.T) {

		configReader := NewConfigReader()

		// act
		config, err := configReader.ReadConfigFromFile("testdata/config.yaml")

		assert.Nil(t, err)
		assert.Equal(t, []string{"User Story", "Bug", "Feature"}, config.AzureDevops.Collections[1].WorkItemTypes)
	})

	t.Run("ReturnsSonarQubeConfigWithDefaultPageSize", func(t *testing.T) {

		configReader := NewConfigReader()

		// act
		config, err := configReader.ReadConfigFromFile("testdata/config.yaml")

		assert.Nil(t, err)
		sonarQubeConfig := config.SonarQube
		assert.Equal(t, "https://sonarqube.example.com", sonarQubeConfig.URL)
		assert.Equal(t, "this-is-a-sonar-token", sonarQubeConfig.AccessToken)
		assert.Equal(t, 100, sonarQubeConfig.PageSize)
	})

	t.Run("ReturnsCacheConfig", func(t *testing.T) {

		configReader := NewConfigReader()

		// act
		config, err := configReader.ReadConfigFromFile("testdata/config.yaml")

		assert.Nil(t, err)
		cacheConfig := config.Cache
		assert.True(t, cacheConfig.Enable)
		assert.Equal(t, "engioscope-cache:6379", cacheConfig.Addr)
		assert.Equal(t, 600, cacheConfig.TTLSeconds)
	})

	t.Run("ReturnsSyncConfigWithDefaultsForUnsetValues", func(t *testing.T) {

		configReader := NewConfigReader()

		// act
		config, err := configReader.ReadConfigFromFile("testdata/config.yaml")

		assert.Nil(t, err)
		syncConfig := config.Sync
		assert.Equal(t, 300, syncConfig.BuildsIntervalSeconds)
		assert.Equal(t, 1800, syncConfig.WorkItemsIntervalSeconds)
		assert.Equal(t, 21600, syncConfig.DeletedSweepIntervalSeconds)
		assert.Equal(t, 180, syncConfig.DefaultLookbackDays)
		assert.Equal(t, 50, syncConfig.ChunkSize)
		assert.Equal(t, 20, syncConfig.ChunkConcurrency)
	})

	t.Run("OverridesAccessTokenFromEnvironmentVariable", func(t *testing.T) {

		err := os.Setenv("ENGIOSCOPE_AZURE_DEVOPS_ACCESS_TOKEN", "token-from-environment")
		assert.Nil(t, err)
		defer os.Unsetenv("ENGIOSCOPE_AZURE_DEVOPS_ACCESS_TOKEN")

		configReader := NewConfigReader()

		// act
		config, err := configReader.ReadConfigFromFile("testdata/config.yaml")

		assert.Nil(t, err)
		assert.Equal(t, "token-from-environment", config.AzureDevops.AccessToken)
	})

	t.Run("OverridesDatabasePasswordFromEnvironmentVariable", func(t *testing.T) {

		err := os.Setenv("ENGIOSCOPE_DATABASE_PASSWORD", "password-from-environment")
		assert.Nil(t, err)
		defer os.Unsetenv("ENGIOSCOPE_DATABASE_PASSWORD")

		configReader := NewConfigReader()

		// act
		config, err := configReader.ReadConfigFromFile("testdata/config.yaml")

		assert.Nil(t, err)
		assert.Equal(t, "password-from-environment", config.Database.Password)
	})

	t.Run("ReturnsErrorWhenConfigFileDoesNotExist", func(t *testing.T) {

		configReader := NewConfigReader()

		// act
		_, err := configReader.ReadConfigFromFile("testdata/does-not-exist.yaml")

		assert.NotNil(t, err)
	})

	t.Run("ReturnsErrorWhenAzureDevopsURLIsMissing", func(t *testing.T) {

		configPath := filepath.Join(t.TempDir(), "config.yaml")
		err := os.WriteFile(configPath, []byte(`
azureDevops:
  accessToken: this-is-a-personal-access-token
  collections:
  - name: DefaultCollection
    projects:
    - name: checkout
`), 0600)
		assert.Nil(t, err)

		configReader := NewConfigReader()

		// act
		_, err = configReader.ReadConfigFromFile(configPath)

		assert.NotNil(t, err)
	})

	t.Run("ReturnsErrorWhenCollectionHasNoProjects", func(t *testing.T) {

		configPath := filepath.Join(t.TempDir(), "config.yaml")
		err := os.WriteFile(configPath, []byte(`
azureDevops:
  url: https://azure.example.com/tfs
  accessToken: this-is-a-personal-access-token
  collections:
  - name: DefaultCollection
`), 0600)
		assert.Nil(t, err)

		configReader := NewConfigReader()

		// act
		_, err = configReader.ReadConfigFromFile(configPath)

		assert.NotNil(t, err)
	})
}

func TestScopes(t *testing.T) {

	t.Run("ReturnsEveryConfiguredCollectionProjectPair", func(t *testing.T) {

		configReader := NewConfigReader()
		config, err := configReader.ReadConfigFromFile("testdata/config.yaml")
		assert.Nil(t, err)

		// act
		scopes := config.Scopes()

		assert.Equal(t, []Scope{
			{Collection: "DefaultCollection", Project: "checkout"},
			{Collection: "DefaultCollection", Project: "payments"},
			{Collection: "SecondCollection", Project: "warehouse"},
		}, scopes)
	})
}

func TestProject(t *testing.T) {

	t.Run("ReturnsProjectConfigForConfiguredScope", func(t *testing.T) {

		configReader := NewConfigReader()
		config, err := configReader.ReadConfigFromFile("testdata/config.yaml")
		assert.Nil(t, err)

		// act
		projectConfig := config.Project(Scope{Collection: "DefaultCollection", Project: "checkout"})

		assert.NotNil(t, projectConfig)
		assert.Equal(t, 2, len(projectConfig.SonarProjectKeys))
	})

	t.Run("ReturnsNilForUnknownScope", func(t *testing.T) {

		configReader := NewConfigReader()
		config, err := configReader.ReadConfigFromFile("testdata/config.yaml")
		assert.Nil(t, err)

		// act
		projectConfig := config.Project(Scope{Collection: "DefaultCollection", Project: "unknown"})

		assert.Nil(t, projectConfig)
	})
}
