package api

import (
	"fmt"
)

// APIConfig represents the configuration for the entire application
type APIConfig struct {
	Database    *DatabaseConfig    `yaml:"database,omitempty"`
	AzureDevops *AzureDevopsConfig `yaml:"azureDevops,omitempty"`
	SonarQube   *SonarQubeConfig   `yaml:"sonarQube,omitempty"`
	Cache       *CacheConfig       `yaml:"cache,omitempty"`
	Sync        *SyncConfig        `yaml:"sync,omitempty"`
}

func (c *APIConfig) SetDefaults() {
	if c.Database == nil {
		c.Database = &DatabaseConfig{}
	}
	c.Database.SetDefaults()

	if c.AzureDevops == nil {
		c.AzureDevops = &AzureDevopsConfig{}
	}
	c.AzureDevops.SetDefaults()

	if c.SonarQube != nil {
		c.SonarQube.SetDefaults()
	}

	if c.Cache == nil {
		c.Cache = &CacheConfig{}
	}
	c.Cache.SetDefaults()

	if c.Sync == nil {
		c.Sync = &SyncConfig{}
	}
	c.Sync.SetDefaults()
}

func (c *APIConfig) Validate() (err error) {
	err = c.Database.Validate()
	if err != nil {
		return
	}

	err = c.AzureDevops.Validate()
	if err != nil {
		return
	}

	if c.SonarQube != nil {
		err = c.SonarQube.Validate()
		if err != nil {
			return
		}
	}

	err = c.Sync.Validate()
	if err != nil {
		return
	}

	return nil
}

// Scopes returns every configured (collection, project) pair
func (c *APIConfig) Scopes() (scopes []Scope) {
	for _, collection := range c.AzureDevops.Collections {
		for _, project := range collection.Projects {
			scopes = append(scopes, Scope{Collection: collection.Name, Project: project.Name})
		}
	}

	return scopes
}

// Project returns the configuration for the project a scope points at, or nil
// when the scope is not configured
func (c *APIConfig) Project(scope Scope) *ProjectConfig {
	for _, collection := range c.AzureDevops.Collections {
		if collection.Name != scope.Collection {
			continue
		}
		for _, project := range collection.Projects {
			if project.Name == scope.Project {
				return project
			}
		}
	}

	return nil
}

// DatabaseConfig represents the configuration for the database client
type DatabaseConfig struct {
	DatabaseName             string `yaml:"databaseName"`
	Host                     string `yaml:"host"`
	Insecure                 bool   `yaml:"insecure"`
	SslMode                  string `yaml:"sslMode"`
	CertificateAuthorityPath string `yaml:"certificateAuthorityPath"`
	CertificatePath          string `yaml:"certificatePath"`
	CertificateKeyPath       string `yaml:"certificateKeyPath"`
	Port                     int    `yaml:"port"`
	User                     string `yaml:"user"`
	Password                 string `yaml:"password,omitempty" env:"DATABASE_PASSWORD,overwrite"`
	MaxOpenConns             int    `yaml:"maxOpenConnections"`
	MaxIdleConns             int    `yaml:"maxIdleConnections"`
	ConnMaxLifetimeMinutes   int    `yaml:"connectionMaxLifetimeMinutes"`
}

func (c *DatabaseConfig) SetDefaults() {
	if c.DatabaseName == "" {
		c.DatabaseName = "engioscope"
	}
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.SslMode == "" {
		c.SslMode = "verify-full"
	}
	if c.Port <= 0 {
		c.Port = 5432
	}
	if c.User == "" {
		c.User = "engioscope"
	}
	if c.MaxOpenConns <= 0 {
		c.MaxOpenConns = 25
	}
	if c.MaxIdleConns <= 0 {
		c.MaxIdleConns = 5
	}
	if c.ConnMaxLifetimeMinutes <= 0 {
		c.ConnMaxLifetimeMinutes = 60
	}
}

func (c *DatabaseConfig) Validate() (err error) {
	if c.Host == "" {
		return fmt.Errorf("Configuration item 'database.host' is required; please set it to the database host")
	}
	if c.DatabaseName == "" {
		return fmt.Errorf("Configuration item 'database.databaseName' is required; please set it to the database name")
	}

	return nil
}

// AzureDevopsConfig represents the configuration for the Azure DevOps api client
type AzureDevopsConfig struct {
	URL         string              `yaml:"url"`
	AccessToken string              `yaml:"accessToken,omitempty" env:"AZURE_DEVOPS_ACCESS_TOKEN,overwrite"`
	Collections []*CollectionConfig `yaml:"collections,omitempty"`
}

func (c *AzureDevopsConfig) SetDefaults() {
	for _, collection := range c.Collections {
		collection.SetDefaults()
	}
}

func (c *AzureDevopsConfig) Validate() (err error) {
	if c.URL == "" {
		return fmt.Errorf("Configuration item 'azureDevops.url' is required; please set it to the server base url")
	}
	if c.AccessToken == "" {
		return fmt.Errorf("Configuration item 'azureDevops.accessToken' is required; please set it to a personal access token")
	}
	if len(c.Collections) == 0 {
		return fmt.Errorf("Configuration item 'azureDevops.collections' is required; please configure at least one collection")
	}
	for _, collection := range c.Collections {
		err = collection.Validate()
		if err != nil {
			return
		}
	}

	return nil
}

// CollectionConfig represents a project collection on the Azure DevOps server
type CollectionConfig struct {
	Name          string           `yaml:"name"`
	WorkItemTypes []string         `yaml:"workItemTypes,omitempty"`
	Projects      []*ProjectConfig `yaml:"projects,omitempty"`
}

func (c *CollectionConfig) SetDefaults() {
	if len(c.WorkItemTypes) == 0 {
		c.WorkItemTypes = []string{"User Story", "Bug", "Feature"}
	}
}

func (c *CollectionConfig) Validate() (err error) {
	if c.Name == "" {
		return fmt.Errorf("Configuration item 'azureDevops.collections[].name' is required")
	}
	if len(c.Projects) == 0 {
		return fmt.Errorf("Collection %v has no projects configured; please configure at least one project", c.Name)
	}

	return nil
}

// ProjectConfig represents a team project within a collection
type ProjectConfig struct {
	Name string `yaml:"name"`
	// SonarProjectKeys maps repository ids to quality provider project keys
	SonarProjectKeys map[string]string `yaml:"sonarProjectKeys,omitempty"`
}

// SonarQubeConfig represents the configuration for the quality provider api client
type SonarQubeConfig struct {
	URL         string `yaml:"url"`
	AccessToken string `yaml:"accessToken,omitempty" env:"SONARQUBE_ACCESS_TOKEN,overwrite"`
	PageSize    int    `yaml:"pageSize"`
}

func (c *SonarQubeConfig) SetDefaults() {
	if c.PageSize <= 0 {
		c.PageSize = 100
	}
}

func (c *SonarQubeConfig) Validate() (err error) {
	if c.URL == "" {
		return fmt.Errorf("Configuration item 'sonarQube.url' is required when sonarQube is configured")
	}

	return nil
}

// CacheConfig represents the configuration for the redis-backed response cache
type CacheConfig struct {
	Enable     bool   `yaml:"enable"`
	Addr       string `yaml:"addr"`
	Password   string `yaml:"password,omitempty" env:"CACHE_PASSWORD,overwrite"`
	TTLSeconds int    `yaml:"ttlSeconds"`
}

func (c *CacheConfig) SetDefaults() {
	if c.Addr == "" {
		c.Addr = "localhost:6379"
	}
	if c.TTLSeconds <= 0 {
		c.TTLSeconds = 3600
	}
}

// SyncConfig represents the tunables for the sync orchestrators
type SyncConfig struct {
	BuildsIntervalSeconds       int `yaml:"buildsIntervalSeconds"`
	WorkItemsIntervalSeconds    int `yaml:"workItemsIntervalSeconds"`
	DeletedSweepIntervalSeconds int `yaml:"deletedSweepIntervalSeconds"`
	DefaultLookbackDays         int `yaml:"defaultLookbackDays"`
	ChunkSize                   int `yaml:"chunkSize"`
	ChunkConcurrency            int `yaml:"chunkConcurrency"`
	SweepGroupSize              int `yaml:"sweepGroupSize"`
}

func (c *SyncConfig) SetDefaults() {
	if c.BuildsIntervalSeconds <= 0 {
		c.BuildsIntervalSeconds = 900
	}
	if c.WorkItemsIntervalSeconds <= 0 {
		c.WorkItemsIntervalSeconds = 1800
	}
	if c.DeletedSweepIntervalSeconds <= 0 {
		c.DeletedSweepIntervalSeconds = 21600
	}
	if c.DefaultLookbackDays <= 0 {
		c.DefaultLookbackDays = 365
	}
	if c.ChunkSize <= 0 {
		c.ChunkSize = 20
	}
	if c.ChunkConcurrency <= 0 {
		c.ChunkConcurrency = 20
	}
	if c.SweepGroupSize <= 0 {
		c.SweepGroupSize = 10
	}
}

func (c *SyncConfig) Validate() (err error) {
	if c.ChunkSize > 200 {
		return fmt.Errorf("Configuration item 'sync.chunkSize' is larger than the remote api allows; please set it to 200 or less")
	}

	return nil
}
