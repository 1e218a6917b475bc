package sonarapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/opentracing-contrib/go-stdlib/nethttp"
	"github.com/opentracing/opentracing-go"
	"github.com/sethgrid/pester"

	"github.com/rishumehrotra/engioscope-sub003/pkg/api"
	"github.com/rishumehrotra/engioscope-sub003/pkg/fetch"
)

// The metrics fetched for every project on each sync pass
const defaultMetricKeys = "ncloc,complexity,violations,coverage,duplicated_lines_density,code_smells,bugs,vulnerabilities,security_hotspots,sqale_index"

// Client is the interface for communicating with the quality provider api
//
//go:generate mockgen -package=sonarapi -destination ./mock.go -source=client.go
type Client interface {
	GetMeasures(ctx context.Context, projectKey string) (measures ComponentMeasures, err error)
	GetQualityGateStatus(ctx context.Context, projectKey string) (qualityGate QualityGate, err error)
	GetAnalysisHistory(ctx context.Context, projectKey string, since time.Time) (analyses []Analysis, err error)
}

// NewClient creates a sonarapi.Client to communicate with the SonarQube api
func NewClient(config *api.APIConfig) Client {
	return &client{
		config: config,
	}
}

type client struct {
	config *api.APIConfig
}

// GetMeasures returns the current values of the default metric set for a project
func (c *client) GetMeasures(ctx context.Context, projectKey string) (measures ComponentMeasures, err error) {

	requestURL := fmt.Sprintf("%v/api/measures/component?component=%v&metricKeys=%v",
		c.config.SonarQube.URL, url.QueryEscape(projectKey), url.QueryEscape(defaultMetricKeys))

	statusCode, body, err := c.callSonarAPI(ctx, requestURL)
	if err != nil {
		return
	}
	if statusCode != http.StatusOK {
		return measures, fmt.Errorf("Retrieving measures for project %v failed with status code %v", projectKey, statusCode)
	}

	var response measuresResponse
	err = json.Unmarshal(body, &response)
	if err != nil {
		return
	}

	return response.Component, nil
}

// GetQualityGateStatus returns the current quality gate verdict for a project
func (c *client) GetQualityGateStatus(ctx context.Context, projectKey string) (qualityGate QualityGate, err error) {

	requestURL := fmt.Sprintf("%v/api/qualitygates/project_status?projectKey=%v",
		c.config.SonarQube.URL, url.QueryEscape(projectKey))

	statusCode, body, err := c.callSonarAPI(ctx, requestURL)
	if err != nil {
		return
	}
	if statusCode != http.StatusOK {
		return qualityGate, fmt.Errorf("Retrieving quality gate status for project %v failed with status code %v", projectKey, statusCode)
	}

	var response qualityGateResponse
	err = json.Unmarshal(body, &response)
	if err != nil {
		return
	}

	return response.ProjectStatus, nil
}

// GetAnalysisHistory returns all analyses of a project since the given time,
// issuing page requests sequentially until the server's paging total is reached
func (c *client) GetAnalysisHistory(ctx context.Context, projectKey string, since time.Time) (analyses []Analysis, err error) {

	pageSize := c.config.SonarQube.PageSize

	fetchPage := func(ctx context.Context, pageIndex int) (analysesResponse, error) {
		// sonar pages are 1-based
		requestURL := fmt.Sprintf("%v/api/project_analyses/search?project=%v&from=%v&p=%v&ps=%v",
			c.config.SonarQube.URL, url.QueryEscape(projectKey), url.QueryEscape(since.UTC().Format("2006-01-02")), pageIndex+1, pageSize)

		statusCode, body, err := c.callSonarAPI(ctx, requestURL)
		if err != nil {
			return analysesResponse{}, err
		}
		if statusCode != http.StatusOK {
			return analysesResponse{}, fmt.Errorf("Retrieving analysis history for project %v failed with status code %v", projectKey, statusCode)
		}

		var response analysesResponse
		if err = json.Unmarshal(body, &response); err != nil {
			return analysesResponse{}, err
		}

		return response, nil
	}

	responses, err := fetch.Pages(ctx, fetchPage, func(response analysesResponse) bool {
		return response.Paging.PageIndex*response.Paging.PageSize < response.Paging.Total
	})
	if err != nil {
		return
	}

	for _, response := range responses {
		analyses = append(analyses, response.Analyses...)
	}

	return
}

func (c *client) callSonarAPI(ctx context.Context, requestURL string) (statusCode int, body []byte, err error) {

	// create client, in order to add headers
	httpClient := pester.NewExtendedClient(&http.Client{Transport: &nethttp.Transport{}})
	httpClient.MaxRetries = 3
	httpClient.Backoff = pester.ExponentialJitterBackoff
	httpClient.KeepLog = true
	httpClient.Timeout = time.Second * 30
	request, err := http.NewRequest(http.MethodGet, requestURL, nil)
	if err != nil {
		return
	}

	span := opentracing.SpanFromContext(ctx)
	var ht *nethttp.Tracer
	if span != nil {
		// add tracing context
		request = request.WithContext(opentracing.ContextWithSpan(request.Context(), span))

		// collect additional information on setting up connections
		request, ht = nethttp.TraceRequest(span.Tracer(), request)
	}

	// sonar tokens are sent as basic auth user without password
	request.SetBasicAuth(c.config.SonarQube.AccessToken, "")
	request.Header.Add("Accept", "application/json")

	// perform actual request
	response, err := httpClient.Do(request)
	if err != nil {
		return
	}

	defer response.Body.Close()
	if ht != nil {
		ht.Finish()
	}

	statusCode = response.StatusCode

	body, err = io.ReadAll(response.Body)
	if err != nil {
		return
	}

	return
}
