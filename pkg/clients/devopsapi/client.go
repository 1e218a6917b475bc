package devopsapi

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/opentracing-contrib/go-stdlib/nethttp"
	"github.com/opentracing/opentracing-go"
	"github.com/rs/zerolog/log"
	"github.com/sethgrid/pester"

	"github.com/rishumehrotra/engioscope-sub003/pkg/api"
	"github.com/rishumehrotra/engioscope-sub003/pkg/fetch"
)

const apiVersion = "6.0"

var (
	// ErrNotFound is returned when a single entity no longer exists upstream
	ErrNotFound = errors.New("the requested entity can't be found")
)

// Client is the interface for communicating with the Azure DevOps api
//
//go:generate mockgen -package=devopsapi -destination ./mock.go -source=client.go
type Client interface {
	ListChangedBuilds(ctx context.Context, scope api.Scope, since time.Time, handler func(ctx context.Context, builds []Build) error) (err error)
	GetBuildTimeline(ctx context.Context, scope api.Scope, buildID int) (timeline *Timeline, err error)
	GetTestCoverage(ctx context.Context, scope api.Scope, buildID int) (coverage []CoverageData, err error)
	QueryWorkItemIDs(ctx context.Context, collection string, query WorkItemQuery) (ids []int, err error)
	GetWorkItemsAndRelations(ctx context.Context, collection string, ids []int, handler func(ctx context.Context, workItems []WorkItem) error) (err error)
	GetWorkItemRevisions(ctx context.Context, collection string, id int) (revisions []WorkItemRevision, err error)
	GetDeletedWorkItems(ctx context.Context, scope api.Scope) (deletedWorkItems []DeletedWorkItem, err error)
}

// NewClient creates a devopsapi.Client to communicate with the Azure DevOps api
func NewClient(config *api.APIConfig) Client {
	var cache *redis.Client
	if config.Cache != nil && config.Cache.Enable {
		cache = redis.NewClient(&redis.Options{
			Addr:     config.Cache.Addr,
			Password: config.Cache.Password,
		})
	}

	return &client{
		config: config,
		cache:  cache,
	}
}

type client struct {
	config *api.APIConfig
	cache  *redis.Client
}

// ListChangedBuilds requests all builds changed since the watermark, delivering
// them to handler one continuation-token page at a time; the next page is not
// requested until the handler for the previous page has returned.
func (c *client) ListChangedBuilds(ctx context.Context, scope api.Scope, since time.Time, handler func(ctx context.Context, builds []Build) error) (err error) {

	continuationToken := ""
	for {
		requestURL := fmt.Sprintf("%v/%v/%v/_apis/build/builds?api-version=%v&minTime=%v&queryDeleted=true&$top=%v",
			c.config.AzureDevops.URL, pathEscape(scope.Collection), pathEscape(scope.Project), apiVersion,
			url.QueryEscape(since.UTC().Format(time.RFC3339)), c.config.Sync.ChunkSize)
		if continuationToken != "" {
			requestURL += "&continuationToken=" + url.QueryEscape(continuationToken)
		}

		statusCode, header, body, err := c.callDevopsAPI(ctx, http.MethodGet, requestURL, nil)
		if err != nil {
			return err
		}
		if statusCode != http.StatusOK {
			return fmt.Errorf("Listing changed builds for %v failed with status code %v", scope, statusCode)
		}

		var response buildsResponse
		if err = json.Unmarshal(body, &response); err != nil {
			return err
		}

		if len(response.Value) > 0 {
			if err = handler(ctx, response.Value); err != nil {
				return err
			}
		}

		continuationToken = header.Get("x-ms-continuationtoken")
		if continuationToken == "" {
			return nil
		}
	}
}

// GetBuildTimeline returns the timeline for a build, or nil when the server
// has no timeline for it
func (c *client) GetBuildTimeline(ctx context.Context, scope api.Scope, buildID int) (timeline *Timeline, err error) {

	requestURL := fmt.Sprintf("%v/%v/%v/_apis/build/builds/%v/timeline?api-version=%v",
		c.config.AzureDevops.URL, pathEscape(scope.Collection), pathEscape(scope.Project), buildID, apiVersion)

	body, found := c.getCachedResponse(ctx, requestURL)
	if !found {
		var statusCode int
		statusCode, _, body, err = c.callDevopsAPI(ctx, http.MethodGet, requestURL, nil)
		if err != nil {
			return
		}
		if statusCode == http.StatusNotFound {
			return nil, nil
		}
		if statusCode != http.StatusOK {
			return nil, fmt.Errorf("Retrieving timeline for build %v in %v failed with status code %v", buildID, scope, statusCode)
		}
		c.setCachedResponse(ctx, requestURL, body)
	}

	err = json.Unmarshal(body, &timeline)
	if err != nil {
		return
	}

	return
}

// GetTestCoverage returns the code coverage payload for a build; an empty
// slice means the build published no coverage
func (c *client) GetTestCoverage(ctx context.Context, scope api.Scope, buildID int) (coverage []CoverageData, err error) {

	requestURL := fmt.Sprintf("%v/%v/%v/_apis/test/codecoverage?api-version=%v-preview.1&buildId=%v&flags=7",
		c.config.AzureDevops.URL, pathEscape(scope.Collection), pathEscape(scope.Project), apiVersion, buildID)

	statusCode, _, body, err := c.callDevopsAPI(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return
	}
	if statusCode != http.StatusOK {
		return coverage, fmt.Errorf("Retrieving test coverage for build %v in %v failed with status code %v", buildID, scope, statusCode)
	}

	var response codeCoverageResponse
	err = json.Unmarshal(body, &response)
	if err != nil {
		return
	}

	return response.CoverageData, nil
}

// QueryWorkItemIDs executes a wiql query built from the structured filter and
// returns matching work item ids only
func (c *client) QueryWorkItemIDs(ctx context.Context, collection string, query WorkItemQuery) (ids []int, err error) {

	requestURL := fmt.Sprintf("%v/%v/_apis/wit/wiql?api-version=%v",
		c.config.AzureDevops.URL, pathEscape(collection), apiVersion)

	statusCode, _, body, err := c.callDevopsAPI(ctx, http.MethodPost, requestURL, wiqlRequest{Query: buildWiql(query)})
	if err != nil {
		return
	}
	if statusCode != http.StatusOK {
		return ids, fmt.Errorf("Querying work item ids for collection %v failed with status code %v", collection, statusCode)
	}

	var response workItemQueryResponse
	err = json.Unmarshal(body, &response)
	if err != nil {
		return
	}

	for _, reference := range response.WorkItems {
		ids = append(ids, reference.ID)
	}

	return
}

// GetWorkItemsAndRelations fetches full work item records including relations
// for the given ids, delivering them to handler one chunk at a time
func (c *client) GetWorkItemsAndRelations(ctx context.Context, collection string, ids []int, handler func(ctx context.Context, workItems []WorkItem) error) (err error) {

	for _, chunk := range fetch.Chunk(ids, c.config.Sync.ChunkSize) {
		requestURL := fmt.Sprintf("%v/%v/_apis/wit/workitems?api-version=%v&ids=%v&$expand=relations",
			c.config.AzureDevops.URL, pathEscape(collection), apiVersion, joinIDs(chunk))

		statusCode, _, body, err := c.callDevopsAPI(ctx, http.MethodGet, requestURL, nil)
		if err != nil {
			return err
		}
		if statusCode != http.StatusOK {
			return fmt.Errorf("Retrieving work items for collection %v failed with status code %v", collection, statusCode)
		}

		var response workItemsResponse
		if err = json.Unmarshal(body, &response); err != nil {
			return err
		}

		if err = handler(ctx, response.Value); err != nil {
			return err
		}
	}

	return nil
}

// GetWorkItemRevisions returns the full time-ordered revision history for one
// work item; ErrNotFound signals the item no longer exists upstream
func (c *client) GetWorkItemRevisions(ctx context.Context, collection string, id int) (revisions []WorkItemRevision, err error) {

	requestURL := fmt.Sprintf("%v/%v/_apis/wit/workItems/%v/revisions?api-version=%v",
		c.config.AzureDevops.URL, pathEscape(collection), id, apiVersion)

	statusCode, _, body, err := c.callDevopsAPI(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return
	}
	if statusCode == http.StatusNotFound {
		return revisions, fmt.Errorf("work item %v in collection %v: %w", id, collection, ErrNotFound)
	}
	if statusCode != http.StatusOK {
		return revisions, fmt.Errorf("Retrieving revisions for work item %v in collection %v failed with status code %v", id, collection, statusCode)
	}

	var response workItemRevisionsResponse
	err = json.Unmarshal(body, &response)
	if err != nil {
		return
	}

	return response.Value, nil
}

// GetDeletedWorkItems returns the current recycle bin contents for a scope
func (c *client) GetDeletedWorkItems(ctx context.Context, scope api.Scope) (deletedWorkItems []DeletedWorkItem, err error) {

	requestURL := fmt.Sprintf("%v/%v/%v/_apis/wit/recyclebin?api-version=%v-preview.2",
		c.config.AzureDevops.URL, pathEscape(scope.Collection), pathEscape(scope.Project), apiVersion)

	statusCode, _, body, err := c.callDevopsAPI(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return
	}
	if statusCode != http.StatusOK {
		return deletedWorkItems, fmt.Errorf("Retrieving deleted work items for %v failed with status code %v", scope, statusCode)
	}

	var response deletedWorkItemsResponse
	err = json.Unmarshal(body, &response)
	if err != nil {
		return
	}

	return response.Value, nil
}

func (c *client) callDevopsAPI(ctx context.Context, method, requestURL string, params interface{}) (statusCode int, header http.Header, body []byte, err error) {

	// convert params to json if they're present
	var requestBody io.Reader
	if params != nil {
		data, err := json.Marshal(params)
		if err != nil {
			return 0, nil, body, err
		}
		requestBody = bytes.NewReader(data)
	}

	// create client, in order to add headers
	httpClient := pester.NewExtendedClient(&http.Client{Transport: &nethttp.Transport{}})
	httpClient.MaxRetries = 3
	httpClient.Backoff = pester.ExponentialJitterBackoff
	httpClient.KeepLog = true
	httpClient.Timeout = time.Second * 30
	request, err := http.NewRequest(method, requestURL, requestBody)
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

	// add headers
	request.Header.Add("Authorization", fmt.Sprintf("Basic %v", base64.StdEncoding.EncodeToString([]byte(":"+c.config.AzureDevops.AccessToken))))
	request.Header.Add("Accept", "application/json")
	if params != nil {
		request.Header.Add("Content-Type", "application/json")
	}

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
	header = response.Header

	body, err = io.ReadAll(response.Body)
	if err != nil {
		return
	}

	return
}

// getCachedResponse returns a previously cached response body for immutable
// resources; a miss or disabled cache returns found false
func (c *client) getCachedResponse(ctx context.Context, requestURL string) (body []byte, found bool) {
	if c.cache == nil {
		return nil, false
	}

	value, err := c.cache.Get(ctx, cacheKey(requestURL)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Warn().Err(err).Msgf("Failed reading cached response for %v", requestURL)
		}
		return nil, false
	}

	return value, true
}

func (c *client) setCachedResponse(ctx context.Context, requestURL string, body []byte) {
	if c.cache == nil {
		return
	}

	err := c.cache.Set(ctx, cacheKey(requestURL), body, time.Duration(c.config.Cache.TTLSeconds)*time.Second).Err()
	if err != nil {
		log.Warn().Err(err).Msgf("Failed caching response for %v", requestURL)
	}
}

func cacheKey(requestURL string) string {
	return "devopsapi:" + requestURL
}

func buildWiql(query WorkItemQuery) string {
	quotedTypes := make([]string, 0, len(query.WorkItemTypes))
	for _, workItemType := range query.WorkItemTypes {
		quotedTypes = append(quotedTypes, "'"+strings.ReplaceAll(workItemType, "'", "''")+"'")
	}

	return fmt.Sprintf("SELECT [System.Id] FROM workitems WHERE [System.WorkItemType] IN (%v) AND [System.ChangedDate] >= '%v' ORDER BY [System.ChangedDate] ASC",
		strings.Join(quotedTypes, ", "), query.ChangedSince.UTC().Format("2006-01-02T15:04:05Z"))
}

func joinIDs(ids []int) string {
	values := make([]string, 0, len(ids))
	for _, id := range ids {
		values = append(values, strconv.Itoa(id))
	}

	return strings.Join(values, ",")
}

func pathEscape(segment string) string {
	return url.PathEscape(segment)
}
