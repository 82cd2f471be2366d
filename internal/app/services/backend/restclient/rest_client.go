package restclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"mediconnect-service/internal/app/config"
	"mediconnect-service/internal/pkg/backend_dto"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"
)

// Client is the shared HTTP transport for every backend entity client. It owns
// the outbound throttle so the platform backend never sees more than the
// configured request rate regardless of how many entity clients share it.
type Client struct {
	BaseUrl    string
	HttpClient *http.Client
	Limiter    *rate.Limiter
}

var (
	restClientInstance *Client
	onceRestClient     sync.Once
)

func NewClient(internalConfig *config.InternalConfig) *Client {
	onceRestClient.Do(func() {
		restClientInstance = &Client{
			BaseUrl: internalConfig.Backend.BaseUrl,
			HttpClient: &http.Client{
				Timeout: time.Duration(internalConfig.Backend.RequestTimeoutInSeconds) * time.Second,
			},
			Limiter: rate.NewLimiter(
				rate.Limit(internalConfig.Backend.OutboundRequestsPerSecond),
				internalConfig.Backend.OutboundBurst,
			),
		}
	})
	return restClientInstance
}

// CallInput describes one backend call. Out, when non-nil, receives the
// decoded 2xx response body. Resource names the entity for error messages.
type CallInput struct {
	Method   string
	Path     string
	Token    string
	Body     interface{}
	Out      interface{}
	Resource string
}

// Call performs the request and maps every failure onto the application error
// vocabulary: 404 becomes a not-found, 409 a slot conflict, any other non-2xx
// carries the backend-supplied message verbatim when the body decodes.
func (c *Client) Call(ctx context.Context, in *CallInput) error {
	if err := c.Limiter.Wait(ctx); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return exceptions.ErrServerDeadlineExceeded(err)
		}
		return exceptions.ErrSendHTTPRequest(err)
	}

	var bodyReader io.Reader
	if in.Body != nil {
		payload, err := json.Marshal(in.Body)
		if err != nil {
			return exceptions.ErrCannotMarshalJSON(err)
		}
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, in.Method, c.BaseUrl+in.Path, bodyReader)
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	if in.Token != "" {
		req.Header.Set(constvars.HeaderAuthorization, constvars.BearerTokenPrefix+in.Token)
	}

	resp, err := c.HttpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return exceptions.ErrServerDeadlineExceeded(err)
		}
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= constvars.StatusOK && resp.StatusCode < constvars.StatusMultipleChoices {
		if in.Out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(in.Out); err != nil {
			return exceptions.ErrDecodeResponse(err, in.Resource)
		}
		return nil
	}

	return c.mapErrorResponse(resp, in)
}

func (c *Client) mapErrorResponse(resp *http.Response, in *CallInput) error {
	bodyBytes, readErr := io.ReadAll(resp.Body)

	switch resp.StatusCode {
	case constvars.StatusNotFound:
		return exceptions.ErrBackendNotFound(fmt.Errorf("%s not found", in.Resource), in.Resource)
	case constvars.StatusConflict:
		return exceptions.ErrSlotTaken(fmt.Errorf("backend rejected %s with conflict", in.Resource))
	}

	if readErr == nil {
		var errorBody backend_dto.ErrorBody
		if err := json.Unmarshal(bodyBytes, &errorBody); err == nil && errorBody.Message != "" {
			return exceptions.ErrBackendMessage(resp.StatusCode, errorBody.Message)
		}
	}

	remoteErr := fmt.Errorf("backend returned status %d for %s", resp.StatusCode, in.Resource)
	switch in.Method {
	case constvars.MethodPost:
		return exceptions.ErrBackendCreateResource(remoteErr, in.Resource)
	case constvars.MethodPut, constvars.MethodPatch:
		return exceptions.ErrBackendUpdateResource(remoteErr, in.Resource)
	case constvars.MethodDelete:
		return exceptions.ErrBackendDeleteResource(remoteErr, in.Resource)
	default:
		return exceptions.ErrBackendGetResource(remoteErr, in.Resource)
	}
}
