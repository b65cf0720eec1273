package mathapi

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/jjohnson-47/blackboard-content-hub-dev-sub001/internal/errors"
)

// Prober checks whether the third-party script CDNs are reachable, so
// an unreachable API shows up as an attributable math_api failure at
// startup instead of a blank widget in a preview frame.
type Prober struct {
	client *resty.Client
	errs   *errors.Handler
}

// NewProber builds a prober with retrying transport. Transient CDN
// hiccups are retried with backoff before a failure is reported.
func NewProber(handler *errors.Handler, timeout time.Duration) *Prober {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 2
	retryClient.RetryWaitMin = 200 * time.Millisecond
	retryClient.RetryWaitMax = 2 * time.Second
	retryClient.Logger = nil

	client := resty.NewWithClient(retryClient.StandardClient()).
		SetTimeout(timeout)

	return &Prober{client: client, errs: handler}
}

// endpoints maps API types to the script URL the preview will load.
var endpoints = map[string]string{
	"desmos":   desmosScriptURL,
	"geogebra": geogebraScriptURL,
}

// Probe checks every known API endpoint. The result maps API type to
// reachability; failures are also routed through the error handler
// with the API identity retained.
func (p *Prober) Probe(ctx context.Context) map[string]bool {
	results := make(map[string]bool, len(endpoints))
	for apiType, url := range endpoints {
		results[apiType] = p.probeOne(ctx, apiType, url)
	}
	return results
}

func (p *Prober) probeOne(ctx context.Context, apiType, url string) bool {
	resp, err := p.client.R().SetContext(ctx).Head(url)
	if err != nil {
		p.errs.HandleMathAPIError(apiType, "script endpoint unreachable", map[string]any{
			"url":   url,
			"cause": err.Error(),
		})
		return false
	}
	if resp.StatusCode() >= 400 {
		p.errs.HandleMathAPIError(apiType, "script endpoint returned an error status", map[string]any{
			"url":    url,
			"status": resp.StatusCode(),
		})
		return false
	}
	return true
}
