package pairingsdk

import (
	"net/http"
	"strings"
	"time"
)

// DefaultPollInterval is how often WaitForClaim polls.
const DefaultPollInterval = 2 * time.Second

// SDKClient talks to the pairing service.
type SDKClient struct {
	BaseURL      string
	HTTPClient   *http.Client
	PollInterval time.Duration
}

// NewSDKClient creates a client for the service at baseURL.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		PollInterval: DefaultPollInterval,
	}
}
