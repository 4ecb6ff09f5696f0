// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across components.
package httputil

import (
	"net/http"

	"github.com/pdiddy/openshelf/pkg/types"
)

// userAgentTransport stamps a User-Agent header on every outgoing request
// that does not already carry one.
type userAgentTransport struct {
	agent string
	base  http.RoundTripper
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.agent != "" && req.Header.Get("User-Agent") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("User-Agent", t.agent)
	}
	return t.base.RoundTrip(req)
}

// NewClient builds an *http.Client from cfg. A zero timeout leaves the
// transport's defaults in effect. Failed requests are not retried; callers
// resubmit explicitly.
func NewClient(cfg types.HTTPConfig) *http.Client {
	return &http.Client{
		Timeout: cfg.Timeout,
		Transport: &userAgentTransport{
			agent: cfg.UserAgent,
			base:  http.DefaultTransport,
		},
	}
}
