// Copyright 2026 The Hubctl Authors
// SPDX-License-Identifier: Apache-2.0

package artifact

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// coredumpPage is the query-addressed page on the hub's web server
// that serves the most recent crash dump.
const coredumpPage = "coredump"

// DefaultHTTPTimeout bounds the whole download, connect included. The
// hub serves from flash over an embedded TCP stack, so generous is
// correct here.
const DefaultHTTPTimeout = 30 * time.Second

// FetchError reports a failed artifact download.
type FetchError struct {
	// URL is the address that was fetched.
	URL string
	// StatusCode is the HTTP status the hub returned, or 0 when the
	// request never completed.
	StatusCode int
	// Err is the underlying transport error, if any.
	Err error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("artifact: fetching %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("artifact: fetching %s: HTTP %d", e.URL, e.StatusCode)
}

func (e *FetchError) Unwrap() error { return e.Err }

// IsNotPresent reports whether err means the hub has no coredump to
// serve. The hub clears the page after a successful boot, so this is
// the common case on a healthy device.
func IsNotPresent(err error) bool {
	var fetchErr *FetchError
	return errors.As(err, &fetchErr) && fetchErr.StatusCode == http.StatusNotFound
}

// IsAuthFailed reports whether err means the hub rejected the supplied
// web credentials.
func IsAuthFailed(err error) bool {
	var fetchErr *FetchError
	return errors.As(err, &fetchErr) && fetchErr.StatusCode == http.StatusUnauthorized
}

// Credentials are the hub web interface's basic-auth credentials.
// The zero value means the hub has authentication disabled.
type Credentials struct {
	Username string
	Password string
}

func (c Credentials) empty() bool { return c.Username == "" && c.Password == "" }

// CoredumpURL returns the download URL for the hub at the given
// address. The hub's web server speaks plain HTTP only.
func CoredumpURL(address string) string {
	return fmt.Sprintf("http://%s/get?page=%s", address, coredumpPage)
}

// Client downloads artifacts from a hub's web interface.
type Client struct {
	httpClient *http.Client
}

// NewClient returns a Client using the given http.Client. A nil
// httpClient gets a default with DefaultHTTPTimeout.
func NewClient(httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultHTTPTimeout}
	}
	return &Client{httpClient: httpClient}
}

// FetchCoredump downloads the hub's coredump hex dump and streams it
// to sink. It returns the number of bytes written. Failures are
// *FetchError; use IsNotPresent and IsAuthFailed to classify the two
// expected ones.
func (c *Client) FetchCoredump(ctx context.Context, address string, creds Credentials, sink io.Writer) (int64, error) {
	url := CoredumpURL(address)

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, &FetchError{URL: url, Err: err}
	}
	if !creds.empty() {
		request.SetBasicAuth(creds.Username, creds.Password)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return 0, &FetchError{URL: url, Err: err}
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		// Drain so the connection can be reused; the body of an
		// error page is not worth reporting.
		io.Copy(io.Discard, response.Body)
		return 0, &FetchError{URL: url, StatusCode: response.StatusCode}
	}

	written, err := io.Copy(sink, response.Body)
	if err != nil {
		return written, &FetchError{URL: url, Err: err}
	}
	return written, nil
}
