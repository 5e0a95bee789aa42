/*
   Copyright 2026 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package httpx turns failed HTTP responses into kinded, structured errors
// that diaglog can tag, classify and dump.
package httpx

import (
	"fmt"
	"net/http"
	"strings"

	"dirpx.dev/diaglog/apis"
	"dirpx.dev/diaglog/kind"
)

// Error describes a failed (status >= 400) HTTP exchange.
type Error struct {
	// StatusCode is the numeric response status, e.g. 404.
	StatusCode int

	// Status is the full status line text, e.g. "404 Not Found".
	Status string

	// Method and URL identify the request that failed. May be empty when
	// the response carried no request.
	Method string
	URL    string
}

// Check inspects an HTTP response and returns an *Error for failure
// statuses (>= 400). Nil responses and successful or redirect statuses
// return nil. The response body is not touched.
func Check(resp *http.Response) error {
	if resp == nil || resp.StatusCode < http.StatusBadRequest {
		return nil
	}
	e := &Error{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
	}
	if e.Status == "" {
		e.Status = fmt.Sprintf("%d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}
	if resp.Request != nil {
		e.Method = resp.Request.Method
		if resp.Request.URL != nil {
			e.URL = resp.Request.URL.String()
		}
	}
	return e
}

func (e *Error) Error() string {
	if e.Method == "" && e.URL == "" {
		return "http: " + e.Status
	}
	return fmt.Sprintf("http: %s %s: %s", e.Method, e.URL, e.Status)
}

// ErrorKind distinguishes client-side failures (http.client.<status>) from
// server-side ones (http.server.<status>), with the status text as the last
// segment, e.g. http.client.not_found or http.server.bad_gateway.
func (e *Error) ErrorKind() kind.Kind {
	family := "client"
	if e.StatusCode >= http.StatusInternalServerError {
		family = "server"
	}
	if seg := statusSegment(e.StatusCode); seg != "" {
		if k, err := kind.Parse("http." + family + "." + seg); err == nil {
			return k
		}
	}
	return kind.MustParse("http." + family)
}

// Describe exposes the exchange as transcript fields.
func (e *Error) Describe() []apis.Field {
	return []apis.Field{
		{Name: "status_code", Value: e.StatusCode},
		{Name: "status", Value: e.Status},
		{Name: "method", Value: e.Method},
		{Name: "url", Value: e.URL},
	}
}

// statusSegment lowercases the canonical status text into a kind segment,
// e.g. 404 -> not_found, 503 -> service_unavailable. Unknown codes return
// the empty string.
func statusSegment(code int) string {
	text := http.StatusText(code)
	if text == "" {
		return ""
	}
	var b strings.Builder
	for _, r := range strings.ToLower(text) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-':
			b.WriteByte('_')
		}
	}
	seg := b.String()
	if seg == "" || seg[0] < 'a' || seg[0] > 'z' {
		return ""
	}
	return seg
}
