// Package httpfetch downloads subtitle tracks over HTTP.
//
// Requests are throttled with a token bucket and retried with exponential
// backoff on network errors, 429 and 5xx responses. A Retry-After header on
// a 429 pauses every subsequent request until it elapses.
package httpfetch
