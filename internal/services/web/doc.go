// Package web serves the landing page: the single-page site, the gallery
// fragments the page swaps in with HTMX, and the contact form endpoint.
//
// Features are modules mounted under their own prefix; the server wraps the
// composed mux with tracing, request ids, panic recovery and request logs.
package web
