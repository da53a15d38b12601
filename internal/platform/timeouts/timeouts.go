// Package timeouts defines shared timeout constants used across services.
package timeouts

import "time"

// EmailRequest caps one call to the email provider. The provider is called
// once per submission.
const EmailRequest = 10 * time.Second

// ContactRequest caps a contact form submission made by the command-line
// client, covering the server's own provider call.
const ContactRequest = 15 * time.Second

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second
