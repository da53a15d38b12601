// Package contact forwards consultation requests from the landing page to the
// email provider and classifies every outcome for the page.
//
// The server side (Service) validates a Submission, composes the notification
// email and hands it to a Sender. The client side (Client) posts a Submission
// to the contact endpoint and maps the HTTP response back to a Result. Both
// sides speak the same Reason vocabulary, so the form can tell a missing field
// from an unconfigured provider without parsing prose.
//
// Sends are attempted once. A failed send is reported, never queued.
package contact
