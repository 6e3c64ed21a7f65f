// Package resend implements mailer.Sender on top of the Resend API
// (github.com/resend/resend-go/v3).
//
// Errors are classified for callers: a failure to reach the API or a cancelled
// context is joined with mailer.ErrTransport, an error answer from the API with
// mailer.ErrProviderRejected. A successful response yields a mailer.Receipt
// carrying the Resend email id.
package resend
