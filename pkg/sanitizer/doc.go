// Package sanitizer cleans and escapes text that ends up in HTML.
//
// EscapeHTML escapes visitor input before it is placed in the contact email.
// SanitizeHTML filters rendered page markup through a bluemonday policy, and
// PlainText flattens an HTML email body into its text alternative.
package sanitizer
