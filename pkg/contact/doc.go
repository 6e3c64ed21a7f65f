// Package contact validates contact form submissions and relays them as an
// email notification.
//
// A submission goes through a fixed pipeline:
//
//  1. configuration check (provider key, destination, sender)
//  2. JSON decoding of an object with optional string fields
//  3. honeypot check; bots get a silent success and nothing is sent
//  4. name, email, then length ceilings; the first failure wins
//  5. HTML escaping, subject and body construction
//  6. exactly one send through a mailer.Sender
//
// Service.Submit returns an Outcome carrying the HTTP status and the
// {"ok":...,"error":...} JSON body. Provider payloads and internal errors are
// logged, never returned.
//
// Usage:
//
//	svc := contact.NewService(cfg, sender, logger)
//	out := svc.Submit(ctx, r.Body)
package contact
