// Package formclient is a Go client for the contact endpoint.
//
// It mirrors the browser form: a Form with five visible fields and the
// website honeypot, a local gate on name and email length, and a Client that
// posts the form as JSON and tracks idle/sending/success/error. The gate is a
// convenience for the UI; the server performs the authoritative checks.
//
//	c := formclient.New("http://localhost:8080/api/contact")
//	f := formclient.NewForm()
//	f.Name, f.Email = "Jane Doe", "jane@example.com"
//	status, err := c.Submit(ctx, f)
package formclient
