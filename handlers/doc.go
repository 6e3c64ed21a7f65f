// Package handlers declares the site routes: the landing page at "/", the
// contact relay at POST /api/contact and the app-wide error rendering.
package handlers
