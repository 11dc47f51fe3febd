// Package publish uploads rendered pages to S3 or an S3-compatible store.
//
// A page named "about" is stored under <prefix>/about.html with an HTML
// content type. Credentials come from the standard AWS_ACCESS_KEY_ID,
// AWS_SECRET_ACCESS_KEY and AWS_SESSION_TOKEN variables.
package publish
