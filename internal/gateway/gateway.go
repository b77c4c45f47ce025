// Package gateway issues time-limited upload and download URLs against
// object storage. The service never proxies file bytes; clients PUT and
// GET directly against the presigned URLs.
package gateway

import "context"

// System defines the object storage gateway operations.
type System interface {
	// PresignUpload returns a time-limited URL that accepts a PUT of the
	// object with the given key and content type.
	PresignUpload(ctx context.Context, key, contentType string) (string, error)

	// PresignDownload returns a time-limited URL that serves a GET of the
	// object with the given key.
	PresignDownload(ctx context.Context, key string) (string, error)
}
