package recognition

import "context"

// Gateway talks to the remote image classification provider.
type Gateway interface {
	// AccessToken returns a cached or freshly exchanged token for creds.
	AccessToken(ctx context.Context, creds Credentials) (string, error)
	// Classify recognises objects in a base64 image, with or without a data URI prefix.
	// On ErrRecognitionEmpty the returned Result still carries the raw payload.
	Classify(ctx context.Context, creds Credentials, imageBase64 string) (Result, error)
}
