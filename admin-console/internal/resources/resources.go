package resources

import (
	"context"
	"log"
	"net/url"
)

// Requester is the slice of the gateway the resource clients need.
type Requester interface {
	Do(ctx context.Context, method, path string, query url.Values, body, out any) error
}

// call logs a failed request once and hands the error back untouched, so
// callers can still branch on the gateway's error types.
func call(ctx context.Context, api Requester, what, method, path string, query url.Values, body, out any) error {
	if err := api.Do(ctx, method, path, query, body, out); err != nil {
		log.Printf("ERROR: %s: %v", what, err)
		return err
	}
	return nil
}
