// Package integrations provides HTTP clients for package registry APIs.
//
// # Overview
//
// [Client] holds what every registry client needs: a shared *http.Client
// with a request timeout, default headers, response caching through
// [cache.Cache], and the mapping from HTTP outcomes to errors:
//
//   - 200: the body is JSON-decoded into the caller's typed response struct
//   - 404: [StatusError] matching [ErrNotFound] and [ErrStatus]
//   - other statuses: [StatusError] matching [ErrStatus]
//   - no response: an error matching [ErrNetwork]
//   - undecodable body: a coded error with INVALID_RESPONSE
//
// Requests are issued exactly once. Registry subpackages (see [nuget])
// define the response schema and the endpoint layout.
//
// [cache.Cache]: github.com/matzehuels/depviz/pkg/cache.Cache
// [nuget]: github.com/matzehuels/depviz/pkg/integrations/nuget
package integrations
