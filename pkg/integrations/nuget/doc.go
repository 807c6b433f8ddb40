// Package nuget provides an HTTP client for NuGet-style registration APIs.
//
// # Overview
//
// [Client.FetchDependencies] issues one GET to
//
//	{baseURL}/{lowercase id}/index.json
//
// and extracts dependency ids from two response layouts:
//
//   - a flat "catalogEntries" list, each entry optionally carrying
//     "dependencies": [{"id": ...}]
//   - the NuGet v3 registration index, where inlined pages hold leaves whose
//     "catalogEntry" lists "dependencyGroups[].dependencies[].id"
//
// Every field is optional; a missing field contributes nothing. Pages that
// are not inlined in the index are skipped, since following them would
// require further requests.
//
// Ids are returned in discovery order with duplicates removed, so a
// dependency declared for several target frameworks appears once.
package nuget
