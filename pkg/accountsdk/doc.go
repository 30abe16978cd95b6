// Package accountsdk provides the wire types of the DashDocs accounts
// service plus a small HTTP client for talking to it. The server handlers
// and the client share these types so the two cannot drift apart.
package accountsdk
