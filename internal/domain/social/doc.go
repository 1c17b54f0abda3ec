// Package social holds the domain model for third-party social-proof data:
// per-service credentials, the local cache of Google Business reviews and
// Instagram posts, and the ports implemented by the HTTP connectors in the
// infrastructure layer.
package social
