// Package storage provides the optional object-storage publication of
// persisted catalogs.
//
// The local catalog files written by the reconciler remain the source of
// truth; when publication is enabled, each saved catalog is additionally
// uploaded to an S3-compatible bucket (MinIO) so external consumers can
// fetch the directory without filesystem access.
//
// The Client interface abstracts the minio SDK for testability; mocks live
// in the mocks subpackage.
package storage
