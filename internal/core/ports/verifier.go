package ports

import "context"

// IntegrityVerifier checks local source archives against declared digests.
//
//go:generate mockgen -source=verifier.go -destination=mocks/mock_verifier.go -package=mocks
type IntegrityVerifier interface {
	// Verify checks that the file at path has the given hex SHA-256 digest.
	Verify(ctx context.Context, path, wantSHA256 string) error

	// VerifyAll checks several files concurrently. The map is keyed by file
	// path with the expected hex digest as value.
	VerifyAll(ctx context.Context, files map[string]string) error
}
