// Package checksum implements the IntegrityVerifier port using SHA-256
// content digests.
package checksum

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
	"runtime"

	"go.trai.ch/mason/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Verifier implements ports.IntegrityVerifier.
type Verifier struct{}

// NewVerifier creates a new Verifier.
func NewVerifier() *Verifier {
	return &Verifier{}
}

// Verify checks that the file at path has the given hex SHA-256 digest.
func (v *Verifier) Verify(ctx context.Context, path, wantSHA256 string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := sha256.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	got := hex.EncodeToString(hasher.Sum(nil))
	if got != wantSHA256 {
		mismatch := zerr.With(domain.ErrChecksumMismatch, "path", path)
		mismatch = zerr.With(mismatch, "want", wantSHA256)
		return zerr.With(mismatch, "got", got)
	}
	return nil
}

// VerifyAll checks several files concurrently, keyed by path with the
// expected hex digest as value. The first failure cancels the remaining
// verifications.
func (v *Verifier) VerifyAll(ctx context.Context, files map[string]string) error {
	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for path, want := range files {
		g.Go(func() error {
			return v.Verify(groupCtx, path, want)
		})
	}

	return g.Wait()
}
