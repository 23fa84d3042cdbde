package gitio

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"path/filepath"
	"strings"

	"github.com/pbaettig/gitpulse/internal/contract"
)

// fingerprintLength is the hex length of the emitted fingerprint. 64
// bits of the digest is plenty for distinguishing repository states.
const fingerprintLength = 16

// StateFingerprint derives a short stable fingerprint from repository
// identity and the given head commit. The remote URL and root commit are
// looked up best-effort: a missing remote or unreadable root is omitted
// from the input rather than failing the computation. The head commit
// itself comes from the caller, which obtains it through the strict
// HeadCommit lookup.
func StateFingerprint(ctx context.Context, client contract.GitClient, repoPath, headCommit string) string {
	parts := []string{canonicalRepoPath(repoPath), headCommit}

	if remote, err := client.RemoteURL(ctx, repoPath); err == nil && remote != "" {
		parts = append(parts, remote)
	}
	if root, err := client.RootCommit(ctx, repoPath); err == nil && root != "" {
		parts = append(parts, root)
	}

	sum := sha256.Sum256([]byte(strings.Join(parts, "\x00")))
	return hex.EncodeToString(sum[:])[:fingerprintLength]
}

// canonicalRepoPath makes the path component of the fingerprint stable
// across relative invocations of the same repository.
func canonicalRepoPath(repoPath string) string {
	abs, err := filepath.Abs(repoPath)
	if err != nil {
		return repoPath
	}
	return filepath.Clean(abs)
}
