package gitio

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pbaettig/gitpulse/schema"
)

// commitDelimiter marks the start of a commit header in the log output.
const commitDelimiter = "COMMIT_START>"

// parseCommitLog turns `git log --numstat` output into commit records.
// Header lines carry hash|author|email|unix-time|subject; the numstat
// lines that follow belong to that commit until the next header.
func parseCommitLog(out []byte) ([]schema.CommitRecord, error) {
	var commits []schema.CommitRecord
	var current *schema.CommitRecord

	scanner := bufio.NewScanner(bytes.NewReader(out))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Text()

		if after, ok := strings.CutPrefix(line, commitDelimiter); ok {
			if current != nil {
				commits = append(commits, *current)
			}
			record, err := parseCommitHeader(after)
			if err != nil {
				return nil, err
			}
			current = record
			continue
		}

		if current == nil || strings.TrimSpace(line) == "" {
			continue
		}
		if change, ok := parseNumstatLine(line); ok {
			current.Files = append(current.Files, change)
			current.LinesAdded += change.LinesAdded
			current.LinesDeleted += change.LinesDeleted
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan commit log: %w", err)
	}
	if current != nil {
		commits = append(commits, *current)
	}
	return commits, nil
}

// parseCommitHeader parses "hash|author|email|unix-time|subject".
func parseCommitHeader(header string) (*schema.CommitRecord, error) {
	parts := strings.SplitN(header, "|", 5)
	if len(parts) < 5 {
		return nil, fmt.Errorf("malformed commit header: %q", header)
	}
	ts, err := strconv.ParseInt(parts[3], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("malformed commit timestamp %q: %w", parts[3], err)
	}
	return &schema.CommitRecord{
		Hash:      parts[0],
		Author:    parts[1],
		Email:     parts[2],
		Timestamp: time.Unix(ts, 0).UTC(),
		Message:   parts[4],
	}, nil
}

// parseNumstatLine parses one "added\tdeleted\tpath" numstat line.
// Binary files report "-" for both counts and fold in as zero lines.
func parseNumstatLine(line string) (schema.FileChange, bool) {
	parts := strings.SplitN(line, "\t", 3)
	if len(parts) < 3 {
		return schema.FileChange{}, false
	}

	added, okAdd := parseNumstatCount(parts[0])
	deleted, okDel := parseNumstatCount(parts[1])
	if !okAdd || !okDel {
		return schema.FileChange{}, false
	}

	path, renamedFrom := parseNumstatPath(parts[2])
	return schema.FileChange{
		Path:         path,
		LinesAdded:   added,
		LinesDeleted: deleted,
		RenamedFrom:  renamedFrom,
	}, true
}

// parseNumstatCount parses a numstat count, accepting "-" as zero.
func parseNumstatCount(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "-" {
		return 0, true
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// parseNumstatPath resolves the rename syntaxes git emits in numstat
// output: "old => new" and "prefix/{old => new}/suffix". It returns the
// current path and, for renames, the previous one.
func parseNumstatPath(raw string) (path, renamedFrom string) {
	raw = strings.TrimSpace(raw)

	if open := strings.Index(raw, "{"); open >= 0 {
		if end := strings.Index(raw[open:], "}"); end >= 0 {
			inner := raw[open+1 : open+end]
			if oldPart, newPart, ok := strings.Cut(inner, " => "); ok {
				prefix := raw[:open]
				suffix := raw[open+end+1:]
				path = cleanRenamePath(prefix + newPart + suffix)
				renamedFrom = cleanRenamePath(prefix + oldPart + suffix)
				return path, renamedFrom
			}
		}
	}

	if oldPath, newPath, ok := strings.Cut(raw, " => "); ok {
		return newPath, oldPath
	}
	return raw, ""
}

// cleanRenamePath drops the double slashes an empty rename side leaves
// behind, e.g. "pkg/{ => sub}/file.go".
func cleanRenamePath(p string) string {
	return strings.ReplaceAll(p, "//", "/")
}
