// Package directory implements the ExpirySource port for local directory
// service accounts, read through the dscl search path.
package directory

import (
	"context"
	"fmt"
	"log/slog"
	"os/user"
	"strconv"
	"strings"

	"howett.net/plist"

	"github.com/finnroth/expiryd/internal/domain/model"
	"github.com/finnroth/expiryd/internal/domain/port/driven"
)

// Directory attribute names. The expiry attribute is node-native, so dscl
// reports it under the dsAttrTypeNative prefix.
const (
	attrUniqueID      = "UniqueID"
	attrExpirySeconds = "secondsUntilPasswordExpires"

	standardPrefix = "dsAttrTypeStandard:"
	nativePrefix   = "dsAttrTypeNative:"
)

// Compile-time interface satisfaction check.
var _ driven.ExpirySource = (*Source)(nil)

// Source reads the calling user's record from the directory search path.
// Record names can collide across directory nodes, so the record is only
// accepted when its UniqueID matches the calling user's numeric uid.
type Source struct {
	runner   driven.CommandRunner
	username string
	uid      int
	logger   *slog.Logger
}

// NewSource creates a Source for the user owning the current process.
func NewSource(runner driven.CommandRunner, logger *slog.Logger) (*Source, error) {
	u, err := user.Current()
	if err != nil {
		return nil, fmt.Errorf("resolving current user: %w", err)
	}
	uid, err := strconv.Atoi(u.Uid)
	if err != nil {
		return nil, fmt.Errorf("parsing uid %q: %w", u.Uid, err)
	}
	return NewSourceForUser(runner, u.Username, uid, logger), nil
}

// NewSourceForUser creates a Source for an explicit username and uid.
// Intended for testing, which cannot depend on the process owner.
func NewSourceForUser(runner driven.CommandRunner, username string, uid int, logger *slog.Logger) *Source {
	return &Source{
		runner:   runner,
		username: username,
		uid:      uid,
		logger:   logger,
	}
}

// Check reads the user record and maps the seconds-until-expiry attribute:
// a negative value means the password never expires, zero means it has
// already expired, and a positive value is the remaining duration.
func (s *Source) Check(ctx context.Context) (model.ExpiryInfo, error) {
	out, err := s.runner.CombinedOutput(ctx, "dscl", "-plist", "/Search", "-read",
		"/Users/"+s.username, attrUniqueID, nativePrefix+attrExpirySeconds)
	if err != nil {
		return model.ExpiryInfo{}, fmt.Errorf("%w: reading record for %q: %v",
			model.ErrLookupFailed, s.username, err)
	}

	record, err := parseRecord(out)
	if err != nil {
		return model.ExpiryInfo{}, fmt.Errorf("%w: %v", model.ErrLookupFailed, err)
	}

	uid, ok := record.intAttr(attrUniqueID)
	if !ok || int(uid) != s.uid {
		return model.ExpiryInfo{}, fmt.Errorf("%w: record %q does not belong to uid %d",
			model.ErrLookupFailed, s.username, s.uid)
	}

	info := model.ExpiryInfo{SignedIn: true}
	seconds, ok := record.intAttr(attrExpirySeconds)
	if !ok || seconds < 0 {
		// No expiry policy on the account, or the node reports an
		// unbounded value.
		info.NeverExpires = true
		s.logger.Debug("directory record has no finite expiry", "user", s.username)
		return info, nil
	}

	info.SecondsRemaining = &seconds
	s.logger.Debug("directory record read", "user", s.username, "seconds_remaining", seconds)
	return info, nil
}

// record is one parsed dscl user record: attribute name to values.
type record map[string]any

// parseRecord decodes the plist output of a dscl read.
func parseRecord(out []byte) (record, error) {
	var rec record
	if _, err := plist.Unmarshal(out, &rec); err != nil {
		return nil, fmt.Errorf("decoding dscl output: %w", err)
	}
	return rec, nil
}

// intAttr returns the first value of the named attribute as an integer,
// looking under the bare name and both dscl attribute prefixes.
func (r record) intAttr(name string) (int64, bool) {
	for _, key := range []string{name, standardPrefix + name, nativePrefix + name} {
		raw, ok := r[key]
		if !ok {
			continue
		}
		values, ok := raw.([]any)
		if !ok || len(values) == 0 {
			continue
		}
		str, ok := values[0].(string)
		if !ok {
			continue
		}
		v, err := strconv.ParseInt(strings.TrimSpace(str), 10, 64)
		if err != nil {
			continue
		}
		return v, true
	}
	return 0, false
}
