package playlist

import (
	"fmt"
	"io/fs"
	"os"
	"os/user"
	"path/filepath"
	"strconv"
)

// FixOwnership recursively hands the playlist directory to the given system
// user and group, with 0755 directories and 0644 files so the media server
// can read them. Callers treat a failure as a warning, not a fatal error,
// since the generator often runs without the privilege to chown.
func FixOwnership(dir, owner, group string) error {
	usr, err := user.Lookup(owner)
	if err != nil {
		return fmt.Errorf("lookup user %q: %w", owner, err)
	}
	grp, err := user.LookupGroup(group)
	if err != nil {
		return fmt.Errorf("lookup group %q: %w", group, err)
	}
	uid, err := strconv.Atoi(usr.Uid)
	if err != nil {
		return fmt.Errorf("parse uid %q: %w", usr.Uid, err)
	}
	gid, err := strconv.Atoi(grp.Gid)
	if err != nil {
		return fmt.Errorf("parse gid %q: %w", grp.Gid, err)
	}

	return filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := os.Chown(path, uid, gid); err != nil {
			return fmt.Errorf("chown %s: %w", path, err)
		}
		mode := os.FileMode(0o644)
		if entry.IsDir() {
			mode = 0o755
		}
		if err := os.Chmod(path, mode); err != nil {
			return fmt.Errorf("chmod %s: %w", path, err)
		}
		return nil
	})
}

// OwnershipHint returns the manual command to suggest when FixOwnership
// fails for lack of privileges.
func OwnershipHint(dir, owner, group string) string {
	return fmt.Sprintf("run manually: sudo chown -R %s:%s %q", owner, group, dir)
}
