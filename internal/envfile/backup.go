package envfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// BackupSuffix is appended to the target path to form the default backup path.
const BackupSuffix = ".bak"

// BackupPath returns the default backup location for target.
func BackupPath(target string) string {
	return target + BackupSuffix
}

// Backup copies src byte-for-byte to dst, overwriting any previous backup
// and keeping the source's permission bits. It returns false without error
// when src does not exist, since there is nothing to preserve.
func Backup(src, dst string) (bool, error) {
	info, err := os.Stat(src)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("stat %s: %w", src, err)
	}

	data, err := os.ReadFile(src)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", src, err)
	}

	// WriteFile only applies perm when it creates the file.
	if err := os.WriteFile(dst, data, info.Mode().Perm()); err != nil {
		return false, fmt.Errorf("write backup: %w", err)
	}
	if err := os.Chmod(dst, info.Mode().Perm()); err != nil {
		return false, fmt.Errorf("chmod backup: %w", err)
	}
	return true, nil
}
