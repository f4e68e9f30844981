package sync

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/selim/mpsync/internal/log"
	"github.com/selim/mpsync/internal/paths"
)

// Result reports what Execute actually did.
type Result struct {
	DirsCreated int
	FilesCopied int
	Bytes       int64
}

// Execute carries out a plan against a mounted device volume: creates
// the directories in plan order, then copies each file. The mount point
// stands in for the device filesystem root, so a device path /lib/a.py
// lands at <volume>/lib/a.py. Destination names are NFC-normalized for
// FAT-backed firmwares.
func Execute(plan Plan, workspace, deviceVolume string) (Result, error) {
	var result Result

	for _, dir := range plan.Dirs {
		target := hostPath(deviceVolume, dir)
		if err := os.Mkdir(target, 0o755); err != nil {
			if errors.Is(err, os.ErrExist) {
				continue
			}
			return result, fmt.Errorf("cannot create device directory %s: %w", dir, err)
		}
		log.Debugf("mkdir %s", dir)
		result.DirsCreated++
	}

	for _, op := range plan.Files {
		src := filepath.Join(workspace, filepath.FromSlash(op.Local))
		dst := hostPath(deviceVolume, op.Device)

		written, err := copyFile(src, dst)
		if err != nil {
			return result, fmt.Errorf("cannot copy %s -> %s: %w", op.Local, op.Device, err)
		}
		log.Debugf("copy %s -> %s", op.Local, op.Device)
		result.FilesCopied++
		result.Bytes += written
	}

	return result, nil
}

// hostPath converts an absolute device path into a path under the
// mounted volume.
func hostPath(deviceVolume, devicePath string) string {
	rel := strings.TrimPrefix(paths.NormalizeRemotePath(devicePath), "/")
	return filepath.Join(deviceVolume, filepath.FromSlash(rel))
}

// copyFile copies src to dst, truncating any existing destination.
func copyFile(src, dst string) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return 0, err
	}

	written, err := io.Copy(out, in)
	if err != nil {
		out.Close()
		return written, err
	}
	return written, out.Close()
}
