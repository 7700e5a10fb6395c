// Package lock keeps a second interactive session from editing the same
// chart. The lockfile records the holder's pid and executable; a lockfile
// whose process is gone (or was reused by another program) is stale.
package lock

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mitchellh/go-ps"

	"github.com/julianstephens/gantt/internal/constants"
	"github.com/julianstephens/gantt/internal/logger"
)

var (
	findProcessFunc = ps.FindProcess
	getpidFunc      = os.Getpid
	executableFunc  = currentExecutable
)

// HeldError reports a live session holding the lock.
type HeldError struct {
	PID  int
	Path string
}

func (e *HeldError) Error() string {
	return fmt.Sprintf("chart is open in another session (pid %d, lockfile %s)", e.PID, e.Path)
}

type Lock struct {
	path string
	pid  int
}

// Acquire takes the session lock in dir.
func Acquire(dir string) (*Lock, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}
	path := filepath.Join(dir, constants.LockfileName)

	for attempt := 0; attempt < 2; attempt++ {
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if err == nil {
			pid := getpidFunc()
			_, werr := fmt.Fprintf(f, "%d|%s\n", pid, executableFunc())
			cerr := f.Close()
			if werr != nil || cerr != nil {
				_ = os.Remove(path)
				return nil, fmt.Errorf("write lockfile: %w", errors.Join(werr, cerr))
			}
			return &Lock{path: path, pid: pid}, nil
		}
		if !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create lockfile: %w", err)
		}

		holder, live := Holder(path)
		if live {
			return nil, &HeldError{PID: holder, Path: path}
		}
		logger.Warn("removing stale lockfile", "path", path, "pid", holder)
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("remove stale lockfile: %w", err)
		}
	}
	return nil, fmt.Errorf("could not acquire lockfile %s", path)
}

// Release removes the lockfile if this lock still owns it.
func (l *Lock) Release() error {
	if l == nil {
		return nil
	}
	pid, _, err := read(l.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if pid != l.pid {
		return nil
	}
	if err := os.Remove(l.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove lockfile: %w", err)
	}
	return nil
}

func (l *Lock) Path() string {
	return l.path
}

// Holder returns the pid recorded in the lockfile at path and whether that
// process is still a running gantt session.
func Holder(path string) (int, bool) {
	pid, exe, err := read(path)
	if err != nil {
		return 0, false
	}
	process, err := findProcessFunc(pid)
	if err != nil || process == nil {
		return pid, false
	}
	if exe != "" && !strings.HasPrefix(process.Executable(), exe) {
		return pid, false
	}
	return pid, true
}

func read(path string) (int, string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, "", err
	}
	parts := strings.Split(strings.TrimSpace(string(content)), "|")
	if len(parts) != 2 {
		return 0, "", errors.New("lockfile is malformed")
	}
	pid, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, "", errors.New("invalid process ID in lockfile")
	}
	return pid, parts[1], nil
}

func currentExecutable() string {
	exe, err := os.Executable()
	if err != nil {
		return constants.AppName
	}
	return filepath.Base(exe)
}
