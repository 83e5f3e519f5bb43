package astral

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"sync"

	"github.com/chillcicada/easytier-astral/internal/globals"
	"github.com/google/uuid"
)

var (
	ErrNoMachineID = errors.New("no host machine id") // ErrNoMachineID indicates none of the machine id files were readable

	machineIDFiles = []string{"/etc/machine-id", "/var/lib/dbus/machine-id"}
	randomID       = sync.OnceValue(uuid.New)
)

// MachineID identifies this machine to peers. MACHINE_UID takes precedence,
// then the host machine id, then a random id that is stable for the life of
// the process.
func MachineID() uuid.UUID {
	if uid, ok := globals.MachineUID.Get().Get(); ok && uid != "" {
		return UIDFromString(uid)
	}
	id, err := hostMachineID(machineIDFiles)
	if err == nil {
		return id
	}
	slog.Debug("using random machine id", "error", err)
	return randomID()
}

// UIDFromString returns s as a UUID if it is one, otherwise a name based
// UUID derived from s.
func UIDFromString(s string) uuid.UUID {
	if id, err := uuid.Parse(s); err == nil {
		return id
	}
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(s))
}

func hostMachineID(files []string) (uuid.UUID, error) {
	for _, file := range files {
		contents, err := os.ReadFile(file)
		if err != nil {
			continue
		}
		contents = bytes.TrimSpace(contents)
		if len(contents) == 0 {
			continue
		}
		return uuid.NewSHA1(uuid.NameSpaceOID, contents), nil
	}
	return uuid.Nil, ErrNoMachineID
}
