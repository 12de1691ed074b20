package probe

import (
	"os"

	"github.com/duke-git/lancet/v2/fileutil"
)

// flatpakInfoPath is the marker file flatpak mounts into every sandbox.
const flatpakInfoPath = "/.flatpak-info"

// Sandbox reports whether the process runs inside an application sandbox.
type Sandbox struct {
	Snap    bool `json:"snap"`    // Snap is true when running inside a snap confinement.
	Flatpak bool `json:"flatpak"` // Flatpak is true when running inside a flatpak sandbox.
}

// DetectSandbox checks the environment markers snap and flatpak leave behind.
func DetectSandbox() Sandbox {
	return detectSandbox(flatpakInfoPath)
}

func detectSandbox(markerPath string) Sandbox {
	return Sandbox{
		Snap:    os.Getenv("SNAP") != "" || os.Getenv("SNAP_NAME") != "",
		Flatpak: os.Getenv("FLATPAK_ID") != "" || os.Getenv("FLATPAK_SESSION_HELPER") != "" || fileutil.IsExist(markerPath),
	}
}
