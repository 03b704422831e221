// Package open launches URLs with the system's default handler.
package open

import (
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Start opens link in the default browser without waiting for it.
// Only http and https links are accepted.
func Start(link string) error {
	u, err := url.Parse(link)
	if err != nil {
		return fmt.Errorf("invalid link %q: %w", link, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("refusing to open %q: not a web link", link)
	}

	cmd, ok := command(u.String())
	if !ok {
		return fmt.Errorf("unsupported OS: %s", runtime.GOOS)
	}
	return cmd.Start()
}

// launchers build the command that hands a link to the desktop, by GOOS.
var launchers = map[string]func(link string) *exec.Cmd{
	"windows": func(link string) *exec.Cmd {
		rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
		return exec.Command(rundll, "url.dll,FileProtocolHandler", link)
	},
	"darwin":  func(link string) *exec.Cmd { return exec.Command("open", link) },
	"linux":   func(link string) *exec.Cmd { return exec.Command("xdg-open", link) },
	"android": func(link string) *exec.Cmd { return exec.Command("termux-open", link) },
}

func command(link string) (*exec.Cmd, bool) {
	launch, ok := launchers[runtime.GOOS]
	if !ok {
		return nil, false
	}
	return launch(link), true
}
