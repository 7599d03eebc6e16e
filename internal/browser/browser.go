package browser

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
)

// Opener launches links in the user's browser.
type Opener struct {
	goos  string
	start func(*exec.Cmd) error
}

func New() *Opener {
	return &Opener{goos: runtime.GOOS, start: (*exec.Cmd).Start}
}

// Open validates link and hands it to the platform's URL handler.
// Only http and https links are accepted.
func (o *Opener) Open(link string) error {
	if err := check(link); err != nil {
		return err
	}
	return o.start(command(o.goos, link))
}

func check(link string) error {
	u, err := url.Parse(link)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("refusing to open URL with scheme %q (only http/https allowed)", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("refusing to open URL without host: %q", link)
	}
	return nil
}

func command(goos, link string) *exec.Cmd {
	switch goos {
	case "darwin":
		return exec.Command("open", link)
	case "windows":
		// rundll32 avoids cmd.exe interpreting the link.
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", link)
	default:
		return exec.Command("xdg-open", link)
	}
}
