package platform

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// OpenFile opens path with the platform's default application.
func OpenFile(path string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", path).Run()
	case "windows":
		return exec.Command("cmd", "/c", "start", "", path).Run()
	default:
		return exec.Command("xdg-open", path).Run()
	}
}

// OpenInEditor opens path in $VISUAL, then $EDITOR, waiting for the
// editor to exit. Terminal editors take over stdin/stdout for the
// duration. With neither variable set, falls back to OpenFile.
func OpenInEditor(path string) error {
	cmd, ok := editorCommand(path)
	if !ok {
		return OpenFile(path)
	}

	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor %s: %w", cmd.Args[0], err)
	}
	return nil
}

// editorCommand builds the editor invocation from $VISUAL then $EDITOR.
// Either variable may carry arguments ("code --wait").
func editorCommand(path string) (*exec.Cmd, bool) {
	for _, env := range []string{"VISUAL", "EDITOR"} {
		fields := strings.Fields(os.Getenv(env))
		if len(fields) == 0 {
			continue
		}
		args := append(fields[1:], path)
		return exec.Command(fields[0], args...), true
	}
	return nil, false
}
