package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	infoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	matchStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

func printHeader(msg string) {
	fmt.Println(headerStyle.Render(msg))
}

func printInfo(format string, args ...interface{}) {
	fmt.Println(infoStyle.Render(fmt.Sprintf(format, args...)))
}

func printWarn(format string, args ...interface{}) {
	fmt.Println(warnStyle.Render(fmt.Sprintf(format, args...)))
}

// runForm executes a huh form against the process terminal.
func runForm(fields ...huh.Field) error {
	form := huh.NewForm(huh.NewGroup(fields...))
	form.WithInput(os.Stdin).WithOutput(os.Stdout).WithTheme(huh.ThemeCharm())
	return form.Run()
}

// requireTerminal rejects interactive workflows when stdin is not a TTY,
// before any prompt hangs waiting on a pipe.
func requireTerminal() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("interactive mode requires a terminal")
	}
	return nil
}
