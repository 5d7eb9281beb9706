// DataWiz - Telegraf Collectors Onboarding
// Copyright (C) 2026 Cloud Exit B.V.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type completionShell struct {
	gen   func(w io.Writer) error
	rc    string
	file  string
	extra string
}

var completionShells = map[string]completionShell{
	"bash": {
		gen:  func(w io.Writer) error { return rootCmd.GenBashCompletionV2(w, true) },
		rc:   "~/.bashrc",
		file: "~/.local/share/bash-completion/completions/datawiz",
	},
	"zsh": {
		gen:   rootCmd.GenZshCompletion,
		rc:    "~/.zshrc",
		file:  "~/.zfunc/_datawiz",
		extra: "# then add to ~/.zshrc (before compinit): fpath=(~/.zfunc $fpath)",
	},
	"fish": {
		gen:  func(w io.Writer) error { return rootCmd.GenFishCompletion(w, true) },
		rc:   "~/.config/fish/config.fish",
		file: "~/.config/fish/completions/datawiz.fish",
	},
}

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish]",
	Short: "Generate shell autocompletion",
	Long: `Generate autocompletion for your shell.

If no shell is specified, the current shell is detected automatically.`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"bash", "zsh", "fish"},
	RunE: func(cmd *cobra.Command, args []string) error {
		shell := detectShell()
		if len(args) > 0 {
			shell = args[0]
		}
		sh, ok := completionShells[shell]
		if !ok {
			return fmt.Errorf("unsupported shell: %s (supported: bash, zsh, fish)", shell)
		}
		if err := sh.gen(cmd.OutOrStdout()); err != nil {
			return fmt.Errorf("generating %s completion: %w", shell, err)
		}
		showHints(completionHints(shell, sh)...)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}

// detectShell returns the name of the user's current shell.
func detectShell() string {
	if sh := os.Getenv("SHELL"); sh != "" {
		if _, ok := completionShells[filepath.Base(sh)]; ok {
			return filepath.Base(sh)
		}
	}

	// Parent process name via /proc on Linux
	if data, err := os.ReadFile(fmt.Sprintf("/proc/%d/comm", os.Getppid())); err == nil {
		name := strings.TrimSpace(string(data))
		if _, ok := completionShells[name]; ok {
			return name
		}
	}
	return "bash"
}

func completionHints(shell string, sh completionShell) []string {
	eval := fmt.Sprintf("#   eval \"$(datawiz completion %s)\"", shell)
	if shell == "fish" {
		eval = "#   datawiz completion fish | source"
	}
	lines := []string{
		"",
		"# To enable autocompletion, add this to your " + sh.rc + ":",
		"#",
		eval,
		"#",
		"# Or generate a file and source it:",
		"#",
		fmt.Sprintf("#   datawiz completion %s > %s", shell, sh.file),
	}
	if sh.extra != "" {
		lines = append(lines, "#   "+sh.extra)
	}
	return lines
}

// showHints prints usage hints to stderr, but only when stdout is a terminal
// (i.e., not being piped to eval or redirected to a file).
func showHints(lines ...string) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return
	}
	for _, line := range lines {
		fmt.Fprintln(os.Stderr, line)
	}
}
