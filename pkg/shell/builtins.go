package shell

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sort"

	"github.com/wshell/wsh/pkg/fsutil"
	"github.com/wshell/wsh/pkg/parse"
)

// builtinNames lists the shell's builtin commands; the completion engine
// offers them as command candidates.
var builtinNames = []string{"cd", "pwd", "exit", "help", "alias", "history"}

// errExit is returned by the exit builtin. The interactive loop recognizes
// it and shuts down cleanly instead of exiting mid-dispatch, so the
// terminal is always restored.
var errExit = errors.New("exit requested")

// Alias bodies may reference other aliases; expansion beyond this depth is
// treated as a cycle.
const maxAliasDepth = 10

// execute tokenizes and dispatches one command line.
func (p *Program) execute(line string) error {
	tokens := parse.Tokenize(line)
	if len(tokens) == 0 {
		return nil
	}
	return p.dispatch(tokens, 0)
}

func (p *Program) dispatch(tokens []string, depth int) error {
	name, args := tokens[0], tokens[1:]

	if body, ok := p.cfg.Aliases[name]; ok {
		if depth >= maxAliasDepth {
			return fmt.Errorf("alias loop detected for %q", name)
		}
		expanded := parse.Tokenize(body)
		if len(expanded) == 0 {
			return nil
		}
		return p.dispatch(append(expanded, args...), depth+1)
	}

	switch name {
	case "cd":
		return p.cd(args)
	case "pwd":
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("pwd: %w", err)
		}
		p.print(wd)
		return nil
	case "exit":
		return errExit
	case "help":
		p.printHelp()
		return nil
	case "history":
		p.printHistory()
		return nil
	case "alias":
		return p.alias(args)
	default:
		return p.execExternal(name, args)
	}
}

func (p *Program) cd(args []string) error {
	home, _ := os.UserHomeDir()
	var target string
	if len(args) == 0 || args[0] == "" {
		target = home
		if target == "" {
			target = "/"
		}
	} else {
		target = fsutil.TildeExpand(args[0], home)
	}
	if err := os.Chdir(target); err != nil {
		return fmt.Errorf("cd: %w", err)
	}
	return nil
}

// alias defines an alias when given exactly two arguments and lists all
// aliases otherwise.
func (p *Program) alias(args []string) error {
	if len(args) == 2 {
		p.cfg.Aliases[args[0]] = args[1]
		p.printf("Alias '%s' -> '%s' added", args[0], args[1])
		return nil
	}
	names := make([]string, 0, len(p.cfg.Aliases))
	for name := range p.cfg.Aliases {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		p.printf("%s -> %s", name, p.cfg.Aliases[name])
	}
	return nil
}

func (p *Program) printHistory() {
	cmds := p.store.All()
	if len(cmds) == 0 {
		p.print("No history available")
		return
	}
	for i, cmd := range cmds {
		p.printf("%4d: %s", i+1, cmd)
	}
}

// execExternal runs an external command, suspending raw mode for its
// duration so the child sees a normal terminal.
func (p *Program) execExternal(name string, args []string) error {
	run := func() error {
		cmd := exec.Command(name, args...)
		cmd.Stdin = p.in
		cmd.Stdout = p.out
		cmd.Stderr = os.Stderr
		err := cmd.Run()
		if err == nil {
			return nil
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("'%s' exited with status %d", name, exitErr.ExitCode())
		}
		return fmt.Errorf("failed to execute '%s': %w", name, err)
	}
	if p.raw != nil {
		return p.raw.Suspend(run)
	}
	return run()
}

func (p *Program) printHelp() {
	for _, line := range []string{
		"wsh - Built-in Commands:",
		"  cd [path]          - Change directory",
		"  pwd                - Print working directory",
		"  history            - Show command history",
		"  alias [name] [cmd] - Create or show aliases",
		"  help               - Show this help message",
		"  exit               - Exit the shell",
		"",
		"Keyboard shortcuts:",
		"  Ctrl+C / Ctrl+D - Exit",
		"  Up/Down arrows  - Navigate history",
		"  Left/Right      - Move cursor",
		"  Home/End        - Jump to line start/end",
		"  Tab             - Auto-complete commands and paths",
		"",
		"Autocompletion draws from built-in commands, executables in $PATH,",
		"file and directory paths, aliases, and command history.",
	} {
		p.print(line)
	}
}
