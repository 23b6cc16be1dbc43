// Package shell is the entry point for the terminal interface of wsh. It
// ties together the line editor, the command dispatcher and the terminal,
// and owns everything outside the editing core: builtins, aliases, config
// and history persistence.
package shell

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/wshell/wsh/pkg/cli/term"
	"github.com/wshell/wsh/pkg/edit/complete"
	"github.com/wshell/wsh/pkg/fsutil"
	"github.com/wshell/wsh/pkg/histutil"
	"github.com/wshell/wsh/pkg/logutil"
)

var logger = logutil.GetLogger("[shell] ")

// Program is a shell instance bound to a terminal.
type Program struct {
	cfg *Config
	in  *os.File
	out io.Writer

	store *histutil.MemStore
	db    *histutil.DBStore // nil when history persistence is unavailable
	raw   *term.Raw         // non-nil only inside Interact
	eol   string
}

// New creates a Program reading keys from in and writing to out.
func New(cfg *Config, in *os.File, out io.Writer) *Program {
	return &Program{
		cfg:   cfg,
		in:    in,
		out:   out,
		store: histutil.NewMemStore(cfg.HistorySize),
		eol:   "\n",
	}
}

// Script runs a single command line non-interactively (the -c flag).
func (p *Program) Script(line string) error {
	return p.execute(line)
}

// addHistory records an accepted command in memory and, when available, in
// the persistent history database. Persistence failures are logged, not
// surfaced: losing a history entry never aborts the session.
func (p *Program) addHistory(cmd string) {
	if !p.store.Add(cmd) {
		return
	}
	if p.db != nil {
		if err := p.db.Add(cmd); err != nil {
			logger.Printf("persist history: %v", err)
		}
	}
}

// openHistoryDB opens the persistent history log and preloads the in-memory
// store with its most recent entries. Any failure degrades to memory-only
// history.
func (p *Program) openHistoryDB() {
	path := p.cfg.historyDBPath()
	if path == "" {
		return
	}
	db, err := histutil.OpenDB(path)
	if err != nil {
		logger.Printf("history db unavailable: %v", err)
		return
	}
	p.db = db
	cmds, err := db.All()
	if err != nil {
		logger.Printf("load history: %v", err)
		return
	}
	if n := p.cfg.HistorySize; n > 0 && len(cmds) > n {
		cmds = cmds[len(cmds)-n:]
	}
	for _, cmd := range cmds {
		p.store.Add(cmd)
	}
}

// completeConfig snapshots the completion environment. It is evaluated per
// Tab press so alias and $PATH changes are picked up immediately.
func (p *Program) completeConfig() complete.Config {
	home, _ := os.UserHomeDir()
	aliases := make([]string, 0, len(p.cfg.Aliases))
	for name := range p.cfg.Aliases {
		aliases = append(aliases, name)
	}
	return complete.Config{
		Builtins:     builtinNames,
		AliasKeys:    aliases,
		SearchDirs:   filepath.SplitList(os.Getenv("PATH")),
		Home:         home,
		IsExecutable: fsutil.IsExecutable,
	}
}

func (p *Program) print(s string) {
	io.WriteString(p.out, s)
	io.WriteString(p.out, p.eol)
}

func (p *Program) printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
	io.WriteString(p.out, p.eol)
}
