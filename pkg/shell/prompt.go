package shell

import (
	"os"
	"strings"

	"github.com/wshell/wsh/pkg/fsutil"
	"github.com/wshell/wsh/pkg/ui"
)

// promptString renders the prompt from the configured template, with {cwd}
// replaced by the home-abbreviated working directory.
func (p *Program) promptString() string {
	home, _ := os.UserHomeDir()
	prompt := strings.ReplaceAll(p.cfg.Prompt, "{cwd}", fsutil.Getwd(home))
	return ui.StylePrompt(prompt, p.cfg.EnableColors)
}

func (p *Program) printError(err error) {
	p.print(ui.StyleError("Error: "+err.Error(), p.cfg.EnableColors))
}
