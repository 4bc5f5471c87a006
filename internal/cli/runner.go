// Package cli runs a line-oriented todo session over stdin/stdout.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/Makepad-fr/tadalist/internal/app"
	"github.com/Makepad-fr/tadalist/internal/todo"
	"github.com/Makepad-fr/tadalist/internal/ui"
)

// Options tune the session.
type Options struct {
	Prompt string // printed before each line when non-empty
	Logger *log.Logger
}

// Runner reads commands and applies them to a session.
type Runner struct {
	out, errOut io.Writer
	session     *app.Session
	view        *ui.ListView
	opt         Options
}

// NewRunner binds a session on store. The list panel is printed after
// every change.
func NewRunner(store *todo.Store, out, errOut io.Writer, opt Options) *Runner {
	r := &Runner{out: out, errOut: errOut, view: &ui.ListView{}, opt: opt}
	var sopts []app.Option
	if opt.Logger != nil {
		sopts = append(sopts, app.WithLogger(opt.Logger))
	}
	r.session = app.New(store, r.view, app.NotifierFunc(func(msg string) { ui.Fail(r.errOut, msg) }), sopts...)
	return r
}

// Close detaches the runner from the store.
func (r *Runner) Close() { r.session.Close() }

// Run reads commands until EOF or quit. It returns an exit code
// (0 ok, 1 read error).
func (r *Runner) Run(in io.Reader) int {
	sc := bufio.NewScanner(in)
	for {
		if r.opt.Prompt != "" {
			fmt.Fprint(r.out, r.opt.Prompt)
		}
		if !sc.Scan() {
			break
		}
		if quit := r.Exec(sc.Text()); quit {
			return 0
		}
	}
	if err := sc.Err(); err != nil {
		ui.Fail(r.errOut, "read: "+err.Error())
		return 1
	}
	return 0
}

// Exec runs one command line and reports whether the session should end.
func (r *Runner) Exec(line string) (quit bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return false
	}
	cmd, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch cmd {
	case "help", "?":
		PrintHelp(r.out)
	case "quit", "exit", "q":
		return true
	case "ls":
		r.session.Render()
		r.print()
	case "add":
		if r.session.Submit(rest).Added {
			r.print()
		}
	case "done", "complete":
		if id, ok := r.parseID(cmd, rest); ok {
			r.session.Complete(id)
			r.print()
		}
	case "rm", "delete":
		if id, ok := r.parseID(cmd, rest); ok {
			r.session.Delete(id)
			r.print()
		}
	default:
		ui.Fail(r.errOut, "unknown command: "+cmd)
		fmt.Fprintln(r.errOut, ui.Current().Muted.Render("Hint: type `help` for commands"))
	}
	return false
}

func (r *Runner) parseID(cmd, arg string) (int64, bool) {
	if arg == "" {
		ui.Fail(r.errOut, fmt.Sprintf("usage: %s <id>", cmd))
		return 0, false
	}
	id, err := strconv.ParseInt(strings.TrimPrefix(arg, "#"), 10, 64)
	if err != nil {
		ui.Fail(r.errOut, cmd+": not a number: "+arg)
		return 0, false
	}
	return id, true
}

func (r *Runner) print() {
	fmt.Fprintln(r.out, r.view.String())
}

// PrintHelp lists session commands.
func PrintHelp(w io.Writer) {
	fmt.Fprint(w, `Commands:
  add <title...>     Add a new item (title can be multiple words)
  ls                 Show the list
  done <id>          Toggle done for the item with id
  rm <id>            Remove the item with id
  help               Show this help
  quit               End the session

Examples:
  add Buy milk
  done #1700000000000
  rm 1700000000000
`)
}
