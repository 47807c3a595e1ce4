package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/Makepad-fr/tada/internal/app"
	"github.com/Makepad-fr/tada/internal/config"
	"github.com/Makepad-fr/tada/internal/store"
	"github.com/Makepad-fr/tada/internal/tui"
	"github.com/Makepad-fr/tada/internal/ui"
)

// Options carry what the root command resolved.
type Options struct {
	Config config.Config
	Log    *slog.Logger
	In     io.Reader   // answers to confirmation prompts; defaults to stdin
	Store  store.Store // overrides the configured backend when set
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(ctx context.Context, args []string, opt Options) int {
	if len(args) == 0 {
		PrintHelp()
		return 2
	}
	cmd, a := args[0], args[1:]

	var handler func(*app.Session) int
	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0

	case "ls":
		handler = doList

	case "ui":
		handler = func(s *app.Session) int { return doInteractive(ctx, s) }

	case "add":
		if len(a) == 0 {
			ui.Fail("usage: tada add <text...>")
			return 2
		}
		handler = func(s *app.Session) int { return doAdd(ctx, s, strings.Join(a, " ")) }

	case "check", "rm":
		if len(a) != 1 {
			ui.Fail("usage: tada " + cmd + " <id>")
			return 2
		}
		id, err := strconv.Atoi(a[0])
		if err != nil {
			ui.Fail(cmd + ": not a number: " + a[0])
			return 2
		}
		handler = func(s *app.Session) int { return doCheck(ctx, s, id) }

	case "clear":
		yes := false
		for _, f := range a {
			switch f {
			case "-y", "--yes":
				yes = true
			default:
				ui.Fail("usage: tada clear [-y]")
				return 2
			}
		}
		handler = func(s *app.Session) int { return doClear(ctx, s, yes, opt.input()) }

	case "next-id":
		handler = func(s *app.Session) int {
			ui.Print(strconv.Itoa(s.NextID()))
			return 0
		}

	case "export":
		handler = doExport

	default:
		ui.Fail("unknown subcommand: " + cmd)
		fmt.Fprintln(os.Stderr)
		PrintHelp()
		return 2
	}

	sess, closeFn, err := open(ctx, opt)
	if err != nil {
		ui.Fail("open store: " + err.Error())
		return 1
	}
	defer closeFn()
	return handler(sess)
}

func PrintHelp() {
	fmt.Printf(`tada - a tiny checklist

Usage:
  tada [flags] <subcommand> [args]

Subcommands:
  add <text...>      Add a new entry (text can be multiple words)
  ls                 List entries with their ids
  ui                 Interactive list (a add, space check off, C clear, q quit)
  check <id>         Check off (remove) the entry with that id; alias: rm
  clear [-y]         Remove every entry, asking first unless -y
  next-id            Print the id the next entry will get
  export             Print the stored list as JSON

Flags:
  -store file|redis|mem   Storage backend (env TADA_STORE)
  -file <path>            JSON file for the file backend (env TADA_FILE)
  -redis-url <url>        Redis URL for the redis backend (env TADA_REDIS_URL)
  -theme classic|neon|mono
  -no-color
  -debug                  Log diagnostics to stderr (env TADA_DEBUG)

Examples:
  tada add "Buy milk"
  tada ls
  tada check 2
  tada clear -y
`)
}

func (o Options) input() io.Reader {
	if o.In != nil {
		return o.In
	}
	return os.Stdin
}

// open builds a hydrated session on the configured store.
func open(ctx context.Context, opt Options) (*app.Session, func(), error) {
	log := opt.Log
	if log == nil {
		log = slog.Default()
	}
	st := opt.Store
	closeFn := func() {}
	if st == nil {
		var err error
		st, err = store.Open(ctx, opt.Config, log)
		if err != nil {
			return nil, nil, err
		}
		closeFn = func() {
			if err := st.Close(); err != nil {
				log.Warn("close store", "err", err)
			}
		}
	}
	sess := app.NewSession(st, log)
	sess.Init(ctx)
	return sess, closeFn, nil
}

// ---------------------------------------------------
// Subcommands
// ---------------------------------------------------

func doList(s *app.Session) int {
	ui.Panel(ui.ListLines(s.Snapshot()))
	return 0
}

func doInteractive(ctx context.Context, s *app.Session) int {
	if err := tui.Run(ctx, s); err != nil {
		ui.Fail("tui: " + err.Error())
		return 1
	}
	return 0
}

func doAdd(ctx context.Context, s *app.Session, text string) int {
	it, added, err := s.Submit(ctx, text)
	if !added {
		ui.Say("nothing to add")
		return 0
	}
	if err != nil {
		ui.Fail(err.Error())
		return 1
	}
	ui.OK(fmt.Sprintf("%s (id %d)", s.Status(), it.ID()))
	return 0
}

func doCheck(ctx context.Context, s *app.Session, id int) int {
	_, removed, err := s.Check(ctx, id)
	if !removed {
		ui.Say(fmt.Sprintf("no entry with id %d", id))
		return 0
	}
	if err != nil {
		ui.Fail(err.Error())
		return 1
	}
	ui.OK(s.Status())
	return 0
}

func doClear(ctx context.Context, s *app.Session, yes bool, in io.Reader) int {
	confirm := func() bool {
		if yes {
			return true
		}
		ui.Warn("Are you sure you want to clear the entire list? [y/N]")
		line, _ := bufio.NewReader(in).ReadString('\n')
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true
		}
		return false
	}
	cleared, err := s.Clear(ctx, confirm)
	if err != nil {
		ui.Fail(err.Error())
		return 1
	}
	if cleared {
		ui.OK("cleared")
	} else if s.Len() == 0 {
		ui.Say("list is already empty")
	}
	return 0
}

func doExport(s *app.Session) int {
	out, err := s.Export()
	if err != nil {
		ui.Fail("export: " + err.Error())
		return 1
	}
	ui.Print(out)
	return 0
}
