// Package cli is a stdin front end for the site core, standing in for the
// website's forms and navigation. It is presentation glue only: every action
// goes through the hook boundary.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/growthverse/site/internal/site/domain"
	"github.com/growthverse/site/internal/site/hooks"
	"github.com/growthverse/site/pkg/idx"
)

type repl struct {
	hooks   *hooks.Hooks
	scanner *bufio.Scanner
	out     io.Writer
}

// Run drives the hook boundary until EOF or an exit command.
func Run(ctx context.Context, h *hooks.Hooks, in io.Reader, out io.Writer) {
	r := &repl{hooks: h, scanner: bufio.NewScanner(in), out: out}

	// The nav bar of this front end: re-render on every session transition.
	h.OnSessionChanged(func(s domain.Session, active bool) {
		if active {
			r.printf("[nav] signed in as %s (%s)\n", s.Name, s.Initials())
		} else {
			r.printf("[nav] signed out\n")
		}
	})

	h.SetPage("GrowthVerse Blog")
	r.printf("GrowthVerse demo. Type 'help' for commands.\n")

	for {
		r.printf("%s> ", r.prompt())
		if !r.scanner.Scan() {
			return
		}
		line := strings.TrimSpace(r.scanner.Text())
		if line == "" {
			continue
		}
		cmd, rest, _ := strings.Cut(line, " ")

		switch cmd {
		case "help":
			r.help()
		case "register":
			r.register(ctx)
		case "login":
			r.login(ctx)
		case "logout":
			r.report(r.hooks.OnLogoutClick(ctx))
		case "whoami":
			r.whoami()
		case "page":
			r.hooks.SetPage(strings.TrimSpace(rest))
			r.printf("viewing %q\n", r.hooks.Page())
		case "comment":
			r.comment(ctx, rest)
		case "comments":
			r.comments(ctx)
		case "contact":
			r.contact(ctx)
		case "inbox":
			r.inbox(ctx)
		case "read":
			r.markRead(ctx, rest)
		case "exit", "quit":
			return
		default:
			r.printf("unknown command %q, try 'help'\n", cmd)
		}
	}
}

func (r *repl) printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}

func (r *repl) prompt() string {
	if s, ok := r.hooks.CurrentSession(); ok {
		return s.Name
	}
	return "guest"
}

func (r *repl) help() {
	r.printf(`Commands:
  register           create an account
  login              sign in
  logout             sign out
  whoami             show the current session
  page <title>       switch to a page
  comment <text>     comment on the current page
  comments           list the current page's comments
  contact            send a contact message
  inbox              list contact messages
  read <id>          mark a contact message read
  exit               leave
`)
}

func (r *repl) ask(label string) string {
	r.printf("%s: ", label)
	if !r.scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(r.scanner.Text())
}

func (r *repl) report(err error) {
	if err != nil {
		r.printf("error: %v\n", err)
	} else {
		r.printf("ok\n")
	}
}

func (r *repl) register(ctx context.Context) {
	name := r.ask("name")
	email := r.ask("email")
	password := r.ask("password")
	r.report(r.hooks.OnRegisterSubmit(ctx, name, email, password))
}

func (r *repl) login(ctx context.Context) {
	email := r.ask("email")
	password := r.ask("password")
	r.report(r.hooks.OnLoginSubmit(ctx, email, password))
}

func (r *repl) whoami() {
	s, ok := r.hooks.CurrentSession()
	if !ok {
		r.printf("not signed in\n")
		return
	}
	r.printf("%s <%s> since %s\n", s.Name, s.Email, s.CreatedAt.Format("2006-01-02"))
}

func (r *repl) comment(ctx context.Context, body string) {
	_, err := r.hooks.OnCommentSubmit(ctx, body)
	r.report(err)
}

func (r *repl) comments(ctx context.Context) {
	list, err := r.hooks.ListCommentsForCurrentPost(ctx)
	if err != nil {
		r.printf("error: %v\n", err)
		return
	}
	if len(list) == 0 {
		r.printf("no comments yet on %q\n", r.hooks.Page())
		return
	}
	for _, c := range list {
		r.printf("[%s] %s — %s\n    %s\n", c.Initials(), c.UserName, c.DisplayDate(), c.EscapedBody())
	}
}

func (r *repl) contact(ctx context.Context) {
	name := r.ask("name")
	email := r.ask("email")
	body := r.ask("message")
	_, err := r.hooks.OnContactSubmit(ctx, name, email, body)
	r.report(err)
}

func (r *repl) inbox(ctx context.Context) {
	messages, err := r.hooks.ListContactMessages(ctx)
	if err != nil {
		r.printf("error: %v\n", err)
		return
	}
	if len(messages) == 0 {
		r.printf("inbox empty\n")
		return
	}
	for _, m := range messages {
		r.printf("%s [%s] %s <%s>: %s\n", m.ID, m.Status, m.Name, m.Email, m.Body)
	}
}

func (r *repl) markRead(ctx context.Context, rest string) {
	id, err := idx.Parse(rest)
	if err != nil {
		r.printf("error: %v\n", err)
		return
	}
	r.report(r.hooks.MarkContactMessageRead(ctx, id))
}
