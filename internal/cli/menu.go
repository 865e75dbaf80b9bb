// Package cli runs the numbered main menu and dispatches each choice to a
// project or party command.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime/debug"
	"strings"

	"go.uber.org/zap"

	"poisepms/internal/console"
	"poisepms/internal/domain"
	"poisepms/internal/logging"
)

// ProjectCommands is the set of project actions reachable from the menu
type ProjectCommands interface {
	Create(ctx context.Context) error
	Update(ctx context.Context) error
	Finalize(ctx context.Context) error
	Delete(ctx context.Context) error
	ListUncompleted(ctx context.Context) error
	ListOverdue(ctx context.Context) error
	Find(ctx context.Context) error
	ShowAll(ctx context.Context) error
}

// PartyCommands prints party listings
type PartyCommands interface {
	ShowAll(ctx context.Context, c domain.Category) error
}

type command struct {
	label string
	name  string
	run   func(ctx context.Context) error
}

type Menu struct {
	con      *console.Console
	log      *zap.Logger
	commands []command
}

func NewMenu(con *console.Console, projects ProjectCommands, parties PartyCommands, log *zap.Logger) *Menu {
	if log == nil {
		log = zap.NewNop()
	}
	showAll := func(c domain.Category) func(context.Context) error {
		return func(ctx context.Context) error { return parties.ShowAll(ctx, c) }
	}
	return &Menu{
		con: con,
		log: log,
		commands: []command{
			{"Add New Project", "add-project", projects.Create},
			{"Update Project", "update-project", projects.Update},
			{"Finalize Project", "finalize-project", projects.Finalize},
			{"Delete Project", "delete-project", projects.Delete},
			{"List Uncompleted Projects", "list-uncompleted", projects.ListUncompleted},
			{"List Overdue Projects", "list-overdue", projects.ListOverdue},
			{"Find Project", "find-project", projects.Find},
			{"Show All Projects", "show-projects", projects.ShowAll},
			{"Show All Engineers", "show-engineers", showAll(domain.CategoryEngineer)},
			{"Show All Managers", "show-managers", showAll(domain.CategoryManager)},
			{"Show All Customers", "show-customers", showAll(domain.CategoryCustomer)},
			{"Show All Architects", "show-architects", showAll(domain.CategoryArchitect)},
		},
	}
}

// Run shows the menu until the user exits or input ends. Command failures
// are printed and the loop continues; only a broken input stream is
// returned as an error.
func (m *Menu) Run(ctx context.Context) error {
	for {
		m.printOptions()

		line, err := m.con.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		choice, err := console.ParseInt(line)
		if err != nil {
			m.con.Println("Invalid input, please enter a number.")
			continue
		}
		if choice == 0 {
			m.con.Println("Exiting program.")
			return nil
		}
		if choice < 0 || int(choice) > len(m.commands) {
			m.con.Println("Invalid option, please try again.")
			continue
		}

		if err := m.dispatch(ctx, m.commands[choice-1]); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

func (m *Menu) printOptions() {
	m.con.Println("\nSelect an option:")
	for i, c := range m.commands {
		m.con.Printf("%d - %s\n", i+1, c.label)
	}
	m.con.Println("0 - Exit")
}

// dispatch runs one command. Its errors and panics are reported to the
// user; input stream errors are passed back to end the loop.
func (m *Menu) dispatch(ctx context.Context, c command) (err error) {
	ctx = logging.WithOperation(ctx, c.name)
	log := logging.For(ctx, m.log)
	log.Debug("command started")

	defer func() {
		if recovered := recover(); recovered != nil {
			log.Error("command panicked", zap.Any("panic", recovered), zap.ByteString("stack", debug.Stack()))
			m.con.Println(Describe(fmt.Errorf("%v", recovered)))
			err = nil
		}
	}()

	err = c.run(ctx)
	if err == nil {
		log.Debug("command finished")
		return nil
	}
	if isInputFailure(err) {
		return err
	}

	log.Warn("command failed", zap.Error(err))
	m.con.Println(Describe(err))
	return nil
}

// Describe renders an error the way the menu prints it.
func Describe(err error) string {
	if errors.Is(err, domain.ErrStore) {
		return "SQL Error: " + strings.Replace(err.Error(), domain.ErrStore.Error()+": ", "", 1)
	}
	return "An error occurred: " + err.Error()
}

func isInputFailure(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)
}
