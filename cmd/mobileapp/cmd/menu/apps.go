package menu

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/agentstation/mobileapp/internal/cmd/output"
	"github.com/agentstation/mobileapp/internal/cmd/table"
	"github.com/agentstation/mobileapp/pkg/calculator"
	"github.com/agentstation/mobileapp/pkg/constants"
	"github.com/agentstation/mobileapp/pkg/guess"
	"github.com/agentstation/mobileapp/pkg/logging"
	"github.com/agentstation/mobileapp/pkg/todo"
)

func (s *session) calculator(ctx context.Context, user string) error {
	s.box("Welcome to the Calculator!")
	exit := strconv.Itoa(len(calculator.Operations) + 1)

	for {
		lines := []string{"Select an operation:"}
		for i, op := range calculator.Operations {
			lines = append(lines, fmt.Sprintf("[%d] %s (%s)", i+1, op, op.Symbol()))
		}
		lines = append(lines, "["+exit+"] Exit")
		s.box(lines...)

		choice, err := s.choice(ctx, "Enter choice (1-"+exit+"): ")
		if err != nil {
			return err
		}
		if choice == exit {
			s.client.LogCalculatorExit(ctx, user)
			return nil
		}

		n, convErr := strconv.Atoi(choice)
		if convErr != nil || n < 1 || n > len(calculator.Operations) {
			s.println("Invalid input. Please try again.")
			continue
		}
		op := calculator.Operations[n-1]

		x, ok, err := s.operand(ctx, "Enter first number: ")
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		var y float64
		if !op.Unary() {
			if y, ok, err = s.operand(ctx, "Enter second number: "); err != nil {
				return err
			}
			if !ok {
				continue
			}
		}

		result, calcErr := s.client.Calculate(ctx, user, op, x, y)
		s.println("Result: " + calculator.ResultText(result, calcErr))
	}
}

// operand reads a number. ok is false when the input is not numeric.
func (s *session) operand(ctx context.Context, label string) (float64, bool, error) {
	line, err := s.prompt(ctx, label)
	if err != nil {
		return 0, false, err
	}
	v, perr := calculator.ParseOperand(line)
	if perr != nil {
		s.println("Invalid input. Please try again.")
		return 0, false, nil
	}
	return v, true, nil
}

func (s *session) todo(ctx context.Context, user string) error {
	list, err := s.client.Todo(user)
	if err != nil {
		logging.FromContext(ctx).Error().Err(err).Msg("Cannot open to-do list")
		s.println("Cannot open your to-do list: " + err.Error())
		return nil
	}

	for {
		s.box("Welcome to your To-Do List!", "", "[1] Add Task", "[2] View Tasks", "[3] Exit app")
		choice, err := s.choice(ctx, "Enter your choice: ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			task, err := s.prompt(ctx, "Enter task: ")
			if err != nil {
				return err
			}
			deadline, err := s.prompt(ctx, "Enter deadline (YYYY-MM-DD): ")
			if err != nil {
				return err
			}
			if _, err := list.Add(task, deadline); err != nil {
				s.println(err.Error())
				continue
			}
			s.box(fmt.Sprintf("Task '%s' with deadline '%s'", task, deadline), "added to your list.")

		case "2":
			if err := s.viewTasks(ctx, list); err != nil {
				return err
			}

		case "3":
			s.logExit(ctx, user, "To-Do List")
			s.box("Exiting To-Do List. Goodbye!")
			return nil

		default:
			s.box("Invalid choice. Please try again.")
		}
	}
}

func (s *session) viewTasks(ctx context.Context, list *todo.List) error {
	tasks := list.Tasks()
	if len(tasks) == 0 {
		s.box("No tasks available.")
		return nil
	}

	s.box("Your To-Do List:")
	if err := output.NewFormatter(output.FormatTable).Format(s.out, table.TasksToTableData(tasks)); err != nil {
		return err
	}

	line, err := s.choice(ctx, "Enter task number to manage (or press Enter to go back): ")
	if err != nil || line == "" {
		return err
	}
	n, convErr := strconv.Atoi(line)
	if convErr != nil || n < 1 || n > len(tasks) {
		s.println("Invalid task number. Please try again.")
		return nil
	}

	selected := tasks[n-1]
	s.println("\nSelected Task: " + selected.String())
	s.println("1. Mark as Completed")
	s.println("2. Go back to task list")
	action, err := s.choice(ctx, "Enter your choice: ")
	if err != nil {
		return err
	}
	if action != "1" {
		return nil
	}

	done, err := list.Complete(n)
	if err != nil {
		s.println(err.Error())
		return nil
	}
	s.printf("Task '%s' marked as Completed and moved to '%s'.\n", done.Name, constants.CompletedTodoFile)
	return nil
}

func (s *session) guessingGame(ctx context.Context, user string) error {
	s.box("Welcome to the Number Guessing Game!")

	for {
		game, err := s.client.NewGame()
		if err != nil {
			return err
		}

		for !game.Over() {
			line, err := s.choice(ctx, fmt.Sprintf("Guess the number between %d and %d: ", constants.GuessMin, constants.GuessMax))
			if err != nil {
				return err
			}
			n, convErr := strconv.Atoi(line)
			if convErr != nil {
				s.println("Please enter a whole number.")
				continue
			}
			outcome, err := game.Guess(n)
			if err != nil {
				return err
			}
			if outcome != guess.Correct {
				s.println(outcome.String())
			}
		}

		if game.Won() {
			s.printf("Congratulations! You guessed the number in %d attempts.\n", game.Attempts())
		} else {
			s.printf("Sorry, you've used all %d attempts. The correct number was %d.\n", game.MaxAttempts(), game.Target())
		}
		if err := s.client.RecordGame(ctx, user, game); err != nil {
			logging.FromContext(ctx).Warn().Err(err).Msg("Game result not logged")
		}

		again, err := s.choice(ctx, "Do you want to play again? (y/n): ")
		if err != nil {
			return err
		}
		if !strings.EqualFold(again, "y") {
			s.logExit(ctx, user, "Number Guessing Game")
			s.printf("Goodbye, %s! Thanks for playing!\n", user)
			return nil
		}
	}
}
