package menu

import (
	"context"

	"github.com/agentstation/mobileapp/pkg/errors"
	"github.com/agentstation/mobileapp/pkg/logging"
)

const banner = `
 __  __  ___  ___  ___ _    ___     _   ___ ___
|  \/  |/ _ \| _ )|_ _| |  | __|   /_\ | _ \ _ \
| |\/| | (_) | _ \ | || |__| _|   / _ \|  _/  _/
|_|  |_|\___/|___/|___|____|___| /_/ \_\_| |_|
`

func (s *session) welcome(ctx context.Context) error {
	s.printf("%s", banner)
	for {
		s.box("Welcome! Please choose an option:", "", "[1] Login", "[2] Register", "[3] Exit")
		choice, err := s.choice(ctx, "Enter your choice (1-3): ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			user, err := s.login(ctx)
			if err != nil {
				return err
			}
			if user != "" {
				if err := s.mainMenu(ctx, user); err != nil {
					return err
				}
			}
		case "2":
			user, err := s.register(ctx)
			if err != nil {
				return err
			}
			if user != "" {
				if err := s.mainMenu(ctx, user); err != nil {
					return err
				}
			}
		case "3":
			s.box("Goodbye!")
			return nil
		default:
			s.box("Please choose 1, 2 or 3.")
		}
	}
}

// login returns the username on success and "" when the credentials are
// rejected.
func (s *session) login(ctx context.Context) (string, error) {
	s.box("Login to your account.")
	user, err := s.prompt(ctx, "Username: ")
	if err != nil {
		return "", err
	}
	password, err := s.prompt(ctx, "Password: ")
	if err != nil {
		return "", err
	}

	err = s.client.Login(ctx, user, password)
	switch {
	case err == nil:
		s.println("Login successful!")
		return user, nil
	case errors.IsNotFound(err):
		s.println("User credentials file not found. Please register first.")
	case !errors.IsUnauthorized(err):
		logging.FromContext(ctx).Error().Err(err).Str("user", user).Msg("Login failed")
	}
	s.box("Invalid username or password.")
	return "", nil
}

// register returns the new username on success and "" when the account
// could not be created.
func (s *session) register(ctx context.Context) (string, error) {
	s.box("Register Account")
	user, err := s.prompt(ctx, "Choose a username: ")
	if err != nil {
		return "", err
	}
	password, err := s.prompt(ctx, "Choose a password: ")
	if err != nil {
		return "", err
	}

	err = s.client.Register(ctx, user, password)
	switch {
	case err == nil:
		s.box("Account created successfully", "for "+user+"!")
		return user, nil
	case errors.IsAlreadyExists(err):
		s.box("Username already taken.", "Please choose a different one.")
	case errors.IsValidationError(err):
		s.println(err.Error())
	default:
		logging.FromContext(ctx).Error().Err(err).Str("user", user).Msg("Registration failed")
		s.println("Registration failed: " + err.Error())
	}
	return "", nil
}

func (s *session) mainMenu(ctx context.Context, user string) error {
	ctx = logging.WithUser(ctx, user)
	for {
		s.box("Main Menu Apps", "",
			"[1] Calculator",
			"[2] To-Do List",
			"[3] Number Guessing Game",
			"[4] Movies",
			"[5] Logout")
		choice, err := s.choice(ctx, "Enter choice (1-5): ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = s.calculator(ctx, user)
		case "2":
			err = s.todo(ctx, user)
		case "3":
			err = s.guessingGame(ctx, user)
		case "4":
			err = s.movies(ctx, user)
		case "5":
			s.client.Logout(ctx, user)
			s.println("Logging out...")
			return nil
		default:
			s.println("Invalid choice. Please try again.")
		}
		if err != nil {
			return err
		}
	}
}

// logExit records that user left one of the apps.
func (s *session) logExit(ctx context.Context, user, app string) {
	if err := s.client.Sessions().LogInteraction(user, "User "+user+" exited "+app+"."); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("Interaction not logged")
	}
}
