package menu

import (
	"context"
	"strconv"

	"github.com/agentstation/mobileapp/internal/cmd/output"
	"github.com/agentstation/mobileapp/internal/cmd/table"
	"github.com/agentstation/mobileapp/pkg/logging"
)

func (s *session) movies(ctx context.Context, user string) error {
	s.println("Welcome to the Movies app!")
	for {
		s.println("\n1. Search Movie")
		s.println("2. Add Movie")
		s.println("3. Print All Movies")
		s.println("4. Exit")
		choice, err := s.choice(ctx, "Enter choice (1-4): ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = s.searchMovie(ctx, user)
		case "2":
			err = s.addMovie(ctx, user)
		case "3":
			err = s.printMovies()
		case "4":
			s.logExit(ctx, user, "Movies")
			s.println("Exiting the app.")
			return nil
		default:
			s.println("Invalid choice. Please try again.")
		}
		if err != nil {
			return err
		}
	}
}

func (s *session) searchMovie(ctx context.Context, user string) error {
	query, err := s.prompt(ctx, "Enter the movie name to search: ")
	if err != nil {
		return err
	}
	results := s.client.Search(ctx, user, query)
	if len(results) == 0 {
		s.println("Movie not found!")
		return nil
	}
	for _, m := range results {
		s.printf("Found: %s - Genre: %s - Year: %d\n", m.Name, m.Genre, m.Year)
	}
	return nil
}

func (s *session) addMovie(ctx context.Context, user string) error {
	name, err := s.prompt(ctx, "Enter movie name: ")
	if err != nil {
		return err
	}
	genre, err := s.prompt(ctx, "Enter movie genre: ")
	if err != nil {
		return err
	}

	var year int
	for {
		line, err := s.choice(ctx, "Enter movie year: ")
		if err != nil {
			return err
		}
		if year, err = strconv.Atoi(line); err == nil {
			break
		}
		s.println("Please enter the year as a whole number, for example 1999.")
	}

	if _, err := s.client.AddMovie(ctx, user, name, genre, year); err != nil {
		logging.FromContext(ctx).Error().Err(err).Msg("Movie not saved")
		s.printf("\nMovie '%s' was added but could not be saved: %v\n", name, err)
		return nil
	}
	s.printf("\nMovie '%s' added successfully!\n", name)
	return nil
}

func (s *session) printMovies() error {
	entries := s.client.Entries()
	s.println("\nList of All Movies:")
	if len(entries) == 0 {
		s.println("No movies in the catalog.")
		return nil
	}
	return output.NewFormatter(output.FormatTable).Format(s.out, table.MoviesToTableData(entries))
}
