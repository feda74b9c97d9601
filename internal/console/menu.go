package console

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/abhisek/tenfold/internal/config"
	"github.com/abhisek/tenfold/internal/session"
)

type menuOption struct {
	key   string
	label string
}

var (
	operationMenu = []menuOption{
		{"1", "Multiply (·)"},
		{"2", "Divide (:)"},
		{"3", "Both"},
	}
	factorMenu = []menuOption{
		{"1", "10"},
		{"2", "100"},
		{"3", "1000"},
		{"4", "All (10, 100, 1000)"},
	}
	difficultyMenu = []menuOption{
		{"1", "Whole numbers"},
		{"2", "Decimals"},
		{"3", "Mixed"},
	}
)

// collectSettings asks for the drill policy. The session mode and advance
// policy come from the given settings.
func (c *Console) collectSettings(ctx context.Context, s config.Settings) (config.Settings, error) {
	choice, err := c.menuChoice(ctx, "Choose operation(s):", operationMenu)
	if err != nil {
		return s, err
	}
	switch choice {
	case "1":
		s.Operations = []string{"multiply"}
	case "2":
		s.Operations = []string{"divide"}
	default:
		s.Operations = []string{"multiply", "divide"}
	}

	choice, err = c.menuChoice(ctx, "Allowed factors:", factorMenu)
	if err != nil {
		return s, err
	}
	switch choice {
	case "1":
		s.Factors = []int{10}
	case "2":
		s.Factors = []int{100}
	case "3":
		s.Factors = []int{1000}
	default:
		s.Factors = []int{10, 100, 1000}
	}

	choice, err = c.menuChoice(ctx, "Number type:", difficultyMenu)
	if err != nil {
		return s, err
	}
	s.Difficulty = map[string]string{"1": "whole", "2": "decimal", "3": "mixed"}[choice]

	if s.Mode == string(session.ModeDuration) {
		s.Minutes, err = c.askInt(ctx, fmt.Sprintf("How many minutes? (e.g. %d): ", config.Defaults().Minutes),
			session.MinMinutes, session.MaxMinutes)
	} else {
		s.Count, err = c.askInt(ctx, fmt.Sprintf("How many tasks? (e.g. %d): ", config.Defaults().Count),
			session.MinCount, session.MaxCount)
	}
	if err != nil {
		return s, err
	}
	return s, nil
}

// menuChoice prints a numbered menu until one of its keys is entered.
func (c *Console) menuChoice(ctx context.Context, prompt string, options []menuOption) (string, error) {
	for {
		fmt.Fprintln(c.out, prompt)
		for _, o := range options {
			fmt.Fprintf(c.out, "  %s) %s\n", o.key, o.label)
		}
		fmt.Fprint(c.out, "> ")

		line, err := c.readLine(ctx, 0)
		if err != nil {
			return "", err
		}
		choice := strings.ToLower(strings.TrimSpace(line))
		for _, o := range options {
			if o.key == choice {
				return choice, nil
			}
		}
		fmt.Fprintln(c.out, "Invalid choice, try again.")
		fmt.Fprintln(c.out)
	}
}

// askInt prompts until a whole number in [lo, hi] is entered.
func (c *Console) askInt(ctx context.Context, prompt string, lo, hi int) (int, error) {
	for {
		fmt.Fprint(c.out, prompt)
		line, err := c.readLine(ctx, 0)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintln(c.out, "Enter a whole number.")
			continue
		}
		if n < lo || n > hi {
			fmt.Fprintf(c.out, "Enter a number between %d and %d.\n", lo, hi)
			continue
		}
		return n, nil
	}
}
