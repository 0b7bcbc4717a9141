package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/devcontainer-god/devctl/pkg/devcontainer"
)

const customChoice = "Custom"

// promptUser walks the remote-user and UID/GID questions and merges the
// resulting user fragment.
func promptUser(paths Paths, doc devcontainer.Document) (devcontainer.Document, error) {
	template, err := loadTemplate(paths, templateUser)
	if err != nil {
		return nil, err
	}

	useDefault := true
	err = runForm(
		huh.NewConfirm().
			Title("Use the default remote user (" + defaultRemoteUser + ")?").
			Value(&useDefault),
	)
	if err != nil {
		return nil, err
	}

	remoteUser := ""
	if !useDefault {
		err = runForm(
			huh.NewInput().
				Title("Remote user name").
				Prompt("> ").
				Validate(nonEmpty("remote user name")).
				Value(&remoteUser),
		)
		if err != nil {
			return nil, err
		}
		remoteUser = strings.TrimSpace(remoteUser)
	}

	uid, err := promptID("UID", defaultUID, hostUserOptions())
	if err != nil {
		return nil, err
	}

	gid, err := promptID("GID", defaultGID, hostGroupOptions())
	if err != nil {
		return nil, err
	}

	return devcontainer.Merge(doc, userFragment(template, remoteUser, uid, gid)), nil
}

// promptID asks whether to override a numeric id, then offers the host's
// accounts plus free-form entry.
func promptID(kind, fallback string, options []huh.Option[string]) (string, error) {
	custom := false
	err := runForm(
		huh.NewConfirm().
			Title("Set a custom " + kind + "?").
			Description("Default " + kind + ": " + fallback).
			Value(&custom),
	)
	if err != nil {
		return "", err
	}
	if !custom {
		return "", nil
	}

	selected := customChoice
	if len(options) > 0 {
		choices := append([]huh.Option[string]{huh.NewOption(customChoice, customChoice)}, options...)
		err = runForm(
			huh.NewSelect[string]().
				Title("Select an entry for the "+kind+" or choose Custom").
				Options(choices...).
				Value(&selected),
		)
		if err != nil {
			return "", err
		}
	}

	if selected != customChoice {
		return selected, nil
	}

	id := ""
	err = runForm(
		huh.NewInput().
			Title("Enter custom " + kind).
			Prompt("> ").
			Validate(numericID(kind)).
			Value(&id),
	)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(id), nil
}

// hostUserOptions lists host accounts for UID selection; enumeration
// failures degrade to free-form entry.
func hostUserOptions() []huh.Option[string] {
	users, err := parsePasswd("/etc/passwd")
	if err != nil {
		return nil
	}
	options := make([]huh.Option[string], 0, len(users))
	for _, u := range users {
		options = append(options, huh.NewOption(u.Label(), u.UID))
	}
	return options
}

func hostGroupOptions() []huh.Option[string] {
	groups, err := parseGroup("/etc/group")
	if err != nil {
		return nil
	}
	options := make([]huh.Option[string], 0, len(groups))
	for _, g := range groups {
		options = append(options, huh.NewOption(g.Label(), g.GID))
	}
	return options
}

func nonEmpty(what string) func(string) error {
	return func(value string) error {
		if strings.TrimSpace(value) == "" {
			return errEmpty(what)
		}
		return nil
	}
}

func numericID(kind string) func(string) error {
	return func(value string) error {
		value = strings.TrimSpace(value)
		if value == "" {
			return errEmpty(kind)
		}
		if _, err := strconv.Atoi(value); err != nil {
			return fmt.Errorf("%s must be numeric", kind)
		}
		return nil
	}
}

func errEmpty(what string) error {
	return fmt.Errorf("%s cannot be empty", what)
}
