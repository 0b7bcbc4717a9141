package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// HostUser is one /etc/passwd entry offered during UID selection.
type HostUser struct {
	Name string
	UID  string
}

// HostGroup is one /etc/group entry offered during GID selection.
type HostGroup struct {
	Name string
	GID  string
}

// parsePasswd reads name and UID columns from passwd-format data
// (name:password:UID:GID:...). Malformed lines are skipped.
func parsePasswd(path string) ([]HostUser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var users []HostUser
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, ":")
		if len(fields) < 3 || fields[0] == "" {
			continue
		}
		users = append(users, HostUser{Name: fields[0], UID: fields[2]})
	}
	return users, scanner.Err()
}

// parseGroup reads name and GID columns from group-format data
// (name:password:GID:members).
func parseGroup(path string) ([]HostGroup, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var groups []HostGroup
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, ":")
		if len(fields) < 3 || fields[0] == "" {
			continue
		}
		groups = append(groups, HostGroup{Name: fields[0], GID: fields[2]})
	}
	return groups, scanner.Err()
}

func (u HostUser) Label() string {
	return fmt.Sprintf("%s (UID: %s)", u.Name, u.UID)
}

func (g HostGroup) Label() string {
	return fmt.Sprintf("%s (GID: %s)", g.Name, g.GID)
}
