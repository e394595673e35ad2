package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/smsdesk/smsdesk/scripts/internal"
)

// Command represents a script that can be run
type Command struct {
	Name        string
	Description string
	Run         func() error
}

var commands = []Command{
	{
		Name:        "add-user",
		Description: "Create a user account that can log in",
		Run:         internal.AddUser,
	},
	{
		Name:        "add-group",
		Description: "Create a contact group owned by a user",
		Run:         internal.AddGroup,
	},
}

func main() {
	var (
		listCommands bool
		cmdName      string
		email        string
		name         string
		password     string
		role         string
		userID       string
	)

	flag.BoolVar(&listCommands, "list", false, "List all available commands")
	flag.StringVar(&cmdName, "cmd", "", "Command to run")
	flag.StringVar(&email, "user-email", "", "Email of the user to create")
	flag.StringVar(&name, "name", "", "Name of the user or group to create")
	flag.StringVar(&password, "password", "", "Password of the user to create")
	flag.StringVar(&role, "role", "", "Role of the user to create (admin or user)")
	flag.StringVar(&userID, "user-id", "", "Owner of the group to create")

	flag.Parse()

	if listCommands {
		fmt.Println("Available commands:")
		for _, cmd := range commands {
			fmt.Printf("  %-20s %s\n", cmd.Name, cmd.Description)
		}
		return
	}

	if cmdName == "" {
		log.Fatal("Please specify a command to run using -cmd flag. Use -list to see available commands.")
	}

	// Set command-specific environment variables
	if email != "" {
		os.Setenv("USER_EMAIL", email)
	}
	if name != "" {
		os.Setenv("NAME", name)
	}
	if password != "" {
		os.Setenv("USER_PASSWORD", password)
	}
	if role != "" {
		os.Setenv("USER_ROLE", role)
	}
	if userID != "" {
		os.Setenv("USER_ID", userID)
	}

	for _, cmd := range commands {
		if cmd.Name == cmdName {
			if err := cmd.Run(); err != nil {
				log.Fatalf("Error running command %s: %v", cmdName, err)
			}
			return
		}
	}

	log.Fatalf("Unknown command: %s. Use -list to see available commands.", cmdName)
}
