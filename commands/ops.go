package commands

import (
	"errors"
	"strconv"
	"strings"
)

type Operation int

const PORT_REGEX = "[0-9]{4,5}"

const (
	DEFAULT = iota
	// Audit the whole chain and report every finding.
	VALIDATE
	// Render the newest blocks of the chain.
	SHOW
	// Print the height of the tail block.
	HEIGHT
)

// A command contains an operation and many arguments.
type Command struct {
	Op   Operation
	Args []string
}

func (c Command) IsValid() bool {
	switch c.Op {
	case VALIDATE, HEIGHT:
		return len(c.Args) == 0
	case SHOW:
		if len(c.Args) != 1 {
			return false
		}
		// depth must be a number.
		if _, err := strconv.Atoi(c.Args[0]); err != nil {
			return false
		}
		return true
	default:
		return false
	}
}

// From string, create the notary console command.
func CreateCommand(s string) (Command, error) {
	// split command by space.
	ss := strings.Split(s, " ")
	if len(ss) == 0 {
		return Command{}, errors.New("command is empty")
	}
	cmd := Command{}
	switch ss[0] {
	case "validate":
		cmd.Op = VALIDATE
	case "show":
		cmd.Op = SHOW
	case "height":
		cmd.Op = HEIGHT
	}
	cmd.Args = ss[1:]
	if !cmd.IsValid() {
		return Command{}, errors.New("invalid command")
	}
	return cmd, nil
}

// Create a brand new command with default operation.
func NewDefaultCommand() Command {
	return Command{
		Op: DEFAULT,
	}
}

func (c Command) IsDefault() bool {
	return c.Op == DEFAULT
}
