package commands

import (
	"errors"
	"net"
	"regexp"
	"strconv"
	"strings"
)

const (
	// do nothing operation
	NOOP = iota
	// Connect to a notary node with ip address and port
	CONNECT
	// Print the wallet address
	MY_ADDRESS
	// Claim a star: request a challenge, sign it and submit
	CLAIM
	// List stars claimed by an address, defaults to own address
	STARS
	// Look up one block by height
	BLOCK
	// Ask the notary for a full chain validation report
	AUDIT
)

type ClientCommand struct {
	Op   Operation
	Args []string
}

func (c ClientCommand) IsValid() bool {
	switch c.Op {
	case CLAIM:
		// ra, dec and at least one story word.
		return len(c.Args) >= 3
	case MY_ADDRESS, AUDIT:
		return len(c.Args) == 0
	case STARS:
		return len(c.Args) <= 1
	case BLOCK:
		if len(c.Args) != 1 {
			return false
		}
		_, err := strconv.ParseInt(c.Args[0], 10, 64)
		return err == nil
	case CONNECT:
		if len(c.Args) != 2 {
			return false
		}
		ipAddr := c.Args[0]
		port := c.Args[1]
		ip := net.ParseIP(ipAddr)

		portRegex, _ := regexp.Compile(PORT_REGEX)
		return ip != nil && ip.To4() != nil && portRegex.Match([]byte(port))
	default:
		return false
	}
}

func CreateClientCommand(s string) (ClientCommand, error) {
	// split command by space.
	ss := strings.Split(s, " ")
	if len(ss) == 0 {
		return ClientCommand{}, errors.New("command is empty")
	}
	cmd := ClientCommand{}
	switch ss[0] {
	case "connect":
		cmd.Op = CONNECT
	case "my_address":
		cmd.Op = MY_ADDRESS
	case "claim":
		cmd.Op = CLAIM
	case "stars":
		cmd.Op = STARS
	case "block":
		cmd.Op = BLOCK
	case "audit":
		cmd.Op = AUDIT
	default:
		cmd.Op = NOOP
	}
	cmd.Args = ss[1:]
	if !cmd.IsValid() {
		return ClientCommand{}, errors.New("invalid command")
	}
	return cmd, nil
}
