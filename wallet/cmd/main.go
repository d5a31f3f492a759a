package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/Luismorlan/star_notary/commands"
	"github.com/Luismorlan/star_notary/layout"
	"github.com/Luismorlan/star_notary/wallet"
	"github.com/jroimartin/gocui"
)

var (
	keyPath   *string
	debugMode *bool
)

func init() {
	keyPath = flag.String("key_path", "/tmp/starkey.pem", "RSA file path for your private key")
	debugMode = flag.Bool("debug_mode", false, "Using debug mode will disable fancy GUI.")
}

// Return a gui handle if not in debug mode.
func ListenOnInput(cmd chan commands.ClientCommand, debugMode bool) *gocui.Gui {
	// Choose a fancy GUI
	if debugMode {
		go ParseCommand(cmd)
		return nil
	}
	g, err := layout.CreateGui(cmd, "wallet/cmd/usage.txt")
	if err != nil {
		log.Fatalln(err)
	}
	go func() {
		if err := g.MainLoop(); err != nil {
			if err == gocui.ErrQuit {
				g.Close()
				os.Exit(0)
			}
			os.Exit(1)
		}
	}()
	return g
}

func main() {
	flag.Parse()
	fmt.Println("keyPath is", *keyPath)

	cmd := make(chan commands.ClientCommand)
	// Start listening on input.
	g := ListenOnInput(cmd, *debugMode)
	w := wallet.NewWallet(*keyPath, g)
	w.Log("Wallet address: " + w.GetAddress())

	go HandleCommand(cmd, w)

	c := make(chan int)
	<-c
}

// Parse command from stdio.
func ParseCommand(cmd chan commands.ClientCommand) {
	for {
		reader := bufio.NewReader(os.Stdin)
		fmt.Print("> ")
		text, _ := reader.ReadString('\n')
		// convert CRLF to LF
		text = strings.Replace(text, "\n", "", -1)
		c, err := commands.CreateClientCommand(text)
		if err != nil {
			log.Println(err)
			continue
		}
		cmd <- c
	}
}

func HandleCommand(cmd chan commands.ClientCommand, w *wallet.Wallet) {
	for {
		c := <-cmd
		switch c.Op {
		case commands.CONNECT:
			ipAddr := c.Args[0]
			port := c.Args[1]
			if err := w.SetNotaryConnection(ipAddr, port); err != nil {
				w.Log("failed to connect to notary endpoint " + ipAddr + ":" + port)
				continue
			}
			w.Log("connected notary endpoint " + ipAddr + ":" + port)
		case commands.MY_ADDRESS:
			w.Log("\n===============DO NOT COPY THIS LINE================\n" + w.GetAddress() + "\n===============DO NOT COPY THIS LINE================")
		case commands.CLAIM:
			ra := c.Args[0]
			dec := c.Args[1]
			story := strings.Join(c.Args[2:], " ")
			block, err := w.ClaimStar(ra, dec, story)
			if err != nil {
				w.Log("failed to claim star: " + err.Error())
				continue
			}
			w.Log(fmt.Sprintf("star recorded at height %d, block hash %s", block.GetHeight(), block.GetHash()))
		case commands.STARS:
			address := ""
			if len(c.Args) == 1 {
				address = c.Args[0]
			}
			stars, err := w.GetStars(address)
			if err != nil {
				w.Log("failed to list stars: " + err.Error())
				continue
			}
			if len(stars) == 0 {
				w.Log("no stars recorded for this address")
				continue
			}
			for _, owned := range stars {
				star := owned.GetStar()
				w.Log(fmt.Sprintf("ra: %s, dec: %s, story: %s", star.GetRa(), star.GetDec(), star.GetStory()))
			}
		case commands.BLOCK:
			height, _ := strconv.ParseInt(c.Args[0], 10, 64)
			block, found, err := w.GetBlockByHeight(height)
			if err != nil {
				w.Log("failed to fetch block: " + err.Error())
				continue
			}
			if !found {
				w.Log(fmt.Sprintf("no block at height %d", height))
				continue
			}
			w.Log(fmt.Sprintf("height: %d, hash: %s, prev: %s, owner: %s", block.GetHeight(), block.GetHash(), block.GetPrevHash(), block.GetOwner()))
		case commands.AUDIT:
			findings, err := w.Audit()
			if err != nil {
				w.Log("failed to audit chain: " + err.Error())
				continue
			}
			if len(findings) == 0 {
				w.Log("chain is intact")
				continue
			}
			for _, f := range findings {
				w.Log(fmt.Sprintf("%s at height %d", f.GetKind(), f.GetHeight()))
			}
		default:
			w.Log(fmt.Sprintf("Unimplemented command: %d", c.Op))
		}
	}
}
