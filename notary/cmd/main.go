package main

import (
	"bufio"
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/Luismorlan/star_notary/commands"
	"github.com/Luismorlan/star_notary/config"
	"github.com/Luismorlan/star_notary/notary"
	"github.com/Luismorlan/star_notary/service"
	"google.golang.org/grpc"
	"gopkg.in/yaml.v2"
)

var (
	port       *string
	configPath *string
)

func init() {
	port = flag.String("port", "10000", "port to listen to wallets")
	configPath = flag.String("config_path", "notary/cmd/config.yaml", "path to notary config")
}

// Parse command from stdio.
func ParseCommand(cmd chan commands.Command) {
	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("> ")
		text, _ := reader.ReadString('\n')
		// convert CRLF to LF
		text = strings.Replace(text, "\n", "", -1)
		c, err := commands.CreateCommand(text)
		if err != nil {
			log.Println(err)
			continue
		}
		cmd <- c
	}
}

// Handle console commands against the running notary server.
func HandleCommand(cmd chan commands.Command, server *notary.NotaryServer) {
	for {
		c := <-cmd
		switch c.Op {
		case commands.VALIDATE:
			server.Audit()
			fmt.Print("> ")
		case commands.SHOW:
			v, err := strconv.Atoi(c.Args[0])
			if err != nil {
				log.Printf("%s is not a valid number for depth", c.Args[0])
				continue
			}
			server.Show(v)
		case commands.HEIGHT:
			log.Println("chain height:", server.Height())
			fmt.Print("> ")
		default:
			log.Print("Unrecognized command:", c)
			fmt.Print("> ")
		}
	}
}

func ParseAppConfig(path string) config.AppConfig {
	c := config.AppConfig{}
	yamlFile, err := ioutil.ReadFile(path)
	if err != nil {
		log.Fatal("yamlFile. get err: ", err.Error())
	}
	err = yaml.Unmarshal(yamlFile, &c)
	if err != nil {
		log.Fatal("Unmarshal: ", err)
	}
	return c
}

func main() {
	flag.Parse()

	cfg := ParseAppConfig(*configPath)

	lis, err := net.Listen("tcp", fmt.Sprintf("localhost:%s", *port))
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}

	server, err := notary.NewNotaryServer(cfg)
	if err != nil {
		log.Fatalf("failed to bootstrap notary: %v", err)
	}
	grpcServer := grpc.NewServer()
	service.RegisterStarNotaryServiceServer(grpcServer, server)
	log.Println(cfg)
	log.Println("Starting to serve at port:", *port)

	// A command channel for the notary console.
	cmd := make(chan commands.Command)
	go ParseCommand(cmd)
	go HandleCommand(cmd, server)

	grpcServer.Serve(lis)
}
