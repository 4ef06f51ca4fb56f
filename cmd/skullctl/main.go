// skullctl sends commands to a running skulld over the command link.
// With arguments it sends one command and exits; without, it reads
// commands from stdin, one per line.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/grimworks/go-skull/internal/config"
	"github.com/grimworks/go-skull/pkg/link"
)

func main() {
	host := flag.String("host", "localhost"+config.DefaultListenAddr, "skulld host:port")
	flag.Parse()

	url := fmt.Sprintf("ws://%s%s", *host, link.CommandPath)

	ctx := context.Background()
	client, err := link.Dial(ctx, url)
	if err != nil {
		fmt.Fprintf(os.Stderr, "connect failed: %v\n", err)
		os.Exit(1)
	}
	defer client.Close()

	// One-shot: skullctl talk start
	if flag.NArg() > 0 {
		resp, err := client.Send(strings.Join(flag.Args(), " "))
		if err != nil {
			fmt.Fprintf(os.Stderr, "send failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(resp)
		if resp == "ERR" {
			os.Exit(1)
		}
		return
	}

	// Interactive: read commands from stdin.
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}
		resp, err := client.Send(line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "send failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(resp)
	}
}
