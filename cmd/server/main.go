// Command server runs the HTTP API.
//
// Configuration is read from the YAML file named by CONFIG_PATH and from
// environment variables; run with -env to list the variables. The server
// stops gracefully on SIGINT or SIGTERM.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/calorie-backend/internal/app"
	"github.com/heartmarshall/calorie-backend/internal/config"
)

func main() {
	printEnv := flag.Bool("env", false, "print supported environment variables and exit")
	flag.Parse()

	if *printEnv {
		usage, err := config.Usage()
		if err != nil {
			log.Fatalf("server: %v", err)
		}
		fmt.Println(usage)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
