package main

import (
	"context"

	"lunchboard-backend/cmd/menuscraper/commands"
	"lunchboard-backend/lib/telemetry"
)

func main() {
	telemetry.InitSlog(true)

	err := telemetry.SetupFromEnv(context.Background(), "menuscraper")
	if err == nil {
		// a batch run is over in seconds, without a flush the batched
		// spans never leave the process
		defer telemetry.Shutdown(context.Background())
	}

	commands.ExecuteContext(context.Background())
}
