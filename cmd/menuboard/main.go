package main

import (
	"context"

	"lunchboard-backend/lib/configutil"
	configlibsql "lunchboard-backend/lib/configutil/libsql"
	"lunchboard-backend/lib/serviceutil"
	"lunchboard-backend/lib/telemetry"
	"lunchboard-backend/services/menuboard"
	menuboarddb "lunchboard-backend/services/menuboard/db"
)

type Config struct {
	Database configlibsql.Struct `json:"database"`
	Port     int                 `json:"port"`
}

func main() {
	ctx := serviceutil.SignalContext()
	telemetry.InitSlog(false)

	config, err := configutil.ReadConfig[Config]("menuboard_config.json5")
	if err != nil {
		serviceutil.Fatal("failed to read config", err)
	}
	if config.Port == 0 {
		config.Port = 8080
	}

	db, err := config.Database.OpenDB(menuboarddb.Schema)
	if err != nil {
		serviceutil.Fatal("failed to open database", err)
	}

	err = telemetry.SetupFromEnv(ctx, "menuboard")
	if err == nil {
		defer telemetry.Shutdown(context.Background())
		telemetry.InstrumentPerfStats(ctx)
	}

	store := menuboard.NewStore(db)
	go serviceutil.StartHttpServer(config.Port, menuboard.NewMux(store))

	<-ctx.Done()
}
